package app_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gopress/gopress/core/app"
	"github.com/gopress/gopress/core/request"
	"github.com/gopress/gopress/core/response"
	"github.com/gopress/gopress/core/router"
)

func TestMiddlewarePrefixMatching(t *testing.T) {
	t.Parallel()

	var seen []string

	tagging := func(tag string) router.Middleware {
		return func(req *request.Context, res response.Response, next *router.Next) response.Response {
			seen = append(seen, tag)
			return next.Run(req, res)
		}
	}

	a := app.New()
	a.Use("", tagging("global"))
	a.Use("/api", tagging("api"))
	a.Use("/admin", tagging("admin"))
	a.Get("/api/items", func(req *request.Context, res response.Response) response.Response {
		return res.Text("items")
	})

	w := httptest.NewRecorder()
	a.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/items", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"global", "api"}, seen, "only prefix-matching middlewares run, in registration order")
}

func TestMiddlewareRunsForNotFound(t *testing.T) {
	t.Parallel()

	ran := false
	a := app.New()
	a.Use("", func(req *request.Context, res response.Response, next *router.Next) response.Response {
		ran = true
		return next.Run(req, res)
	})

	w := httptest.NewRecorder()
	a.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.True(t, ran, "the chain still runs, terminated by the not-found response")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMiddlewareShortCircuitSkipsHandler(t *testing.T) {
	t.Parallel()

	handlerRan := false

	a := app.New()
	a.Use("/private", func(req *request.Context, res response.Response, next *router.Next) response.Response {
		if _, ok := req.Header("Authorization"); !ok {
			return res.Status(http.StatusUnauthorized).Text("unauthorized")
		}
		return next.Run(req, res)
	})
	a.Get("/private/data", func(req *request.Context, res response.Response) response.Response {
		handlerRan = true
		return res.Text("secret")
	})

	w := httptest.NewRecorder()
	a.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private/data", nil))

	assert.False(t, handlerRan)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "unauthorized", w.Body.String())

	r := httptest.NewRequest(http.MethodGet, "/private/data", nil)
	r.Header.Set("Authorization", "Bearer token")
	w = httptest.NewRecorder()
	a.ServeHTTP(w, r)

	assert.True(t, handlerRan)
	assert.Equal(t, "secret", w.Body.String())
}

func TestBodyTooLargeRejectedBeforeHandler(t *testing.T) {
	t.Parallel()

	handlerRan := false
	a := app.New()
	a.Post("/upload", func(req *request.Context, res response.Response) response.Response {
		handlerRan = true
		return res.Text("ok")
	})

	body := strings.Repeat("x", request.MaxBodySize+1)
	w := httptest.NewRecorder()
	a.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(body)))

	assert.False(t, handlerRan)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Body too large", w.Body.String())
}

func TestInvalidJSONRejectedBeforeHandler(t *testing.T) {
	t.Parallel()

	handlerRan := false
	a := app.New()
	a.Post("/data", func(req *request.Context, res response.Response) response.Response {
		handlerRan = true
		return res.Text("ok")
	})

	r := httptest.NewRequest(http.MethodPost, "/data", strings.NewReader("{broken"))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.ServeHTTP(w, r)

	assert.False(t, handlerRan)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid JSON")
}

func TestInvalidUTF8RejectedBeforeHandler(t *testing.T) {
	t.Parallel()

	a := app.New()
	a.Post("/data", func(req *request.Context, res response.Response) response.Response {
		return res.Text("ok")
	})

	w := httptest.NewRecorder()
	a.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/data", bytes.NewReader([]byte{0xff, 0xfe})))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid UTF-8 sequence", w.Body.String())
}

func TestPanicRecovery(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	a := app.New(app.WithLogger(log))
	a.Get("/boom", func(req *request.Context, res response.Response) response.Response {
		panic("handler exploded")
	})

	w := httptest.NewRecorder()
	a.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, buf.String(), "handler exploded")
}

func TestDoubleNextRecoveredAsServerError(t *testing.T) {
	t.Parallel()

	a := app.New()
	a.Use("", func(req *request.Context, res response.Response, next *router.Next) response.Response {
		out := next.Run(req, res)
		return next.Run(req, out)
	})
	a.Get("/r", func(req *request.Context, res response.Response) response.Response {
		return res.Text("ok")
	})

	w := httptest.NewRecorder()
	a.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/r", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestPerRequestFailureDoesNotAffectNextRequest(t *testing.T) {
	t.Parallel()

	a := app.New()
	a.Get("/boom", func(req *request.Context, res response.Response) response.Response {
		panic("boom")
	})
	a.Get("/fine", func(req *request.Context, res response.Response) response.Response {
		return res.Text("fine")
	})

	w := httptest.NewRecorder()
	a.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = httptest.NewRecorder()
	a.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fine", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fine", w.Body.String())
}
