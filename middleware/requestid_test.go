package middleware_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopress/gopress/core/request"
	"github.com/gopress/gopress/core/response"
	"github.com/gopress/gopress/core/router"
	"github.com/gopress/gopress/middleware"
)

func TestRequestIDStampsResponse(t *testing.T) {
	t.Parallel()

	chain := router.NewChain([]router.Middleware{middleware.RequestID()}, okTerminal)
	res := chain.Run(request.NewFixture(), response.New())

	id, err := res.GetHeader(middleware.DefaultRequestIDHeader)
	require.NoError(t, err)

	_, err = uuid.Parse(id)
	assert.NoError(t, err, "default generator produces UUIDs")
}

func TestRequestIDVisibleDownstream(t *testing.T) {
	t.Parallel()

	var downstream string
	terminal := func(req *request.Context, res response.Response) response.Response {
		downstream, _ = res.GetHeader("X-Trace")
		return res.Text("ok")
	}

	chain := router.NewChain([]router.Middleware{
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			HeaderName: "X-Trace",
			Generator:  func() string { return "fixed-id" },
		}),
	}, terminal)
	chain.Run(request.NewFixture(), response.New())

	assert.Equal(t, "fixed-id", downstream)
}

func TestRequestIDUseExisting(t *testing.T) {
	t.Parallel()

	req := request.NewFixture()
	req.SetHeader(middleware.DefaultRequestIDHeader, "incoming-id")

	chain := router.NewChain([]router.Middleware{
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			UseExisting: true,
		}),
	}, okTerminal)
	res := chain.Run(req, response.New())

	id, err := res.GetHeader(middleware.DefaultRequestIDHeader)
	require.NoError(t, err)
	assert.Equal(t, "incoming-id", id)
}

func TestRequestIDSkip(t *testing.T) {
	t.Parallel()

	chain := router.NewChain([]router.Middleware{
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			Skip: func(req *request.Context) bool { return true },
		}),
	}, okTerminal)
	res := chain.Run(request.NewFixture(), response.New())

	_, err := res.GetHeader(middleware.DefaultRequestIDHeader)
	assert.ErrorIs(t, err, response.ErrMissingHeader)
}
