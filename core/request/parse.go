package request

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"unicode/utf8"
)

// MaxBodySize is the hard cap on accumulated body bytes per request.
// Exceeding it during the body read fails construction with ErrBodyTooLarge.
const MaxBodySize = 262144

// readChunkSize is the buffer size used by the body accumulation loop.
const readChunkSize = 32 * 1024

// FromHTTP builds a Context from transport primitives. params carries
// already-resolved route captures from whatever routing the transport
// performed; nil is treated as no captures.
//
// The body is read to completion here, capped at MaxBodySize, and validated
// according to the content-type classification. Any failure means the request
// never reaches a handler.
func FromHTTP(r *http.Request, params map[string]string) (*Context, error) {
	// Use RawPath if available to preserve URL encoding; the path is kept
	// verbatim, never percent-decoded.
	path := r.URL.Path
	if r.URL.RawPath != "" {
		path = r.URL.RawPath
	}

	queries := splitPairs(r.URL.RawQuery)

	headers := make(map[string]string, len(r.Header))
	for name, values := range r.Header {
		for _, v := range values {
			headers[name] = v
		}
	}

	cookies := make(map[string]string)
	for _, c := range r.Cookies() {
		cookies[c.Name] = c.Value
	}

	if params == nil {
		params = make(map[string]string)
	}

	originURL := path
	if r.URL.RawQuery != "" {
		originURL += "?" + r.URL.RawQuery
	}

	body, err := readBody(r.Body)
	if err != nil {
		return nil, err
	}

	typ := classify(r.Header.Get("Content-Type"))
	if err := validateBody(typ, body); err != nil {
		return nil, err
	}

	return &Context{
		params:    params,
		queries:   queries,
		headers:   headers,
		cookies:   cookies,
		body:      bodyContent{typ: typ, raw: body},
		method:    r.Method,
		path:      path,
		originURL: originURL,
		clientIP:  resolveClientIP(r),
	}, nil
}

// readBody accumulates the body stream, failing the moment the running total
// would exceed MaxBodySize.
func readBody(rc io.Reader) ([]byte, error) {
	if rc == nil {
		return nil, nil
	}
	var body []byte
	buf := make([]byte, readChunkSize)
	for {
		n, err := rc.Read(buf)
		if n > 0 {
			if len(body)+n > MaxBodySize {
				return nil, ErrBodyTooLarge
			}
			body = append(body, buf[:n]...)
		}
		if err == io.EOF {
			return body, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read body: %w", err)
		}
	}
}

// classify maps the content-type header value to a body classification via a
// case-sensitive substring match, defaulting to plain text.
func classify(contentType string) BodyType {
	switch {
	case strings.Contains(contentType, "application/json"):
		return TypeJSON
	case strings.Contains(contentType, "application/x-www-form-urlencoded"):
		return TypeForm
	default:
		return TypeText
	}
}

// validateBody enforces the per-classification parse rules: every body must
// be valid UTF-8, and JSON bodies must additionally parse as JSON.
func validateBody(typ BodyType, body []byte) error {
	if !utf8.Valid(body) {
		return ErrInvalidUTF8
	}
	if typ == TypeJSON {
		var v any
		if err := json.Unmarshal(body, &v); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
	}
	return nil
}

// resolveClientIP prefers the first comma-separated X-Forwarded-For entry,
// then the transport peer address, then the literal "unknown".
func resolveClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if r.RemoteAddr == "" {
		return "unknown"
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
