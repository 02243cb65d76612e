package request

import (
	"encoding/json"
	"fmt"
	"strings"
)

// BodyType is the closed set of body classifications. The classification is
// derived from the content-type header at construction time and determines
// which typed accessor succeeds.
type BodyType int

const (
	// TypeText is the default classification for bodies with no recognized
	// content type.
	TypeText BodyType = iota
	// TypeJSON is the classification for application/json bodies.
	TypeJSON
	// TypeForm is the classification for application/x-www-form-urlencoded
	// bodies.
	TypeForm
)

// String returns the classification name.
func (t BodyType) String() string {
	switch t {
	case TypeJSON:
		return "json"
	case TypeForm:
		return "form"
	default:
		return "text"
	}
}

// bodyContent is the tagged body union. The tag always matches the request's
// declared content-type classification; both are set together at construction
// and never diverge.
type bodyContent struct {
	typ BodyType
	raw []byte
}

// Context is a read-only snapshot of one inbound request. Production code
// builds it exactly once via FromHTTP; test fixtures may use NewFixture and
// the Set* mutators instead.
type Context struct {
	params    map[string]string
	queries   map[string]string
	headers   map[string]string
	cookies   map[string]string
	body      bodyContent
	method    string
	path      string
	originURL string
	clientIP  string
}

// Method returns the request's HTTP method.
func (c *Context) Method() string { return c.method }

// Path returns the request's path.
func (c *Context) Path() string { return c.path }

// OriginURL returns the path plus the raw query string, exactly as received.
func (c *Context) OriginURL() string { return c.originURL }

// ClientIP returns the resolved client address: the first X-Forwarded-For
// entry if the header was present, the transport peer address otherwise, or
// "unknown" when neither was available.
func (c *Context) ClientIP() string { return c.clientIP }

// Param returns the route parameter capture for name.
func (c *Context) Param(name string) (string, bool) {
	v, ok := c.params[name]
	return v, ok
}

// Query returns the query parameter for name. Values are not percent-decoded;
// the last occurrence wins on duplicate keys.
func (c *Context) Query(name string) (string, bool) {
	v, ok := c.queries[name]
	return v, ok
}

// Header returns the header value for name. The lookup is exact: names are
// matched byte-for-byte against the keys as handed over by the transport.
func (c *Context) Header(name string) (string, bool) {
	v, ok := c.headers[name]
	return v, ok
}

// Cookie returns the cookie value for name. Duplicate cookies resolve to the
// last value seen.
func (c *Context) Cookie(name string) (string, bool) {
	v, ok := c.cookies[name]
	return v, ok
}

// Is reports whether the body was classified as t.
func (c *Context) Is(t BodyType) bool { return c.body.typ == t }

// Text returns the body as a string. It fails with ErrWrongBodyType unless
// the body was classified as plain text.
func (c *Context) Text() (string, error) {
	if c.body.typ != TypeText {
		return "", ErrWrongBodyType
	}
	return string(c.body.raw), nil
}

// FormData splits the raw form body into key/value pairs. Pairs are separated
// by '&' and split on the first '='; segments without '=' are dropped. It
// fails with ErrWrongBodyType unless the body was classified as form data.
func (c *Context) FormData() (map[string]string, error) {
	if c.body.typ != TypeForm {
		return nil, ErrWrongBodyType
	}
	return splitPairs(string(c.body.raw)), nil
}

// JSON deserializes a JSON-classified body into T. It fails with
// ErrWrongBodyType for other classifications, and with ErrDeserializeFailed
// when the body is valid JSON but does not fit the requested shape.
func JSON[T any](c *Context) (T, error) {
	var v T
	if c.body.typ != TypeJSON {
		return v, ErrWrongBodyType
	}
	if err := json.Unmarshal(c.body.raw, &v); err != nil {
		return v, fmt.Errorf("%w: %v", ErrDeserializeFailed, err)
	}
	return v, nil
}

// splitPairs parses "key=value&key=value" strings. No percent-decoding is
// performed; later duplicates overwrite earlier ones.
func splitPairs(s string) map[string]string {
	out := make(map[string]string)
	if s == "" {
		return out
	}
	for _, pair := range strings.Split(s, "&") {
		if key, value, ok := strings.Cut(pair, "="); ok {
			out[key] = value
		}
	}
	return out
}
