package request

import (
	"encoding/json"
	"fmt"
)

// NewFixture returns an empty, mutable Context for test fixtures that bypass
// transport construction. The body starts as empty plain text. Production
// code must use FromHTTP instead.
func NewFixture() *Context {
	return &Context{
		params:  make(map[string]string),
		queries: make(map[string]string),
		headers: make(map[string]string),
		cookies: make(map[string]string),
		body:    bodyContent{typ: TypeText},
	}
}

// SetMethod overrides the request method.
func (c *Context) SetMethod(method string) { c.method = method }

// SetPath overrides the request path.
func (c *Context) SetPath(path string) { c.path = path }

// SetQuery stores a query parameter.
func (c *Context) SetQuery(key, value string) { c.queries[key] = value }

// SetHeader stores a header exactly as given, no case folding.
func (c *Context) SetHeader(key, value string) { c.headers[key] = value }

// SetCookie stores a cookie, overwriting any previous value.
func (c *Context) SetCookie(key, value string) { c.cookies[key] = value }

// SetParam stores a route parameter capture.
func (c *Context) SetParam(key, value string) { c.params[key] = value }

// SetJSON classifies the body as JSON and stores the encoding of v. It panics
// when v cannot be marshaled; fixtures are expected to pass encodable values.
func (c *Context) SetJSON(v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("request: fixture SetJSON: %v", err))
	}
	c.body = bodyContent{typ: TypeJSON, raw: raw}
}

// SetText classifies the body as plain text and stores it.
func (c *Context) SetText(text string) {
	c.body = bodyContent{typ: TypeText, raw: []byte(text)}
}

// SetForm classifies the body as form data, appending to any form pairs set
// earlier.
func (c *Context) SetForm(key, value string) {
	pair := key + "=" + value
	if c.body.typ == TypeForm && len(c.body.raw) > 0 {
		c.body.raw = append(c.body.raw, '&')
		c.body.raw = append(c.body.raw, pair...)
		return
	}
	c.body = bodyContent{typ: TypeForm, raw: []byte(pair)}
}
