package response

import (
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
)

// ContentType is the implied content type of a built response, derived from
// which body setter was invoked last.
type ContentType int

const (
	// ContentTypeText is the implied type after Text, and the default.
	ContentTypeText ContentType = iota
	// ContentTypeJSON is the implied type after JSON.
	ContentTypeJSON
)

// headerValue returns the Content-Type header for the implied type.
func (t ContentType) headerValue() string {
	if t == ContentTypeJSON {
		return "application/json; charset=utf-8"
	}
	return "text/plain; charset=utf-8"
}

// Response accumulates the status, body, and headers of an outgoing response.
// The zero value is not useful; start from New.
type Response struct {
	status      int
	body        []byte
	contentType ContentType
	headers     map[string]string
	marshalErr  error
}

// New returns a fresh builder with status 200 and an empty plain-text body.
func New() Response {
	return Response{status: http.StatusOK}
}

// Status returns a copy with the status code replaced.
func (r Response) Status(code int) Response {
	r.status = code
	return r
}

// JSON returns a copy whose body is the JSON encoding of v and whose implied
// content type is JSON. A marshal failure is recorded on the builder and
// surfaces as a 500 at finalization.
func (r Response) JSON(v any) Response {
	body, err := json.Marshal(v)
	if err != nil {
		r.body = nil
		r.marshalErr = err
	} else {
		r.body = body
		r.marshalErr = nil
	}
	r.contentType = ContentTypeJSON
	return r
}

// Text returns a copy whose body is content and whose implied content type is
// plain text.
func (r Response) Text(content string) Response {
	r.body = []byte(content)
	r.contentType = ContentTypeText
	r.marshalErr = nil
	return r
}

// Header returns a copy with an explicit response header set. The header map
// is cloned so earlier builder values stay untouched.
func (r Response) Header(key, value string) Response {
	headers := maps.Clone(r.headers)
	if headers == nil {
		headers = make(map[string]string, 1)
	}
	headers[key] = value
	r.headers = headers
	return r
}

// GetHeader returns an explicitly set response header, or ErrMissingHeader.
func (r Response) GetHeader(key string) (string, error) {
	v, ok := r.headers[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingHeader, key)
	}
	return v, nil
}

// StatusCode returns the current status code.
func (r Response) StatusCode() int { return r.status }

// Body returns the current body bytes.
func (r Response) Body() []byte { return r.body }

// ContentType returns the implied content type.
func (r Response) ContentType() ContentType { return r.contentType }

// Write finalizes the builder onto the transport writer: implied and explicit
// headers, then status, then body. A recorded marshal failure is written as a
// 500 instead.
func (r Response) Write(w http.ResponseWriter) error {
	if r.marshalErr != nil {
		http.Error(w, r.marshalErr.Error(), http.StatusInternalServerError)
		return r.marshalErr
	}
	w.Header().Set("Content-Type", r.contentType.headerValue())
	for key, value := range r.headers {
		w.Header().Set(key, value)
	}
	w.WriteHeader(r.status)
	if len(r.body) > 0 {
		if _, err := w.Write(r.body); err != nil {
			return err
		}
	}
	return nil
}
