// Package response provides a value-semantics builder for outgoing responses.
//
// Every mutating operation returns a new builder value; the value threaded
// through a middleware chain is always the most recently produced one:
//
//	res = res.Status(http.StatusCreated).JSON(map[string]string{"id": id})
//
// The content type is implied by whichever of JSON or Text was invoked last.
// A fresh builder defaults to status 200 with an empty plain-text body.
// Finalization onto the transport writer happens exactly once at chain exit.
package response
