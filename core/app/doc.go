// Package app is the composition root tying the route registry, the
// middleware chain, and the transport server together.
//
// An App owns the registrations made during setup and bridges the transport
// to the core: for every inbound request it builds the request snapshot,
// resolves the middleware chain by path prefix, runs it to a final response
// builder, and finalizes that builder onto the transport writer.
//
//	a := app.New()
//	a.Use("", middleware.Logging())
//	a.Get("/hello", func(req *request.Context, res response.Response) response.Response {
//		return res.Text("hello")
//	})
//	if err := a.Listen(ctx, ":8080"); err != nil {
//		log.Fatal(err)
//	}
//
// Registration is setup-time only; once Listen is serving, the registries are
// treated as immutable. Per-request failures never stop the server. The only
// fatal condition is failing to bind the listen address.
package app
