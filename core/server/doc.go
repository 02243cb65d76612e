// Package server wraps http.Server with graceful shutdown, functional
// options, and environment-driven configuration. It is the transport
// collaborator: socket binding, connection lifecycle, and HTTP wire parsing
// live here, behind an http.Handler boundary.
//
//	srv := server.New(":8080", server.WithLogger(log))
//	if err := srv.Start(ctx, handler); err != nil {
//		log.Fatal(err)
//	}
//
// Or from environment configuration:
//
//	var cfg server.Config
//	config.MustLoad(&cfg)
//	srv, err := server.NewFromConfig(cfg)
package server
