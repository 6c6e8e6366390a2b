// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run binds the listener first, so address errors are returned
// immediately wrapped with ErrStart, then serves until the context is
// cancelled or the process receives SIGINT or SIGTERM:
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// HealthCheckHandler serves liveness and readiness probes.
package httpserver
