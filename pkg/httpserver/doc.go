// Package httpserver runs an http.Handler with configured timeouts, graceful
// shutdown and slog logging.
//
// Run blocks until the context is cancelled, SIGINT/SIGTERM arrives, or
// Shutdown is called from elsewhere, then drains in-flight requests for at
// most the shutdown timeout.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// HealthCheckHandler serves liveness (no checks) and readiness (named
// checks) probes.
//
// Listen failures wrap ErrStart; shutdown failures wrap ErrShutdown.
package httpserver
