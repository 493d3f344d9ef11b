// Package environment carries the deployment environment (development,
// staging, production) through context.Context.
//
// The relay reads the environment from NODE_ENV at startup, attaches it to
// every request with Middleware and consults IsDevelopment before echoing
// provider error details back to HTTP clients.
//
//	env := environment.Parse(cfg.Env)
//	r.Use(environment.Middleware(env))
//
//	if environment.IsDevelopment(r.Context()) {
//	    body["error"] = err.Error()
//	}
//
// pkg/logger.WithEnvironment tags every log record with the same value.
package environment
