package relay

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/voyager-inc/contactrelay/pkg/clientip"
	"github.com/voyager-inc/contactrelay/pkg/environment"
	"github.com/voyager-inc/contactrelay/pkg/httpserver"
	"github.com/voyager-inc/contactrelay/pkg/requestid"
)

// RouterOptions configures the service router.
type RouterOptions struct {
	Relayer     Relayer
	Logger      *slog.Logger
	Environment environment.Environment
	// Ready checks back /readyz; /healthz is always plain liveness.
	Ready []httpserver.Check
	// SiteDir, when set, is served as static files at /.
	SiteDir string
}

// Router creates the service router.
//
// Example:
//
//	svc := relay.MustNewService(cfg.Relay, sender, relay.WithLogger(log))
//	srv.Run(ctx, relay.Router(relay.RouterOptions{
//	    Relayer:     svc,
//	    Logger:      log,
//	    Environment: env,
//	    Ready:       []httpserver.Check{{Name: "relay", Fn: svc.Ready}},
//	}))
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()
	r.Use(
		middleware.CleanPath,
		requestid.Middleware,
		clientip.Middleware,
		environment.Middleware(opts.Environment),
		middleware.Recoverer,
	)

	r.Get("/healthz", httpserver.HealthCheckHandler(opts.Logger))
	r.Get("/readyz", httpserver.HealthCheckHandler(opts.Logger, opts.Ready...))

	endpoint := NewEndpoint(opts.Relayer, opts.Logger).Handler()
	r.Handle(Path, endpoint)
	r.Handle(Path+"/", endpoint)

	if opts.SiteDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(opts.SiteDir)))
	}

	return r
}
