// Command relay serves the contact-form endpoint, POST /api/send-email,
// optionally alongside the static website build.
//
// Configuration comes from the environment (a .env file is loaded if present):
//
//	COMPANY_EMAIL           recipient of contact notifications (required)
//	EMAIL_PROVIDER          resend (default), postmark or dev
//	RESEND_API_KEY          required for resend
//	POSTMARK_SERVER_TOKEN   required for postmark
//	POSTMARK_ACCOUNT_TOKEN  required for postmark
//	EMAIL_DEV_DIR           output directory for the dev provider
//	EMAIL_FROM              sender identity
//	EMAIL_TIMEZONE          zone of the timestamp in notifications
//	NODE_ENV                development echoes provider errors to clients
//	SITE_DIR                static files served at /
//	HTTP_ADDR               listen address, default :8080
package main

import (
	"context"
	"log/slog"
	"os"
	_ "time/tzdata"

	"github.com/voyager-inc/contactrelay/pkg/clientip"
	"github.com/voyager-inc/contactrelay/pkg/config"
	"github.com/voyager-inc/contactrelay/pkg/email"
	"github.com/voyager-inc/contactrelay/pkg/environment"
	"github.com/voyager-inc/contactrelay/pkg/httpserver"
	"github.com/voyager-inc/contactrelay/pkg/logger"
	"github.com/voyager-inc/contactrelay/pkg/relay"
	"github.com/voyager-inc/contactrelay/pkg/requestid"
)

type appConfig struct {
	Environment string `env:"NODE_ENV" envDefault:"production"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"contact-relay"`
	SiteDir     string `env:"SITE_DIR"`

	HTTP  httpserver.Config
	Email email.Config
	Relay relay.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	env := environment.Parse(cfg.Environment)
	log := logger.New(
		logger.WithEnvironment(env, cfg.ServiceName),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
		),
	)
	logger.SetAsDefault(log)

	if err := run(context.Background(), cfg, env, log); err != nil {
		log.Error("relay stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, env environment.Environment, log *slog.Logger) error {
	sender, err := email.NewSender(cfg.Email)
	if err != nil {
		return err
	}

	svc, err := relay.NewService(cfg.Relay, sender,
		relay.WithLogger(log),
		relay.WithProviderName(cfg.Email.Provider),
	)
	if err != nil {
		return err
	}

	log.Info("relay configured",
		logger.Provider(cfg.Email.Provider),
		slog.String("timezone", cfg.Relay.Timezone),
		slog.Bool("static_site", cfg.SiteDir != ""),
	)

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, relay.Router(relay.RouterOptions{
		Relayer:     svc,
		Logger:      log,
		Environment: env,
		Ready:       []httpserver.Check{{Name: "relay", Fn: svc.Ready}},
		SiteDir:     cfg.SiteDir,
	}))
}
