package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/voyager-inc/contactrelay/pkg/contact"
	"github.com/voyager-inc/contactrelay/pkg/contactclient"
	"github.com/voyager-inc/contactrelay/pkg/logger"
)

type cliConfig struct {
	RelayURL string        `env:"CONTACT_RELAY_URL" envDefault:"http://localhost:8080"`
	Timeout  time.Duration `env:"CONTACT_TIMEOUT" envDefault:"30s"`
}

const submitLabel = "Send Message"

// newRootCommand builds the contact command. Flags default to cfg.
func newRootCommand(cfg cliConfig) *cobra.Command {
	var (
		values  contact.Submission
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send a contact-form message through the relay",
		Long: `Submit the website contact form from a terminal.

Fields are validated locally with the same rules the relay applies; nothing
is sent when a required field is missing or the email is malformed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Failures are already reported through the notifier.
			cmd.SilenceErrors = true
			cmd.SilenceUsage = true

			values.Message = strings.ReplaceAll(values.Message, `\n`, "\n")

			out := cmd.ErrOrStderr()
			notifier := contactclient.NewNotifier(contactclient.WithOnChange(func(n *contactclient.Notification) {
				if n != nil {
					fmt.Fprintf(out, "%s %s\n", n.Kind.Icon(), n.Message)
				}
			}))

			var opts []contactclient.HandlerOption
			if verbose {
				opts = append(opts, contactclient.WithLogger(
					logger.New(logger.WithTextFormatter(), logger.WithOutput(out)),
				))
			}
			h := contactclient.NewHandler(contactclient.NewClient(cfg.RelayURL), notifier, opts...)

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
			defer cancel()
			return h.Submit(ctx, contactclient.NewMemoryForm(values, submitLabel))
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.RelayURL, "url", cfg.RelayURL, "relay base URL")
	flags.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "request timeout")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log request failures")
	flags.StringVar(&values.CompanyName, "company", "", "company name (required)")
	flags.StringVar(&values.YourName, "name", "", "your name (required)")
	flags.StringVar(&values.Email, "email", "", "your email (required)")
	flags.StringVar(&values.Phone, "phone", "", "phone number")
	flags.StringVar(&values.Subject, "subject", contact.SubjectGeneral,
		"subject: "+strings.Join(contact.SubjectCodes(), ", "))
	flags.StringVar(&values.Message, "message", "", "message (required)")

	return cmd
}
