// Package email sends transactional email through an interchangeable
// provider.
//
// Sender is the only interface callers depend on. Three implementations are
// provided:
//   - ResendSender posts to the Resend API (github.com/resend/resend-go/v2);
//   - PostmarkSender posts to the Postmark API (github.com/mrz1836/postmark);
//   - DevSender writes each message to disk as an .html body plus a .json
//     envelope, for local runs without provider credentials.
//
// NewSender picks one from Config.Provider (EMAIL_PROVIDER). Credentials are
// read only from the environment; a provider whose credential is missing
// fails with ErrInvalidConfig at startup instead of falling back to a
// built-in value.
//
//	sender, err := email.NewSender(cfg)
//	if err != nil {
//	    return err
//	}
//	err = sender.Send(ctx, email.Message{
//	    To:      []string{"team@example.com"},
//	    ReplyTo: "visitor@example.org",
//	    Subject: "Contact Form: Technical Support - Acme",
//	    HTML:    body,
//	})
//
// # Error Handling
//
// Message validation failures wrap ErrInvalidParams; provider failures are
// joined with ErrFailedToSendEmail so callers can test with errors.Is while
// the provider's own error stays available for logs.
//
// HTML bodies are produced by the templates subpackage.
package email
