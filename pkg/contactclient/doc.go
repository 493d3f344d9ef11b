// Package contactclient is the submitting side of the contact form.
//
// Handler.Submit reads a Form, validates it with the same rules the relay
// uses, posts it with Client and reports the outcome through a Notifier.
// The form's submit control is disabled for the duration of the request and
// re-enabled on every outcome, including a panic in the transport.
//
//	notifier := contactclient.NewNotifier(contactclient.WithOnChange(render))
//	h := contactclient.NewHandler(contactclient.NewClient("https://voyager.example"), notifier)
//	if err := h.Submit(ctx, form); err != nil {
//	    // the notifier already shows the reason to the user
//	}
//
// A Handler allows one submission at a time; an overlapping Submit returns
// ErrSubmissionInFlight without touching the form.
package contactclient
