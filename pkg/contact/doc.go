// Package contact defines the contact-form submission shared by the relay
// endpoint and the client submission handler.
//
// It is the single place that knows the field names, which of them are
// required, the address pattern used to accept an email, the subject-code
// lookup and the user-facing outcome messages. Both sides validate with
// Submission.Validate and render subjects with SubjectText, so a browser
// rejection and a server rejection always agree.
package contact
