// Package relay implements the contact-form endpoint, POST /api/send-email.
//
// Each request ends in exactly one of these states:
//
//	OPTIONS                          200 {"success":true,"message":"Preflight OK"}
//	any method but POST and OPTIONS  405
//	POST, body or fields invalid     400 (with per-field "errors" for field problems)
//	POST, valid, provider accepted   200
//	POST, valid, provider failed     500 ("error" detail only in development)
//
// Every response, including errors, carries the CORS headers set by CORS.
//
// Service renders the notification email and hands it to an email.Sender;
// Endpoint adapts it to HTTP. Nothing is persisted and sends are not retried.
package relay
