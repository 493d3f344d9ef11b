// Package requestid tags every HTTP request with an identifier.
//
// Middleware reuses a well-formed inbound X-Request-ID header or generates a
// UUIDv4, echoes it in the response header and stores it in the request
// context. FromContext reads it back and LoggerExtractor feeds it to
// pkg/logger, so relay logs and the JSON error envelope can be correlated
// with what the browser saw.
package requestid
