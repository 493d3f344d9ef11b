// Package clientip resolves the originating client address of a request
// that reached the relay through CDNs or serverless edge proxies.
//
// Headers are checked in order and the first valid IP wins:
//
//  1. CF-Connecting-IP        (Cloudflare)
//  2. X-Vercel-Forwarded-For  (Vercel edge)
//  3. X-Forwarded-For         (first valid entry)
//  4. X-Real-IP
//  5. RemoteAddr
//
// Middleware stores the address in the request context and LoggerExtractor
// adds it to every log record, which is the only use the relay makes of it:
// submissions are never stored, so the address exists for operators only.
package clientip
