package clientip

import (
	"net"
	"net/http"
	"strings"
)

var singleValueHeaders = []string{"CF-Connecting-IP", "X-Vercel-Forwarded-For"}

// GetIP returns the client's IP address from the request, or "" when no
// header or peer address holds a valid IP.
func GetIP(r *http.Request) string {
	for _, h := range singleValueHeaders {
		if ip := parseIP(r.Header.Get(h)); ip != "" {
			return ip
		}
	}

	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		for candidate := range strings.SplitSeq(forwarded, ",") {
			if ip := parseIP(candidate); ip != "" {
				return ip
			}
		}
	}

	if ip := parseIP(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// parseIP normalizes s or returns "" when it is not an IP address.
func parseIP(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	ip := net.ParseIP(s)
	if ip == nil {
		return ""
	}
	return ip.String()
}
