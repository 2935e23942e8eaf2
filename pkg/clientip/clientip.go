package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Resolver extracts the originating client address from a request.
// Proxy headers are consulted only when listed as trusted, in order;
// otherwise the TCP peer address is used.
type Resolver struct {
	trusted []string
}

// New returns a Resolver that trusts the given headers, most trusted first.
// X-Forwarded-For is read left to right and its first valid entry wins.
// With no headers only RemoteAddr is used, which is the only safe choice
// when the server is reachable without a proxy in front of it.
func New(trustedHeaders ...string) *Resolver {
	headers := make([]string, 0, len(trustedHeaders))
	for _, h := range trustedHeaders {
		if h = strings.TrimSpace(h); h != "" {
			headers = append(headers, http.CanonicalHeaderKey(h))
		}
	}
	return &Resolver{trusted: headers}
}

// NewFromConfig creates a Resolver from cfg.
func NewFromConfig(cfg Config) *Resolver {
	return New(cfg.TrustedHeaders...)
}

// IP returns the normalized client IP, or "" when none can be parsed.
func (res *Resolver) IP(r *http.Request) string {
	for _, h := range res.trusted {
		value := r.Header.Get(h)
		if value == "" {
			continue
		}
		if h == "X-Forwarded-For" {
			for ip := range strings.SplitSeq(value, ",") {
				if parsed := parseIP(ip); parsed != "" {
					return parsed
				}
			}
			continue
		}
		if parsed := parseIP(value); parsed != "" {
			return parsed
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// parseIP returns the canonical form of s, or "" if s is not an IP.
func parseIP(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
