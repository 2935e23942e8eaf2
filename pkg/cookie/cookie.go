package cookie

import (
	"net/http"
	"strings"
	"time"
)

// epoch is written as the expiry of a cleared cookie.
var epoch = time.Unix(0, 0).UTC()

// Encode renders a Set-Cookie header value:
//
//	<name>=<value>[; expires=<date>][; HttpOnly][; SameSite=<Policy>][; Secure]; path=<Path>
//
// A zero expiresAt produces a session-lifetime cookie without expires.
func Encode(name, value string, expiresAt time.Time, opts Options) string {
	var b strings.Builder
	b.Grow(len(name) + len(value) + 96)

	b.WriteString(name)
	b.WriteByte('=')
	b.WriteString(value)
	if !expiresAt.IsZero() {
		b.WriteString("; expires=")
		b.WriteString(expiresAt.UTC().Format(http.TimeFormat))
	}
	if opts.HTTPOnly {
		b.WriteString("; HttpOnly")
	}
	if policy := opts.SameSite.String(); policy != "" {
		b.WriteString("; SameSite=")
		b.WriteString(policy)
	}
	if opts.Secure {
		b.WriteString("; Secure")
	}
	path := opts.Path
	if path == "" {
		path = "/"
	}
	b.WriteString("; path=")
	b.WriteString(path)

	return b.String()
}

// Decode finds name in a Cookie request header and returns its value.
// Segments are split on ';' and trimmed; the key is the text before the
// first '=' and must equal name exactly. The value is everything after
// that '=', so values may themselves contain '='.
func Decode(header, name string) (string, bool) {
	if header == "" || name == "" {
		return "", false
	}
	for segment := range strings.SplitSeq(header, ";") {
		key, value, ok := strings.Cut(strings.TrimSpace(segment), "=")
		if ok && key == name {
			return value, true
		}
	}
	return "", false
}

// Expire renders a header that makes the browser drop the cookie.
func Expire(name string, opts Options) string {
	return Encode(name, "", epoch, opts)
}

// ValidName reports whether name is a non-empty RFC 6265 token.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c <= ' ' || c >= 0x7f || strings.IndexByte(`()<>@,;:\"/[]?={}`, c) >= 0 {
			return false
		}
	}
	return true
}
