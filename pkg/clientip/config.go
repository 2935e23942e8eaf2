package clientip

// Config lists the proxy headers trusted to carry the client address,
// e.g. TRUSTED_IP_HEADERS=CF-Connecting-IP,X-Forwarded-For.
type Config struct {
	TrustedHeaders []string `env:"TRUSTED_IP_HEADERS" envSeparator:","`
}
