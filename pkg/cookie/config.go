package cookie

// Config holds the session cookie settings.
type Config struct {
	Name     string   `env:"SESSION_COOKIE_NAME" envDefault:"sessionID"`
	Path     string   `env:"COOKIE_PATH" envDefault:"/"`
	HTTPOnly bool     `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	SameSite SameSite `env:"COOKIE_SAME_SITE" envDefault:"Lax"`
	Secure   bool     `env:"COOKIE_SECURE" envDefault:"false"`
}

// DefaultConfig returns default cookie configuration
func DefaultConfig() Config {
	return Config{
		Name:     "sessionID",
		Path:     "/",
		HTTPOnly: true,
		SameSite: SameSiteLax,
	}
}

// NewFromConfig creates a Codec from cfg. Every boolean and the policy are
// taken as configured, so a false HTTPOnly really turns the flag off.
func NewFromConfig(cfg Config, opts ...Option) (*Codec, error) {
	configOpts := make([]Option, 0, 4+len(opts))
	if cfg.Path != "" {
		configOpts = append(configOpts, WithPath(cfg.Path))
	}
	configOpts = append(configOpts,
		WithHTTPOnly(cfg.HTTPOnly),
		WithSameSite(cfg.SameSite),
		WithSecure(cfg.Secure),
	)
	return New(cfg.Name, append(configOpts, opts...)...)
}
