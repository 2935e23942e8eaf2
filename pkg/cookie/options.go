package cookie

// Options are the attributes written after name=value.
type Options struct {
	Path     string
	HTTPOnly bool
	SameSite SameSite
	Secure   bool
}

type Option func(*Options)

func WithPath(path string) Option {
	return func(o *Options) {
		o.Path = path
	}
}

func WithHTTPOnly(httpOnly bool) Option {
	return func(o *Options) {
		o.HTTPOnly = httpOnly
	}
}

func WithSameSite(sameSite SameSite) Option {
	return func(o *Options) {
		o.SameSite = sameSite
	}
}

func WithSecure(secure bool) Option {
	return func(o *Options) {
		o.Secure = secure
	}
}

// DefaultOptions returns the options used when nothing is configured:
// path "/", HttpOnly, SameSite=Lax, not Secure.
func DefaultOptions() Options {
	return Options{
		Path:     "/",
		HTTPOnly: true,
		SameSite: SameSiteLax,
	}
}

// applyOptions returns a copy of base with opts applied; base is not modified.
func applyOptions(base Options, opts []Option) Options {
	result := base
	for _, opt := range opts {
		opt(&result)
	}
	if result.Path == "" {
		result.Path = "/"
	}
	return result
}
