package cookie

import (
	"net/http"
	"strings"
	"time"
)

// Codec binds a cookie name to a set of attributes.
type Codec struct {
	name string
	opts Options
}

// New returns a Codec for name. Options are applied on top of DefaultOptions.
func New(name string, opts ...Option) (*Codec, error) {
	if !ValidName(name) {
		return nil, ErrInvalidName
	}
	return &Codec{
		name: name,
		opts: applyOptions(DefaultOptions(), opts),
	}, nil
}

func (c *Codec) Name() string { return c.name }

func (c *Codec) Options() Options { return c.opts }

func (c *Codec) Encode(value string, expiresAt time.Time) string {
	return Encode(c.name, value, expiresAt, c.opts)
}

func (c *Codec) Decode(header string) (string, bool) {
	return Decode(header, c.name)
}

func (c *Codec) Expire() string {
	return Expire(c.name, c.opts)
}

// FromRequest reads the cookie from every Cookie header of r.
func (c *Codec) FromRequest(r *http.Request) (string, bool) {
	return c.Decode(strings.Join(r.Header.Values("Cookie"), "; "))
}

// Set appends the encoded cookie to the response headers.
func (c *Codec) Set(w http.ResponseWriter, value string, expiresAt time.Time) {
	w.Header().Add("Set-Cookie", c.Encode(value, expiresAt))
}

// Clear appends an expiring cookie to the response headers.
func (c *Codec) Clear(w http.ResponseWriter) {
	w.Header().Add("Set-Cookie", c.Expire())
}
