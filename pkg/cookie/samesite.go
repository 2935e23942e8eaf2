package cookie

import (
	"fmt"
	"strings"
)

// SameSite is the cookie same-site policy.
// SameSiteDefault leaves the attribute out so the browser default applies.
type SameSite int

const (
	SameSiteDefault SameSite = iota
	SameSiteLax
	SameSiteStrict
	SameSiteNone
)

func (s SameSite) String() string {
	switch s {
	case SameSiteLax:
		return "Lax"
	case SameSiteStrict:
		return "Strict"
	case SameSiteNone:
		return "None"
	default:
		return ""
	}
}

// UnmarshalText accepts the policy names case-insensitively.
// An empty value or "default" selects SameSiteDefault.
func (s *SameSite) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "default":
		*s = SameSiteDefault
	case "lax":
		*s = SameSiteLax
	case "strict":
		*s = SameSiteStrict
	case "none":
		*s = SameSiteNone
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSameSite, text)
	}
	return nil
}
