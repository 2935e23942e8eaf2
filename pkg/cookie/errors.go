package cookie

import "errors"

var (
	ErrInvalidName     = errors.New("cookie.invalid_name")
	ErrInvalidSameSite = errors.New("cookie.invalid_same_site")
)
