package account

import "errors"

var (
	ErrUserNotFound       = errors.New("account.user_not_found")
	ErrUsernameTaken      = errors.New("account.username_taken")
	ErrInvalidCredentials = errors.New("account.invalid_credentials")
	ErrStoreUnavailable   = errors.New("account.store_unavailable")
)
