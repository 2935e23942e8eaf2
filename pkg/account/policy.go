package account

import (
	"regexp"

	"github.com/dmitrymomot/authkit/pkg/validator"
)

const (
	MinPasswordLength = 10
	MaxUsernameLength = 64
	MaxPasswordLength = 256
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]+$`)
	passwordPattern = regexp.MustCompile(`^[a-zA-Z0-9_@#$*-]+$`)
)

// Messages shown to users when the policy rejects input.
const (
	MsgInvalidUsername = "Invalid Username."
	MsgInvalidPassword = "Invalid Password."
)

// ValidateCredentials checks username and password against the account
// policy: a username starts with a letter followed by at least one letter or
// digit; a password has at least 10 characters from [a-zA-Z0-9_@#$*-].
// Violations are returned as validator.ValidationErrors.
func ValidateCredentials(username, password string) error {
	return validator.Apply(
		validator.Matches("username", username, usernamePattern, MsgInvalidUsername),
		validator.MaxLen("username", username, MaxUsernameLength).WithMessage(MsgInvalidUsername),
		validator.MinLen("password", password, MinPasswordLength).WithMessage(MsgInvalidPassword),
		validator.MaxLen("password", password, MaxPasswordLength).WithMessage(MsgInvalidPassword),
		validator.Matches("password", password, passwordPattern, MsgInvalidPassword),
	)
}
