// Package validator builds declarative validation from small Rule values.
//
// A Rule pairs a Check func with the ValidationError reported when it fails.
// Apply evaluates all rules and aggregates failures into ValidationErrors,
// which implements error so callers can return it directly and recover it
// with ExtractValidationErrors:
//
//	err := validator.Apply(
//		validator.Required("username", username),
//		validator.Matches("username", username, usernamePattern, "Username must start with a letter."),
//		validator.MinLen("password", password, 10),
//	)
//	if ve := validator.ExtractValidationErrors(err); ve != nil {
//		msg := ve.First()
//	}
//
// Rules are stateless and safe for concurrent use.
package validator
