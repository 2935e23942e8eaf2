package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Code:    "validation.required",
			Message: "field is required",
		},
	}
}

// MinLen counts runes, not bytes.
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Code:    "validation.min_length",
			Message: fmt.Sprintf("must be at least %d characters long", min),
		},
	}
}

// MaxLen counts runes, not bytes.
func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Code:    "validation.max_length",
			Message: fmt.Sprintf("must be at most %d characters long", max),
		},
	}
}

// Matches validates value against a precompiled pattern.
// message is reported verbatim on failure.
func Matches(field, value string, re *regexp.Regexp, message string) Rule {
	return Rule{
		Check: func() bool {
			return re.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Code:    "validation.pattern",
			Message: message,
		},
	}
}
