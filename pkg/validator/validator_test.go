package validator_test

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	pattern := regexp.MustCompile(`^[a-z]+$`)

	t.Run("all rules pass", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.Required("name", "bob"),
			validator.MinLen("name", "bob", 3),
			validator.MaxLen("name", "bob", 3),
			validator.Matches("name", "bob", pattern, "lowercase only"),
		)
		assert.NoError(t, err)
	})

	t.Run("collects failures in order", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.Required("name", "  "),
			validator.Matches("name", "  ", pattern, "lowercase only"),
			validator.MinLen("password", "short", 10),
		)
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))

		ve := validator.ExtractValidationErrors(fmt.Errorf("register: %w", err))
		require.Len(t, ve, 3)
		assert.Equal(t, "field is required", ve.First())
		assert.True(t, ve.Has("password"))
		assert.False(t, ve.Has("email"))
		assert.Equal(t, []string{"field is required", "lowercase only"}, ve.Get("name"))
		assert.Equal(t, "validation.min_length", ve[2].Code)
		assert.Equal(t,
			"validation failed: name: field is required; name: lowercase only; password: must be at least 10 characters long",
			err.Error(),
		)
	})

	t.Run("length counts runes", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply(validator.MaxLen("s", "ääää", 4)))
		assert.Error(t, validator.Apply(validator.MinLen("s", "ää", 3)))
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(fmt.Errorf("plain")))
	assert.False(t, validator.IsValidationError(nil))
	assert.Equal(t, "validation failed", validator.ValidationErrors{}.Error())
	assert.Empty(t, validator.ValidationErrors{}.First())
}

func TestRule_WithMessage(t *testing.T) {
	t.Parallel()

	base := validator.MinLen("password", "abc", 10)
	custom := base.WithMessage("Invalid Password.")

	err := validator.Apply(custom)
	ve := validator.ExtractValidationErrors(err)
	require.Len(t, ve, 1)
	assert.Equal(t, "Invalid Password.", ve.First())
	assert.Equal(t, "validation.min_length", ve[0].Code)
	assert.Equal(t, "must be at least 10 characters long", base.Error.Message)
}
