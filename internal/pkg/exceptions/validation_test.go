package exceptions

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validatedInput struct {
	UserID   string `validate:"required,uuid"`
	Duration int    `validate:"required,gt=0"`
}

func TestFormatAllValidationErrors(t *testing.T) {
	err := validator.New().Struct(validatedInput{UserID: "not-a-uuid"})
	require.Error(t, err)

	message := FormatAllValidationErrors(err)
	assert.Contains(t, message, "userid")
	assert.Contains(t, message, "duration")
}

func TestFormatAllValidationErrorsNonValidatorError(t *testing.T) {
	message := FormatAllValidationErrors(errors.New("plain failure"))
	assert.NotEmpty(t, message)
}

func TestInputValidationDevMessageListsEveryField(t *testing.T) {
	err := validator.New().Struct(validatedInput{})
	require.Error(t, err)

	custom := ErrInputValidation(err)
	assert.Contains(t, custom.DevMessage, "userid")
	assert.Contains(t, custom.DevMessage, "duration")
}
