package utils

import (
	"io"
	"meetingassist-service/internal/pkg/exceptions"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

var validate = validator.New()

// BindAndValidate decodes the request body into dst and runs struct
// validation. dst must be a pointer.
func BindAndValidate(r *http.Request, dst interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	defer r.Body.Close()

	if err := json.Unmarshal(body, dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}

	if err := validate.Struct(dst); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

// ValidateStruct runs struct validation only, for inputs assembled from query
// parameters rather than a JSON body.
func ValidateStruct(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
