package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest checks struct `validate` tags and reports the failures
// as a single 400 ApiError.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return BadRequest(err.Error())
		}

		fields := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			fields = append(fields, fmt.Sprintf("%s is %s", strings.ToLower(fieldErr.Field()), fieldErr.Tag()))
		}
		return BadRequest(strings.Join(fields, ", "))
	}
	return nil
}
