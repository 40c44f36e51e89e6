package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"viwahaa-be/internal/entity"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest checks a DTO's validate tags and folds failures into a
// single ErrValidation message.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Errorf("%w: %s", entity.ErrValidation, err.Error())
	}
	fields := make([]string, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", entity.ErrValidation, strings.Join(fields, ", "))
}
