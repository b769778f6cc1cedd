package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validator wraps struct-tag validation for the CLI request DTOs.
type Validator struct {
	validate *validator.Validate
}

// ValidationError represents a single failed field rule.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
	Rule    string      `json:"rule,omitempty"`
}

type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	if len(ve) == 1 {
		return fmt.Sprintf("validation failed: %s %s", ve[0].Field, ve[0].Message)
	}
	return fmt.Sprintf("validation failed: %d field errors", len(ve))
}

func New() *Validator {
	v := &Validator{validate: validator.New()}
	v.registerRules()
	return v
}

// Validate validates a struct and returns nil when every rule passes.
func (v *Validator) Validate(s interface{}) ValidationErrors {
	err := v.validate.Struct(s)
	if err != nil {
		return toValidationErrors(err)
	}
	return nil
}

func (v *Validator) registerRules() {
	// Roles accepted on the register command.
	_ = v.validate.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "admin", "teacher", "student":
			return true
		}
		return false
	})
}

func toValidationErrors(err error) ValidationErrors {
	var errs ValidationErrors
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return ValidationErrors{{Field: "", Message: err.Error()}}
	}
	for _, fe := range fieldErrs {
		errs = append(errs, ValidationError{
			Field:   fe.Field(),
			Message: messageFor(fe),
			Value:   fe.Value(),
			Rule:    fe.Tag(),
		})
	}
	return errs
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "user_role":
		return "must be one of admin, teacher, student"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed rule %q", fe.Tag())
	}
}
