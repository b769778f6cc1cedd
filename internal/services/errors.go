package services

import (
	"errors"
	"fmt"

	"github.com/SAP-F-2025/doccli/internal/models"
)

// Sentinel errors recovered at the command boundary and reported as a
// user-facing message plus a non-zero exit code.
var (
	ErrNotLoggedIn        = errors.New("not logged in")
	ErrNotApplicable      = errors.New("command not available in the current state")
	ErrAdminOnlyRole      = errors.New("only an admin can register this role")
	ErrAdminAlreadyExists = errors.New("an admin already exists")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid password")
	ErrUserNotFound       = errors.New("user not found")
	ErrDocumentNotFound   = errors.New("document not found")
	ErrQuizNotFound       = errors.New("quiz not found")
	ErrFileNotFound       = errors.New("file not found")
	ErrUnsupportedFile    = errors.New("unsupported file type, only .pdf and .txt are allowed")
	ErrNotOwner           = errors.New("permission denied: not the owner of this document")
)

// InsufficientRoleError is returned when the acting user's role is not in an
// operation's allowed set. Actual is nil when no one is logged in.
type InsufficientRoleError struct {
	Required []models.UserRole
	Actual   *models.UserRole
}

func (e *InsufficientRoleError) Error() string {
	if e.Actual == nil {
		return fmt.Sprintf("permission denied: requires one of %v", e.Required)
	}
	return fmt.Sprintf("permission denied: requires one of %v, current role is %s", e.Required, *e.Actual)
}

// ValidationError carries a single invalid input field.
type ValidationError struct {
	Field   string
	Message string
	Value   interface{}
}

func NewValidationError(field, message string, value interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: message, Value: value}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Message)
}

// ExternalServiceError wraps a failure of the text-generation service.
type ExternalServiceError struct {
	Service string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Service, e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}
