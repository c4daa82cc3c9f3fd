package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Error codes
const (
	// Authentication errors
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"

	// Authorization errors
	ErrCodeForbidden = "FORBIDDEN"

	// Validation errors
	ErrCodeInvalidInput = "INVALID_INPUT"

	// Resource errors
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"

	// Throttling errors
	ErrCodeTooManyRequests = "TOO_MANY_REQUESTS"

	// Service errors
	ErrCodeDatabaseError = "DATABASE_ERROR"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// APIError represents a standardized API error response. Status and the
// wrapped cause are never serialized.
type APIError struct {
	Status  int         `json:"-"`
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	Err     error       `json:"-"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the cause for errors.Is / errors.As.
func (e *APIError) Unwrap() error {
	return e.Err
}

// WithCause returns a copy of e carrying err as its cause.
func (e *APIError) WithCause(err error) *APIError {
	clone := *e
	clone.Err = err
	return &clone
}

// NewAPIError creates a new APIError
func NewAPIError(status int, code, message string) *APIError {
	return &APIError{
		Status:  status,
		Code:    code,
		Message: message,
	}
}

// NewAPIErrorWithDetails creates a new APIError with details
func NewAPIErrorWithDetails(status int, code, message string, details interface{}) *APIError {
	return &APIError{
		Status:  status,
		Code:    code,
		Message: message,
		Details: details,
	}
}

// FieldError describes one rejected request field.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag,omitempty"`
	Message string `json:"message"`
}

// Helper constructors for common error responses

// BadRequest builds a 400 error
func BadRequest(message string) *APIError {
	if message == "" {
		message = "Invalid request"
	}
	return NewAPIError(http.StatusBadRequest, ErrCodeInvalidInput, message)
}

// Unauthorized builds a 401 error
func Unauthorized(message string) *APIError {
	if message == "" {
		message = "Authentication required"
	}
	return NewAPIError(http.StatusUnauthorized, ErrCodeUnauthorized, message)
}

// Forbidden builds a 403 error
func Forbidden(message string) *APIError {
	if message == "" {
		message = "Access denied"
	}
	return NewAPIError(http.StatusForbidden, ErrCodeForbidden, message)
}

// NotFound builds a 404 error
func NotFound(message string) *APIError {
	if message == "" {
		message = "Resource not found"
	}
	return NewAPIError(http.StatusNotFound, ErrCodeNotFound, message)
}

// TooManyRequests builds a 429 error
func TooManyRequests(message string) *APIError {
	if message == "" {
		message = "Too many requests"
	}
	return NewAPIError(http.StatusTooManyRequests, ErrCodeTooManyRequests, message)
}

// Internal builds a 500 error
func Internal(message string) *APIError {
	if message == "" {
		message = "Something went wrong"
	}
	return NewAPIError(http.StatusInternalServerError, ErrCodeInternalError, message)
}

// Database builds the 500 error returned for storage failures. Driver
// details stay in the cause.
func Database(cause error) *APIError {
	return NewAPIError(http.StatusInternalServerError, ErrCodeDatabaseError, "Database error").WithCause(cause)
}

// Validation converts a request binding failure into a 400 error carrying
// one FieldError per rejected field.
func Validation(err error) *APIError {
	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) {
		details := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, FieldError{
				Field:   lowerFirst(fe.Field()),
				Tag:     fe.Tag(),
				Message: fieldMessage(fe),
			})
		}
		return NewAPIErrorWithDetails(http.StatusBadRequest, ErrCodeInvalidInput, "Validation error", details).WithCause(err)
	}

	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) {
		details := []FieldError{{
			Field:   typeErr.Field,
			Tag:     "type",
			Message: fmt.Sprintf("must be of type %s", typeErr.Type),
		}}
		return NewAPIErrorWithDetails(http.StatusBadRequest, ErrCodeInvalidInput, "Validation error", details).WithCause(err)
	}

	return BadRequest("Invalid request body").WithCause(err)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// RespondWithError sends an error response
func RespondWithError(c *gin.Context, err *APIError) {
	c.AbortWithStatusJSON(err.Status, err)
}
