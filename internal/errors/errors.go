// Package errors provides error handling utilities.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeCatalogUnavailable indicates the price catalog could not be read
	TypeCatalogUnavailable Type = "CATALOG_UNAVAILABLE"

	// TypeCatalogMalformed indicates the price catalog did not decode into the expected shape
	TypeCatalogMalformed Type = "CATALOG_MALFORMED"

	// TypeRoleNotFound indicates an hourly rate lookup miss
	TypeRoleNotFound Type = "ROLE_NOT_FOUND"

	// TypePackageNotFound indicates a hosting package lookup miss
	TypePackageNotFound Type = "PACKAGE_NOT_FOUND"

	// TypeLevelNotFound indicates a support level lookup miss
	TypeLevelNotFound Type = "LEVEL_NOT_FOUND"

	// TypeServiceNotFound indicates a packaged service lookup miss
	TypeServiceNotFound Type = "SERVICE_NOT_FOUND"

	// TypeOwnershipNotFound indicates an ownership model lookup miss in strict mode
	TypeOwnershipNotFound Type = "OWNERSHIP_MODEL_NOT_FOUND"

	// TypeInput indicates an input validation error
	TypeInput Type = "INPUT_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(errType Type, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// IsType reports whether any error in err's chain is a domain error of type t.
func IsType(err error, t Type) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type == t
	}
	return false
}

// TypeOf returns the domain type of err, or "" if err carries none.
func TypeOf(err error) Type {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type
	}
	return ""
}

// CatalogUnavailable creates an error for an unreadable catalog source
func CatalogUnavailable(path string, cause error) *Error {
	return Wrapf(TypeCatalogUnavailable, cause, "cannot read price catalog %s", path).
		WithContext("path", path)
}

// CatalogMalformed creates an error for a catalog that does not decode
func CatalogMalformed(message string, cause error) *Error {
	return Wrap(TypeCatalogMalformed, message, cause)
}

// MissingField creates a malformed-catalog error naming the absent field
func MissingField(field string) *Error {
	return Newf(TypeCatalogMalformed, "required field missing: %s", field).
		WithContext("field", field)
}

// RoleNotFound creates an hourly rate lookup error
func RoleNotFound(role string) *Error {
	return Newf(TypeRoleNotFound, "role %q not found", role).WithContext("role", role)
}

// PackageNotFound creates a hosting package lookup error
func PackageNotFound(name string) *Error {
	return Newf(TypePackageNotFound, "hosting package %q not found", name).WithContext("package", name)
}

// LevelNotFound creates a support level lookup error
func LevelNotFound(level string) *Error {
	return Newf(TypeLevelNotFound, "support level %q not found", level).WithContext("level", level)
}

// ServiceNotFound creates a packaged service lookup error
func ServiceNotFound(name string) *Error {
	return Newf(TypeServiceNotFound, "packaged service %q not found", name).WithContext("service", name)
}

// OwnershipNotFound creates an ownership model lookup error
func OwnershipNotFound(model string) *Error {
	return Newf(TypeOwnershipNotFound, "ownership model %q not found", model).WithContext("ownership_model", model)
}

// Input creates an input error
func Input(message string) *Error {
	return New(TypeInput, message)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}
