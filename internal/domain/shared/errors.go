package shared

import (
	"errors"
	"fmt"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is matches domain errors by code so sentinels work with errors.Is
func (e *DomainError) Is(target error) bool {
	var other *DomainError
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidInput           = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrEmptyValue             = NewDomainError("EMPTY_VALUE", "Value cannot be empty")
	ErrInvalidPrice           = NewDomainError("INVALID_PRICE", "Price cannot be negative")
	ErrInvalidStock           = NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	ErrInvalidStatus          = NewDomainError("INVALID_STATUS", "Unknown status")
	ErrInvalidNumber          = NewDomainError("INVALID_NUMBER", "Value is not a valid number")
	ErrInvalidURL             = NewDomainError("INVALID_URL", "Value is not a valid URL")
	ErrImagesCapacityExceeded = NewDomainError("IMAGES_CAPACITY_EXCEEDED", "Image limit reached")
	ErrMissingBusinessUnit    = NewDomainError("MISSING_BUSINESS_UNIT", "At least one business unit is required")
)

// ErrMissingStructuralField is matched by every StructureError
var ErrMissingStructuralField = errors.New("sellercenter: missing structural field")

// StructureError reports a required XML element that is absent from a document
type StructureError struct {
	Model string
	Field string
}

// NewStructureError creates a new structure error
func NewStructureError(model, field string) *StructureError {
	return &StructureError{Model: model, Field: field}
}

// Error implements the error interface
func (e *StructureError) Error() string {
	return fmt.Sprintf("sellercenter: missing structural field %q in %s", e.Field, e.Model)
}

// Is reports whether target is ErrMissingStructuralField
func (e *StructureError) Is(target error) bool {
	return target == ErrMissingStructuralField
}
