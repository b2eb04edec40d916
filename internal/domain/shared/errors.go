package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// Ship-related errors

type ShipError struct {
	*DomainError
}

func NewShipError(message string) *ShipError {
	return &ShipError{DomainError: &DomainError{Message: message}}
}

type InvalidShipDataError struct {
	*ShipError
}

func NewInvalidShipDataError(message string) *InvalidShipDataError {
	return &InvalidShipDataError{ShipError: NewShipError(message)}
}

// CapacityError signals a module whose class exceeds the slot it was
// destined for. Raised by the validation layer that guards Ship.Use,
// never by Ship itself.
type CapacityError struct {
	*ShipError
	ModuleID    string
	ModuleClass int
	MaxClass    int
}

func NewCapacityError(moduleID string, moduleClass, maxClass int) *CapacityError {
	return &CapacityError{
		ShipError: NewShipError(fmt.Sprintf("module %s class %d exceeds slot max class %d",
			moduleID, moduleClass, maxClass)),
		ModuleID:    moduleID,
		ModuleClass: moduleClass,
		MaxClass:    maxClass,
	}
}

// Codec errors

// DecodeError signals a structurally invalid build or comparison code.
// A failed decode never leaves a partially-built ship behind.
type DecodeError struct {
	*DomainError
	Code string
}

func NewDecodeError(code, message string) *DecodeError {
	return &DecodeError{
		DomainError: &DomainError{Message: message},
		Code:        code,
	}
}

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
