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

// ValidationError reports a single field failing its constraint

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

// InsufficientFuelError reports a trip that cannot be afforded with current fuel

type InsufficientFuelError struct {
	*DomainError
	Required  float64
	Available float64
}

func NewInsufficientFuelError(required, available float64) *InsufficientFuelError {
	return &InsufficientFuelError{
		DomainError: NewDomainError(fmt.Sprintf("insufficient fuel: need %.1f, have %.1f", required, available)),
		Required:    required,
		Available:   available,
	}
}
