package market

import "errors"

// Domain errors for market operations

var (
	// ErrInvalidResourceType is returned when a resource type is outside the closed enumeration
	ErrInvalidResourceType = errors.New("invalid resource type")

	// ErrInvalidQuantity is returned when a trade quantity is zero or negative
	ErrInvalidQuantity = errors.New("invalid quantity")
)
