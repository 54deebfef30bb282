package services

import "errors"

// Sentinel errors; controllers map these onto the HTTP error taxonomy
// with errors.Is. Call sites wrap them to attach the offending
// identifier or name.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("invalid role")

	ErrMenuNotFound    = errors.New("menu not found")
	ErrMenuUnavailable = errors.New("menu is not available")
	ErrMenuReferenced  = errors.New("menu is referenced by existing orders")
	ErrInvalidCategory = errors.New("invalid category")
	ErrNegativePrice   = errors.New("price must not be negative")

	ErrOrderNotFound     = errors.New("order not found")
	ErrEmptyOrder        = errors.New("order needs at least one item")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrInvalidStatus     = errors.New("unknown order status")
	ErrInvalidTransition = errors.New("status transition not allowed")
)
