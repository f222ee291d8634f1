package session

import "errors"

var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrMissingSKU         = errors.New("sku is required")
	ErrDuplicateSKU       = errors.New("duplicate sku")
	ErrUnsupportedCountry = errors.New("unsupported country")
	ErrInvalidRate        = errors.New("currency rate must be positive")
	ErrUnknownFreightMode = errors.New("unknown freight mode")
	ErrInvalidFreightRate = errors.New("freight rate must not be negative")
	ErrInvalidPrice       = errors.New("price must not be negative")
)
