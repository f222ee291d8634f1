package auth

import "errors"

var (
	ErrInvalidPassphrase = errors.New("invalid passphrase")
	ErrGateDisabled      = errors.New("access passphrase not configured")
	ErrInvalidToken      = errors.New("invalid token")
)
