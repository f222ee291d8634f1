package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the payload of the token issued by the passphrase gate.
type SessionClaims struct {
	jwt.RegisteredClaims
	SessionID string `json:"session_id"`
}
