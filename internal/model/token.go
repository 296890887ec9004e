package model

import "github.com/google/uuid"

// TokenManager issues and validates bearer tokens.
type TokenManager interface {
	Generate(user User) (string, error)
	Parse(token string) (TokenClaims, error)
}

// TokenClaims is the identity embedded in a bearer token. Validation is
// stateless: no store lookup happens between issuance and expiry.
type TokenClaims struct {
	UserID uuid.UUID
	Email  string
	Name   string
}
