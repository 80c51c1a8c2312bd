// Package auth provides the credential collaborators of the user
// service: one-way password hashing and opaque session-token minting.
package auth

import "github.com/google/uuid"

// TokenGenerator defines the interface for minting opaque session
// tokens. The token is an unguessable random string with no relation
// to the underlying username.
type TokenGenerator interface {
	Generate() string
}

// UUIDTokenGenerator implements TokenGenerator using random UUIDs.
type UUIDTokenGenerator struct{}

// NewUUIDTokenGenerator creates a new UUIDTokenGenerator.
func NewUUIDTokenGenerator() *UUIDTokenGenerator {
	return &UUIDTokenGenerator{}
}

// Generate returns a fresh random opaque token.
func (g *UUIDTokenGenerator) Generate() string {
	return uuid.NewString()
}
