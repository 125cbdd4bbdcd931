// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-id-verifier/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TokenCtxKey is the key used to store the caller's validated access token
// in the context. Used together with GetTokenFromContext for type-safe
// retrieval.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.TokenCtxKey, token)
var TokenCtxKey = contextKey("token")

// GetTokenFromContext retrieves the validated access token from the context.
//
// Returns the token and an ok flag:
//   - ok == true : value is found and has the models.Token type
//   - ok == false: value is missing or has an unexpected type
func GetTokenFromContext(ctx context.Context) (models.Token, bool) {
	token, ok := ctx.Value(TokenCtxKey).(models.Token)
	return token, ok
}
