// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-privacy-pipeline/models"
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

// TokenCtxKey is the key the auth middleware stores the verified operator
// token under.
var TokenCtxKey = contextKey("token")

// WithToken returns a copy of ctx carrying token.
func WithToken(ctx context.Context, token models.Token) context.Context {
	return context.WithValue(ctx, TokenCtxKey, token)
}

// GetTokenFromContext retrieves the verified operator token.
//
// Returns ok == false when the request was not authenticated.
//
// Example usage:
//
//	token, ok := utils.GetTokenFromContext(ctx)
//	if !ok || !token.HasScope(models.ScopeUnmask) {
//	    // refuse to reveal original values
//	}
func GetTokenFromContext(ctx context.Context) (models.Token, bool) {
	token, ok := ctx.Value(TokenCtxKey).(models.Token)
	return token, ok
}
