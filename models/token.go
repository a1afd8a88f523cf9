package models

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

// ScopeUnmask grants access to unmasked display views and merges with
// show_sensitive enabled.
const ScopeUnmask = "unmask"

// Token wraps a JWT token with convenience accessors for API authentication.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be sent in the Authorization header.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// Scopes lists the operator permissions granted by the token.
	Scopes []string `json:"scopes,omitempty"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Operator is a cached copy of the "sub" claim.
	Operator string `json:"-"`
}

// HasScope reports whether the token grants scope.
func (t *Token) HasScope(scope string) bool {
	return slices.Contains(t.Scopes, scope)
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
