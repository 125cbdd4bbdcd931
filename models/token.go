package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role is the access level carried in an access token.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// TokenClaims is the claim set of an access token: the registered claims
// plus the caller's role.
type TokenClaims struct {
	jwt.RegisteredClaims

	Role Role `json:"role"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be sent in the Authorization header.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Username is the "sub" claim.
	Username string `json:"-"`

	// Role is the role claim.
	Role Role `json:"-"`
}

// IsAdmin reports whether the token grants administrative access.
func (t *Token) IsAdmin() bool {
	return t.Role == RoleAdmin
}

// ExpiresAt returns the "exp" claim, or the zero time when the token has none.
func (t *Token) ExpiresAt() time.Time {
	if t.Token == nil {
		return time.Time{}
	}
	exp, err := t.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
