// Package jwtx reads claims from access tokens issued by the API.
//
// The client never holds the signing key, so tokens are parsed without
// verification. Results are for display only and must not drive
// authorization decisions.
package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiry is returned when the token carries no "exp" claim.
var ErrNoExpiry = errors.New("token has no expiry")

// ExpiresAt returns the "exp" claim of token.
func ExpiresAt(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("parse token: %w", err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("read exp claim: %w", err)
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiry
	}

	return exp.Time, nil
}
