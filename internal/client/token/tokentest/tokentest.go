// Package tokentest mints credentials shaped like the ones the backend issues,
// for use in tests.
package tokentest

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var signingKey = []byte("tokentest-signing-key")

// Mint signs a credential carrying sub, user_id and exp. userID may be a
// string or a number, matching what different backends emit.
func Mint(t testing.TB, subject string, userID any, expiresAt time.Time) string {
	t.Helper()
	return MintClaims(t, jwt.MapClaims{
		"sub":     subject,
		"user_id": userID,
		"exp":     expiresAt.Unix(),
	})
}

// MintClaims signs an arbitrary claim set, e.g. one with a claim left out.
func MintClaims(t testing.TB, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return s
}
