package token

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the client-side view of a credential payload.
type Claims struct {
	Subject   string
	UserID    string
	ExpiresAt time.Time
}

// ExpiredAt reports whether the credential is no longer usable at now.
// A credential expiring exactly at now counts as expired.
func (c Claims) ExpiredAt(now time.Time) bool {
	return !c.ExpiresAt.After(now)
}

// accountID accepts the user_id claim both as a JSON string and as a JSON
// number; backends differ on which one they emit.
type accountID string

func (a *accountID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = accountID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("user_id: %w", err)
	}
	if _, err := n.Int64(); err != nil {
		return fmt.Errorf("user_id is not an integer: %s", n)
	}
	*a = accountID(n.String())
	return nil
}

// payload mirrors what the backend signs: {"sub": ..., "user_id": ..., "exp": ...}.
type payload struct {
	jwt.RegisteredClaims
	UserID accountID `json:"user_id"`
}

var parser = jwt.NewParser()

// Decode extracts Claims from credential without verifying its signature.
func Decode(credential string) (Claims, error) {
	if strings.TrimSpace(credential) == "" {
		return Claims{}, &DecodeError{Reason: "empty credential"}
	}
	// The credential is stored and sent as is, so it must already be clean.
	if strings.TrimSpace(credential) != credential {
		return Claims{}, &DecodeError{Reason: "surrounding whitespace"}
	}

	var p payload
	if _, _, err := parser.ParseUnverified(credential, &p); err != nil {
		return Claims{}, &DecodeError{Reason: "malformed token", Err: err}
	}

	switch {
	case strings.TrimSpace(p.Subject) == "":
		return Claims{}, &DecodeError{Reason: "sub", Err: ErrMissingClaim}
	case strings.TrimSpace(string(p.UserID)) == "":
		return Claims{}, &DecodeError{Reason: "user_id", Err: ErrMissingClaim}
	case p.ExpiresAt == nil:
		return Claims{}, &DecodeError{Reason: "exp", Err: ErrMissingClaim}
	}

	return Claims{
		Subject:   p.Subject,
		UserID:    string(p.UserID),
		ExpiresAt: p.ExpiresAt.Time,
	}, nil
}

// IsDecodeError reports whether err carries a *DecodeError.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}
