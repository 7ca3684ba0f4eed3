package token

import (
	"errors"
	"fmt"
)

// ErrMissingClaim is wrapped by a DecodeError when the payload parses but
// lacks one of sub, user_id or exp.
var ErrMissingClaim = errors.New("missing required claim")

// DecodeError reports a credential that is malformed or not a structured
// token of the expected shape.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err == nil {
		return "decode credential: " + e.Reason
	}
	return fmt.Sprintf("decode credential: %s: %v", e.Reason, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
