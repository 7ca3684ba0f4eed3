// Package common defines shared constants and sentinel errors used across
// client layers of Dungeon Keeper. Callers should use errors.Is to match these
// values.
package common

import "errors"

// ErrorValidation marks input rejected before anything is sent to the backend.
var ErrorValidation = errors.New("validation error")
