// Package common defines shared constants and sentinel errors used across
// client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Token errors.
	ErrInvalidToken   = errors.New("invalid token")
	ErrIncompletePair = errors.New("token pair must contain both tokens")
	ErrTokenNoExpiry  = errors.New("token has no expiry claim")
)
