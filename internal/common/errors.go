// Package common defines shared constants and sentinel errors used across
// SnipVault server layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Handshake lifecycle errors. ErrorExpired is distinct from
	// ErrorNotFound so clients can tell "never existed" from "too slow".
	ErrorExpired         = errors.New("expired")
	ErrorAlreadyConsumed = errors.New("already consumed")
	ErrorInvalidState    = errors.New("invalid state")

	// Validation errors for key material arriving at the registry boundary.
	ErrorInvalidKeyMaterial = errors.New("invalid key material")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// ErrorTransientStore marks persistence failures that are safe to retry
	// with backoff. Anything not wrapped in it is treated as fatal.
	ErrorTransientStore = errors.New("transient store failure")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
