// Package common defines shared constants and sentinel errors used across
// client and server layers of TravelKeeper. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Store-level failure kinds. A remote failure is routing information for
	// the sync layer; a local failure on the fallback path is fatal.
	ErrRemoteOperationFailed = errors.New("remote operation failed")
	ErrLocalOperationFailed  = errors.New("local operation failed")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors.
	ErrorEmailAlreadyTaken = errors.New("email already taken")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
