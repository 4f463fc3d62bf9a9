// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a unique constraint violation (e.g., email taken).
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidCredentials indicates a failed email/password check on sign-in.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized indicates a request without a usable authenticated identity.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidToken indicates a malformed, tampered or expired session token.
	ErrInvalidToken = errors.New("invalid token")

	// ErrRateLimited indicates temporary login lock due to rate limiting.
	ErrRateLimited = errors.New("rate limited")

	// ErrConflict indicates the operation clashes with referencing data,
	// e.g. deleting a category that still owns components.
	ErrConflict = errors.New("conflict")
)
