package domain

import "errors"

var (
	// Identity extraction failures. Caller errors, surfaced verbatim.
	ErrMissingIdentity   = errors.New("missing identity")
	ErrMalformedIdentity = errors.New("malformed identity")

	// Authorization outcomes. Terminal, never retried.
	ErrUserNotFound   = errors.New("user not found")
	ErrTenantMismatch = errors.New("tenant mismatch")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("not found")

	ErrConflict        = errors.New("conflict")
	ErrInvalidArgument = errors.New("invalid argument")
)
