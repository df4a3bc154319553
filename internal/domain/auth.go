package domain

import "context"

// Principal is the authenticated (tenant, user, role) triple. It is built
// fresh for every request from the current directory state and discarded
// when the request ends; it is never cached across requests.
type Principal struct {
	TenantID string
	UserID   string
	Role     Role
}

// UserDirectory resolves a user identifier to its directory record.
// Implementations return ErrNotFound when no record exists and must be
// safe for concurrent use.
type UserDirectory interface {
	LookupUser(ctx context.Context, userID string) (*User, error)
}
