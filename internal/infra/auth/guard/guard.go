// Package guard composes the full per-request authorization chain:
// identity extraction, directory binding, the role gate, and (for
// single-resource operations) the tenant scope check.
package guard

import (
	"context"

	"notesd/internal/domain"
	"notesd/internal/infra/auth/identity"
	"notesd/internal/infra/auth/rbac"
)

// RawIdentity is the untrusted header pair as received from transport.
type RawIdentity struct {
	OrgID  string
	UserID string
}

type Guard struct {
	binder     *identity.Binder
	authorizer *rbac.Authorizer
}

func New(directory domain.UserDirectory) *Guard {
	return &Guard{
		binder:     identity.NewBinder(directory),
		authorizer: rbac.NewAuthorizer(),
	}
}

// Authorize runs extract -> bind -> role gate and returns the principal.
// Failures are terminal for the request: ErrMissingIdentity,
// ErrMalformedIdentity, ErrUserNotFound, ErrTenantMismatch, ErrForbidden.
func (g *Guard) Authorize(ctx context.Context, raw RawIdentity, floor domain.Role) (domain.Principal, error) {
	claimed, err := identity.Extract(raw.OrgID, raw.UserID)
	if err != nil {
		return domain.Principal{}, err
	}
	principal, err := g.binder.Bind(ctx, claimed)
	if err != nil {
		return domain.Principal{}, err
	}
	if err := g.authorizer.Require(principal, floor); err != nil {
		return domain.Principal{}, err
	}
	return principal, nil
}

// CheckOwner applies the tenant scope check once the resource layer has
// fetched the resource's owning tenant. A nil owner (resource absent) and
// a foreign owner both yield ErrNotFound.
func (g *Guard) CheckOwner(principal domain.Principal, ownerTenant *string) error {
	if ownerTenant == nil {
		return domain.ErrNotFound
	}
	return rbac.ScopeToTenant(principal, *ownerTenant)
}

// AuthorizeOwned is the combined entry point for operations that already
// know the resource's owning tenant.
func (g *Guard) AuthorizeOwned(ctx context.Context, raw RawIdentity, floor domain.Role, ownerTenant *string) (domain.Principal, error) {
	principal, err := g.Authorize(ctx, raw, floor)
	if err != nil {
		return domain.Principal{}, err
	}
	if err := g.CheckOwner(principal, ownerTenant); err != nil {
		return domain.Principal{}, err
	}
	return principal, nil
}
