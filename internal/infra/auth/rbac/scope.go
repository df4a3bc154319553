package rbac

import "notesd/internal/domain"

// ScopeToTenant confirms a fetched resource belongs to the caller's
// tenant. A mismatch returns ErrNotFound, the same error a missing
// resource yields, so callers cannot distinguish "exists under another
// tenant" from "does not exist". An empty owner means the resource was
// not found at all and is treated identically.
func ScopeToTenant(principal domain.Principal, ownerTenant string) error {
	if ownerTenant == "" || ownerTenant != principal.TenantID {
		return domain.ErrNotFound
	}
	return nil
}
