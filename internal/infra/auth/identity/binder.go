package identity

import (
	"context"
	"errors"
	"fmt"

	"notesd/internal/domain"
)

// Binder resolves a claimed identity against the user directory and
// verifies tenant membership. It holds no per-request state and is safe
// for concurrent use; every call re-reads the directory.
type Binder struct {
	Directory domain.UserDirectory
}

func NewBinder(directory domain.UserDirectory) *Binder {
	return &Binder{Directory: directory}
}

// Bind produces the request principal or one of:
//   - ErrUserNotFound when the directory has no record for the claimed user
//   - ErrTenantMismatch when the record's tenant differs from the claimed org
func (b *Binder) Bind(ctx context.Context, claimed Claimed) (domain.Principal, error) {
	if b == nil || b.Directory == nil {
		return domain.Principal{}, errors.New("identity binder: directory not configured")
	}
	user, err := b.Directory.LookupUser(ctx, claimed.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Principal{}, fmt.Errorf("%w: %s", domain.ErrUserNotFound, claimed.UserID)
		}
		return domain.Principal{}, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return domain.Principal{}, fmt.Errorf("%w: %s", domain.ErrUserNotFound, claimed.UserID)
	}
	// The user exists but under another tenant: a 403-class condition,
	// deliberately distinct from not-found.
	if user.OrganizationID != claimed.OrgID {
		return domain.Principal{}, fmt.Errorf("%w: user %s", domain.ErrTenantMismatch, claimed.UserID)
	}
	return domain.Principal{
		TenantID: user.OrganizationID,
		UserID:   user.ID,
		Role:     user.Role,
	}, nil
}
