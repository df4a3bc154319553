// Package identity turns the caller-supplied org/user headers into an
// authenticated principal backed by the user directory.
package identity

import (
	"fmt"
	"strings"

	"notesd/internal/domain"
)

// Claimed is the syntactically valid but still unverified identity a
// caller asserts via the X-Org-ID and X-User-ID headers.
type Claimed struct {
	OrgID  string
	UserID string
}

// Extract validates the raw header values. It performs no I/O.
func Extract(orgID, userID string) (Claimed, error) {
	orgID = strings.TrimSpace(orgID)
	userID = strings.TrimSpace(userID)
	if orgID == "" || userID == "" {
		return Claimed{}, fmt.Errorf("%w: X-Org-ID and X-User-ID are required", domain.ErrMissingIdentity)
	}
	if !domain.ValidID(orgID) || !domain.ValidID(userID) {
		return Claimed{}, fmt.Errorf("%w: identifiers must be 24-char hex", domain.ErrMalformedIdentity)
	}
	return Claimed{OrgID: orgID, UserID: userID}, nil
}
