package rbac

import (
	"errors"
	"fmt"

	"notesd/internal/domain"
)

// AuthzError carries the machine-readable code for a role-gate denial
// along with the floor that was required and the role the caller held.
type AuthzError struct {
	Code     string
	Required domain.Role
	Actual   domain.Role
	Err      error
}

func (e *AuthzError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: requires %s, have %s", e.Code, e.Required, e.Actual)
}

func (e *AuthzError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Authorizer enforces the fixed role ordering. Decisions are pure
// functions of the principal and floor; they are never retried.
type Authorizer struct{}

func NewAuthorizer() *Authorizer {
	return &Authorizer{}
}

// Require succeeds iff the principal's role meets the floor.
func (a *Authorizer) Require(principal domain.Principal, floor domain.Role) error {
	if floor == domain.RoleNone {
		return nil
	}
	if principal.Role.Satisfies(floor) {
		return nil
	}
	return &AuthzError{
		Code:     "FORBIDDEN",
		Required: floor,
		Actual:   principal.Role,
		Err:      domain.ErrForbidden,
	}
}

func IsAuthzError(err error) (*AuthzError, bool) {
	var authz *AuthzError
	if errors.As(err, &authz) {
		return authz, true
	}
	return nil, false
}
