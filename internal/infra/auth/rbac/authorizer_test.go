package rbac

import (
	"errors"
	"testing"

	"notesd/internal/domain"
)

func TestRequireFloors(t *testing.T) {
	authorizer := NewAuthorizer()
	tests := []struct {
		name    string
		role    domain.Role
		floor   domain.Role
		allowed bool
	}{
		{"reader meets reader", domain.RoleReader, domain.RoleReader, true},
		{"reader denied writer", domain.RoleReader, domain.RoleWriter, false},
		{"reader denied admin", domain.RoleReader, domain.RoleAdmin, false},
		{"writer meets reader", domain.RoleWriter, domain.RoleReader, true},
		{"writer denied admin", domain.RoleWriter, domain.RoleAdmin, false},
		{"admin meets every floor", domain.RoleAdmin, domain.RoleAdmin, true},
		{"no floor is public", domain.RoleReader, domain.RoleNone, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := authorizer.Require(domain.Principal{Role: tt.role}, tt.floor)
			if tt.allowed && err != nil {
				t.Fatalf("Require(): %v", err)
			}
			if !tt.allowed && !errors.Is(err, domain.ErrForbidden) {
				t.Fatalf("expected ErrForbidden, got %v", err)
			}
		})
	}
}

func TestAdminSatisfiesAllFloors(t *testing.T) {
	authorizer := NewAuthorizer()
	admin := domain.Principal{Role: domain.RoleAdmin}
	for _, floor := range []domain.Role{domain.RoleNone, domain.RoleReader, domain.RoleWriter, domain.RoleAdmin} {
		if err := authorizer.Require(admin, floor); err != nil {
			t.Fatalf("admin denied floor %s: %v", floor, err)
		}
	}
}

func TestAuthzErrorDetails(t *testing.T) {
	authorizer := NewAuthorizer()
	err := authorizer.Require(domain.Principal{Role: domain.RoleReader}, domain.RoleAdmin)
	authz, ok := IsAuthzError(err)
	if !ok {
		t.Fatalf("expected AuthzError, got %v", err)
	}
	if authz.Code != "FORBIDDEN" || authz.Required != domain.RoleAdmin || authz.Actual != domain.RoleReader {
		t.Fatalf("unexpected AuthzError: %+v", authz)
	}
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatal("AuthzError must unwrap to ErrForbidden")
	}
}

func TestScopeToTenant(t *testing.T) {
	principal := domain.Principal{TenantID: "aaaaaaaaaaaaaaaaaaaaaaaa"}
	if err := ScopeToTenant(principal, "aaaaaaaaaaaaaaaaaaaaaaaa"); err != nil {
		t.Fatalf("same-tenant scope check failed: %v", err)
	}
	if err := ScopeToTenant(principal, "bbbbbbbbbbbbbbbbbbbbbbbb"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("cross-tenant owner: expected ErrNotFound, got %v", err)
	}
	// Missing resource and foreign resource are indistinguishable.
	if err := ScopeToTenant(principal, ""); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("missing owner: expected ErrNotFound, got %v", err)
	}
}
