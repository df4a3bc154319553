package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"notesd/internal/domain"
	"notesd/internal/infra/auth/rbac"
)

// UserService manages directory records. Every operation takes the
// authenticated principal and confines itself to the principal's tenant;
// a foreign org in the path is masked as not-found.
type UserService struct {
	Orgs  OrganizationRepository
	Users UserRepository
	Clock func() time.Time
}

func NewUserService(orgs OrganizationRepository, users UserRepository) *UserService {
	return &UserService{Orgs: orgs, Users: users}
}

type CreateUserInput struct {
	Email string
	Name  string
	Role  domain.Role
}

type UpdateUserInput struct {
	Name *string
	Role *domain.Role
}

func (s *UserService) Create(ctx context.Context, principal domain.Principal, orgID string, input CreateUserInput) (*domain.User, error) {
	if err := s.scopeOrg(principal, orgID); err != nil {
		return nil, err
	}
	if err := validateUserFields(input.Email, input.Name); err != nil {
		return nil, err
	}
	role := input.Role
	if role == domain.RoleNone {
		role = domain.RoleReader
	}

	if _, err := s.Orgs.GetByID(ctx, orgID); err != nil {
		return nil, err
	}
	existing, err := s.Users.GetByEmailAndOrg(ctx, input.Email, orgID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email %q already exists in organization", domain.ErrConflict, input.Email)
	}

	id, err := domain.NewID()
	if err != nil {
		return nil, err
	}
	user := domain.User{
		ID:             id,
		OrganizationID: orgID,
		Email:          input.Email,
		Name:           input.Name,
		Role:           role,
		CreatedAt:      s.now(),
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Get(ctx context.Context, principal domain.Principal, orgID, userID string) (*domain.User, error) {
	if err := s.scopeOrg(principal, orgID); err != nil {
		return nil, err
	}
	if !domain.ValidID(userID) {
		return nil, domain.ErrNotFound
	}
	user, err := s.Users.LookupUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := rbac.ScopeToTenant(principal, user.OrganizationID); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context, principal domain.Principal, orgID string) ([]domain.User, error) {
	if err := s.scopeOrg(principal, orgID); err != nil {
		return nil, err
	}
	if _, err := s.Orgs.GetByID(ctx, orgID); err != nil {
		return nil, err
	}
	return s.Users.ListByOrganization(ctx, orgID)
}

func (s *UserService) Update(ctx context.Context, principal domain.Principal, orgID, userID string, input UpdateUserInput) (*domain.User, error) {
	user, err := s.Get(ctx, principal, orgID, userID)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		if len(*input.Name) < 1 || len(*input.Name) > 100 {
			return nil, fmt.Errorf("%w: name must be 1-100 characters", domain.ErrInvalidArgument)
		}
		user.Name = *input.Name
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if err := s.Users.Update(ctx, *user); err != nil {
		return nil, err
	}
	return s.Users.LookupUser(ctx, userID)
}

// scopeOrg masks a foreign path org as not-found, keeping cross-tenant
// directory contents unobservable.
func (s *UserService) scopeOrg(principal domain.Principal, orgID string) error {
	if !domain.ValidID(orgID) {
		return domain.ErrNotFound
	}
	return rbac.ScopeToTenant(principal, orgID)
}

func validateUserFields(email, name string) error {
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: invalid email", domain.ErrInvalidArgument)
	}
	if len(name) < 1 || len(name) > 100 {
		return fmt.Errorf("%w: name must be 1-100 characters", domain.ErrInvalidArgument)
	}
	return nil
}

func (s *UserService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now().UTC()
}
