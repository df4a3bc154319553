package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"notesd/internal/domain"
)

// OrganizationService manages tenants. Its operations are public by
// design: tenants must be bootstrapped before any user exists in them.
type OrganizationService struct {
	Orgs  OrganizationRepository
	Clock func() time.Time
}

func NewOrganizationService(orgs OrganizationRepository) *OrganizationService {
	return &OrganizationService{Orgs: orgs}
}

type CreateOrganizationInput struct {
	Name string
}

func (s *OrganizationService) Create(ctx context.Context, input CreateOrganizationInput) (*domain.Organization, error) {
	if len(input.Name) < 1 || len(input.Name) > 100 {
		return nil, fmt.Errorf("%w: name must be 1-100 characters", domain.ErrInvalidArgument)
	}
	existing, err := s.Orgs.GetByName(ctx, input.Name)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: organization %q already exists", domain.ErrConflict, input.Name)
	}

	id, err := domain.NewID()
	if err != nil {
		return nil, err
	}
	org := domain.Organization{
		ID:        id,
		Name:      input.Name,
		CreatedAt: s.now(),
	}
	if err := s.Orgs.Create(ctx, org); err != nil {
		return nil, err
	}
	return &org, nil
}

func (s *OrganizationService) GetByID(ctx context.Context, orgID string) (*domain.Organization, error) {
	if !domain.ValidID(orgID) {
		return nil, domain.ErrNotFound
	}
	return s.Orgs.GetByID(ctx, orgID)
}

func (s *OrganizationService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now().UTC()
}
