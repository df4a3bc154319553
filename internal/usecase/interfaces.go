package usecase

import (
	"context"

	"notesd/internal/domain"
)

type OrganizationRepository interface {
	Create(ctx context.Context, org domain.Organization) error
	GetByID(ctx context.Context, orgID string) (*domain.Organization, error)
	GetByName(ctx context.Context, name string) (*domain.Organization, error)
}

type UserRepository interface {
	domain.UserDirectory
	Create(ctx context.Context, user domain.User) error
	GetByEmailAndOrg(ctx context.Context, email, orgID string) (*domain.User, error)
	ListByOrganization(ctx context.Context, orgID string) ([]domain.User, error)
	Update(ctx context.Context, user domain.User) error
}

type NoteRepository interface {
	Create(ctx context.Context, note domain.Note) error
	GetByID(ctx context.Context, noteID string) (*domain.Note, error)
	ListByOrganization(ctx context.Context, orgID string, skip, limit int) ([]domain.Note, error)
	Update(ctx context.Context, note domain.Note) error
	Delete(ctx context.Context, noteID string) error
}
