package usecase

import (
	"context"
	"fmt"
	"time"

	"notesd/internal/domain"
	"notesd/internal/infra/auth/rbac"
)

const (
	DefaultNoteLimit = 100
	MaxNoteLimit     = 1000
)

// NoteService manages notes. Single-note operations fetch by ID alone and
// then run the tenant scope check before returning or mutating anything,
// so a guessed foreign ID behaves exactly like a missing one.
type NoteService struct {
	Notes NoteRepository
	Clock func() time.Time
}

func NewNoteService(notes NoteRepository) *NoteService {
	return &NoteService{Notes: notes}
}

type CreateNoteInput struct {
	Title   string
	Content string
}

type UpdateNoteInput struct {
	Title   *string
	Content *string
}

func (s *NoteService) Create(ctx context.Context, principal domain.Principal, input CreateNoteInput) (*domain.Note, error) {
	if err := validateNoteTitle(input.Title); err != nil {
		return nil, err
	}
	if input.Content == "" {
		return nil, fmt.Errorf("%w: content must not be empty", domain.ErrInvalidArgument)
	}

	id, err := domain.NewID()
	if err != nil {
		return nil, err
	}
	note := domain.Note{
		ID:             id,
		OrganizationID: principal.TenantID,
		CreatedBy:      principal.UserID,
		Title:          input.Title,
		Content:        input.Content,
		CreatedAt:      s.now(),
	}
	if err := s.Notes.Create(ctx, note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (s *NoteService) Get(ctx context.Context, principal domain.Principal, noteID string) (*domain.Note, error) {
	return s.fetchScoped(ctx, principal, noteID)
}

func (s *NoteService) List(ctx context.Context, principal domain.Principal, skip, limit int) ([]domain.Note, error) {
	if skip < 0 {
		skip = 0
	}
	if limit < 1 {
		limit = DefaultNoteLimit
	}
	if limit > MaxNoteLimit {
		limit = MaxNoteLimit
	}
	return s.Notes.ListByOrganization(ctx, principal.TenantID, skip, limit)
}

func (s *NoteService) Update(ctx context.Context, principal domain.Principal, noteID string, input UpdateNoteInput) (*domain.Note, error) {
	note, err := s.fetchScoped(ctx, principal, noteID)
	if err != nil {
		return nil, err
	}
	if input.Title != nil {
		if err := validateNoteTitle(*input.Title); err != nil {
			return nil, err
		}
		note.Title = *input.Title
	}
	if input.Content != nil {
		if *input.Content == "" {
			return nil, fmt.Errorf("%w: content must not be empty", domain.ErrInvalidArgument)
		}
		note.Content = *input.Content
	}
	if err := s.Notes.Update(ctx, *note); err != nil {
		return nil, err
	}
	return s.Notes.GetByID(ctx, noteID)
}

func (s *NoteService) Delete(ctx context.Context, principal domain.Principal, noteID string) error {
	if _, err := s.fetchScoped(ctx, principal, noteID); err != nil {
		return err
	}
	return s.Notes.Delete(ctx, noteID)
}

func (s *NoteService) fetchScoped(ctx context.Context, principal domain.Principal, noteID string) (*domain.Note, error) {
	if !domain.ValidID(noteID) {
		return nil, domain.ErrNotFound
	}
	note, err := s.Notes.GetByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if err := rbac.ScopeToTenant(principal, note.OrganizationID); err != nil {
		return nil, err
	}
	return note, nil
}

func validateNoteTitle(title string) error {
	if len(title) < 1 || len(title) > 200 {
		return fmt.Errorf("%w: title must be 1-200 characters", domain.ErrInvalidArgument)
	}
	return nil
}

func (s *NoteService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now().UTC()
}
