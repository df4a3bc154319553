package db

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"notesd/internal/domain"
)

type NoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) Create(ctx context.Context, note domain.Note) error {
	if r.db == nil {
		return errDBUnavailable
	}
	model := NoteModel{
		ID:             note.ID,
		OrganizationID: note.OrganizationID,
		CreatedBy:      note.CreatedBy,
		Title:          note.Title,
		Content:        note.Content,
		CreatedAt:      note.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return translateErr(err)
	}
	return nil
}

// GetByID fetches by primary key only. Tenant confinement is the scope
// guard's job, applied by the caller after this lookup.
func (r *NoteRepository) GetByID(ctx context.Context, noteID string) (*domain.Note, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var model NoteModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", noteID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return noteFromModel(model), nil
}

func (r *NoteRepository) ListByOrganization(ctx context.Context, orgID string, skip, limit int) ([]domain.Note, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var models []NoteModel
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	notes := make([]domain.Note, 0, len(models))
	for _, model := range models {
		notes = append(notes, *noteFromModel(model))
	}
	return notes, nil
}

func (r *NoteRepository) Update(ctx context.Context, note domain.Note) error {
	if r.db == nil {
		return errDBUnavailable
	}
	now := time.Now().UTC()
	result := r.db.WithContext(ctx).Model(&NoteModel{}).
		Where("id = ?", note.ID).
		Updates(map[string]any{
			"title":      note.Title,
			"content":    note.Content,
			"updated_at": &now,
		})
	if result.Error != nil {
		return translateErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *NoteRepository) Delete(ctx context.Context, noteID string) error {
	if r.db == nil {
		return errDBUnavailable
	}
	result := r.db.WithContext(ctx).Delete(&NoteModel{}, "id = ?", noteID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func noteFromModel(model NoteModel) *domain.Note {
	return &domain.Note{
		ID:             model.ID,
		OrganizationID: model.OrganizationID,
		CreatedBy:      model.CreatedBy,
		Title:          model.Title,
		Content:        model.Content,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}
