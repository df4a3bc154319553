package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"notesd/internal/domain"
)

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) Create(ctx context.Context, org domain.Organization) error {
	if r.db == nil {
		return errDBUnavailable
	}
	model := OrganizationModel{
		ID:        org.ID,
		Name:      org.Name,
		CreatedAt: org.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return translateErr(err)
	}
	return nil
}

func (r *OrganizationRepository) GetByID(ctx context.Context, orgID string) (*domain.Organization, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var model OrganizationModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", orgID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return orgFromModel(model), nil
}

func (r *OrganizationRepository) GetByName(ctx context.Context, name string) (*domain.Organization, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var model OrganizationModel
	err := r.db.WithContext(ctx).First(&model, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return orgFromModel(model), nil
}

func orgFromModel(model OrganizationModel) *domain.Organization {
	return &domain.Organization{
		ID:        model.ID,
		Name:      model.Name,
		CreatedAt: model.CreatedAt,
	}
}
