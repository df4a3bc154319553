package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"notesd/internal/domain"
)

// UserRepository is the user directory. LookupUser satisfies
// domain.UserDirectory so the identity binder reads directly from here.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) error {
	if r.db == nil {
		return errDBUnavailable
	}
	model := UserModel{
		ID:             user.ID,
		OrganizationID: user.OrganizationID,
		Email:          user.Email,
		Name:           user.Name,
		Role:           user.Role.String(),
		CreatedAt:      user.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return translateErr(err)
	}
	return nil
}

func (r *UserRepository) LookupUser(ctx context.Context, userID string) (*domain.User, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var model UserModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return userFromModel(model)
}

func (r *UserRepository) GetByEmailAndOrg(ctx context.Context, email, orgID string) (*domain.User, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var model UserModel
	err := r.db.WithContext(ctx).First(&model, "email = ? AND organization_id = ?", email, orgID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return userFromModel(model)
}

func (r *UserRepository) ListByOrganization(ctx context.Context, orgID string) ([]domain.User, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var models []UserModel
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(models))
	for _, model := range models {
		user, err := userFromModel(model)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, nil
}

func (r *UserRepository) CountByOrganization(ctx context.Context, orgID string) (int64, error) {
	if r.db == nil {
		return 0, errDBUnavailable
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&UserModel{}).
		Where("organization_id = ?", orgID).
		Count(&count).Error
	return count, err
}

// Update persists name and role changes. The organization column is never
// written after creation.
func (r *UserRepository) Update(ctx context.Context, user domain.User) error {
	if r.db == nil {
		return errDBUnavailable
	}
	now := time.Now().UTC()
	updates := map[string]any{
		"name":       user.Name,
		"role":       user.Role.String(),
		"updated_at": &now,
	}
	result := r.db.WithContext(ctx).Model(&UserModel{}).
		Where("id = ?", user.ID).
		Updates(updates)
	if result.Error != nil {
		return translateErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func userFromModel(model UserModel) (*domain.User, error) {
	role, err := domain.ParseRole(model.Role)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", model.ID, err)
	}
	return &domain.User{
		ID:             model.ID,
		OrganizationID: model.OrganizationID,
		Email:          model.Email,
		Name:           model.Name,
		Role:           role,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}, nil
}
