package db

import (
	"errors"

	"gorm.io/gorm"

	"notesd/internal/domain"
)

var errDBUnavailable = errors.New("db unavailable")

func translateErr(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrConflict
	default:
		return err
	}
}
