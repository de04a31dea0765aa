package gormrepo

import (
	"errors"

	"gorm.io/gorm"

	"loanbook-backend/internal/domain/apperr"
)

// translate maps gorm errors onto domain errors: a missing record becomes
// notFound, anything else a storage failure.
func translate(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return apperr.Storage(err)
}

// affected turns a zero-row write into notFound.
func affected(res *gorm.DB, notFound error) error {
	if res.Error != nil {
		return apperr.Storage(res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound
	}
	return nil
}
