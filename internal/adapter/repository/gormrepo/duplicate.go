package gormrepo

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// errorsIsDuplicate recognises unique-key violations. gorm only translates
// them when TranslateError is on, so the driver messages are checked too.
func errorsIsDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate entry") || // mysql
		strings.Contains(msg, "unique constraint") || // sqlite, postgres
		strings.Contains(msg, "duplicate key value") // postgres
}
