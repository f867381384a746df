package pkg

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/tyredepot/admin/internal/domain"
)

// MapDBError converts GORM errors to domain errors.
func MapDBError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
		return domain.NewAppError(domain.CodeAlreadyExists, "already exists", err)
	}
	return domain.NewAppError(domain.CodeInternal, "database error", err)
}

// isDuplicateKeyError detects unique constraint violations by examining the
// error message. This is needed because not all GORM dialectors translate
// driver-level errors to gorm.ErrDuplicatedKey (e.g. the pure-Go SQLite driver).
func isDuplicateKeyError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}
