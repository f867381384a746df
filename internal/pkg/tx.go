package pkg

import "gorm.io/gorm"

// WithTx runs fn inside a single database transaction, committing on
// success and rolling back on error or panic. Multi-row updates such as
// banner sequence rewrites go through this helper.
func WithTx(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
