package postgres

import (
	"strings"

	domainerrors "greenlake/internal/domain/errors"
	"greenlake/internal/errors"

	"gorm.io/gorm"
)

// Helper functions for constraint error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}

// violatesColumn reports whether a unique violation names the given column or index.
// Postgres names the index, SQLite names table.column.
func violatesColumn(err error, names ...string) bool {
	errMsg := strings.ToLower(err.Error())
	for _, name := range names {
		if strings.Contains(errMsg, strings.ToLower(name)) {
			return true
		}
	}

	return false
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func dbError(err error, details string) error {
	return domainerrors.NewDatabaseExecuteError(err, details)
}
