package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Constraint checks rely on GORM's TranslateError support, which reports
// violations as structured sentinel errors rather than driver message text.

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}

func isNotNullConstraintViolation(err error) bool {
	// No gorm sentinel exists for not-null violations; match the SQLSTATE
	// class, not free-form text.
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "23502") || strings.Contains(errMsg, "not null")
}
