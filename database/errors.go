package database

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "github.com/commercekit/storefront/errors"
)

// IsNotFound reports whether the error is a GORM record-not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicate reports whether the error is a unique-constraint violation.
// GORM translates driver errors to ErrDuplicatedKey when TranslateError is
// set; the string fallback catches drivers that predate the translation.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "unique constraint") ||
		strings.Contains(errStr, "duplicate key")
}

// IsConnectionError reports whether the error looks like a transient
// connectivity failure worth retrying.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	for _, p := range []string{
		"connection refused",
		"connection reset",
		"broken pipe",
		"i/o timeout",
		"driver: bad connection",
	} {
		if strings.Contains(errStr, p) {
			return true
		}
	}
	return false
}

// FromDatabase converts a database error into an AppError. Not-found and
// duplicate-key violations map to their resource-level errors; everything
// else becomes a generic database error.
func FromDatabase(err error, resource string) *apperrors.AppError {
	if err == nil {
		return nil
	}
	if IsNotFound(err) {
		return apperrors.NotFound(resource)
	}
	if IsDuplicate(err) {
		return apperrors.AlreadyExists(resource + " already exists.").WithCause(err)
	}
	return apperrors.DatabaseError(err)
}
