package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// NotFoundError reports that no row exists for the requested id.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// ConstraintError reports a foreign-key or uniqueness violation raised
// by the store. The referenced row either does not exist or is still
// referenced by other rows.
type ConstraintError struct {
	Entity string
	Inner  error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("constraint violated for %s: %v", e.Entity, e.Inner)
}

func (e *ConstraintError) Unwrap() error { return e.Inner }

// translate maps the store's errors onto the service error kinds.
// Relies on gorm's TranslateError so foreign-key and duplicate-key
// failures arrive as the sentinel errors regardless of driver.
func translate(err error, entity string, id uint) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Entity: entity, ID: id}
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return &ConstraintError{Entity: entity, Inner: err}
	}
	return err
}
