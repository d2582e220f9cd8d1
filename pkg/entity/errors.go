package entity

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrUnknownCategory is returned for category names or ids that do not exist
	ErrUnknownCategory = errors.New("unknown entity category")
	// ErrUnknownClass is returned for class names or ids that do not exist in a category
	ErrUnknownClass = errors.New("unknown entity class")
	// ErrShortArray is returned when a wire array has fewer fields than the type needs
	ErrShortArray = errors.New("entity array too short")
	// ErrInvalidField is returned when a wire array field has the wrong type
	ErrInvalidField = errors.New("invalid entity array field")
)

func newUnknownCategory(name string) error {
	return errors.Wrapf(ErrUnknownCategory, "category %q", name)
}

func newUnknownClass(category Category, class string) error {
	return errors.Wrapf(ErrUnknownClass, "%s class %q", category, class)
}

func newShortArray(kind Kind, want, got int) error {
	return errors.Wrapf(ErrShortArray, "%s: want %d fields, got %d", kind, want, got)
}
