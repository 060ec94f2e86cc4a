package validators

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secret-notes/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrWeakPassword    = errors.New("password does not meet strength requirements")
	ErrEmptyContent    = errors.New("note content is required")
	ErrEmptyNoteID     = errors.New("note id is required")
	ErrEmptyCipherData = errors.New("note cipher context is required")
)

// ValidationError carries the first failed password rule.
type ValidationError struct {
	Result models.ValidationResult
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrWeakPassword, Reason(e.Result))
}

// Unwrap lets errors.Is match ErrWeakPassword.
func (e *ValidationError) Unwrap() error {
	return ErrWeakPassword
}
