package validators

import (
	"context"

	"github.com/MKhiriev/go-secret-notes/models"
)

// Field names accepted by NoteValidator.
const (
	FieldID            = "id"
	FieldContent       = "content"
	FieldCipherContext = "cipher_context"
)

type NoteValidator struct{}

func NewNoteValidator() Validator {
	return &NoteValidator{}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NoteDraft:
		return v.validateDraft(value, fields...)
	case *models.NoteDraft:
		return v.validateDraft(*value, fields...)
	case models.Note:
		return v.validateNote(value, fields...)
	case *models.Note:
		return v.validateNote(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateDraft(draft models.NoteDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldContent:
			if draft.Content == "" {
				return ErrEmptyContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateNote(note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldContent, FieldCipherContext}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if note.ID == "" {
				return ErrEmptyNoteID
			}
		case FieldContent:
			if len(note.PrivateContent) == 0 {
				return ErrEmptyContent
			}
		case FieldCipherContext:
			if len(note.CipherContext) == 0 {
				return ErrEmptyCipherData
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
