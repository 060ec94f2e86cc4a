package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secret-notes/internal/crypto"
	"github.com/MKhiriev/go-secret-notes/internal/logger"
	"github.com/MKhiriev/go-secret-notes/internal/store"
	"github.com/MKhiriev/go-secret-notes/internal/utils"
	"github.com/MKhiriev/go-secret-notes/internal/validators"
	"github.com/MKhiriev/go-secret-notes/models"
)

// noteService encrypts drafts into notes and decrypts them back. Keys live
// only for the duration of one call and are wiped before returning.
type noteService struct {
	notes     store.NoteRepository
	cipher    crypto.NoteCipher
	passwords MasterPasswordService

	passwordValidator validators.Validator
	noteValidator     validators.Validator

	ids   utils.IDGenerator
	clock Clock

	logger *logger.Logger
}

// NoteServiceOpt configures a [NoteService].
type NoteServiceOpt func(*noteService)

// WithIDGenerator replaces the UUIDv7 note ID generator.
func WithIDGenerator(ids utils.IDGenerator) NoteServiceOpt {
	return func(s *noteService) {
		s.ids = ids
	}
}

// WithNoteClock replaces the clock stamping CreatedAt.
func WithNoteClock(clock Clock) NoteServiceOpt {
	return func(s *noteService) {
		s.clock = clock
	}
}

func NewNoteService(notes store.NoteRepository, cipher crypto.NoteCipher, passwords MasterPasswordService, logger *logger.Logger, opts ...NoteServiceOpt) NoteService {
	s := &noteService{
		notes:             notes,
		cipher:            cipher,
		passwords:         passwords,
		passwordValidator: validators.NewPasswordValidator(),
		noteValidator:     validators.NewNoteValidator(),
		ids:               utils.NewUUIDGenerator(),
		clock:             SystemClock(),
		logger:            logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create encrypts draft under password. The password has to be strong and
// equal to the master password.
func (s *noteService) Create(ctx context.Context, session *Session, password string, draft models.NoteDraft) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := session.Touch(); err != nil {
		return models.Note{}, err
	}
	if err := s.noteValidator.Validate(ctx, draft, validators.FieldContent); err != nil {
		return models.Note{}, err
	}
	if err := s.passwordValidator.Validate(ctx, password); err != nil {
		return models.Note{}, err
	}

	ok, err := s.passwords.Check(ctx, password)
	if err != nil {
		return models.Note{}, err
	}
	if !ok {
		return models.Note{}, ErrWrongPassword
	}

	cc, key, err := s.cipher.NewContext(password)
	if err != nil {
		log.Err(err).Str("func", "*noteService.Create").Msg("error creating cipher context")
		return models.Note{}, fmt.Errorf("error creating cipher context: %w", err)
	}
	defer crypto.Wipe(key)
	defer cc.Wipe()

	note := models.Note{
		ID:            s.ids.Generate(),
		PublicTitle:   draft.PublicTitle,
		CreatedAt:     s.clock.Now().UTC(),
		CipherContext: s.cipher.Serialize(cc),
	}

	if draft.PrivateTitle != nil {
		encrypted, encErr := s.cipher.Encrypt(*draft.PrivateTitle, key, cc)
		if encErr != nil {
			return models.Note{}, fmt.Errorf("error encrypting private title: %w", encErr)
		}
		field := models.EncryptedField(encrypted)
		note.PrivateTitle = &field
	}

	content, err := s.cipher.Encrypt(draft.Content, key, cc)
	if err != nil {
		return models.Note{}, fmt.Errorf("error encrypting content: %w", err)
	}
	note.PrivateContent = content

	if err = s.notes.InsertNote(ctx, note); err != nil {
		log.Err(err).Str("func", "*noteService.Create").Str("id", note.ID).Msg("error saving note")
		return models.Note{}, fmt.Errorf("error saving note: %w", err)
	}

	log.Info().Str("func", "*noteService.Create").Str("id", note.ID).Msg("note created")
	return note, nil
}

func (s *noteService) List(ctx context.Context, session *Session) ([]models.Note, error) {
	if err := session.Touch(); err != nil {
		return nil, err
	}

	notes, err := s.notes.GetAllNotes(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*noteService.List").Msg("error listing notes")
		return nil, fmt.Errorf("error listing notes: %w", err)
	}
	return notes, nil
}

// Open decrypts the note with id. The key is re-derived from password and
// the stored salt, so a wrong password surfaces as crypto.ErrDecodeFailure.
func (s *noteService) Open(ctx context.Context, session *Session, id, password string) (models.DecipheredNote, error) {
	log := logger.FromContext(ctx)

	if err := session.Touch(); err != nil {
		return models.DecipheredNote{}, err
	}
	if id == "" {
		return models.DecipheredNote{}, validators.ErrEmptyNoteID
	}

	note, err := s.notes.GetNote(ctx, id)
	if err != nil {
		return models.DecipheredNote{}, fmt.Errorf("error loading note: %w", err)
	}

	cc, err := crypto.ParseCipherContext(note.CipherContext)
	if err != nil {
		log.Err(err).Str("func", "*noteService.Open").Str("id", id).Msg("stored cipher context is malformed")
		return models.DecipheredNote{}, err
	}
	defer cc.Wipe()

	key, err := s.cipher.Unlock(password, cc)
	if err != nil {
		return models.DecipheredNote{}, err
	}
	defer crypto.Wipe(key)

	opened := models.DecipheredNote{
		ID:          note.ID,
		PublicTitle: note.PublicTitle,
		CreatedAt:   note.CreatedAt,
	}

	if note.PrivateTitle != nil {
		title, decErr := s.cipher.Decrypt(*note.PrivateTitle, key, cc)
		if decErr != nil {
			return models.DecipheredNote{}, s.decodeFailed(ctx, id, decErr)
		}
		opened.PrivateTitle = &title
	}

	opened.Content, err = s.cipher.Decrypt(note.PrivateContent, key, cc)
	if err != nil {
		return models.DecipheredNote{}, s.decodeFailed(ctx, id, err)
	}

	if err = session.Remember(opened); err != nil {
		return models.DecipheredNote{}, err
	}
	return opened, nil
}

func (s *noteService) Delete(ctx context.Context, session *Session, id string) error {
	if err := session.Touch(); err != nil {
		return err
	}
	if id == "" {
		return validators.ErrEmptyNoteID
	}

	if err := s.notes.DeleteNote(ctx, id); err != nil {
		return fmt.Errorf("error deleting note: %w", err)
	}
	session.Forget(id)

	logger.FromContext(ctx).Info().Str("func", "*noteService.Delete").Str("id", id).Msg("note deleted")
	return nil
}

func (s *noteService) decodeFailed(ctx context.Context, id string, err error) error {
	if errors.Is(err, crypto.ErrDecodeFailure) {
		logger.FromContext(ctx).Warn().Str("func", "*noteService.Open").Str("id", id).Msg("note did not decode, wrong password or corrupt data")
	}
	return err
}
