package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-secret-notes/internal/config"
	"github.com/MKhiriev/go-secret-notes/internal/logger"
	"github.com/MKhiriev/go-secret-notes/internal/store"
	"github.com/MKhiriev/go-secret-notes/internal/validators"
	"github.com/MKhiriev/go-secret-notes/models"
)

// masterPasswordService stores the master password hash and the algorithm
// it was written with in a [store.PreferenceStore].
type masterPasswordService struct {
	prefs     store.PreferenceStore
	current   PasswordHasher
	legacy    PasswordHasher
	validator validators.Validator

	// configuredDeviceID overrides the persisted device identifier.
	configuredDeviceID string

	// mu serializes writes of the password record and lazy device ID
	// creation.
	mu sync.Mutex

	// saving is true while a new password is being written.
	saving atomic.Bool

	logger *logger.Logger
}

// NewMasterPasswordService constructs a [MasterPasswordService]. cfg selects
// the current hashing algorithm and an optional fixed device ID.
func NewMasterPasswordService(prefs store.PreferenceStore, cfg config.App, logger *logger.Logger) MasterPasswordService {
	current, _ := NewPasswordHasher(CurrentHashingAlgorithm(cfg.SaltedPasswordHash))
	legacy, _ := NewPasswordHasher(HashingSHA512)

	return &masterPasswordService{
		prefs:              prefs,
		current:            current,
		legacy:             legacy,
		validator:          validators.NewPasswordValidator(),
		configuredDeviceID: cfg.DeviceID,
		logger:             logger,
	}
}

func (s *masterPasswordService) State(ctx context.Context) (models.PasswordState, error) {
	if s.saving.Load() {
		return models.SavingNewPassword, nil
	}

	mp, err := s.Load(ctx)
	if err != nil {
		return models.NoPasswordSet, err
	}
	if mp.IsSet() {
		return models.PasswordSet, nil
	}
	return models.NoPasswordSet, nil
}

func (s *masterPasswordService) Load(ctx context.Context) (models.MasterPassword, error) {
	hash, ok, err := s.prefs.Get(ctx, PrefPassword)
	if err != nil {
		return models.MasterPassword{}, fmt.Errorf("error reading master password: %w", err)
	}

	method, found, err := s.prefs.Get(ctx, PrefHashingMethod)
	if err != nil {
		return models.MasterPassword{}, fmt.Errorf("error reading password hashing method: %w", err)
	}
	if !found || method == "" {
		method = DefaultHashingAlgorithm
	}

	mp := models.MasterPassword{HashingAlgorithm: method}
	if ok {
		mp.HashedPassword = &hash
	}
	return mp, nil
}

// Set stores password. Both preference keys are written in one Put so a
// crash never leaves a hash without its algorithm.
func (s *masterPasswordService) Set(ctx context.Context, password string) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, password); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	mp, err := s.Load(ctx)
	if err != nil {
		return err
	}
	if mp.IsSet() {
		return ErrPasswordAlreadySet
	}

	deviceID, err := s.saltLocked(ctx)
	if err != nil {
		return err
	}

	s.saving.Store(true)
	defer s.saving.Store(false)

	err = s.prefs.Put(ctx, map[string]string{
		PrefPassword:      s.current.Hash(password, deviceID),
		PrefHashingMethod: s.current.Algorithm(),
	})
	if err != nil {
		log.Err(err).Str("func", "*masterPasswordService.Set").Msg("error saving master password")
		return fmt.Errorf("error saving master password: %w", err)
	}

	log.Info().Str("func", "*masterPasswordService.Set").Str("algorithm", s.current.Algorithm()).Msg("master password saved")
	return nil
}

// Check compares candidate with the stored record. A legacy record is
// accepted under the salted algorithm and rewritten on success; any other
// algorithm difference is ErrAlgorithmMismatch.
func (s *masterPasswordService) Check(ctx context.Context, candidate string) (bool, error) {
	mp, err := s.Load(ctx)
	if err != nil {
		return false, err
	}
	if !mp.IsSet() {
		return false, ErrPasswordNotSet
	}

	if mp.HashingAlgorithm != s.current.Algorithm() {
		if mp.HashingAlgorithm == HashingSHA512 && s.current.Algorithm() == HashingSHA512DeviceSalted {
			return s.migrate(ctx, candidate, *mp.HashedPassword)
		}
		return false, fmt.Errorf("%w: stored %q, current %q", ErrAlgorithmMismatch, mp.HashingAlgorithm, s.current.Algorithm())
	}

	s.mu.Lock()
	deviceID, err := s.saltLocked(ctx)
	s.mu.Unlock()
	if err != nil {
		return false, err
	}
	return hashesEqual(s.current.Hash(candidate, deviceID), *mp.HashedPassword), nil
}

func (s *masterPasswordService) migrate(ctx context.Context, candidate, stored string) (bool, error) {
	log := logger.FromContext(ctx)

	if !hashesEqual(s.legacy.Hash(candidate, ""), stored) {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	deviceID, err := s.saltLocked(ctx)
	if err != nil {
		return false, err
	}

	err = s.prefs.Put(ctx, map[string]string{
		PrefPassword:      s.current.Hash(candidate, deviceID),
		PrefHashingMethod: s.current.Algorithm(),
	})
	if err != nil {
		// the legacy comparison succeeded; the upgrade is retried next login
		log.Err(err).Str("func", "*masterPasswordService.migrate").Msg("error upgrading master password hash")
		return true, nil
	}

	log.Info().Str("func", "*masterPasswordService.migrate").
		Str("from", HashingSHA512).
		Str("to", s.current.Algorithm()).
		Msg("master password hash upgraded")
	return true, nil
}

func (s *masterPasswordService) DeviceID(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deviceIDLocked(ctx)
}

// saltLocked returns the device ID when the current algorithm uses it.
func (s *masterPasswordService) saltLocked(ctx context.Context) (string, error) {
	if s.current.Algorithm() != HashingSHA512DeviceSalted {
		return "", nil
	}
	return s.deviceIDLocked(ctx)
}

func (s *masterPasswordService) deviceIDLocked(ctx context.Context) (string, error) {
	if s.configuredDeviceID != "" {
		return s.configuredDeviceID, nil
	}

	id, ok, err := s.prefs.Get(ctx, PrefDeviceID)
	if err != nil {
		return "", fmt.Errorf("error reading device id: %w", err)
	}
	if ok && id != "" {
		return id, nil
	}

	id = uuid.NewString()
	if err = s.prefs.Put(ctx, map[string]string{PrefDeviceID: id}); err != nil {
		return "", fmt.Errorf("error saving device id: %w", err)
	}
	return id, nil
}
