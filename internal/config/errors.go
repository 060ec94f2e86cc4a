package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, a daemon address without a request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an unknown driver or an empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidCryptoConfigs indicates invalid key derivation settings.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
