// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the merged [StructuredConfig] after defaults have been
// applied.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty dsn", ErrInvalidStorageConfigs)
	}

	if cfg.Crypto.KDFIterations < 1 {
		return fmt.Errorf("%w: kdf iterations must be positive", ErrInvalidCryptoConfigs)
	}

	if cfg.App.TokenDuration < 0 || cfg.App.SessionIdleTimeout < 0 {
		return fmt.Errorf("%w: negative durations", ErrInvalidAppConfigs)
	}

	if cfg.Workers.SessionSweepInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress != "" && cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
