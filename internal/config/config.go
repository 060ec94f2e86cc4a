// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the notes
// daemon and CLI. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds master password, session and token settings.
	App App `envPrefix:"APP_"`

	// Crypto holds key derivation and cipher context settings.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// Storage holds configuration of the note database and the preference store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the daemon listen address and timeouts.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the address of a remote daemon used by the CLI.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings of the password gate.
type App struct {
	// DeviceID is mixed into the salted master password hash. When empty a
	// random identifier is generated once and kept in the preference store.
	// Env: APP_DEVICE_ID
	DeviceID string `env:"DEVICE_ID"`

	// SaltedPasswordHash selects the device-salted SHA-512 master password
	// hash. Stored legacy hashes are upgraded on the next successful login.
	// Env: APP_SALTED_PASSWORD_HASH
	SaltedPasswordHash bool `env:"SALTED_PASSWORD_HASH"`

	// TokenSignKey is the secret used to sign daemon session tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// SessionIdleTimeout invalidates daemon sessions that were not used for
	// this long.
	// Env: APP_SESSION_IDLE_TIMEOUT
	SessionIdleTimeout time.Duration `env:"SESSION_IDLE_TIMEOUT"`

	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Crypto holds note encryption settings.
type Crypto struct {
	// KDFAlgorithm is the PBKDF2 variant name, PBKDF2WithHmacSHA1 by default.
	// Stored notes do not record it: the first start pins the algorithm and
	// the iteration count in the preference store, and a later start with
	// other values fails instead of leaving every note unreadable.
	// Env: CRYPTO_KDF_ALGORITHM
	KDFAlgorithm string `env:"KDF_ALGORITHM"`

	// KDFIterations is the PBKDF2 iteration count. Pinned with KDFAlgorithm.
	// Env: CRYPTO_KDF_ITERATIONS
	KDFIterations int `env:"KDF_ITERATIONS"`

	// RedactStoredKey writes zeros in place of the derived key inside
	// persisted cipher contexts.
	// Env: CRYPTO_REDACT_STORED_KEY
	RedactStoredKey bool `env:"REDACT_STORED_KEY"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Preferences holds the preference store settings.
	Preferences Preferences `envPrefix:"PREFERENCES_"`
}

// DB holds connection settings for the note database.
type DB struct {
	// Driver is "sqlite" or "postgres".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the SQLite file path or PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns bounds the PostgreSQL connection pool. SQLite always
	// uses a single connection.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`
}

// Preferences selects where the master password record and the login
// backoff timestamp are kept.
type Preferences struct {
	// File is the path of a JSON preference file. When empty preferences
	// are stored in the note database.
	// Env: STORAGE_PREFERENCES_FILE
	File string `env:"FILE"`
}

// Server holds network and timeout settings of the daemon.
type Server struct {
	// HTTPAddress is the TCP address the daemon listens on, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Adapter holds the settings of the CLI to daemon client.
type Adapter struct {
	// HTTPAddress is the daemon base URL, e.g. "http://localhost:8080".
	// Empty means the CLI works on the local store directly.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout of every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SessionSweepInterval is how often idle daemon sessions are collected.
	// Env: WORKERS_SESSION_SWEEP_INTERVAL
	SessionSweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
