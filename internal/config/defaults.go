package config

import "time"

// Default values applied to fields left empty by every source.
const (
	DefaultDriver               = DriverSQLite
	DefaultDSN                  = "notes.db"
	DefaultKDFAlgorithm         = "PBKDF2WithHmacSHA1"
	DefaultKDFIterations        = 10000
	DefaultMaxOpenConns         = 10
	DefaultHTTPAddress          = "localhost:8080"
	DefaultRequestTimeout       = 30 * time.Second
	DefaultShutdownTimeout      = 10 * time.Second
	DefaultTokenIssuer          = "go-secret-notes"
	DefaultTokenDuration        = 15 * time.Minute
	DefaultSessionIdleTimeout   = 5 * time.Minute
	DefaultSessionSweepInterval = time.Minute
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DefaultDriver
	}
	if cfg.Storage.DB.DSN == "" && cfg.Storage.DB.Driver == DriverSQLite {
		cfg.Storage.DB.DSN = DefaultDSN
	}
	if cfg.Storage.DB.MaxOpenConns == 0 {
		cfg.Storage.DB.MaxOpenConns = DefaultMaxOpenConns
	}
	if cfg.Crypto.KDFAlgorithm == "" {
		cfg.Crypto.KDFAlgorithm = DefaultKDFAlgorithm
	}
	if cfg.Crypto.KDFIterations == 0 {
		cfg.Crypto.KDFIterations = DefaultKDFIterations
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.SessionIdleTimeout == 0 {
		cfg.App.SessionIdleTimeout = DefaultSessionIdleTimeout
	}
	if cfg.Workers.SessionSweepInterval == 0 {
		cfg.Workers.SessionSweepInterval = DefaultSessionSweepInterval
	}
}
