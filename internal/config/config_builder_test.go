package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that an empty builder yields the defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultKDFAlgorithm, cfg.Crypto.KDFAlgorithm)
	assert.Equal(t, DefaultKDFIterations, cfg.Crypto.KDFIterations)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, DefaultSessionIdleTimeout, cfg.App.SessionIdleTimeout)
	assert.False(t, cfg.App.SaltedPasswordHash)
	assert.False(t, cfg.Crypto.RedactStoredKey)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies override order across sources.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0", TokenIssuer: "env"}},
		&StructuredConfig{App: App{TokenIssuer: "flags"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "flags", cfg.App.TokenIssuer)
}

func TestBuild_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{
			name:    "unknown driver",
			cfg:     StructuredConfig{Storage: Storage{DB: DB{Driver: "mysql", DSN: "x"}}},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "postgres without dsn",
			cfg:     StructuredConfig{Storage: Storage{DB: DB{Driver: DriverPostgres}}},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "negative iterations",
			cfg:     StructuredConfig{Crypto: Crypto{KDFIterations: -1}},
			wantErr: ErrInvalidCryptoConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			cfg := tt.cfg
			b.configs = append(b.configs, &cfg)

			_, err := b.build()
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withEnv / withFlags ───────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_VERSION":      "env-version",
		"APP_TOKEN_ISSUER": "env-issuer",
	})

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-issuer", b.configs[0].App.TokenIssuer)
}

func TestWithFlags_SetsErrorOnBadFlags(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-nope"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/nonexistent/config.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Version)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// ── entry points ──────────────────────────────────────────────────────────────

func TestGetStructuredConfig_FlagsOverrideEnv(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_ADDRESS": "localhost:1111"})

	cfg, err := GetStructuredConfig([]string{"-a", "localhost:2222"})
	require.NoError(t, err)
	assert.Equal(t, "localhost:2222", cfg.Server.HTTPAddress)
}

func TestGetClientConfig_ReadsJSON(t *testing.T) {
	clearEnvVars(t)

	payload := StructuredJSONConfig{}
	payload.Adapter.HTTPAddress = "http://localhost:8080"
	payload.Crypto.KDFIterations = 500
	path := writeTempJSONConfig(t, payload)

	cfg, err := GetClientConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 500, cfg.Crypto.KDFIterations)
}
