package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		DeviceID           string   `json:"device_id"`
		SaltedPasswordHash bool     `json:"salted_password_hash"`
		TokenSignKey       string   `json:"token_sign_key"`
		TokenIssuer        string   `json:"token_issuer"`
		TokenDuration      Duration `json:"token_duration"`
		SessionIdleTimeout Duration `json:"session_idle_timeout"`
		Version            string   `json:"version"`
	} `json:"app,omitempty"`

	Crypto struct {
		KDFAlgorithm    string `json:"kdf_algorithm"`
		KDFIterations   int    `json:"kdf_iterations"`
		RedactStoredKey bool   `json:"redact_stored_key"`
	} `json:"crypto,omitempty"`

	Storage struct {
		DB struct {
			Driver       string `json:"driver"`
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
		} `json:"db,omitempty"`

		Preferences struct {
			File string `json:"file"`
		} `json:"preferences,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SessionSweepInterval Duration `json:"session_sweep_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			DeviceID:           jsonCfg.App.DeviceID,
			SaltedPasswordHash: jsonCfg.App.SaltedPasswordHash,
			TokenSignKey:       jsonCfg.App.TokenSignKey,
			TokenIssuer:        jsonCfg.App.TokenIssuer,
			TokenDuration:      time.Duration(jsonCfg.App.TokenDuration),
			SessionIdleTimeout: time.Duration(jsonCfg.App.SessionIdleTimeout),
			Version:            jsonCfg.App.Version,
		},
		Crypto: Crypto{
			KDFAlgorithm:    jsonCfg.Crypto.KDFAlgorithm,
			KDFIterations:   jsonCfg.Crypto.KDFIterations,
			RedactStoredKey: jsonCfg.Crypto.RedactStoredKey,
		},
		Storage: Storage{
			DB: DB{
				Driver:       jsonCfg.Storage.DB.Driver,
				DSN:          jsonCfg.Storage.DB.DSN,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
			},
			Preferences: Preferences{
				File: jsonCfg.Storage.Preferences.File,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			SessionSweepInterval: time.Duration(jsonCfg.Workers.SessionSweepInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
