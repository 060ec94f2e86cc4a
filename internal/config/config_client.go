package config

import (
	"fmt"
)

// ClientConfig is the configuration view used by the notes CLI.
type ClientConfig struct {
	App     App
	Crypto  Crypto
	Storage Storage
	Adapter Adapter
}

// GetClientConfig builds the CLI configuration from environment variables
// and the optional JSON file at jsonPath. The CLI parses its own flags and
// applies them on top of the returned value.
func GetClientConfig(jsonPath string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSONPath(jsonPath).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App:     cfg.App,
		Crypto:  cfg.Crypto,
		Storage: cfg.Storage,
		Adapter: cfg.Adapter,
	}

	return clientCfg, clientCfg.validate()
}
