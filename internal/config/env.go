// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from APP_*, CRYPTO_*, STORAGE_*, SERVER_*, ADAPTER_*,
// WORKERS_* and CONFIG. Unset variables leave their fields zero so later
// sources and defaults can fill them.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}
