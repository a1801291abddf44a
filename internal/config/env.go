package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Variable names come from
// the env and envPrefix tags on [StructuredConfig]; unset variables leave
// the zero value so later sources and defaults can fill them.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{}); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}
