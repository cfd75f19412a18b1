package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv replaces cfg with the configuration read from the process
// environment. Unset variables leave their fields zero so that the merge in
// [configBuilder] keeps values from lower-priority sources.
func parseEnv(cfg *StructuredConfig) error {
	fromEnv, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	*cfg = fromEnv
	return nil
}
