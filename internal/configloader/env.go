package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yaklabco/gomdless/pkg/config"
)

// envVarPrefix is the prefix for all gomdless environment variables.
const envVarPrefix = "GOMDLESS_"

// LoadFromEnv applies environment variable overrides to the
// configuration. Variables are prefixed with GOMDLESS_
// (e.g., GOMDLESS_COLOR=never).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if v := os.Getenv(envVarPrefix + "COLOR"); v != "" {
		cfg.Color = v
	}
	if v := os.Getenv(envVarPrefix + "MODE"); v != "" {
		cfg.Mode = v
	}
	if v := os.Getenv(envVarPrefix + "LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv(envVarPrefix + "PAGE_LINES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sPAGE_LINES: invalid integer %q", envVarPrefix, v)
		}
		cfg.PageLines = n
	}
	if v := os.Getenv(envVarPrefix + "SPLIT_WIDTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sSPLIT_WIDTH: invalid integer %q", envVarPrefix, v)
		}
		cfg.SplitWidth = n
	}

	return nil
}
