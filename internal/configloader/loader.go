package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/gomdless/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for a project config.
	// Defaults to the current working directory.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config).
	// When set, project and user config discovery is skipped.
	ExplicitPath string

	// IgnoreEnv skips environment variable overrides.
	IgnoreEnv bool

	// CLIConfig contains overrides from CLI flags; highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// LoadedFrom lists the files that were actually loaded, in order.
	LoadedFrom []string
}

// Load resolves the final configuration by merging all sources.
// Precedence, highest to lowest:
//  1. CLI flags
//  2. Environment variables (GOMDLESS_*)
//  3. Explicit config file (--config)
//  4. Project config (.gomdless.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/gomdless/config.yaml)
//  6. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	cfg := config.NewConfig()

	if opts.ExplicitPath != "" {
		if err := mergeFile(cfg, opts.ExplicitPath, result); err != nil {
			return nil, err
		}
	} else {
		paths, err := DiscoverPaths(ctx, workDir)
		if err != nil {
			return nil, err
		}
		for _, path := range []string{paths.User, paths.Project} {
			if path == "" {
				continue
			}
			if err := mergeFile(cfg, path, result); err != nil {
				return nil, err
			}
		}
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, err
		}
	}

	cfg.Merge(opts.CLIConfig)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	result.Config = cfg
	return result, nil
}

// mergeFile loads one YAML config file and overlays it onto cfg.
func mergeFile(cfg *config.Config, path string, result *LoadResult) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	loaded, err := config.FromYAML(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	cfg.Merge(loaded)
	result.LoadedFrom = append(result.LoadedFrom, path)
	return nil
}
