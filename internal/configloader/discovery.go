// Package configloader resolves the gomdless configuration from its
// sources: defaults, user config under XDG, a project config discovered
// by upward search, GOMDLESS_* environment variables, and CLI flags.
package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// ConfigPaths represents discovered configuration file paths. Missing
// files are empty strings, not errors.
type ConfigPaths struct {
	// User is the user-level config path
	// (e.g., ~/.config/gomdless/config.yaml).
	User string

	// Project is the project-level config path (e.g., ./.gomdless.yml).
	Project string

	// Explicit is a config path provided via --config.
	Explicit string
}

// configFileNames are the project config file names we search for, in
// order of preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var configFileNames = []string{
	".gomdless.yml",
	".gomdless.yaml",
	"gomdless.yml",
	"gomdless.yaml",
}

// vcsRootMarkers are directories that stop the upward search.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// DiscoverPaths finds configuration files in standard locations.
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context cancelled: %w", err)
	}

	paths := &ConfigPaths{
		User: findUserConfig(),
	}

	project, err := findProjectConfig(workDir)
	if err != nil {
		return nil, err
	}
	paths.Project = project

	return paths, nil
}

// findUserConfig looks for $XDG_CONFIG_HOME/gomdless/config.{yaml,yml}.
func findUserConfig() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}

	for _, name := range []string{"config.yaml", "config.yml"} {
		path := filepath.Join(configHome, "gomdless", name)
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// findProjectConfig searches upward from workDir for a project config,
// stopping at a VCS root or the filesystem root.
func findProjectConfig(workDir string) (string, error) {
	dir, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}

	for {
		for _, name := range configFileNames {
			path := filepath.Join(dir, name)
			if fileExists(path) {
				return path, nil
			}
		}

		if isVCSRoot(dir) {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
