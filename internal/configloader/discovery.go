// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, hierarchical merging,
// environment variable support, and validation.
package configloader

import (
	"os"
	"path/filepath"
)

// ConfigPaths represents discovered configuration file paths.
type ConfigPaths struct {
	// System is the system-wide config path (e.g., /etc/unipatch/config.yaml).
	System string

	// User is the user-level config path (e.g., ~/.config/unipatch/config.yaml).
	User string

	// Project is the project-level config path (e.g., ./.unipatch.yml).
	Project string

	// Explicit is a config path provided via --config flag.
	Explicit string
}

// projectConfigFiles are the config file names we search for, in order of
// preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var projectConfigFiles = []string{
	".unipatch.yml",
	".unipatch.yaml",
	"unipatch.yml",
	"unipatch.yaml",
}

// vcsRootMarkers are directories that indicate a VCS root and stop the
// upward project-config search.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// DiscoverPaths finds configuration files in standard locations:
//   - System config at /etc/unipatch/config.{yaml,yml}
//   - User config at $XDG_CONFIG_HOME/unipatch/config.{yaml,yml}
//   - Project config by searching upward from workDir for .unipatch.{yml,yaml}
func DiscoverPaths(workDir string) ConfigPaths {
	return ConfigPaths{
		System:  firstExisting("/etc/unipatch/config.yaml", "/etc/unipatch/config.yml"),
		User:    discoverUserConfig(),
		Project: discoverProjectConfig(workDir),
	}
}

func discoverUserConfig() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	dir := filepath.Join(configHome, "unipatch")
	return firstExisting(filepath.Join(dir, "config.yaml"), filepath.Join(dir, "config.yml"))
}

// discoverProjectConfig searches upward from workDir, stopping after a
// directory containing a VCS root marker.
func discoverProjectConfig(workDir string) string {
	dir := workDir
	for {
		for _, name := range projectConfigFiles {
			candidate := filepath.Join(dir, name)
			if fileExists(candidate) {
				return candidate
			}
		}

		if isVCSRoot(dir) {
			return ""
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
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

func firstExisting(paths ...string) string {
	for _, path := range paths {
		if fileExists(path) {
			return path
		}
	}
	return ""
}

func fileExists(path string) bool {
	stat, err := os.Stat(path)
	return err == nil && !stat.IsDir()
}
