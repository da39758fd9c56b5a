// Package config defines core configuration types for unipatch.
// These types are pure data structures with no dependency on the loader.
package config

// DefaultContextLines is the number of context lines emitted around changes
// when generating diffs.
const DefaultContextLines = 3

// BackupsConfig controls how the pre-patch content is preserved.
type BackupsConfig struct {
	// Enabled indicates whether a backup is created before overwriting the
	// target. Nil means "not set" so that config layering can distinguish
	// an explicit false from an omitted field.
	Enabled *bool `yaml:"enabled"`

	// Mode specifies how backups are stored: "timestamp", "sidecar", or "none".
	Mode string `yaml:"mode"`
}

// Config is the root configuration structure for unipatch.
type Config struct {
	// Backups configures backup behavior for apply.
	Backups BackupsConfig `yaml:"backups"`

	// Context is the number of context lines for generated diffs.
	Context int `yaml:"context"`

	// CLI-level options (not persisted to config files).

	// DryRun applies the patch in memory and reports without writing.
	DryRun bool `yaml:"-"`

	// NoBackups disables backup creation for this invocation.
	NoBackups bool `yaml:"-"`

	// Preview prints the effective diff when applying.
	Preview bool `yaml:"-"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	enabled := true
	return &Config{
		Backups: BackupsConfig{
			Enabled: &enabled,
			Mode:    "timestamp",
		},
		Context: DefaultContextLines,
	}
}

// BackupsEnabled resolves the effective backup switch: the CLI kill switch
// wins, then the config value, then the default (enabled).
func (c *Config) BackupsEnabled() bool {
	if c == nil {
		return true
	}
	if c.NoBackups {
		return false
	}
	if c.Backups.Enabled != nil {
		return *c.Backups.Enabled
	}
	return true
}

// ContextLines resolves the effective diff context width.
func (c *Config) ContextLines() int {
	if c == nil || c.Context <= 0 {
		return DefaultContextLines
	}
	return c.Context
}
