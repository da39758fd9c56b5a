package configloader

import "github.com/yaklabco/unipatch/pkg/config"

// merge overlays non-empty fields of overlay onto base and returns base.
// Pointer fields distinguish "explicitly set" from "omitted"; value fields
// treat the zero value as omitted.
func merge(base, overlay *config.Config) *config.Config {
	if overlay == nil {
		return base
	}
	if base == nil {
		return overlay
	}

	if overlay.Backups.Enabled != nil {
		base.Backups.Enabled = overlay.Backups.Enabled
	}
	if overlay.Backups.Mode != "" {
		base.Backups.Mode = overlay.Backups.Mode
	}
	if overlay.Context > 0 {
		base.Context = overlay.Context
	}

	// CLI-only switches accumulate; they are never present in files.
	base.DryRun = base.DryRun || overlay.DryRun
	base.NoBackups = base.NoBackups || overlay.NoBackups
	base.Preview = base.Preview || overlay.Preview

	return base
}
