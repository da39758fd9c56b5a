package configloader

import (
	"fmt"

	"github.com/yaklabco/unipatch/pkg/config"
	"github.com/yaklabco/unipatch/pkg/fsutil"
)

// ValidationError describes an invalid configuration field.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s (got %v)", e.Field, e.Message, e.Value)
}

// Validate checks the resolved configuration for invalid values.
func Validate(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	switch fsutil.BackupMode(cfg.Backups.Mode) {
	case fsutil.BackupModeTimestamp, fsutil.BackupModeSidecar, fsutil.BackupModeNone:
	default:
		if cfg.Backups.Mode != "" {
			return &ValidationError{
				Field:   "backups.mode",
				Value:   cfg.Backups.Mode,
				Message: "must be one of: timestamp, sidecar, none",
			}
		}
	}

	if cfg.Context < 0 {
		return &ValidationError{
			Field:   "context",
			Value:   cfg.Context,
			Message: "must be zero or positive",
		}
	}

	return nil
}
