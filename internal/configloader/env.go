package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yaklabco/unipatch/pkg/config"
)

// envVarPrefix is the prefix for all unipatch environment variables.
const envVarPrefix = "UNIPATCH_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"DRY_RUN":         {field: "dry_run", typ: envTypeBool},
	"NO_BACKUPS":      {field: "no_backups", typ: envTypeBool},
	"BACKUPS_ENABLED": {field: "backups.enabled", typ: envTypeBool},
	"BACKUPS_MODE":    {field: "backups.mode", typ: envTypeString},
	"CONTEXT":         {field: "context", typ: envTypeInt},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with UNIPATCH_ (e.g., UNIPATCH_DRY_RUN).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, parsed)
	case envTypeInt:
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, parsed)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "backups.mode":
		cfg.Backups.Mode = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "dry_run":
		cfg.DryRun = value
	case "no_backups":
		cfg.NoBackups = value
	case "backups.enabled":
		cfg.Backups.Enabled = &value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "context":
		cfg.Context = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// ListEnvVars returns the supported environment variables with descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"UNIPATCH_DRY_RUN":         "Dry-run mode: true or false",
		"UNIPATCH_NO_BACKUPS":      "Disable backups: true or false",
		"UNIPATCH_BACKUPS_ENABLED": "Enable backups before overwriting: true or false",
		"UNIPATCH_BACKUPS_MODE":    "Backup mode: timestamp, sidecar, or none",
		"UNIPATCH_CONTEXT":         "Context lines for generated diffs",
	}
}
