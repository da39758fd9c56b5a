package configloader

import (
	"testing"

	"github.com/yaklabco/unipatch/pkg/config"
)

func TestLoadFromEnv(t *testing.T) {
	t.Run("applies typed values", func(t *testing.T) {
		t.Setenv("UNIPATCH_DRY_RUN", "true")
		t.Setenv("UNIPATCH_BACKUPS_ENABLED", "false")
		t.Setenv("UNIPATCH_BACKUPS_MODE", "sidecar")
		t.Setenv("UNIPATCH_CONTEXT", "8")

		cfg := &config.Config{}
		if err := LoadFromEnv(cfg); err != nil {
			t.Fatalf("LoadFromEnv() error = %v", err)
		}

		if !cfg.DryRun {
			t.Error("DryRun not set from environment")
		}
		if cfg.Backups.Enabled == nil || *cfg.Backups.Enabled {
			t.Error("Backups.Enabled not set to false from environment")
		}
		if cfg.Backups.Mode != "sidecar" {
			t.Errorf("Backups.Mode = %q, want %q", cfg.Backups.Mode, "sidecar")
		}
		if cfg.Context != 8 {
			t.Errorf("Context = %d, want 8", cfg.Context)
		}
	})

	t.Run("unset variables leave config untouched", func(t *testing.T) {
		cfg := config.NewConfig()
		if err := LoadFromEnv(cfg); err != nil {
			t.Fatalf("LoadFromEnv() error = %v", err)
		}
		if cfg.Context != config.DefaultContextLines {
			t.Errorf("Context = %d, want default", cfg.Context)
		}
	})

	t.Run("invalid boolean", func(t *testing.T) {
		t.Setenv("UNIPATCH_DRY_RUN", "maybe")

		if err := LoadFromEnv(&config.Config{}); err == nil {
			t.Fatal("LoadFromEnv() accepted an invalid boolean")
		}
	})

	t.Run("invalid integer", func(t *testing.T) {
		t.Setenv("UNIPATCH_CONTEXT", "three")

		if err := LoadFromEnv(&config.Config{}); err == nil {
			t.Fatal("LoadFromEnv() accepted an invalid integer")
		}
	})

	t.Run("nil config is a no-op", func(t *testing.T) {
		if err := LoadFromEnv(nil); err != nil {
			t.Fatalf("LoadFromEnv(nil) error = %v", err)
		}
	})
}

func TestListEnvVars(t *testing.T) {
	t.Parallel()

	vars := ListEnvVars()
	for name := range envMappings {
		if _, ok := vars[envVarPrefix+name]; !ok {
			t.Errorf("ListEnvVars() missing %s", envVarPrefix+name)
		}
	}
}
