package config_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/unipatch/pkg/config"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()

	if cfg.Backups.Enabled == nil || !*cfg.Backups.Enabled {
		t.Error("backups should be enabled by default")
	}
	if cfg.Backups.Mode != "timestamp" {
		t.Errorf("Backups.Mode = %q, want %q", cfg.Backups.Mode, "timestamp")
	}
	if cfg.Context != config.DefaultContextLines {
		t.Errorf("Context = %d, want %d", cfg.Context, config.DefaultContextLines)
	}
}

func TestBackupsEnabled(t *testing.T) {
	t.Parallel()

	boolPtr := func(v bool) *bool { return &v }

	tests := []struct {
		name string
		cfg  *config.Config
		want bool
	}{
		{
			name: "nil config defaults to enabled",
			cfg:  nil,
			want: true,
		},
		{
			name: "unset field defaults to enabled",
			cfg:  &config.Config{},
			want: true,
		},
		{
			name: "explicit false",
			cfg:  &config.Config{Backups: config.BackupsConfig{Enabled: boolPtr(false)}},
			want: false,
		},
		{
			name: "no-backups switch wins over explicit true",
			cfg: &config.Config{
				Backups:   config.BackupsConfig{Enabled: boolPtr(true)},
				NoBackups: true,
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.cfg.BackupsEnabled(); got != tt.want {
				t.Errorf("BackupsEnabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContextLines(t *testing.T) {
	t.Parallel()

	var nilCfg *config.Config
	if got := nilCfg.ContextLines(); got != config.DefaultContextLines {
		t.Errorf("nil ContextLines() = %d", got)
	}

	cfg := &config.Config{Context: 5}
	if got := cfg.ContextLines(); got != 5 {
		t.Errorf("ContextLines() = %d, want 5", got)
	}

	cfg.Context = 0
	if got := cfg.ContextLines(); got != config.DefaultContextLines {
		t.Errorf("zero ContextLines() = %d, want default", got)
	}
}

func TestGenerateTemplate(t *testing.T) {
	t.Parallel()

	content, err := config.GenerateTemplate()
	if err != nil {
		t.Fatalf("GenerateTemplate() error = %v", err)
	}

	text := string(content)
	if !strings.HasPrefix(text, "# unipatch configuration") {
		t.Errorf("template missing header comment:\n%s", text)
	}
	for _, want := range []string{"backups:", "enabled: true", "mode: timestamp", "context: 3"} {
		if !strings.Contains(text, want) {
			t.Errorf("template missing %q:\n%s", want, text)
		}
	}
}
