package configloader

import (
	"errors"
	"strings"
	"testing"

	"github.com/yaklabco/unipatch/pkg/config"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr bool
	}{
		{
			name:    "nil config",
			cfg:     nil,
			wantErr: false,
		},
		{
			name:    "defaults",
			cfg:     config.NewConfig(),
			wantErr: false,
		},
		{
			name:    "empty mode is allowed",
			cfg:     &config.Config{},
			wantErr: false,
		},
		{
			name:    "sidecar mode",
			cfg:     &config.Config{Backups: config.BackupsConfig{Mode: "sidecar"}},
			wantErr: false,
		},
		{
			name:    "none mode",
			cfg:     &config.Config{Backups: config.BackupsConfig{Mode: "none"}},
			wantErr: false,
		},
		{
			name:    "unknown mode",
			cfg:     &config.Config{Backups: config.BackupsConfig{Mode: "zipfile"}},
			wantErr: true,
		},
		{
			name:    "negative context",
			cfg:     &config.Config{Context: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	t.Parallel()

	err := Validate(&config.Config{Backups: config.BackupsConfig{Mode: "zipfile"}})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() error = %T, want *ValidationError", err)
	}
	if verr.Field != "backups.mode" {
		t.Errorf("Field = %q, want %q", verr.Field, "backups.mode")
	}
	if !strings.Contains(verr.Error(), "zipfile") {
		t.Errorf("Error() = %q, missing offending value", verr.Error())
	}
}
