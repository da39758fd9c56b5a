package logging

import (
	"context"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level string
		want  log.Level
	}{
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"DEBUG", log.DebugLevel},
		{"bogus", log.InfoLevel},
		{"", log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()

			logger := New(tt.level)
			if logger.GetLevel() != tt.want {
				t.Errorf("New(%q).GetLevel() = %v, want %v", tt.level, logger.GetLevel(), tt.want)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	if Default() == nil {
		t.Fatal("Default() returned nil")
	}
	if Default() != Default() {
		t.Error("Default() is not stable")
	}
}

func TestFromContext(t *testing.T) {
	t.Run("nil context falls back to default", func(t *testing.T) {
		//nolint:staticcheck // Deliberately exercising the nil-context path.
		if FromContext(nil) != Default() {
			t.Error("FromContext(nil) != Default()")
		}
	})

	t.Run("plain context falls back to default", func(t *testing.T) {
		if FromContext(context.Background()) != Default() {
			t.Error("FromContext(background) != Default()")
		}
	})

	t.Run("attached logger is returned", func(t *testing.T) {
		logger := New("debug")
		ctx := WithLogger(context.Background(), logger)
		if FromContext(ctx) != logger {
			t.Error("FromContext() did not return the attached logger")
		}
	})
}
