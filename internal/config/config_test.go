package config

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load(nil) returned error: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load(nil) mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEnvironmentAndFlags(t *testing.T) {
	t.Setenv("CHESS_ADDR", ":9000")
	t.Setenv("CHESS_PLAYER1", "Alice")
	t.Setenv("CHESS_HIGHLIGHT", "off")
	t.Setenv("CHESS_LOG_LEVEL", "debug")

	cfg, err := Load([]string{"-addr", ":9100", "-player2", "Bob"})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	want := Default()
	want.Addr = ":9100"
	want.Player1Name = "Alice"
	want.Player2Name = "Bob"
	want.HighlightMoves = false
	want.LogLevel = "debug"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}

	level, err := cfg.Level()
	if err != nil || level != slog.LevelDebug {
		t.Errorf("Level() = %v, %v; want debug", level, err)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-bogus"}},
		{"empty address", []string{"-addr", " "}},
		{"empty name", []string{"-player1", ""}},
		{"bad level", []string{"-log-level", "loud"}},
		{"zero buffer", []string{"-ws-read-buffer", "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.args); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Load(%q) error = %v, want ErrInvalidConfig", tt.args, err)
			}
		})
	}
}
