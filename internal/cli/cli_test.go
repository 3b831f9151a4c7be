package cli

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCodeForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", errors.New("boom"), ExitError},
		{"config error", fmt.Errorf("%w: bad yaml", errConfig), ExitConfigError},
		{"io error", fmt.Errorf("%w: no such file", errIO), ExitIOError},
		{"wrapped io error", fmt.Errorf("outer: %w", fmt.Errorf("%w: gone", errIO)), ExitIOError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := NewRootCommand(BuildInfo{Version: "test"})

	if cmd.Use != "gomdless <file>" {
		t.Errorf("Use = %q", cmd.Use)
	}

	// The file argument is mandatory.
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err == nil {
		t.Error("Execute() with no args = nil error, want usage error")
	}

	// Subcommands.
	found := false
	for _, sub := range cmd.Commands() {
		if sub.Name() == "version" {
			found = true
		}
	}
	if !found {
		t.Error("version subcommand not registered")
	}
}
