package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunPlayReturnsErrors(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	prevConfig, prevLevel := flagConfig, flagLogLevel
	t.Cleanup(func() { flagConfig, flagLogLevel = prevConfig, prevLevel })

	tests := []struct {
		name     string
		config   string
		level    string
		expected string
	}{
		{"missing config", filepath.Join(home, "missing.yaml"), "info", "missing.yaml"},
		{"bad log level", "", "loud", "--log-level"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			flagConfig, flagLogLevel = tc.config, tc.level
			err := runPlay(playCmd, nil)
			if err == nil || !strings.Contains(err.Error(), tc.expected) {
				t.Errorf("runPlay() = %v, expected an error mentioning %q", err, tc.expected)
			}
		})
	}

	// The log file was opened for the bad level run and released on return.
	logPath := filepath.Join(home, ".spacewar", "spacewar.log")
	if _, err := os.Stat(logPath); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}

func TestNewLogger(t *testing.T) {
	prev := flagLogLevel
	t.Cleanup(func() { flagLogLevel = prev })

	for _, level := range []string{"debug", "info", "warn", "error"} {
		flagLogLevel = level
		if _, err := newLogger(os.Stderr); err != nil {
			t.Errorf("newLogger(%q) error: %v", level, err)
		}
	}
}
