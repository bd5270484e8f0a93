package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-spacewar/internal/config"
)

// newLogger builds the CLI logger at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "spacewar",
		Level:           level,
	}), nil
}

// openLogFile opens ~/.spacewar/spacewar.log for appending. The full-screen
// TUI owns the terminal, so play sessions log there instead of stderr.
func openLogFile() (*os.File, error) {
	dir := config.UserDir()
	if dir == "" {
		return nil, errors.New("home directory unavailable")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return os.OpenFile(filepath.Join(dir, "spacewar.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}
