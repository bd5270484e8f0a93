package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-spacewar/internal/config"
	"github.com/vovakirdan/tui-spacewar/internal/core"
	"github.com/vovakirdan/tui-spacewar/internal/platform/tui"
	"github.com/vovakirdan/tui-spacewar/internal/registry"
	"github.com/vovakirdan/tui-spacewar/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start a hot-seat match in this terminal. Both pilots share the keyboard.

Default controls (change them under input: in the config):
  P1  A/D rotate  W thrust  Q phaser  E torpedo
  P2  J/L rotate  I thrust  U phaser  O torpedo  (arrows also work)

  P          - Pause
  R          - Restart (when paused or after the match)
  Esc/Ctrl+C - Quit

Terminals report no key release, so a key counts as held while it
auto-repeats (see input.hold_window_ms).

Examples:
  spacewar play
  spacewar play --fps 30
  spacewar play --config ./my-spacewar.yaml --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// runPlay returns its errors so deferred cleanup runs before main exits.
func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	var logOut io.Writer = io.Discard
	if f, err := openLogFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	} else {
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut)
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	// Continue without storage - the match still works
	var recorder tui.MatchRecorder
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open match database", "error", err)
	} else {
		defer store.Close()
		recorder = store
	}

	err = tui.Run(game, tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
		},
		Input:    cfg.Input,
		Recorder: recorder,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
