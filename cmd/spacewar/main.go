// spacewar is a two-pilot space duel for the terminal.
//
// Usage:
//
//	spacewar play            - Play a hot-seat match in this terminal
//	spacewar serve           - Host hot-seat matches over SSH
//	spacewar results         - Show recorded match results
//	spacewar config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--db <path>          - Set database path (default: ~/.spacewar/matches.db)
//	--config <path>      - Load a custom config YAML
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-spacewar/internal/config"
	"github.com/vovakirdan/tui-spacewar/internal/games/spacewar"
)

const gameID = "spacewar"

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spacewar",
	Short: "Space War - a two-ship duel in your terminal",
	Long: `Space War pits two pilots against each other on one keyboard.
Each ship carries a short-range phaser and a rack of photon torpedoes;
the field wraps at every edge.

Available commands:
  play     - Play a match in this terminal
  serve    - Start SSH server for remote hot-seat play
  results  - View recorded match results
  config   - Print the effective configuration

Examples:
  spacewar play
  spacewar play --config ./my-spacewar.yaml
  spacewar serve --ssh :2222
  spacewar results --browse`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		spacewar.SetConfigPath(flagConfig)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.spacewar/matches.db", "Path to match results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the game configuration or exits with an error.
func loadConfig() config.SpaceWarConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
