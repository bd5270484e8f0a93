package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-spacewar/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a match would run with, as YAML.

Lookup order:
  1. --config path
  2. ~/.spacewar/configs/spacewar.yaml
  3. ./configs/spacewar.yaml
  4. built-in defaults

Examples:
  spacewar config
  spacewar config > ~/.spacewar/configs/spacewar.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	data, err := config.Dump(loadConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
