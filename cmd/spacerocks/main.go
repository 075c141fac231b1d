// spacerocks is an arcade shooter: steer a ship through a field of
// space rocks, with keyboard or any mapped joystick.
//
// Usage:
//
//	spacerocks play              - Start the game
//	spacerocks mappings          - Inspect the controller mapping table
//	spacerocks init              - Write default config and mapping files
//
// Global flags:
//
//	--config <path>  - Game configuration file (default: built-in defaults)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagConfig string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spacerocks",
	Short: "Space Rocks - dodge the rocks, fly the ship",
	Long: `Space Rocks is a small arcade game: a ship, a rock field, and a
debug overlay for inspecting controller input.

Available commands:
  play      - Start the game (windowed, or --headless for a smoke run)
  mappings  - Validate and list the controller mapping table
  init      - Write default config and controller mapping files

Examples:
  spacerocks play
  spacerocks play --config ./spacerocks.yaml --overlay
  spacerocks play --headless --frames 550
  spacerocks mappings --file ./controllers.yaml
  spacerocks init --config ./spacerocks.yaml`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(mappingsCmd)
	rootCmd.AddCommand(initCmd)
}
