package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/space-rocks/go-spacerocks/pkg/config"
	"github.com/space-rocks/go-spacerocks/pkg/input"
)

var (
	flagInitConfig   string
	flagInitMappings string
	flagForce        bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write default config and controller mapping files",
	Long: `Write the built-in defaults out as editable YAML files: the game
configuration and the controller mapping table it points at.

Existing files are left alone unless --force is given.

Examples:
  spacerocks init
  spacerocks init --config ./spacerocks.yaml --mappings ./controllers.yaml`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&flagInitConfig, "config", "./spacerocks.yaml", "Where to write the game config")
	initCmd.Flags().StringVar(&flagInitMappings, "mappings", "", "Where to write the mapping table (default: the config's mappingPath)")
	initCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite existing files")
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()

	mappingPath := flagInitMappings
	if mappingPath == "" {
		mappingPath = cfg.MappingPath
	} else {
		cfg.MappingPath = mappingPath
	}

	if err := checkTarget(flagInitConfig); err != nil {
		return err
	}
	if err := checkTarget(mappingPath); err != nil {
		return err
	}

	if err := config.SaveConfig(cfg, flagInitConfig); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", flagInitConfig)

	if err := input.SaveMappingTable(input.DefaultMappingTable(), mappingPath); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", mappingPath)
	return nil
}

func checkTarget(path string) error {
	if flagForce {
		return nil
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	return nil
}
