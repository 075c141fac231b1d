package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/space-rocks/go-spacerocks/pkg/input"
)

var flagMappingFile string

var mappingsCmd = &cobra.Command{
	Use:   "mappings",
	Short: "Validate and list the controller mapping table",
	Long: `Load a controller mapping table, validate every entry, and print
the axis and button assignments per device GUID.

Without --file the built-in table is shown.

Examples:
  spacerocks mappings
  spacerocks mappings --file ./controllers.yaml`,
	RunE: runMappings,
}

func init() {
	mappingsCmd.Flags().StringVar(&flagMappingFile, "file", "", "Path to a controller mapping YAML file")
}

func runMappings(cmd *cobra.Command, args []string) error {
	table := input.DefaultMappingTable()
	if flagMappingFile != "" {
		loaded, err := input.LoadMappingTable(flagMappingFile)
		if err != nil {
			return err
		}
		table = loaded
	}

	if _, ok := table[input.DefaultGUID]; !ok {
		fmt.Printf("WARNING: no %q entry; unlisted devices will be rejected\n\n", input.DefaultGUID)
	}

	guids := make([]string, 0, len(table))
	for guid := range table {
		guids = append(guids, guid)
	}
	sort.Strings(guids)

	invalid := 0
	for _, guid := range guids {
		mapping := table[guid]
		fmt.Printf("%s\n  name:   %s\n", guid, mapping.Name)
		printAxis("paddle", mapping.Paddle)
		printAxis("thrust", mapping.Thrust)
		printButton("fire", mapping.Fire)

		if err := mapping.Validate(guid, true); err != nil {
			fmt.Printf("  INVALID: %v\n", err)
			invalid++
		}
		fmt.Println()
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d mapping entries are invalid", invalid, len(table))
	}
	fmt.Printf("%d mapping entries, all valid\n", len(table))
	return nil
}

func printAxis(signal string, a *input.AxisAssignment) {
	if a == nil {
		fmt.Printf("  %s: (missing)\n", signal)
		return
	}
	invert := 1.0
	if a.Invert != nil {
		invert = *a.Invert
	}
	axis := "(missing)"
	if a.Axis != nil {
		axis = fmt.Sprintf("axis %d", *a.Axis)
	}
	fmt.Printf("  %s: %s, invert %+.0f (%s)\n", signal, axis, invert, a.Name)
}

func printButton(signal string, b *input.ButtonAssignment) {
	if b == nil {
		fmt.Printf("  %s:   (missing)\n", signal)
		return
	}
	button := "(missing)"
	if b.Button != nil {
		button = fmt.Sprintf("button %d", *b.Button)
	}
	fmt.Printf("  %s:   %s (%s)\n", signal, button, b.Name)
}
