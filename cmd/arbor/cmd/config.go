package cmd

import (
	"fmt"
	"os"

	"github.com/go-drift/arbor/pkg/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "config",
		Short: "Print resolved settings",
		Long: `Print the settings resolved from arbor.yaml in a directory.

Unset fields and a missing file resolve to the built-in defaults.

Usage:
  arbor config          # Settings for the current directory
  arbor config ./app    # Settings for ./app`,
		Usage: "arbor config [dir]",
		Run:   runConfig,
	})
}

func runConfig(args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("too many arguments\n\nUsage: arbor config [dir]")
	}
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	settings, err := config.LoadOptional(dir)
	if err != nil {
		return err
	}
	data, err := config.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}
