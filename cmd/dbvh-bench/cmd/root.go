package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/flier/dbvh/internal/settings"
)

var (
	verbose      bool
	settingsPath string

	// loadedSettings is populated by PersistentPreRunE with the persisted
	// test index; no subcommand currently reads it.
	loadedSettings settings.Settings
)

var rootCmd = &cobra.Command{
	Use:   "dbvh-bench",
	Short: "Build, mutate, and inspect a dynamic bounding volume hierarchy",
	Long: `dbvh-bench drives pkg/dbvh's bounding volume hierarchy from the
command line: it loads a benchmark box-file, builds or mutates a tree
under a chosen insertion heuristic, and reports the resulting quality
metrics or a GraphViz export.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		r := settings.Load(settingsPath)
		if r.IsErr() {
			return fmt.Errorf("loading settings: %w", r.UnwrapErr())
		}
		loadedSettings = r.Unwrap()
		return nil
	},
	Example: `  # Build a tree from a box file with the default heuristic and print metrics
  dbvh-bench stats -i boxes.txt

  # Build with the default heuristic and export a GraphViz dot file
  dbvh-bench dot -i boxes.txt -o tree.dot

  # Validate every invariant after an optimisation pass (debug build only)
  dbvh-bench validate -i boxes.txt --optimize 200`,
}

// Execute runs the root command, exiting the process on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose timing output")

	defaultSettingsPath := filepath.Join(os.Getenv("HOME"), ".dbvh-bench.json")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", defaultSettingsPath, "path to the testIndex settings file")
}
