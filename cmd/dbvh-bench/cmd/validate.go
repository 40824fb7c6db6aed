package cmd

import (
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/flier/dbvh/pkg/dbvh"
	"github.com/flier/dbvh/pkg/xerrors"
)

var (
	validateInput     string
	validateOptimize  int
	validateHeuristic func() (dbvh.InsertionHeuristic, error)
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Build a tree and walk every structural invariant (debug builds only check them)",
	RunE: func(cmd *cobra.Command, args []string) error {
		heuristic, err := validateHeuristic()
		if err != nil {
			return err
		}

		tr, err := buildTree(validateInput, heuristic)
		if err != nil {
			if pathErr, ok := xerrors.AsA[*fs.PathError](err); ok {
				return fmt.Errorf("box file not found: %w", pathErr)
			}
			return fmt.Errorf("malformed box file: %w", err)
		}

		if validateOptimize > 0 {
			tr.Optimize(validateOptimize)
		}

		tr.Validate()

		fmt.Printf("ok: %d proxies, %d nodes, height %d\n", tr.ProxyCount(), tr.NodeCount(), tr.Height())

		return nil
	},
}

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "", "path to the box file to load")
	validateCmd.MarkFlagRequired("input")
	validateCmd.Flags().IntVar(&validateOptimize, "optimize", 0, "run this many optimisation iterations before validating")
	validateHeuristic = heuristicFlag(validateCmd)

	rootCmd.AddCommand(validateCmd)
}
