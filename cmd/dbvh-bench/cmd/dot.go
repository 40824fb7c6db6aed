package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flier/dbvh/pkg/dbvh"
)

var (
	dotInput     string
	dotOutput    string
	dotHighlight int32
	dotHeuristic func() (dbvh.InsertionHeuristic, error)
)

var dotCmd = &cobra.Command{
	Use:   "dot",
	Short: "Build a tree and export it as a GraphViz dot file",
	RunE: func(cmd *cobra.Command, args []string) error {
		heuristic, err := dotHeuristic()
		if err != nil {
			return err
		}

		tr, err := buildTree(dotInput, heuristic)
		if err != nil {
			return err
		}

		if dotHighlight >= 0 {
			box := tr.CheckedGetAABB(dotHighlight)
			if box.IsNone() {
				return fmt.Errorf("no live node with id %d", dotHighlight)
			}
			fmt.Fprintf(os.Stderr, "node %d: %v\n", dotHighlight, box.Unwrap())
		}

		out := os.Stdout
		if dotOutput != "" {
			f, err := os.Create(dotOutput)
			if err != nil {
				return fmt.Errorf("creating %s: %w", dotOutput, err)
			}
			defer f.Close()
			out = f
		}

		return tr.WriteDot(out)
	},
}

func init() {
	dotCmd.Flags().StringVarP(&dotInput, "input", "i", "", "path to the box file to load")
	dotCmd.MarkFlagRequired("input")
	dotCmd.Flags().StringVarP(&dotOutput, "output", "o", "", "path to write the dot file to (default stdout)")
	dotCmd.Flags().Int32Var(&dotHighlight, "highlight", -1, "print the AABB of this node id to stderr before exporting")
	dotHeuristic = heuristicFlag(dotCmd)

	rootCmd.AddCommand(dotCmd)
}
