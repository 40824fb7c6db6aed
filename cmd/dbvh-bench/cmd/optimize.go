package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flier/dbvh/internal/stopwatch"
	"github.com/flier/dbvh/pkg/dbvh"
	"github.com/flier/dbvh/pkg/tuple"
)

var (
	optimizeInput      string
	optimizeIterations int
	optimizeHeuristic  func() (dbvh.InsertionHeuristic, error)
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Build a tree, run an optimisation pass, and report the area-ratio improvement",
	RunE: func(cmd *cobra.Command, args []string) error {
		heuristic, err := optimizeHeuristic()
		if err != nil {
			return err
		}

		tr, err := buildTree(optimizeInput, heuristic)
		if err != nil {
			return err
		}

		before := tr.AreaRatio()

		sw := stopwatch.Start()
		tr.Optimize(optimizeIterations)
		sw.Lap("optimize")

		ratios := tuple.New2(before, tr.AreaRatio())

		fmt.Printf("area ratio: %.6f -> %.6f (%d iterations, %s)\n",
			ratios.V0, ratios.V1, optimizeIterations, sw.Total())

		return nil
	},
}

func init() {
	optimizeCmd.Flags().StringVarP(&optimizeInput, "input", "i", "", "path to the box file to load")
	optimizeCmd.MarkFlagRequired("input")
	optimizeCmd.Flags().IntVar(&optimizeIterations, "iterations", 100, "number of optimisation iterations to run")
	optimizeHeuristic = heuristicFlag(optimizeCmd)

	rootCmd.AddCommand(optimizeCmd)
}
