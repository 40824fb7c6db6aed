package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flier/dbvh/internal/stopwatch"
	"github.com/flier/dbvh/pkg/dbvh"
)

var (
	statsInput     string
	statsHeuristic func() (dbvh.InsertionHeuristic, error)
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Build a tree from a box file and print its quality metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		heuristic, err := statsHeuristic()
		if err != nil {
			return err
		}

		sw := stopwatch.Start()

		tr, err := buildTree(statsInput, heuristic)
		if err != nil {
			return err
		}

		sw.Lap("build")

		fmt.Printf("proxies:    %d\n", tr.ProxyCount())
		fmt.Printf("nodes:      %d / %d\n", tr.NodeCount(), tr.NodeCapacity())
		fmt.Printf("height:     %d\n", tr.Height())
		fmt.Printf("area:       %.6f\n", tr.Area())
		fmt.Printf("area ratio: %.6f\n", tr.AreaRatio())
		fmt.Printf("max balance: %d\n", tr.MaxBalance())

		if verbose {
			for _, lap := range sw.Laps() {
				fmt.Printf("  %-8s %s\n", lap.Name, lap.Duration)
			}
		}

		return nil
	},
}

func init() {
	statsCmd.Flags().StringVarP(&statsInput, "input", "i", "", "path to the box file to load")
	statsCmd.MarkFlagRequired("input")
	statsHeuristic = heuristicFlag(statsCmd)

	rootCmd.AddCommand(statsCmd)
}
