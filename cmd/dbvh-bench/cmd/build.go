package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flier/dbvh/internal/stopwatch"
	"github.com/flier/dbvh/pkg/dbvh"
)

var (
	buildInput     string
	buildMode      string
	buildHeuristic func() (dbvh.InsertionHeuristic, error)
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a tree from a box file and report how long it took",
	RunE: func(cmd *cobra.Command, args []string) error {
		heuristic, err := buildHeuristic()
		if err != nil {
			return err
		}

		sw := stopwatch.Start()

		tr, err := buildTree(buildInput, heuristic)
		if err != nil {
			return err
		}

		sw.Lap("insert")

		switch strings.ToLower(buildMode) {
		case "", "insert":
			// already built incrementally above
		case "bottomup":
			tr.RebuildBottomUp()
			sw.Lap("rebuild-bottom-up")
		case "topdownsah":
			tr.BuildTopDownSAH()
			sw.Lap("rebuild-top-down-sah")
		case "topdownmedian":
			tr.BuildTopDownMedian()
			sw.Lap("rebuild-top-down-median")
		default:
			return fmt.Errorf("unknown build mode %q (want insert, bottomup, topdownsah, or topdownmedian)", buildMode)
		}

		fmt.Printf("built %d proxies into %d nodes (height %d) in %s\n",
			tr.ProxyCount(), tr.NodeCount(), tr.Height(), sw.Total())

		if verbose {
			for _, lap := range sw.Laps() {
				fmt.Printf("  %-24s %s\n", lap.Name, lap.Duration)
			}
		}

		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildInput, "input", "i", "", "path to the box file to load")
	buildCmd.MarkFlagRequired("input")
	buildCmd.Flags().StringVar(&buildMode, "mode", "insert", "construction mode: insert, bottomup, topdownsah, topdownmedian")
	buildHeuristic = heuristicFlag(buildCmd)

	rootCmd.AddCommand(buildCmd)
}
