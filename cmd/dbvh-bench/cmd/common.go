package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flier/dbvh/internal/boxfile"
	"github.com/flier/dbvh/pkg/dbvh"
)

// heuristicFlag adds the shared --heuristic flag and returns a getter for
// its parsed value, accepting the spec §6 names case-insensitively.
func heuristicFlag(cmd *cobra.Command) func() (dbvh.InsertionHeuristic, error) {
	name := cmd.Flags().String("heuristic", "SAH", "insertion heuristic: SAH, SAH_Rotate, Bittner, ApproxSAH, ApproxSAH_Rotate, Manhattan")

	return func() (dbvh.InsertionHeuristic, error) {
		switch strings.ToLower(*name) {
		case "sah":
			return dbvh.SAH, nil
		case "sah_rotate", "sahrotate":
			return dbvh.SAHRotate, nil
		case "bittner":
			return dbvh.Bittner, nil
		case "approxsah":
			return dbvh.ApproxSAH, nil
		case "approxsah_rotate", "approxsahrotate":
			return dbvh.ApproxSAHRotate, nil
		case "manhattan":
			return dbvh.Manhattan, nil
		default:
			return 0, fmt.Errorf("unknown heuristic %q", *name)
		}
	}
}

// loadBoxes reads and parses the box-file named by path (spec §6 text
// format), surfacing a malformed or missing file as a wrapped error per
// spec §7 kind 4.
func loadBoxes(path string) ([]dbvh.AABB, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	r := boxfile.Load(data)
	if r.IsErr() {
		return nil, r.UnwrapErr()
	}

	return r.Unwrap(), nil
}

// buildTree loads boxes from path and inserts them one at a time under h,
// the common first step of every subcommand.
func buildTree(path string, h dbvh.InsertionHeuristic) (*dbvh.Tree, error) {
	boxes, err := loadBoxes(path)
	if err != nil {
		return nil, err
	}

	tr := dbvh.New()
	tr.SetHeuristic(h)

	for i, box := range boxes {
		tr.CreateProxy(box, int32(i))
	}

	return tr, nil
}
