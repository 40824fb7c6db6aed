package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flier/dbvh/pkg/dbvh"
)

func writeBoxFile(t *testing.T, lines ...string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "boxes.txt")

	content := ""
	for _, line := range lines {
		content += line + "\n"
	}

	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestHeuristicFlagDefault(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	get := heuristicFlag(cmd)

	h, err := get()
	require.NoError(t, err)
	assert.Equal(t, dbvh.SAH, h)
}

func TestHeuristicFlagRejectsUnknown(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	get := heuristicFlag(cmd)
	require.NoError(t, cmd.Flags().Set("heuristic", "not-a-heuristic"))

	_, err := get()
	assert.Error(t, err)
}

func TestHeuristicFlagAcceptsAllNames(t *testing.T) {
	names := map[string]dbvh.InsertionHeuristic{
		"SAH":              dbvh.SAH,
		"sah_rotate":       dbvh.SAHRotate,
		"Bittner":          dbvh.Bittner,
		"ApproxSAH":        dbvh.ApproxSAH,
		"approxsah_rotate": dbvh.ApproxSAHRotate,
		"MANHATTAN":        dbvh.Manhattan,
	}

	for name, want := range names {
		cmd := &cobra.Command{Use: "test"}
		get := heuristicFlag(cmd)
		require.NoError(t, cmd.Flags().Set("heuristic", name))

		got, err := get()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestBuildTreeLoadsAllBoxes(t *testing.T) {
	path := writeBoxFile(t,
		"v 0 0 0",
		"v 1 1 1",
		"v 2 2 2",
		"v 3 3 3",
	)

	tr, err := buildTree(path, dbvh.SAH)
	require.NoError(t, err)
	assert.EqualValues(t, 2, tr.ProxyCount())
}

func TestBuildTreeRejectsMissingFile(t *testing.T) {
	_, err := buildTree(filepath.Join(t.TempDir(), "missing.txt"), dbvh.SAH)
	assert.Error(t, err)
}

func TestBuildTreeRejectsOddVertexCount(t *testing.T) {
	path := writeBoxFile(t, "v 0 0 0")

	_, err := buildTree(path, dbvh.SAH)
	assert.Error(t, err)
}
