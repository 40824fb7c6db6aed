// Package boxfile loads benchmark AABB fixtures: the text format of
// spec §6, lines beginning with "v " carrying three floats each, where
// consecutive pairs of vertices give the (lower, upper) corners of one
// AABB. Input bytes are treated as untrusted external data (spec §7
// "External I/O"), so parsing never panics on truncated or malformed
// fixtures.
package boxfile

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/flier/dbvh/pkg/dbvh"
	"github.com/flier/dbvh/pkg/res"
	"github.com/flier/dbvh/pkg/untrust"
)

// Load parses a box-file: every line beginning with "v " contributes one
// vertex (three whitespace-separated floats); vertices are paired up in
// order, each pair becoming one AABB's (lower, upper) corners regardless
// of their relative order. Lines that do not start with "v " are ignored,
// matching benchmark fixtures that interleave comments or face records
// from the same text format.
func Load(data []byte) res.Result[[]dbvh.AABB] {
	input := untrust.Input(data)

	vertices, err := readVertices(input)
	if err != nil {
		return res.Err[[]dbvh.AABB](fmt.Errorf("boxfile: %w", err))
	}

	if len(vertices)%2 != 0 {
		return res.Err[[]dbvh.AABB](fmt.Errorf("boxfile: odd number of vertices (%d), cannot pair into boxes", len(vertices)))
	}

	boxes := make([]dbvh.AABB, 0, len(vertices)/2)
	for i := 0; i < len(vertices); i += 2 {
		boxes = append(boxes, dbvh.NewAABB(vertices[i], vertices[i+1]))
	}

	return res.Ok(boxes)
}

// readVertices scans the untrusted input line by line, so a single
// malformed line reports its number instead of corrupting the whole
// parse.
func readVertices(input untrust.Input) ([]dbvh.Vec3, error) {
	scanner := bufio.NewScanner(strings.NewReader(string(input.AsSliceLessSafe())))

	var vertices []dbvh.Vec3
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "v ") && line != "v" {
			continue
		}

		v, err := parseVertex(line[1:])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		vertices = append(vertices, v)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	return vertices, nil
}

func parseVertex(rest string) (dbvh.Vec3, error) {
	fields := strings.Fields(rest)
	if len(fields) != 3 {
		return dbvh.Vec3{}, fmt.Errorf("expected 3 floats, got %d fields", len(fields))
	}

	comps := make([]float64, 3)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return dbvh.Vec3{}, fmt.Errorf("component %d: %w", i, err)
		}
		comps[i] = v
	}

	return dbvh.Vec3{X: comps[0], Y: comps[1], Z: comps[2]}, nil
}
