package dbvh_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/flier/dbvh/pkg/dbvh"
)

func TestWriteDot(t *testing.T) {
	tr := New()
	tr.CreateProxy(AABB{Upper: Vec3{X: 1, Y: 1, Z: 1}}, 1)
	tr.CreateProxy(AABB{Lower: Vec3{X: 5, Y: 5, Z: 5}, Upper: Vec3{X: 6, Y: 6, Z: 6}}, 2)

	var buf bytes.Buffer
	assert.NoError(t, tr.WriteDot(&buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "digraph dbvh {\n"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, "leaf")
}

func TestWriteDotEmptyTree(t *testing.T) {
	tr := New()

	var buf bytes.Buffer
	assert.NoError(t, tr.WriteDot(&buf))
	assert.Equal(t, "digraph dbvh {\n}\n", buf.String())
}
