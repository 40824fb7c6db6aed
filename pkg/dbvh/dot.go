package dbvh

import (
	"fmt"
	"io"
)

// WriteDot renders the tree as a GraphViz dot graph: one node per live
// pool slot, leaves shown as boxes carrying their object index, internals
// as ellipses carrying their height (spec §4.F).
func (t *Tree) WriteDot(w io.Writer) error {
	if _, err := io.WriteString(w, "digraph dbvh {\n"); err != nil {
		return err
	}

	for i := int32(0); i < t.nodeCapacity; i++ {
		n := &t.nodes[i]
		if n.free() {
			continue
		}

		if n.isLeaf {
			if _, err := fmt.Fprintf(w, "  n%d [shape=box,label=\"leaf %d\\nobj %d\"];\n",
				i, i, n.objectIndex); err != nil {
				return err
			}
			continue
		}

		if _, err := fmt.Fprintf(w, "  n%d [shape=ellipse,label=\"node %d\\nh %d\"];\n",
			i, i, n.height); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "  n%d -> n%d;\n  n%d -> n%d;\n",
			i, n.child1, i, n.child2); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "}\n")
	return err
}
