package index

import (
	"fmt"
	"io"
)

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
//
// label renders an item; highlight, which may be nil, selects items to be
// drawn with a highlight fill color.
func ToDot[T any](t *Tree[T], w io.Writer, label func(T) string, highlight func(T) bool) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := make(map[*Node[T]]int)
	nodelist, edgelist := "", ""
	id := 1
	for n := range t.Nodes() {
		ids[n] = id
		id++
	}
	for n := range t.Nodes() {
		hl := highlight != nil && highlight(n.item)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ids[n], label(n.item), nodeDotStyles(hl))
		if n.left != nil {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\" [label=L];\n", ids[n], ids[n.left])
		}
		if n.right != nil {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\" [label=R];\n", ids[n], ids[n.right])
		}
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func nodeDotStyles(highlight bool) string {
	s := ",style=filled,shape=box"
	if highlight {
		s += ",fillcolor=\"#FFAA66\""
	} else {
		s += ",fillcolor=\"#a3d7e4\""
	}
	return s
}
