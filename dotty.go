package bstree

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[T any] struct {
	idTable map[*Node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*Node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(node *Node[T]) int {
	return ids.idTable[node]
}

func (ids *nodeids[T]) alloc(node *Node[T]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the structure of a tree in Graphviz DOT format
// (for debugging purposes). label formats an element; if it is nil,
// elements are printed with %v.
//
// Missing children of inner nodes are drawn as small empty circles, which
// keeps left and right children apart in the rendered graph.
func Tree2Dot[T any](root *Node[T], w io.Writer, label func(T) string) {
	if label == nil {
		label = func(e T) string { return fmt.Sprintf("%v", e) }
	}
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[T]()
	var nodelist, edgelist strings.Builder
	walk(root, preorder, func(node *Node[T], _ int) bool {
		ID := ids.alloc(node)
		styles := nodeDotStyles(node.IsLeaf())
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, dotEscape(label(node.element)), styles)
		if node.IsLeaf() {
			return true
		}
		for i, child := range [2]*Node[T]{node.left, node.right} {
			if child == nil {
				nilid := -(2*ID + i) // never collides with allocated ids
				fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, nilid)
			} else {
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			}
		}
		return true
	})
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	io.WriteString(w, "}\n")
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// dotEscape quotes s for use inside a double-quoted DOT ID.
func dotEscape(s string) string {
	return dotEscaper.Replace(s)
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
