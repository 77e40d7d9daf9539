package bstree

import (
	"github.com/Nigel2392/go-datastructures/stack"
)

// order is a depth-first visitation order.
type order int

const (
	inorder order = iota
	preorder
	postorder
)

func (o order) String() string {
	switch o {
	case inorder:
		return "inorder"
	case preorder:
		return "preorder"
	case postorder:
		return "postorder"
	}
	return "<unknown order>"
}

// frame is an entry of the walk stack. A frame is expanded once its children
// have been scheduled; popping an expanded frame visits its node.
type frame[T any] struct {
	node     *Node[T]
	depth    int
	expanded bool
}

// walk visits every node of the tree rooted at root in order o, together with
// its depth (0 for root). Walking stops early if visit returns false.
//
// Frames are pushed in reverse order of visitation. A node's child pointers
// are read when its frame is expanded, so a postorder visitor may release the
// node it is handed.
func walk[T any](root *Node[T], o order, visit func(n *Node[T], depth int) bool) {
	if root == nil {
		return
	}
	var pending stack.Stack[frame[T]]
	pending.Push(frame[T]{node: root})
	for {
		f, ok := pending.PopOK()
		if !ok {
			return
		}
		if f.expanded {
			if !visit(f.node, f.depth) {
				return
			}
			continue
		}
		n, d := f.node, f.depth
		self := frame[T]{node: n, depth: d, expanded: true}
		switch o {
		case inorder:
			pushChild(&pending, n.right, d+1)
			pending.Push(self)
			pushChild(&pending, n.left, d+1)
		case preorder:
			pushChild(&pending, n.right, d+1)
			pushChild(&pending, n.left, d+1)
			pending.Push(self)
		case postorder:
			pending.Push(self)
			pushChild(&pending, n.right, d+1)
			pushChild(&pending, n.left, d+1)
		default:
			assert(false, "walk called with unknown order")
		}
	}
}

func pushChild[T any](pending *stack.Stack[frame[T]], child *Node[T], depth int) {
	if child != nil {
		pending.Push(frame[T]{node: child, depth: depth})
	}
}

// traverse calls visit for every element in order o.
func traverse[T any](root *Node[T], o order, visit Visitor[T]) {
	if visit == nil {
		return
	}
	walk(root, o, func(n *Node[T], _ int) bool {
		visit(n.element)
		return true
	})
}
