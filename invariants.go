package bstree

import (
	"fmt"

	"github.com/Nigel2392/go-datastructures/stack"
)

// bounded is a node together with the range its element has to fall into.
// A nil bound is unlimited. Elements must not be less than lo and must be
// less than hi.
type bounded[T any] struct {
	node   *Node[T]
	lo, hi *T
}

// Check validates the search tree ordering of the tree rooted at root.
//
// For every node, all elements of its left subtree have to compare less than
// the node's element, and no element of its right subtree may compare less.
// Check is meant for tests and for debugging client comparators.
func Check[T any](root *Node[T], compare Compare[T]) error {
	if root == nil {
		return nil
	}
	if compare == nil {
		return fmt.Errorf("%w: comparator is required", ErrInvalidConfig)
	}
	var pending stack.Stack[bounded[T]]
	pending.Push(bounded[T]{node: root})
	for {
		b, ok := pending.PopOK()
		if !ok {
			return nil
		}
		e := &b.node.element
		if b.lo != nil && compare(*e, *b.lo) < 0 {
			tracer().Errorf("bstree check: element %v less than ancestor %v", *e, *b.lo)
			return fmt.Errorf("%w: element %v in right subtree of %v", ErrOrderViolation, *e, *b.lo)
		}
		if b.hi != nil && compare(*e, *b.hi) >= 0 {
			tracer().Errorf("bstree check: element %v not less than ancestor %v", *e, *b.hi)
			return fmt.Errorf("%w: element %v in left subtree of %v", ErrOrderViolation, *e, *b.hi)
		}
		if b.node.left != nil {
			pending.Push(bounded[T]{node: b.node.left, lo: b.lo, hi: e})
		}
		if b.node.right != nil {
			pending.Push(bounded[T]{node: b.node.right, lo: e, hi: b.hi})
		}
	}
}
