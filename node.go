package bstree

import "cmp"

// Node is a cell of a binary search tree. A node exclusively owns its left and
// right subtrees. A *Node pointing to the topmost node represents a tree, a
// nil *Node is the empty tree.
type Node[T any] struct {
	element     T
	left, right *Node[T]
}

// Element returns the element stored in n, or the zero value for a nil node.
func (n *Node[T]) Element() T {
	if n == nil {
		var zero T
		return zero
	}
	return n.element
}

// Left returns the left child of n, if any.
func (n *Node[T]) Left() *Node[T] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child of n, if any.
func (n *Node[T]) Right() *Node[T] {
	if n == nil {
		return nil
	}
	return n.right
}

// IsLeaf is true for a node without children.
func (n *Node[T]) IsLeaf() bool {
	return n != nil && n.left == nil && n.right == nil
}

func (n *Node[T]) init(element T) *Node[T] {
	n.element, n.left, n.right = element, nil, nil
	return n
}

func (n *Node[T]) clear() {
	var zero T
	n.element, n.left, n.right = zero, nil, nil
}

// Compare is a total order over elements. It returns a negative number if a
// precedes b, zero if a and b are equal, and a positive number otherwise.
type Compare[T any] func(a, b T) int

// Destructor disposes of an element when it leaves a tree. A nil destructor
// is allowed and does nothing.
type Destructor[T any] func(element T)

// Visitor is called for elements during a traversal.
type Visitor[T any] func(element T)

// Ordered returns a comparator for element types with a natural ordering.
func Ordered[T cmp.Ordered]() Compare[T] {
	return cmp.Compare[T]
}

func (destroy Destructor[T]) dispose(element T) {
	if destroy != nil {
		destroy(element)
	}
}

// --- Node allocation -------------------------------------------------------

// Allocator hands out node cells to the tree operations and takes them back
// once they are removed from a tree.
//
// Alloc may fail, e.g. for bounded allocators. An error returned from Alloc
// is reported to clients wrapped in ErrAllocation. Cells passed to Release
// have been cleared by the tree engine.
type Allocator[T any] interface {
	Alloc() (*Node[T], error)
	Release(*Node[T])
}

type heapAllocator[T any] struct{}

func (heapAllocator[T]) Alloc() (*Node[T], error) { return &Node[T]{}, nil }
func (heapAllocator[T]) Release(*Node[T])         {}

// HeapAllocator returns an allocator which takes cells from the Go heap.
// It never fails and leaves released cells to the garbage collector.
func HeapAllocator[T any]() Allocator[T] {
	return heapAllocator[T]{}
}
