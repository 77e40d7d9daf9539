package bstree

import (
	"errors"
	"fmt"
)

// Insert links element into the tree rooted at root and returns the new root.
// Cells are taken from the Go heap.
//
// Elements comparing less than a node's element are inserted to its left,
// all others, including equal ones, to its right.
func Insert[T any](root *Node[T], element T, compare Compare[T]) (*Node[T], error) {
	return InsertWith(HeapAllocator[T](), root, element, compare)
}

// InsertWith is like Insert, but takes the new cell from alloc.
//
// If alloc fails, InsertWith returns the unchanged root together with an error
// wrapping ErrAllocation. Nothing is linked into the tree in this case.
func InsertWith[T any](alloc Allocator[T], root *Node[T], element T, compare Compare[T]) (*Node[T], error) {
	slot := &root
	for *slot != nil {
		if compare(element, (*slot).element) < 0 {
			slot = &(*slot).left
		} else {
			slot = &(*slot).right
		}
	}
	n, err := alloc.Alloc()
	if err == nil && n == nil {
		err = errors.New("allocator returned no cell")
	}
	if err != nil {
		tracer().Errorf("bstree insert: %s", err.Error())
		if !errors.Is(err, ErrAllocation) {
			err = fmt.Errorf("%w: %w", ErrAllocation, err)
		}
		return root, err
	}
	*slot = n.init(element)
	return root, nil
}

// Search returns the topmost node with an element comparing equal to target,
// or nil if there is none. target need not be a stored element; a key value
// populated with the fields inspected by compare is sufficient.
func Search[T any](root *Node[T], target T, compare Compare[T]) *Node[T] {
	n := root
	for n != nil {
		c := compare(target, n.element)
		if c == 0 {
			return n
		}
		if c < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	return nil
}

// Delete removes the node found by Search(root, target, compare) and returns
// the new root. The removed element is passed to destroy. If target is not
// found, root is returned unchanged and destroy is not called.
//
// A node with two children stays in place: it receives the element of its
// in-order successor, whose cell is spliced out instead.
func Delete[T any](root *Node[T], target T, compare Compare[T], destroy Destructor[T]) *Node[T] {
	root, _ = deleteWith(HeapAllocator[T](), root, target, compare, destroy)
	return root
}

// DeleteWith is like Delete, but hands the released cell back to alloc.
func DeleteWith[T any](alloc Allocator[T], root *Node[T], target T, compare Compare[T],
	destroy Destructor[T]) *Node[T] {
	//
	root, _ = deleteWith(alloc, root, target, compare, destroy)
	return root
}

func deleteWith[T any](alloc Allocator[T], root *Node[T], target T, compare Compare[T],
	destroy Destructor[T]) (*Node[T], bool) {
	//
	slot := &root
	for *slot != nil {
		c := compare(target, (*slot).element)
		if c == 0 {
			break
		}
		if c < 0 {
			slot = &(*slot).left
		} else {
			slot = &(*slot).right
		}
	}
	n := *slot
	if n == nil {
		return root, false
	}
	removed := n.element
	switch {
	case n.left == nil:
		*slot = n.right
	case n.right == nil:
		*slot = n.left
	default: // promote the in-order successor's element
		succ := &n.right
		for (*succ).left != nil {
			succ = &(*succ).left
		}
		cell := *succ
		n.element = cell.element
		*succ = cell.right
		n = cell
	}
	n.clear()
	alloc.Release(n)
	destroy.dispose(removed)
	return root, true
}

// Inorder calls visit for every element in ascending order.
func Inorder[T any](root *Node[T], visit Visitor[T]) {
	traverse(root, inorder, visit)
}

// Preorder calls visit for every element, each node before its subtrees,
// left subtree first.
func Preorder[T any](root *Node[T], visit Visitor[T]) {
	traverse(root, preorder, visit)
}

// Postorder calls visit for every element, each node after its left and
// right subtrees.
func Postorder[T any](root *Node[T], visit Visitor[T]) {
	traverse(root, postorder, visit)
}

// Count returns the number of nodes of the tree rooted at root.
func Count[T any](root *Node[T]) int {
	count := 0
	walk(root, preorder, func(*Node[T], int) bool {
		count++
		return true
	})
	return count
}

// CollectInorder returns the elements of a tree in ascending order, together
// with their number. The slice is freshly allocated with exactly one slot per
// node. For an empty tree CollectInorder returns nil and 0.
func CollectInorder[T any](root *Node[T]) ([]T, int) {
	size := Count(root)
	if size == 0 {
		return nil, 0
	}
	elements := make([]T, 0, size)
	walk(root, inorder, func(n *Node[T], _ int) bool {
		elements = append(elements, n.element)
		return true
	})
	assert(len(elements) == size, "CollectInorder: node count changed during walk")
	return elements, size
}

// DestroyTree passes every element to destroy and releases every node, each
// node after its subtrees. Destroying an empty tree is a no-op. Clients must
// not use root afterwards.
func DestroyTree[T any](root *Node[T], destroy Destructor[T]) {
	DestroyTreeWith(HeapAllocator[T](), root, destroy)
}

// DestroyTreeWith is like DestroyTree, but hands every cell back to alloc.
func DestroyTreeWith[T any](alloc Allocator[T], root *Node[T], destroy Destructor[T]) {
	walk(root, postorder, func(n *Node[T], _ int) bool {
		element := n.element
		n.clear()
		alloc.Release(n)
		destroy.dispose(element)
		return true
	})
}

// Height returns the number of nodes on the longest path from root to a
// leaf, i.e. 0 for an empty tree and 1 for a single node.
func Height[T any](root *Node[T]) int {
	height := 0
	walk(root, preorder, func(_ *Node[T], depth int) bool {
		height = max(height, depth+1)
		return true
	})
	return height
}

// Min returns the leftmost node of a tree, or nil for an empty tree.
func Min[T any](root *Node[T]) *Node[T] {
	if root == nil {
		return nil
	}
	n := root
	for n.left != nil {
		n = n.left
	}
	return n
}

// Max returns the rightmost node of a tree, or nil for an empty tree.
func Max[T any](root *Node[T]) *Node[T] {
	if root == nil {
		return nil
	}
	n := root
	for n.right != nil {
		n = n.right
	}
	return n
}
