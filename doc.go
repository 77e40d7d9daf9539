/*
Package bstree implements a generic, unbalanced binary search tree.

A tree is represented by its root node only. An empty tree is a nil *Node.
Mutating operations take the current root and return the new one, which the
caller has to keep:

	var root *bstree.Node[int]
	root, _ = bstree.Insert(root, 5, bstree.Ordered[int]())
	root, _ = bstree.Insert(root, 3, bstree.Ordered[int]())
	root = bstree.Delete(root, 5, bstree.Ordered[int](), nil)

Clients which prefer not to thread the root handle through their code may use
the small owning container Tree, which bundles a root with its comparator,
destructor and node allocator.

Ordering

Elements are ordered by a client supplied comparator. An element comparing
less than a node's element is placed in the node's left subtree, everything
else, including elements comparing equal, goes to the right. Duplicates are
therefore retained, and Search will always find the topmost of a run of equal
elements. The same comparator has to be used for every operation on a tree.

Trees are not balanced. Inserting elements in sorted order degrades a tree to
a list. All operations are implemented with loops and explicit stacks, so deep
trees will cost time, but will not exhaust the goroutine stack.

Ownership

Once linked into a node, an element is owned by the tree. Each element is
passed to the client's destructor exactly once, either when it is deleted or
when the whole tree is destroyed. Trees are not safe for concurrent use.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2024, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package bstree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer is T for generic code, where T usually names a type parameter.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is an error type for the bstree module.
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrAllocation is flagged whenever a node cell could not be allocated.
// The tree operation encountering it leaves the tree unchanged.
const ErrAllocation = TreeError("bstree: node allocation failed")

// ErrInvalidConfig signals an invalid tree configuration.
const ErrInvalidConfig = TreeError("bstree: invalid configuration")

// ErrOrderViolation is flagged by Check if a tree does not satisfy the
// search tree ordering.
const ErrOrderViolation = TreeError("bstree: ordering violated")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
