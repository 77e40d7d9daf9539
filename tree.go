package bstree

import "fmt"

// Config configures a Tree.
type Config[T any] struct {
	// Compare orders the elements of the tree. It is required.
	Compare Compare[T]
	// Destroy disposes of elements removed from the tree. Optional.
	Destroy Destructor[T]
	// Allocator provides node cells. Defaults to HeapAllocator.
	Allocator Allocator[T]
}

func (cfg Config[T]) normalized() Config[T] {
	if cfg.Allocator == nil {
		cfg.Allocator = HeapAllocator[T]()
	}
	return cfg
}

func (cfg Config[T]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: comparator is required", ErrInvalidConfig)
	}
	return nil
}

// Tree owns the root of a binary search tree and the policies to operate on
// it. It saves clients from re-assigning the root after every mutation.
//
// Tree does not cache any derived information; Len and Height walk the tree.
type Tree[T any] struct {
	cfg  Config[T]
	root *Node[T]
}

// New creates an empty tree with validated configuration.
func New[T any](cfg Config[T]) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[T]{cfg: cfg.normalized()}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[T]) Config() Config[T] {
	if t == nil {
		return Config[T]{}
	}
	return t.cfg
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree[T]) Root() *Node[T] {
	if t == nil {
		return nil
	}
	return t.root
}

// IsEmpty reports whether the tree has no elements.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Insert adds element to the tree. It fails with an error wrapping
// ErrAllocation if the configured allocator cannot provide a cell, in which
// case the tree is left unchanged. Inserting into a nil tree fails with
// ErrInvalidConfig.
func (t *Tree[T]) Insert(element T) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	root, err := InsertWith(t.cfg.Allocator, t.root, element, t.cfg.Compare)
	t.root = root
	return err
}

// Search returns the topmost element comparing equal to key.
func (t *Tree[T]) Search(key T) (T, bool) {
	if t.IsEmpty() {
		var zero T
		return zero, false
	}
	n := Search(t.Root(), key, t.cfg.Compare)
	return n.Element(), n != nil
}

// Delete removes the topmost element comparing equal to key and reports
// whether there was one.
func (t *Tree[T]) Delete(key T) bool {
	if t.IsEmpty() {
		return false
	}
	var deleted bool
	t.root, deleted = deleteWith(t.cfg.Allocator, t.root, key, t.cfg.Compare, t.cfg.Destroy)
	return deleted
}

// Inorder calls visit for every element in ascending order.
func (t *Tree[T]) Inorder(visit Visitor[T]) {
	Inorder(t.Root(), visit)
}

// Preorder calls visit for every element in preorder.
func (t *Tree[T]) Preorder(visit Visitor[T]) {
	Preorder(t.Root(), visit)
}

// Postorder calls visit for every element in postorder.
func (t *Tree[T]) Postorder(visit Visitor[T]) {
	Postorder(t.Root(), visit)
}

// Len returns the number of elements in the tree.
func (t *Tree[T]) Len() int {
	return Count(t.Root())
}

// Height returns the tree height, where 0 means empty and 1 means a single node.
func (t *Tree[T]) Height() int {
	return Height(t.Root())
}

// Elements returns all elements in ascending order.
func (t *Tree[T]) Elements() []T {
	elements, _ := CollectInorder(t.Root())
	return elements
}

// Min returns the smallest element.
func (t *Tree[T]) Min() (T, bool) {
	n := Min(t.Root())
	return n.Element(), n != nil
}

// Max returns the largest element. Of a run of equal elements, Max returns
// the one inserted last.
func (t *Tree[T]) Max() (T, bool) {
	n := Max(t.Root())
	return n.Element(), n != nil
}

// Check validates the tree's ordering.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	return Check(t.root, t.cfg.Compare)
}

// Destroy disposes of all elements and leaves an empty tree behind, which may
// be re-used.
func (t *Tree[T]) Destroy() {
	if t.IsEmpty() {
		return
	}
	DestroyTreeWith(t.cfg.Allocator, t.root, t.cfg.Destroy)
	t.root = nil
}
