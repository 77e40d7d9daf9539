/*
Package nodepool provides a bounded node allocator for package bstree.

Cells are borrowed from an object pool with a fixed upper limit of live cells.
Once the limit is reached, further allocations fail instead of blocking, and
tree insertions report bstree.ErrAllocation. Released cells are kept for
re-use.

	cells := nodepool.New[int](ctx, 1024)
	defer cells.Close()
	tree, _ := bstree.New(bstree.Config[int]{
		Compare:   bstree.Ordered[int](),
		Allocator: cells,
	})

A pool may be shared between trees of the same element type. The pool itself
is safe for concurrent use, trees are not.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2024, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package nodepool

import (
	"context"
	"fmt"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/bstree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the bstree core-tracer.
func tracer() tracing.Trace {
	return bstree.T()
}

// Pool is a bounded bstree.Allocator.
type Pool[T any] struct {
	ctx      context.Context
	cells    *pool.ObjectPool
	capacity int
}

var _ bstree.Allocator[int] = (*Pool[int])(nil)

// New creates a pool handing out at most capacity live cells. A capacity
// of 0 or less creates an unbounded pool. ctx is used for all pool
// operations.
func New[T any](ctx context.Context, capacity int) *Pool[T] {
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &bstree.Node[T]{}, nil
		})
	config := pool.NewDefaultPoolConfig()
	if capacity > 0 {
		config.MaxTotal = capacity
		config.MaxIdle = capacity
	} else {
		config.MaxTotal = -1
		config.MaxIdle = -1
	}
	config.BlockWhenExhausted = false
	return &Pool[T]{
		ctx:      ctx,
		cells:    pool.NewObjectPool(ctx, factory, config),
		capacity: capacity,
	}
}

// Alloc borrows a cell from the pool. It fails with an error wrapping
// bstree.ErrAllocation if the pool is exhausted or closed.
func (p *Pool[T]) Alloc() (*bstree.Node[T], error) {
	obj, err := p.cells.BorrowObject(p.ctx)
	if err != nil {
		tracer().Infof("node pool: cannot borrow cell (%d active): %v", p.Active(), err)
		return nil, fmt.Errorf("%w: %v", bstree.ErrAllocation, err)
	}
	return obj.(*bstree.Node[T]), nil
}

// Release returns a cell to the pool.
func (p *Pool[T]) Release(n *bstree.Node[T]) {
	if n == nil {
		return
	}
	if err := p.cells.ReturnObject(p.ctx, n); err != nil {
		tracer().Errorf("node pool: cannot return cell: %v", err)
	}
}

// Capacity is the maximum number of live cells, or 0 for unbounded pools.
func (p *Pool[T]) Capacity() int {
	if p.capacity <= 0 {
		return 0
	}
	return p.capacity
}

// Active returns the number of cells currently borrowed.
func (p *Pool[T]) Active() int {
	return p.cells.GetNumActive()
}

// Close shuts down the pool. Subsequent allocations fail.
func (p *Pool[T]) Close() {
	p.cells.Close(p.ctx)
}
