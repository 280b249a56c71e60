// Copyright (c) 2026 The treapkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import (
	"container/heap"
)

// subtreeQueue implements heap.Interface over pending subtrees so the subtree
// whose root has the highest priority, which is the shallowest one, is
// dequeued first.
type subtreeQueue[T any] []*treapNode[T]

func (q subtreeQueue[T]) Len() int {
	return len(q)
}

func (q subtreeQueue[T]) Less(i, j int) bool {
	return q[i].outranks(q[j])
}

func (q subtreeQueue[T]) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
}

func (q *subtreeQueue[T]) Push(x any) {
	*q = append(*q, x.(*treapNode[T]))
}

func (q *subtreeQueue[T]) Pop() any {
	old := *q
	n := len(old) - 1
	node := old[n]
	old[n] = nil
	*q = old[:n]
	return node
}

var _ heap.Interface = (*subtreeQueue[int])(nil)

// Cursor is a splittable traversal over the values of a treap.  Values are
// produced roughly level by level from the root down and in no particular key
// order.  Split hands part of the remaining work to a new, fully independent
// cursor, so the halves may be drained by different goroutines as long as
// nothing mutates the treap in the meantime.
type Cursor[T any] struct {
	queue subtreeQueue[T]

	// parent holds the value of a node whose children were handed out by
	// Split before the value itself was produced.  It is produced before
	// the queue is consumed any further.
	parent     T
	haveParent bool
}

// newCursor returns a cursor over the subtree rooted at the passed node.
func newCursor[T any](root *treapNode[T]) *Cursor[T] {
	c := &Cursor[T]{}
	if root != nil {
		c.queue = subtreeQueue[T]{root}
	}
	return c
}

// enqueueChildren queues the present children of the passed node.
func (c *Cursor[T]) enqueueChildren(node *treapNode[T]) {
	if node.right != nil {
		heap.Push(&c.queue, node.right)
	}
	if node.left != nil {
		heap.Push(&c.queue, node.left)
	}
}

// TryAdvance invokes fn with the next value and returns true, or returns false
// when the cursor is exhausted.
func (c *Cursor[T]) TryAdvance(fn func(T)) bool {
	if c.haveParent {
		value := c.parent
		var zero T
		c.parent, c.haveParent = zero, false
		fn(value)
		return true
	}

	if len(c.queue) == 0 {
		return false
	}

	node := heap.Pop(&c.queue).(*treapNode[T])
	c.enqueueChildren(node)
	fn(node.value)
	return true
}

// ForEachRemaining invokes fn with every value left in the cursor.
func (c *Cursor[T]) ForEachRemaining(fn func(T)) {
	for c.TryAdvance(fn) {
	}
}

// Split partitions the remaining work between the cursor and a new cursor,
// which is returned.  It returns nil when there is nothing to hand out.
//
// With several pending subtrees the new cursor takes the shallowest one.  With
// a single pending subtree its root value is kept back by this cursor, to be
// produced next, while its children are shared out between the two cursors so
// the root value is produced exactly once.
func (c *Cursor[T]) Split() *Cursor[T] {
	if len(c.queue) == 0 {
		return nil
	}

	if len(c.queue) == 1 && !c.haveParent {
		node := heap.Pop(&c.queue).(*treapNode[T])
		c.parent, c.haveParent = node.value, true
		c.enqueueChildren(node)

		// A leaf leaves nothing to share.
		if len(c.queue) == 0 {
			return nil
		}
	}

	return newCursor(heap.Pop(&c.queue).(*treapNode[T]))
}

// EstimateSize returns a cheap estimate of the number of values left: the
// retained parent value, if any, plus the size of the shallowest pending
// subtree.
func (c *Cursor[T]) EstimateSize() int {
	var n int
	if c.haveParent {
		n++
	}
	if len(c.queue) > 0 {
		n += c.queue[0].size()
	}
	return n
}

// ExactSize returns the number of values left in the cursor.
func (c *Cursor[T]) ExactSize() int {
	var n int
	if c.haveParent {
		n++
	}
	for _, node := range c.queue {
		n += node.size()
	}
	return n
}

// Cursor returns a new splittable cursor over the items of the treap.  The
// treap must not be mutated while the cursor or any cursor split from it is in
// use.
func (t *Treap[T]) Cursor() *Cursor[T] {
	return newCursor(t.root)
}
