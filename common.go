// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2026 The treapkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import (
	"math/rand"
	"reflect"
)

const (
	// staticDepth is the size of the static array to use for keeping track
	// of the parent stack during treap iteration.  Since a treap has a very
	// high probability that the tree height is logarithmic, it is
	// exceedingly unlikely that the parent stack will ever exceed this size
	// even for extremely large numbers of items.
	staticDepth = 128

	// nullNodeString is the token written by the structural dump in place
	// of an absent child.
	nullNodeString = "----"
)

// nodeState tracks whether a node still logically belongs to the treap.
type nodeState uint8

const (
	// nodeLive is the state of every node that has not been removed.
	nodeLive nodeState = iota

	// nodePendingRemoval marks a node that has been logically removed but
	// not yet unlinked.  Such a node ranks below every live node, so
	// balancing sinks it to a leaf position where it is detached.
	nodePendingRemoval
)

// treapNode represents a node in the treap.
type treapNode[T any] struct {
	value    T
	priority int
	state    nodeState
	left     *treapNode[T]
	right    *treapNode[T]
}

// newTreapNode returns a new live node from the given value and priority.  The
// node is not initially linked to any others.
func newTreapNode[T any](value T, priority int) *treapNode[T] {
	return &treapNode[T]{value: value, priority: priority}
}

// randomPriority returns a uniformly distributed non-negative priority.  It
// spans 63 bits on 64-bit platforms.
func randomPriority() int {
	return rand.Int()
}

// isNil reports whether the passed item is a nil interface or a nil value of
// a nillable kind.  Values of any other kind are never nil.
func isNil[T any](item T) bool {
	v := any(item)
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice:

		return rv.IsNil()
	}
	return false
}

// parentStack represents a stack of parent treap nodes that are used during
// iteration.  It consists of a static array for holding the parents and a
// dynamic overflow slice.  It is extremely unlikely the overflow will ever be
// hit during normal operation, however, since a treap's height is
// probabilistic, the overflow case needs to be handled properly.
type parentStack[T any] struct {
	index    int
	items    [staticDepth]*treapNode[T]
	overflow []*treapNode[T]
}

// Len returns the current number of items in the stack.
func (s *parentStack[T]) Len() int {
	return s.index
}

// Pop removes the top item from the stack.  It returns nil if the stack is
// empty.
func (s *parentStack[T]) Pop() *treapNode[T] {
	if s.index == 0 {
		return nil
	}

	s.index--
	if s.index < staticDepth {
		node := s.items[s.index]
		s.items[s.index] = nil
		return node
	}

	node := s.overflow[s.index-staticDepth]
	s.overflow[s.index-staticDepth] = nil
	return node
}

// Push pushes the passed item onto the top of the stack.
func (s *parentStack[T]) Push(node *treapNode[T]) {
	if s.index < staticDepth {
		s.items[s.index] = node
		s.index++
		return
	}

	// Only grow the overflow one item at a time since the max number of
	// items is related to the tree depth which requires exponentially more
	// items to increase.
	index := s.index - staticDepth
	if index+1 > cap(s.overflow) {
		overflow := make([]*treapNode[T], index+1)
		copy(overflow, s.overflow)
		s.overflow = overflow
	}
	s.overflow[index] = node
	s.index++
}

// Reset empties the stack.
func (s *parentStack[T]) Reset() {
	*s = parentStack[T]{}
}
