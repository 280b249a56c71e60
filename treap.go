// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2026 The treapkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import (
	"cmp"
	"fmt"
)

// Treap represents a treap data structure which is used to hold an ordered set
// of unique values using a combination of binary search tree and heap
// semantics.  It is a self-organizing and randomized data structure that
// doesn't require complex operations to maintain balance.  Search, insert, and
// delete operations are all expected O(log n).
//
// A Treap is not safe for concurrent mutation.  Concurrent readers are safe
// as long as no goroutine mutates the treap.
type Treap[T any] struct {
	root     *treapNode[T]
	compare  func(a, b T) int
	priority func() int
}

// New returns a new empty treap ordered by the natural order of T.
func New[T cmp.Ordered]() *Treap[T] {
	return NewFunc[T](cmp.Compare[T])
}

// NewFunc returns a new empty treap ordered by compare, which must return a
// negative number when a < b, zero when a == b and a positive number when
// a > b, and must define a strict total order.
func NewFunc[T any](compare func(a, b T) int) *Treap[T] {
	return &Treap[T]{compare: compare, priority: randomPriority}
}

// FromSlice returns a new treap ordered by the natural order of T holding
// every distinct value in items.
func FromSlice[T cmp.Ordered](items []T) (*Treap[T], error) {
	t := New[T]()
	if _, err := t.AddAll(items...); err != nil {
		return nil, err
	}
	return t, nil
}

// Len returns the number of items stored in the treap.  The count is not
// cached, so this is O(n).
func (t *Treap[T]) Len() int {
	if t.root == nil {
		return 0
	}
	return t.root.size()
}

// IsEmpty returns whether the treap holds no items.
func (t *Treap[T]) IsEmpty() bool {
	return t.root == nil
}

// Contains returns whether the passed item exists.  An ErrNilItem error is
// returned for a nil item.
func (t *Treap[T]) Contains(item T) (bool, error) {
	if isNil(item) {
		return false, makeError(ErrNilItem, "contains: nil item")
	}
	if t.root == nil {
		return false, nil
	}
	return t.root.contains(item, t.compare), nil
}

// Add inserts the passed item with a random priority.  It returns false when
// an equal item already exists, in which case the treap is unchanged.  An
// ErrNilItem error is returned for a nil item.
func (t *Treap[T]) Add(item T) (bool, error) {
	if isNil(item) {
		return false, makeError(ErrNilItem, "add: nil item")
	}
	return t.addNode(newTreapNode(item, t.drawPriority(item))), nil
}

// drawPriority returns a random priority for a new node holding item that
// differs from the priority of every node on the search path of item.  Those
// are the only nodes the new node can end up linked to, so the heap order
// stays strict after the insert.
func (t *Treap[T]) drawPriority(item T) int {
	priority := t.priority()
	for node := t.root; node != nil; {
		if node.priority == priority {
			log.Tracef("Redrawing priority %d colliding with %v",
				priority, node.value)
			priority = t.priority()
			node = t.root
			continue
		}

		compareResult := t.compare(item, node.value)
		switch {
		case compareResult < 0:
			node = node.left
		case compareResult > 0:
			node = node.right
		default:
			return priority
		}
	}
	return priority
}

// addWithPriority inserts the passed item with an explicit priority.  It
// allows trees of a known shape to be built.  Equal priorities never rotate,
// so the priority must differ from those on the search path of item for the
// heap order to stay strict.
func (t *Treap[T]) addWithPriority(item T, priority int) (bool, error) {
	if isNil(item) {
		return false, makeError(ErrNilItem, "add: nil item")
	}
	return t.addNode(newTreapNode(item, priority)), nil
}

// addNode links the passed node into the treap and restores the heap order.
func (t *Treap[T]) addNode(node *treapNode[T]) bool {
	// The node is the root of the tree if there isn't already one.
	if t.root == nil {
		t.root = node
		return true
	}

	if !t.root.insert(node, t.compare) {
		return false
	}
	t.rebalance(node.value)
	return true
}

// rebalance restores the heap order along the path of the passed value and
// re-seats the root when a rotation moved a different node to the top.
func (t *Treap[T]) rebalance(target T) {
	newRoot := t.root.balance(target, t.compare)
	if newRoot != t.root {
		log.Tracef("Root changed from %v to %v", t.root.value,
			newRoot.value)
		t.root = newRoot
	}
}

// Remove removes the passed item if it exists and returns whether it did.  An
// ErrNilItem error is returned for a nil item.
func (t *Treap[T]) Remove(item T) (bool, error) {
	if isNil(item) {
		return false, makeError(ErrNilItem, "remove: nil item")
	}
	if t.root == nil {
		return false, nil
	}

	// Mark the node and let the balance pass sink it to a leaf and unlink
	// it.  A marked root that is still the root afterwards was the only
	// node in the tree.
	if !t.root.markRemoved(item, t.compare) {
		return false, nil
	}
	t.rebalance(item)
	if t.root.sunk() {
		t.root = nil
	}
	log.Tracef("Removed %v, treap now:\n%v", item, newLogClosure(t.String))
	return true, nil
}

// Clear efficiently removes all items in the treap.
func (t *Treap[T]) Clear() {
	t.root = nil
}

// checkItems returns an ErrNilItem error when any of the passed items is nil.
func checkItems[T any](op string, items []T) error {
	for i, item := range items {
		if isNil(item) {
			str := fmt.Sprintf("%s: nil item at index %d", op, i)
			return makeError(ErrNilItem, str)
		}
	}
	return nil
}

// ContainsAll returns whether every passed item exists.
func (t *Treap[T]) ContainsAll(items ...T) (bool, error) {
	if err := checkItems("containsall", items); err != nil {
		return false, err
	}
	for _, item := range items {
		if found, _ := t.Contains(item); !found {
			return false, nil
		}
	}
	return true, nil
}

// AddAll inserts every passed item and returns whether the treap changed.
// Nothing is inserted when any item is nil.
func (t *Treap[T]) AddAll(items ...T) (bool, error) {
	if err := checkItems("addall", items); err != nil {
		return false, err
	}
	var changed bool
	for _, item := range items {
		added, _ := t.Add(item)
		changed = changed || added
	}
	return changed, nil
}

// RemoveAll removes every passed item and returns whether the treap changed.
// Nothing is removed when any item is nil.
func (t *Treap[T]) RemoveAll(items ...T) (bool, error) {
	if err := checkItems("removeall", items); err != nil {
		return false, err
	}
	var changed bool
	for _, item := range items {
		removed, _ := t.Remove(item)
		changed = changed || removed
	}
	return changed, nil
}

// RetainAll removes every item that is not among the passed items and returns
// whether the treap changed.  Nothing is removed when any item is nil.
func (t *Treap[T]) RetainAll(items ...T) (bool, error) {
	if err := checkItems("retainall", items); err != nil {
		return false, err
	}

	// Load the items to keep into a scratch treap with the same order so
	// membership checks stay logarithmic without requiring T be hashable.
	keep := NewFunc(t.compare)
	for _, item := range items {
		keep.addNode(newTreapNode(item, keep.drawPriority(item)))
	}

	var changed bool
	for _, item := range t.ToSlice() {
		if found, _ := keep.Contains(item); found {
			continue
		}
		removed, _ := t.Remove(item)
		changed = changed || removed
	}
	return changed, nil
}

// ToSlice returns all items in the treap in ascending order.
func (t *Treap[T]) ToSlice() []T {
	if t.root == nil {
		return nil
	}
	return t.root.appendInOrder(make([]T, 0, t.Len()))
}

// ForEach invokes the passed function with every item in the treap in
// ascending order.  Iteration stops early when the function returns false.
func (t *Treap[T]) ForEach(fn func(item T) bool) {
	// Add the root node and all children to the left of it to the list of
	// nodes to traverse and loop until they, and all of their child nodes,
	// have been traversed.
	var parents parentStack[T]
	for node := t.root; node != nil; node = node.left {
		parents.Push(node)
	}
	for parents.Len() > 0 {
		node := parents.Pop()
		if !fn(node.value) {
			return
		}

		// Extend the nodes to traverse by all children to the left of
		// the current node's right child.
		for node := node.right; node != nil; node = node.left {
			parents.Push(node)
		}
	}
}

// MaxDepth returns the number of nodes on the longest path from the root to a
// leaf, or zero for an empty treap.
func (t *Treap[T]) MaxDepth() int {
	if t.root == nil {
		return 0
	}
	return t.root.maxDepth()
}

// MinDepth returns the number of nodes on the shortest branch from the root,
// where a node missing either child ends a branch.  It is zero for an empty
// treap.
func (t *Treap[T]) MinDepth() int {
	if t.root == nil {
		return 0
	}
	return t.root.minDepth()
}
