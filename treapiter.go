// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2026 The treapkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

// Iterator represents a forward iterator over the contents of a treap in
// ascending order.  It supports removing the most recently returned item from
// the treap while iterating.
type Iterator[T any] struct {
	t        *Treap[T]      // Treap the iterator is associated with
	parents  parentStack[T] // The stack of nodes still to be visited
	last     T              // The most recently returned value
	haveLast bool           // Whether last may be removed
}

// pushLeft pushes the passed node and all nodes down its left edge.
func (iter *Iterator[T]) pushLeft(node *treapNode[T]) {
	for ; node != nil; node = node.left {
		iter.parents.Push(node)
	}
}

// seekAfter rebuilds the stack so the next value returned is the smallest one
// greater than key.
func (iter *Iterator[T]) seekAfter(key T) {
	iter.parents.Reset()
	for node := iter.t.root; node != nil; {
		if iter.t.compare(key, node.value) < 0 {
			iter.parents.Push(node)
			node = node.left
			continue
		}
		node = node.right
	}
}

// HasNext returns whether a call to Next will return a value.
func (iter *Iterator[T]) HasNext() bool {
	return iter.parents.Len() > 0
}

// Next returns the next value in ascending order.  An ErrIteratorExhausted
// error is returned when there are no values left.
func (iter *Iterator[T]) Next() (T, error) {
	node := iter.parents.Pop()
	if node == nil {
		var zero T
		return zero, makeError(ErrIteratorExhausted, "next: no more items")
	}

	// Extend the nodes to traverse by all children to the left of the
	// current node's right child.
	iter.pushLeft(node.right)

	iter.last = node.value
	iter.haveLast = true
	return node.value, nil
}

// Remove removes the value most recently returned by Next from the treap.  An
// ErrIteratorState error is returned, and the treap is left unchanged, when
// Next has not been called since the iterator was created or since the
// previous call to Remove.
//
// Removal may rotate nodes the iterator is still due to visit, so the iterator
// reseeks to the value following the removed one.
func (iter *Iterator[T]) Remove() error {
	if !iter.haveLast {
		return makeError(ErrIteratorState, "remove: called twice or "+
			"before next")
	}

	if _, err := iter.t.Remove(iter.last); err != nil {
		return err
	}
	iter.seekAfter(iter.last)

	var zero T
	iter.last = zero
	iter.haveLast = false
	return nil
}

// Iterator returns a new iterator positioned before the smallest item of the
// treap.
//
// For example:
//
//	iter := t.Iterator()
//	for iter.HasNext() {
//		v, _ := iter.Next()
//		if someCondition(v) {
//			iter.Remove()
//		}
//	}
//
// Mutating the treap other than through Remove invalidates the iterator.
func (t *Treap[T]) Iterator() *Iterator[T] {
	iter := &Iterator[T]{t: t}
	iter.pushLeft(t.root)
	return iter
}
