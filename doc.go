// Copyright (c) 2026 The treapkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package treap implements an ordered set backed by a treap.

A treap is a binary search tree on the value order that is also a max-heap on
a randomly assigned per-node priority.  The random priorities keep the
expected height logarithmic without any explicit rebalancing rules; a single
rotation pass after every insert or removal restores the heap order.

Removal is lazy: the node is first marked as pending removal, which ranks it
below every live node, and the following balance pass rotates it down to a
leaf where it is unlinked.  Every exported operation completes that pass
before it returns, so both the search tree and heap invariants hold between
calls.

# Traversal

Three ways of visiting items are provided:

  - ForEach and ToSlice walk the items in ascending order.
  - Iterator walks them in ascending order with an explicit stack and allows
    removing the item just returned.
  - Cursor produces the items top down and can be split into independent
    cursors so a walk can be spread over several goroutines, which is what
    ParallelForEach and WalkParallel do.

# Errors

Operations that take an item reject a nil item with an error that matches
ErrNilItem via errors.Is, before touching the treap.  Inserting a duplicate or
removing a missing item is not an error; it is reported by a false result.

# Concurrency

A Treap is not safe for concurrent mutation.  Any number of goroutines may
read it, including through split cursors, while no goroutine mutates it.
*/
package treap
