// Copyright (c) 2026 The treapkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

// pendingRemoval reports whether the node has been logically removed.
func (n *treapNode[T]) pendingRemoval() bool {
	return n.state == nodePendingRemoval
}

// sunk reports whether the node is a logically removed leaf, which is the
// only position a removed node may be unlinked from.
func (n *treapNode[T]) sunk() bool {
	return n.pendingRemoval() && n.left == nil && n.right == nil
}

// outranks reports whether the node belongs above other in heap order.  A node
// pending removal ranks below every live node.
func (n *treapNode[T]) outranks(other *treapNode[T]) bool {
	switch {
	case n.pendingRemoval():
		return false
	case other.pendingRemoval():
		return true
	}
	return n.priority > other.priority
}

// size returns the number of nodes in the subtree rooted at the node.
func (n *treapNode[T]) size() int {
	if n == nil {
		return 0
	}
	return 1 + n.left.size() + n.right.size()
}

// contains returns whether the subtree rooted at the node holds item.
func (n *treapNode[T]) contains(item T, compare func(a, b T) int) bool {
	for node := n; node != nil; {
		compareResult := compare(item, node.value)
		if compareResult < 0 {
			node = node.left
			continue
		}
		if compareResult > 0 {
			node = node.right
			continue
		}
		return true
	}
	return false
}

// insert links newNode into the subtree as a new leaf in binary search tree
// position.  It returns false without modifying anything when a node with an
// equal value already exists.  The heap order is not restored; callers must
// balance afterwards.
func (n *treapNode[T]) insert(newNode *treapNode[T], compare func(a, b T) int) bool {
	node := n
	for {
		compareResult := compare(newNode.value, node.value)
		switch {
		case compareResult == 0:
			return false

		case compareResult < 0:
			if node.left == nil {
				node.left = newNode
				return true
			}
			node = node.left

		default:
			if node.right == nil {
				node.right = newNode
				return true
			}
			node = node.right
		}
	}
}

// markRemoved finds the node holding item and marks it as pending removal.
// The node stays linked until a following balance pass sinks and detaches it.
// It returns whether the item was found.
func (n *treapNode[T]) markRemoved(item T, compare func(a, b T) int) bool {
	for node := n; node != nil; {
		compareResult := compare(item, node.value)
		if compareResult < 0 {
			node = node.left
			continue
		}
		if compareResult > 0 {
			node = node.right
			continue
		}

		node.state = nodePendingRemoval
		return true
	}
	return false
}

// rotateRight performs a right rotation with the node as the local root.  The
// left child becomes the new local root, which is returned.
func (n *treapNode[T]) rotateRight() *treapNode[T] {
	l := n.left
	n.left, l.right = l.right, n
	return l
}

// rotateLeft performs a left rotation with the node as the local root.  The
// right child becomes the new local root, which is returned.
func (n *treapNode[T]) rotateLeft() *treapNode[T] {
	r := n.right
	n.right, r.left = r.left, n
	return r
}

// dominantChild returns the child that outranks the node, preferring the
// higher ranked one when both do.  It returns nil when the heap order holds.
func (n *treapNode[T]) dominantChild() *treapNode[T] {
	var child *treapNode[T]
	if n.left != nil && n.left.outranks(n) {
		child = n.left
	}
	if n.right != nil && n.right.outranks(n) {
		if child == nil || n.right.outranks(child) {
			child = n.right
		}
	}
	return child
}

// balance restores the heap order along the search path of target, which must
// be the value of the node that was most recently inserted or marked for
// removal, and returns the resulting local root.  Only a single violation
// site is expected at a time.
//
// The child on the path is balanced first.  Then, when a child outranks the
// node, the node is rotated below it and the new local root is balanced again
// since the rotation moves the violation.  A pending removal leaf reached this
// way is detached.
func (n *treapNode[T]) balance(target T, compare func(a, b T) int) *treapNode[T] {
	if n.left == nil && n.right == nil {
		return n
	}

	compareResult := compare(target, n.value)
	if compareResult < 0 && n.left != nil {
		n.left = n.left.balance(target, compare)
		if n.left.sunk() {
			n.left = nil
		}
	} else if compareResult > 0 && n.right != nil {
		n.right = n.right.balance(target, compare)
		if n.right.sunk() {
			n.right = nil
		}
	}

	switch child := n.dominantChild(); {
	case child == nil:
		return n

	case child == n.left:
		log.Tracef("Rotating right around %v", n.value)
		return n.rotateRight().balance(target, compare)

	default:
		log.Tracef("Rotating left around %v", n.value)
		return n.rotateLeft().balance(target, compare)
	}
}

// appendInOrder appends the values of the subtree to dst in ascending order
// and returns the extended slice.
func (n *treapNode[T]) appendInOrder(dst []T) []T {
	if n == nil {
		return dst
	}
	dst = n.left.appendInOrder(dst)
	dst = append(dst, n.value)
	return n.right.appendInOrder(dst)
}

// aggregateDepth folds the depth of the left and right subtrees with fn and
// adds one for the node itself.
func (n *treapNode[T]) aggregateDepth(fn func(l, r int) int) int {
	var l, r int
	if n.left != nil {
		l = n.left.aggregateDepth(fn)
	}
	if n.right != nil {
		r = n.right.aggregateDepth(fn)
	}
	return 1 + fn(l, r)
}

// maxDepth returns the number of nodes on the longest root to leaf path.
func (n *treapNode[T]) maxDepth() int {
	return n.aggregateDepth(func(l, r int) int { return max(l, r) })
}

// minDepth returns the number of nodes on the shortest branch, counting a
// missing child as a branch of depth zero.
func (n *treapNode[T]) minDepth() int {
	return n.aggregateDepth(func(l, r int) int { return min(l, r) })
}

// leftDepth returns the length of the left edge of the subtree, a cheap
// height estimate for a well balanced tree.
func (n *treapNode[T]) leftDepth() int {
	depth := 0
	for node := n; node != nil; node = node.left {
		depth++
	}
	return depth
}
