// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2016 The Decred developers
// Copyright (c) 2026 The treapkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import (
	"cmp"
	"fmt"
	"math/rand"
	"reflect"
	"strings"
	"testing"
)

// checkSubtree returns an error describing the first violation of the search
// tree or heap order found in the subtree rooted at node.  Every value must
// lie strictly between lo and hi when they are not nil.  When strict is set a
// child must have a strictly lower priority than its parent, otherwise equal
// priorities are accepted.
func checkSubtree[T any](node *treapNode[T], compare func(a, b T) int,
	lo, hi *T, strict bool) error {

	if node == nil {
		return nil
	}
	if node.pendingRemoval() {
		return fmt.Errorf("node %v is still linked after removal",
			node.value)
	}
	if lo != nil && compare(node.value, *lo) <= 0 {
		return fmt.Errorf("node %v is not greater than ancestor %v",
			node.value, *lo)
	}
	if hi != nil && compare(node.value, *hi) >= 0 {
		return fmt.Errorf("node %v is not less than ancestor %v",
			node.value, *hi)
	}
	for _, child := range []*treapNode[T]{node.left, node.right} {
		if child == nil {
			continue
		}
		if child.priority > node.priority ||
			(strict && child.priority == node.priority) {

			return fmt.Errorf("child %v (%d) outranks parent %v (%d)",
				child.value, child.priority, node.value,
				node.priority)
		}
	}
	if err := checkSubtree(node.left, compare, lo, &node.value, strict); err != nil {
		return err
	}
	return checkSubtree(node.right, compare, &node.value, hi, strict)
}

// assertInvariants fails the test when the treap violates the search tree or
// heap order.
func assertInvariants[T any](t *testing.T, tr *Treap[T], strict bool) {
	t.Helper()

	if err := checkSubtree(tr.root, tr.compare, nil, nil, strict); err != nil {
		t.Fatalf("invariant violated: %v\n%s", err, tr)
	}
}

// distinctInts returns n distinct pseudo-random integers drawn from rng.
func distinctInts(rng *rand.Rand, n int) []int {
	seen := make(map[int]struct{}, n)
	ints := make([]int, 0, n)
	for len(ints) < n {
		v := rng.Int()
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		ints = append(ints, v)
	}
	return ints
}

// newRuneTreap returns a treap of runes built by adding each value with the
// matching priority in order.
func newRuneTreap(t *testing.T, values string, priorities ...int) *Treap[rune] {
	t.Helper()

	tr := NewFunc(cmp.Compare[rune])
	for i, v := range []rune(values) {
		if _, err := tr.addWithPriority(v, priorities[i]); err != nil {
			t.Fatalf("addWithPriority %q: unexpected error: %v", v, err)
		}
	}
	return tr
}

// newStringTreap returns a treap of single letter strings built by adding each
// letter of values with the matching priority in order.
func newStringTreap(t *testing.T, values string, priorities ...int) *Treap[string] {
	t.Helper()

	tr := NewFunc(strings.Compare)
	for i, v := range strings.Split(values, "") {
		if _, err := tr.addWithPriority(v, priorities[i]); err != nil {
			t.Fatalf("addWithPriority %q: unexpected error: %v", v, err)
		}
	}
	return tr
}

// TestParentStack ensures the parentStack functionality works as intended.
func TestParentStack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		numNodes int
	}{
		{numNodes: 1},
		{numNodes: staticDepth},
		{numNodes: staticDepth + 1}, // Test dynamic code paths
	}

testLoop:
	for i, test := range tests {
		nodes := make([]*treapNode[int], 0, test.numNodes)
		for j := 0; j < test.numNodes; j++ {
			nodes = append(nodes, newTreapNode(j, 0))
		}

		// Push all of the nodes onto the parent stack while testing
		// various stack properties.
		stack := &parentStack[int]{}
		for j, node := range nodes {
			stack.Push(node)

			// Ensure the stack length is the expected value.
			if stack.Len() != j+1 {
				t.Errorf("Len #%d (%d): unexpected stack "+
					"length - got %d, want %d", i, j,
					stack.Len(), j+1)
				continue testLoop
			}
		}

		// Ensure each popped node is the expected one.
		for j := 0; j < len(nodes); j++ {
			node := stack.Pop()
			expected := nodes[len(nodes)-j-1]
			if !reflect.DeepEqual(node, expected) {
				t.Errorf("Pop #%d (%d): mismatched node - "+
					"got %v, want %v", i, j, node, expected)
				continue testLoop
			}
		}

		// Ensure the stack is now empty.
		if stack.Len() != 0 {
			t.Errorf("Len #%d: stack is not empty - got %d", i,
				stack.Len())
			continue testLoop
		}

		// Ensure attempting to pop a node from an empty stack returns
		// nil.
		if node := stack.Pop(); node != nil {
			t.Errorf("Pop #%d: did not give back nil - got %v", i,
				node)
			continue testLoop
		}
	}
}

// TestIsNil ensures nil detection covers nil interfaces and every nillable
// kind without flagging ordinary values.
func TestIsNil(t *testing.T) {
	t.Parallel()

	var nilPtr *int
	var nilErr error
	var nilSlice []byte
	var nilMap map[string]int
	var nilFunc func()
	var nilChan chan int
	one := 1

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"nil pointer", isNil(nilPtr), true},
		{"nil interface", isNil(nilErr), true},
		{"nil slice", isNil(nilSlice), true},
		{"nil map", isNil(nilMap), true},
		{"nil func", isNil(nilFunc), true},
		{"nil chan", isNil(nilChan), true},
		{"nil any", isNil[any](nil), true},
		{"pointer", isNil(&one), false},
		{"int", isNil(0), false},
		{"empty string", isNil(""), false},
		{"empty slice", isNil([]byte{}), false},
		{"boxed nil pointer", isNil[any](nilPtr), true},
	}

	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("%s: unexpected result - got %v, want %v",
				test.name, test.got, test.want)
		}
	}
}

// TestRandomPriority ensures random priorities are never negative.
func TestRandomPriority(t *testing.T) {
	t.Parallel()

	for i := 0; i < 1000; i++ {
		if p := randomPriority(); p < 0 {
			t.Fatalf("randomPriority #%d: negative priority %d", i, p)
		}
	}
}
