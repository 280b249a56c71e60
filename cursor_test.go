// Copyright (c) 2026 The treapkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// drainSplitting splits every cursor reachable from c until no further splits
// are possible, advancing each one a little in between, and returns all
// produced values.
func drainSplitting[T any](c *Cursor[T], rng *rand.Rand) []T {
	var got []T
	collect := func(v T) { got = append(got, v) }

	pending := []*Cursor[T]{c}
	for len(pending) > 0 {
		cursor := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		for {
			if half := cursor.Split(); half != nil {
				pending = append(pending, half)
			}
			if !cursor.TryAdvance(collect) {
				break
			}
			for n := rng.Intn(3); n > 0 && cursor.TryAdvance(collect); n-- {
			}
		}
	}
	return got
}

// TestCursorEmpty ensures a cursor over an empty treap yields nothing and
// cannot be split.
func TestCursorEmpty(t *testing.T) {
	t.Parallel()

	c := New[int]().Cursor()
	require.Nil(t, c.Split())
	require.False(t, c.TryAdvance(func(int) {
		t.Fatal("unexpected value from empty cursor")
	}))
	require.Zero(t, c.EstimateSize())
	require.Zero(t, c.ExactSize())
}

// TestCursorOrder ensures an unsplit cursor yields shallower nodes first.
func TestCursorOrder(t *testing.T) {
	t.Parallel()

	tr := newRuneTreap(t, "FDTCEXH", 10, 8, 7, 2, 1, 6, 3)
	var got []rune
	tr.Cursor().ForEachRemaining(func(v rune) { got = append(got, v) })
	require.Equal(t, "FDTXHCE", string(got))
}

// TestCursorSingleNodeSplit ensures splitting a cursor holding one subtree
// produces the subtree root exactly once.
func TestCursorSingleNodeSplit(t *testing.T) {
	t.Parallel()

	tr := newRuneTreap(t, "BAC", 10, 5, 7)
	c := tr.Cursor()
	require.Equal(t, 3, c.ExactSize())

	half := c.Split()
	require.NotNil(t, half)

	// The new cursor takes the higher priority child C while the original
	// keeps B, to be produced first, and A.
	require.Equal(t, 2, c.ExactSize())
	require.Equal(t, 1, half.ExactSize())

	var got []rune
	collect := func(v rune) { got = append(got, v) }
	c.ForEachRemaining(collect)
	half.ForEachRemaining(collect)
	require.Equal(t, "BAC", string(got))
}

// TestCursorLeafSplit ensures a cursor positioned on a lone leaf keeps the
// value and refuses to split.
func TestCursorLeafSplit(t *testing.T) {
	t.Parallel()

	tr := New[int]()
	tr.Add(7)
	c := tr.Cursor()
	require.Nil(t, c.Split())
	require.Equal(t, 1, c.ExactSize())
	require.Equal(t, 1, c.EstimateSize())

	var got []int
	c.ForEachRemaining(func(v int) { got = append(got, v) })
	require.Equal(t, []int{7}, got)
	require.Nil(t, c.Split())
}

// TestCursorRetainedParentSplit ensures a cursor that retains a parent value
// and has a single pending subtree hands that subtree off intact.
func TestCursorRetainedParentSplit(t *testing.T) {
	t.Parallel()

	// B(10) with only a right child D(5) which holds C(3) and E(4).
	tr := newRuneTreap(t, "BDCE", 10, 5, 3, 4)
	c := tr.Cursor()

	half := c.Split()
	require.NotNil(t, half)
	require.Equal(t, 1, c.ExactSize())
	require.Equal(t, 3, half.ExactSize())

	// Only the retained B is left, so there is nothing more to split.
	require.Nil(t, c.Split())

	var got []rune
	collect := func(v rune) { got = append(got, v) }
	c.ForEachRemaining(collect)
	half.ForEachRemaining(collect)
	require.Equal(t, "BDEC", string(got))
}

// TestCursorCompleteness ensures repeatedly splitting and draining cursors
// yields every item exactly once.
func TestCursorCompleteness(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(2024))
	for _, size := range []int{1, 2, 3, 17, 256, 1000} {
		values := distinctInts(rng, size)
		tr, err := FromSlice(values)
		require.NoError(t, err)

		c := tr.Cursor()
		require.Equal(t, size, c.ExactSize())
		require.LessOrEqual(t, c.EstimateSize(), size)

		got := drainSplitting(c, rng)
		sort.Ints(got)
		require.Equal(t, tr.ToSlice(), got, "size %d", size)
	}
}

// TestCursorSizes ensures the size reports shrink as values are produced.
func TestCursorSizes(t *testing.T) {
	t.Parallel()

	tr := newRuneTreap(t, "FDTCEXH", 10, 8, 7, 2, 1, 6, 3)
	c := tr.Cursor()
	for want := 7; want > 0; want-- {
		require.Equal(t, want, c.ExactSize())
		require.True(t, c.TryAdvance(func(rune) {}))
	}
	require.Zero(t, c.ExactSize())

	// The estimate only counts the shallowest pending subtree.
	c = tr.Cursor()
	c.TryAdvance(func(rune) {})
	require.Equal(t, 3, c.EstimateSize())
	require.Equal(t, 6, c.ExactSize())
}
