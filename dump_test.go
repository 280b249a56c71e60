// Copyright (c) 2026 The treapkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import (
	"testing"
)

// TestDump ensures the structural dump lists the right subtree before the left
// one and marks a missing sibling with the sentinel.
func TestDump(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		values     string
		priorities []int
		remove     string
		want       string
	}{
		{
			name: "empty",
			want: "----\n",
		},
		{
			name:       "single",
			values:     "A",
			priorities: []int{1},
			want:       "A (1)\n",
		},
		{
			name:       "rotated root",
			values:     "AN",
			priorities: []int{10, 100},
			want: "N (100)\n" +
				"    ----\n" +
				"    A (10)\n",
		},
		{
			name:       "full",
			values:     "FDTCEXH",
			priorities: []int{10, 8, 7, 2, 1, 6, 3},
			want: "F (10)\n" +
				"    T (7)\n" +
				"        X (6)\n" +
				"        H (3)\n" +
				"    D (8)\n" +
				"        E (1)\n" +
				"        C (2)\n",
		},
		{
			name:       "root removed",
			values:     "FDTCEXH",
			priorities: []int{10, 8, 7, 2, 1, 6, 3},
			remove:     "F",
			want: "D (8)\n" +
				"    T (7)\n" +
				"        X (6)\n" +
				"        H (3)\n" +
				"            ----\n" +
				"            E (1)\n" +
				"    C (2)\n",
		},
	}

	for _, test := range tests {
		tr := newStringTreap(t, test.values, test.priorities...)
		if test.remove != "" {
			if _, err := tr.Remove(test.remove); err != nil {
				t.Fatalf("%s: unexpected remove error: %v", test.name,
					err)
			}
		}
		if got := tr.String(); got != test.want {
			t.Errorf("%s: unexpected dump\ngot:\n%s\nwant:\n%s",
				test.name, got, test.want)
		}
	}
}
