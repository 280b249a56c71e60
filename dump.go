// Copyright (c) 2026 The treapkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import (
	"fmt"
	"io"
	"strings"
)

// dumpIndent is the number of spaces each tree level is indented by.
const dumpIndent = 4

// writeLine writes s on its own line indented for the passed depth.
func writeLine(w io.Writer, depth int, s string) error {
	_, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", depth*dumpIndent), s)
	return err
}

// dump writes the subtree rooted at the node, right subtree before left.  A
// missing child of a node that has the other child is written as a sentinel.
func (n *treapNode[T]) dump(w io.Writer, depth int) error {
	if n == nil {
		return writeLine(w, depth, nullNodeString)
	}

	line := fmt.Sprintf("%v (%d)", n.value, n.priority)
	if err := writeLine(w, depth, line); err != nil {
		return err
	}
	if n.left == nil && n.right == nil {
		return nil
	}
	if err := n.right.dump(w, depth+1); err != nil {
		return err
	}
	return n.left.dump(w, depth+1)
}

// Dump writes a human-readable description of the tree structure to w, one
// line per node holding its value and priority, indented by depth.  The format
// is meant for debugging and may change.
func (t *Treap[T]) Dump(w io.Writer) error {
	return t.root.dump(w, 0)
}

// String returns the structural dump of the treap.
func (t *Treap[T]) String() string {
	var sb strings.Builder
	t.Dump(&sb)
	return sb.String()
}
