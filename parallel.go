// Copyright (c) 2026 The treapkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// splitCursor splits c repeatedly until there are workers cursors or no
// cursor can be split any further.
func splitCursor[T any](c *Cursor[T], workers int) []*Cursor[T] {
	cursors := []*Cursor[T]{c}
	for len(cursors) < workers {
		var split bool
		for i := 0; i < len(cursors) && len(cursors) < workers; i++ {
			if half := cursors[i].Split(); half != nil {
				cursors = append(cursors, half)
				split = true
			}
		}
		if !split {
			break
		}
	}
	return cursors
}

// WalkParallel drains the passed cursor on up to workers goroutines, invoking
// fn once for every value.  fn must be safe for concurrent use.  The walk stops
// early and returns the error when fn fails or ctx is done.
func WalkParallel[T any](ctx context.Context, c *Cursor[T], workers int,
	fn func(T) error) error {

	if workers < 1 {
		workers = 1
	}
	cursors := splitCursor(c, workers)
	log.Debugf("Walking treap with %d cursors", len(cursors))

	g, ctx := errgroup.WithContext(ctx)
	for _, cursor := range cursors {
		cursor := cursor
		g.Go(func() error {
			var err error
			for err == nil {
				if err = ctx.Err(); err != nil {
					break
				}
				if !cursor.TryAdvance(func(v T) { err = fn(v) }) {
					break
				}
			}
			return err
		})
	}
	return g.Wait()
}

// ParallelForEach invokes fn once for every item of the treap using up to
// workers goroutines.  The treap must not be mutated until it returns.
func (t *Treap[T]) ParallelForEach(ctx context.Context, workers int,
	fn func(T) error) error {

	return WalkParallel(ctx, t.Cursor(), workers, fn)
}
