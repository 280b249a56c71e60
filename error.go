// Copyright (c) 2026 The treapkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrNilItem indicates a nil item was passed to an operation that
	// inserts, removes or looks up items.  The treap is left unchanged.
	ErrNilItem = ErrorKind("ErrNilItem")

	// ErrIteratorState indicates Iterator.Remove was called before the
	// first call to Next or twice without an intervening call to Next.
	ErrIteratorState = ErrorKind("ErrIteratorState")

	// ErrIteratorExhausted indicates Iterator.Next was called when no
	// values remained.
	ErrIteratorExhausted = ErrorKind("ErrIteratorExhausted")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error returned by a treap operation.  It has full
// support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
