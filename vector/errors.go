// SPDX-License-Identifier: MIT
// Package vector: sentinel errors.
//
// Out-of-range access is a programmer error and is reported by panicking
// with a value that wraps ErrOutOfRange, so code that recovers can still
// match it with errors.Is.

package vector

import (
	"errors"
	"fmt"
)

// ErrOutOfRange indicates a component index outside [0, N).
var ErrOutOfRange = errors.New("vector: index out of range")

// checkIndex panics with ErrOutOfRange when i is not a valid index
// for a vector of dimension n.
func checkIndex(method string, i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Errorf("%s(%d): dimension %d: %w", method, i, n, ErrOutOfRange))
	}
}
