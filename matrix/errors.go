// SPDX-License-Identifier: MIT
// Package matrix: sentinel errors.
// Index errors are programmer errors: At/Set/Row panic with a value that
// wraps ErrOutOfRange so a recover site can still use errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

// ErrOutOfRange indicates that a row or column index is outside [0, N).
var ErrOutOfRange = errors.New("matrix: index out of range")

// checkRow panics unless 0 ≤ i < n.
func checkRow(method string, i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Errorf("%s(%d): rows %d: %w", method, i, n, ErrOutOfRange))
	}
}

// checkCell panics unless both indices are within an n×n matrix.
func checkCell(method string, i, j, n int) {
	if i < 0 || i >= n || j < 0 || j >= n {
		panic(fmt.Errorf("%s(%d,%d): dimension %d: %w", method, i, j, n, ErrOutOfRange))
	}
}
