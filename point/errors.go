// SPDX-License-Identifier: MIT

package point

import (
	"errors"
	"fmt"
)

// ErrOutOfRange indicates a coordinate index outside the point's dimension.
var ErrOutOfRange = errors.New("point: index out of range")

func checkIndex(method string, i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Errorf("%s(%d): dimension %d: %w", method, i, n, ErrOutOfRange))
	}
}
