// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Provide the two private kernels every arithmetic method is built on:
//     ewZip (pairwise) and ewBroadcast (scalar replicated to each component).
//   - Keep the per-dimension files free of loops; they only slice their
//     backing array and pick an operator.
//
// Determinism:
//   - Fixed loop order 0..n-1, no allocations, dst is written in place.

package vector

// binaryOp combines two components into one.
type binaryOp[T Number] func(a, b T) T

func opAdd[T Number](a, b T) T { return a + b }
func opSub[T Number](a, b T) T { return a - b }
func opMul[T Number](a, b T) T { return a * b }
func opDiv[T Number](a, b T) T { return a / b }

// ewZip computes dst[i] = op(dst[i], rhs[i]).
// Callers guarantee len(dst) == len(rhs) through the type system.
func ewZip[T Number](dst, rhs []T, op binaryOp[T]) {
	for i := range dst {
		dst[i] = op(dst[i], rhs[i])
	}
}

// ewBroadcast computes dst[i] = op(dst[i], s).
func ewBroadcast[T Number](dst []T, s T, op binaryOp[T]) {
	for i := range dst {
		dst[i] = op(dst[i], s)
	}
}

// ewDot returns Σ a[i]*b[i].
func ewDot[T Number](a, b []T) T {
	var sum T
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// ewNeg negates dst in place.
func ewNeg[T Number](dst []T) {
	for i := range dst {
		dst[i] = -dst[i]
	}
}
