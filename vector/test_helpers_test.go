// SPDX-License-Identifier: MIT

package vector_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgeom/vector"
)

// floatTol is the absolute tolerance used by float comparisons.
const floatTol = 1e-12

// propertyRounds is how many random samples each property test draws.
const propertyRounds = 200

// requirePanicsWith runs fn and requires it to panic with an error
// matching target under errors.Is.
func requirePanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, target), "panic %v does not wrap %v", err, target)
	}()
	fn()
}

// randInt returns a small signed integer so sums never overflow.
func randInt(rng *rand.Rand) int {
	return rng.Intn(2001) - 1000
}

// randNonZeroInt returns a small integer that is never zero.
func randNonZeroInt(rng *rand.Rand) int {
	for {
		if v := randInt(rng); v != 0 {
			return v
		}
	}
}

// randFloat returns a float64 in [-100, 100).
func randFloat(rng *rand.Rand) float64 {
	return rng.Float64()*200 - 100
}

func randVec2i(rng *rand.Rand) vector.Vec2[int] {
	return vector.New2(randInt(rng), randInt(rng))
}

func randVec3i(rng *rand.Rand) vector.Vec3[int] {
	return vector.New3(randInt(rng), randInt(rng), randInt(rng))
}

func randVec4i(rng *rand.Rand) vector.Vec4[int] {
	return vector.New4(randInt(rng), randInt(rng), randInt(rng), randInt(rng))
}

func randVec2f(rng *rand.Rand) vector.Vec2[float64] {
	return vector.New2(randFloat(rng), randFloat(rng))
}

func randVec3f(rng *rand.Rand) vector.Vec3[float64] {
	return vector.New3(randFloat(rng), randFloat(rng), randFloat(rng))
}

func randVec4f(rng *rand.Rand) vector.Vec4[float64] {
	return vector.New4(randFloat(rng), randFloat(rng), randFloat(rng), randFloat(rng))
}

// requireInDeltaSlice compares two float slices component by component.
func requireInDeltaSlice(t *testing.T, want, got []float64, delta float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDelta(t, want[i], got[i], delta, "component %d: want %v got %v", i, want, got)
	}
}
