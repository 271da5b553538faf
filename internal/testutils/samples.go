// Package testutils provides inputs shared by the numeric tests.
package testutils

import (
	"math"

	"github.com/ARM-software/golang-numerics/numkind"
)

// IntegerBoundaries returns the bounds of every integer kind which fit in an int64, with their neighbours.
func IntegerBoundaries() []int64 {
	samples := []int64{0, 1, -1}
	for _, k := range numkind.KindValues() {
		if !k.IsInteger() {
			continue
		}
		if minV := k.MinInt(); minV != 0 {
			samples = append(samples, minV)
			if minV > math.MinInt64 {
				samples = append(samples, minV-1)
			}
		}
		if maxV := k.MaxUint(); maxV <= math.MaxInt64 {
			samples = append(samples, int64(maxV))
			if maxV < math.MaxInt64 {
				samples = append(samples, int64(maxV)+1)
			}
		}
	}
	return samples
}

// FloatEdgeCases returns floats around the bounds of every kind, along with special values.
func FloatEdgeCases() []float64 {
	samples := []float64{
		0, math.Copysign(0, -1), 0.5, -0.5, 1, -1,
		math.SmallestNonzeroFloat64, math.SmallestNonzeroFloat32, 0x1p-126,
		math.Inf(1), math.Inf(-1), math.NaN(),
	}
	for _, k := range numkind.KindValues() {
		var bound float64
		if k.IsFloat() {
			bound = k.MaxFinite()
		} else {
			bound = float64(k.MaxUint())
		}
		samples = append(samples,
			bound, -bound,
			math.Nextafter(bound, math.Inf(1)), math.Nextafter(bound, 0),
			bound+0.5, -bound-0.5,
		)
	}
	return samples
}
