package safecast

import (
	"math"
	"testing"

	"github.com/ARM-software/golang-numerics/constraints"
	"github.com/ARM-software/golang-numerics/internal/testutils"
	"github.com/ARM-software/golang-numerics/numkind"
)

// checkCast verifies that the checked and saturating conversions of value into T agree
// and that a successful conversion between integers, or into a containing kind, round-trips.
func checkCast[T, S constraints.INumber](t *testing.T, value S) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("panic: %v", r)
		}
	}()
	saturated := Saturate[T](value)
	v, ok := CastFrom[T](value)
	if !ok {
		return
	}
	if numkind.Of[T]().IsFloat() && math.IsNaN(float64(v)) {
		return
	}
	// Infinities widen but never narrow back.
	infinite := numkind.Of[T]().IsFloat() && math.IsInf(float64(v), 0)
	if saturated != v {
		t.Fatalf("%v: saturated %v differs from checked %v", value, saturated, v)
	}
	src, dst := numkind.Of[S](), numkind.Of[T]()
	if !infinite && (src.IsInteger() && dst.IsInteger() || Lossless(src, dst)) {
		back, ok := CastFrom[S](v)
		if !ok || back != value {
			t.Fatalf("%v did not round-trip through %v", value, dst)
		}
	}
}

func checkAll[S constraints.INumber](t *testing.T, value S) {
	checkCast[int8](t, value)
	checkCast[int16](t, value)
	checkCast[int32](t, value)
	checkCast[int64](t, value)
	checkCast[int](t, value)
	checkCast[uint8](t, value)
	checkCast[uint16](t, value)
	checkCast[uint32](t, value)
	checkCast[uint64](t, value)
	checkCast[uint](t, value)
	checkCast[float32](t, value)
	checkCast[float64](t, value)
}

func TestEdgeCases(t *testing.T) {
	for _, f := range testutils.FloatEdgeCases() {
		checkAll(t, f)
		checkAll(t, float32(f))
	}
	for _, i := range testutils.IntegerBoundaries() {
		checkAll(t, i)
		checkAll(t, uint64(i))
		checkAll(t, int32(i))
	}
}

func FuzzFromInt(f *testing.F) {
	f.Add(0)
	f.Add(math.MinInt)
	f.Add(math.MaxInt)
	f.Fuzz(func(t *testing.T, from int) {
		checkAll(t, from)
	})
}

func FuzzFromInt8(f *testing.F) {
	f.Add(int8(0))
	f.Add(int8(math.MinInt8))
	f.Add(int8(math.MaxInt8))
	f.Fuzz(func(t *testing.T, from int8) {
		checkAll(t, from)
	})
}

func FuzzFromInt16(f *testing.F) {
	f.Add(int16(0))
	f.Add(int16(math.MinInt16))
	f.Add(int16(math.MaxInt16))
	f.Fuzz(func(t *testing.T, from int16) {
		checkAll(t, from)
	})
}

func FuzzFromInt32(f *testing.F) {
	f.Add(int32(0))
	f.Add(int32(math.MinInt32))
	f.Add(int32(math.MaxInt32))
	f.Fuzz(func(t *testing.T, from int32) {
		checkAll(t, from)
	})
}

func FuzzFromInt64(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(math.MinInt64))
	f.Add(int64(math.MaxInt64))
	f.Fuzz(func(t *testing.T, from int64) {
		checkAll(t, from)
	})
}

func FuzzFromUint(f *testing.F) {
	f.Add(uint(0))
	f.Add(uint(math.MaxUint))
	f.Fuzz(func(t *testing.T, from uint) {
		checkAll(t, from)
	})
}

func FuzzFromUint8(f *testing.F) {
	f.Add(uint8(0))
	f.Add(uint8(math.MaxUint8))
	f.Fuzz(func(t *testing.T, from uint8) {
		checkAll(t, from)
	})
}

func FuzzFromUint16(f *testing.F) {
	f.Add(uint16(0))
	f.Add(uint16(math.MaxUint16))
	f.Fuzz(func(t *testing.T, from uint16) {
		checkAll(t, from)
	})
}

func FuzzFromUint32(f *testing.F) {
	f.Add(uint32(0))
	f.Add(uint32(math.MaxUint32))
	f.Fuzz(func(t *testing.T, from uint32) {
		checkAll(t, from)
	})
}

func FuzzFromUint64(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(math.MaxUint64))
	f.Fuzz(func(t *testing.T, from uint64) {
		checkAll(t, from)
	})
}

func FuzzFromFloat32(f *testing.F) {
	f.Add(float32(0))
	f.Add(float32(-0.5))
	f.Add(float32(math.MaxFloat32))
	f.Add(float32(math.Inf(1)))
	f.Fuzz(func(t *testing.T, from float32) {
		checkAll(t, from)
	})
}

func FuzzFromFloat64(f *testing.F) {
	f.Add(0.0)
	f.Add(127.5)
	f.Add(0x1p63)
	f.Add(math.MaxFloat64)
	f.Add(math.NaN())
	f.Fuzz(func(t *testing.T, from float64) {
		checkAll(t, from)
	})
}
