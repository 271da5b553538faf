package safecast

import (
	"math"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-numerics/commonerrors"
	"github.com/ARM-software/golang-numerics/commonerrors/errortest"
	"github.com/ARM-software/golang-numerics/constraints"
)

func assertCast[T, S constraints.INumber](t *testing.T, value S, expected T) {
	t.Helper()
	v, ok := CastFrom[T](value)
	require.True(t, ok, "%v should be representable as %T", value, expected)
	assert.Equal(t, expected, v)
}

func assertNoCast[T, S constraints.INumber](t *testing.T, value S) {
	t.Helper()
	v, ok := CastFrom[T](value)
	assert.False(t, ok, "%v should not be representable as %T", value, v)
	assert.Zero(t, v)
}

func TestCastFrom(t *testing.T) {
	t.Run("examples", func(t *testing.T) {
		assertNoCast[int8](t, uint8(200))
		assertCast(t, uint8(100), int8(100))
		assertNoCast[float32](t, math.Inf(1))
		assertNoCast[float32](t, math.MaxFloat64)
		assertCast(t, 1.0, float32(1))
		assertNoCast[int32](t, 1e123)
		assertCast(t, int32(32), float32(32))
	})
	t.Run("identity", func(t *testing.T) {
		assertCast(t, int8(math.MinInt8), int8(math.MinInt8))
		assertCast(t, uint64(math.MaxUint64), uint64(math.MaxUint64))
		assertCast(t, math.Inf(-1), math.Inf(-1))
		v, ok := CastFrom[float64](math.NaN())
		require.True(t, ok)
		assert.True(t, math.IsNaN(v))
	})
	t.Run("signed widening", func(t *testing.T) {
		assertCast(t, int8(math.MinInt8), int64(math.MinInt8))
		assertCast(t, int32(math.MaxInt32), int(math.MaxInt32))
		assertCast(t, int64(math.MinInt64), int64(math.MinInt64))
	})
	t.Run("signed narrowing", func(t *testing.T) {
		assertCast(t, int16(127), int8(127))
		assertCast(t, int16(-128), int8(-128))
		assertNoCast[int8](t, int16(128))
		assertNoCast[int8](t, int16(-129))
		assertCast(t, int64(math.MaxInt32), int32(math.MaxInt32))
		assertNoCast[int32](t, int64(math.MaxInt32)+1)
		assertNoCast[int16](t, int64(math.MinInt64))
	})
	t.Run("signed to unsigned", func(t *testing.T) {
		assertNoCast[uint64](t, int8(-1))
		assertNoCast[uint](t, math.MinInt)
		assertCast(t, int64(math.MaxInt64), uint64(math.MaxInt64))
		assertCast(t, int16(255), uint8(255))
		assertNoCast[uint8](t, int64(256))
		assertCast(t, int32(0), uint16(0))
	})
	t.Run("unsigned widening", func(t *testing.T) {
		assertCast(t, uint8(math.MaxUint8), uint64(math.MaxUint8))
		assertCast(t, uint32(math.MaxUint32), uint(math.MaxUint32))
	})
	t.Run("unsigned narrowing", func(t *testing.T) {
		assertCast(t, uint16(255), uint8(255))
		assertNoCast[uint8](t, uint16(256))
		assertNoCast[uint32](t, uint64(math.MaxUint64))
	})
	t.Run("unsigned to signed", func(t *testing.T) {
		assertCast(t, uint64(math.MaxInt64), int64(math.MaxInt64))
		assertNoCast[int64](t, uint64(math.MaxInt64)+1)
		assertCast(t, uint8(255), int16(255))
		assertNoCast[int8](t, uint8(128))
		assertNoCast[int](t, uint(math.MaxUint))
	})
	t.Run("integer to float", func(t *testing.T) {
		assertCast(t, uint64(math.MaxUint64), float32(math.MaxUint64))
		assertCast(t, int64(math.MinInt64), float64(math.MinInt64))
		assertCast(t, int64(1<<53+1), float64(1<<53))
		assertCast(t, uint8(7), 7.0)
	})
	t.Run("float to integer", func(t *testing.T) {
		assertCast(t, 127.0, int8(127))
		assertCast(t, -128.0, int8(-128))
		assertNoCast[int8](t, 127.5)
		assertNoCast[int8](t, -128.5)
		assertCast(t, 4.6, int16(4))
		assertCast(t, -4.6, int16(-4))
		assertCast(t, 255.0, uint8(255))
		assertNoCast[uint8](t, 255.5)
		assertNoCast[uint8](t, -0.5)
		assertCast(t, math.Copysign(0, -1), uint8(0))
		assertNoCast[int64](t, float64(math.MaxInt64))
		assertCast(t, math.Nextafter(0x1p63, 0), int64(0x1p63-1024))
		assertCast(t, -0x1p63, int64(math.MinInt64))
		assertNoCast[int64](t, math.Nextafter(-0x1p63, math.Inf(-1)))
		assertNoCast[uint64](t, 0x1p64)
		assertCast(t, math.Nextafter(0x1p64, 0), uint64(0x1p64-2048))
		assertNoCast[int32](t, float32(0x1p31))
		assertCast(t, float32(2147483520), int32(2147483520))
		assertCast(t, float64(math.MaxInt32), int32(math.MaxInt32))
		assertNoCast[int32](t, float64(math.MaxInt32)+0.5)
		assertNoCast[int](t, math.NaN())
		assertNoCast[uint16](t, float32(math.NaN()))
		assertNoCast[int64](t, math.Inf(1))
		assertNoCast[int64](t, math.Inf(-1))
	})
	t.Run("float widening", func(t *testing.T) {
		assertCast(t, float32(math.MaxFloat32), float64(math.MaxFloat32))
		assertCast(t, float32(math.Inf(-1)), math.Inf(-1))
		v, ok := CastFrom[float64](float32(math.NaN()))
		require.True(t, ok)
		assert.True(t, math.IsNaN(v))
	})
	t.Run("float narrowing", func(t *testing.T) {
		assertCast(t, float64(math.MaxFloat32), float32(math.MaxFloat32))
		assertCast(t, -float64(math.MaxFloat32), float32(-math.MaxFloat32))
		assertNoCast[float32](t, math.Nextafter(math.MaxFloat32, math.Inf(1)))
		assertNoCast[float32](t, math.Inf(-1))
		assertCast(t, math.SmallestNonzeroFloat64, float32(0))
		v, ok := CastFrom[float32](math.NaN())
		require.True(t, ok)
		assert.True(t, math.IsNaN(float64(v)))
	})
	t.Run("defined types", func(t *testing.T) {
		type celsius float64
		type level uint8
		assertCast(t, celsius(12.7), level(12))
		assertNoCast[level](t, celsius(-1))
	})
}

func TestCastInto(t *testing.T) {
	var dst int8 = 42
	assert.False(t, CastInto(uint8(200), &dst))
	assert.Equal(t, int8(42), dst)
	assert.True(t, CastInto(uint8(100), &dst))
	assert.Equal(t, int8(100), dst)
	assert.False(t, CastInto[uint8, int8](1, nil))
}

func TestConvert(t *testing.T) {
	v, err := Convert[uint16](int32(-1))
	errortest.AssertError(t, err, commonerrors.ErrOutOfRange)
	assert.Zero(t, v)
	assert.Contains(t, err.Error(), "uint16")

	f, err := Convert[float32](int64(3))
	require.NoError(t, err)
	assert.Equal(t, float32(3), f)
}

func testRoundTrip[S, T constraints.INumber](t *testing.T) {
	t.Helper()
	for range 50 {
		var s S
		require.NoError(t, faker.FakeData(&s))
		v, ok := CastFrom[T](s)
		require.True(t, ok)
		back, ok := CastFrom[S](v)
		require.True(t, ok)
		assert.Equal(t, s, back)
	}
}

func TestRoundTrip(t *testing.T) {
	testRoundTrip[int8, int16](t)
	testRoundTrip[int8, float32](t)
	testRoundTrip[uint8, int16](t)
	testRoundTrip[uint16, uint64](t)
	testRoundTrip[int32, int64](t)
	testRoundTrip[int32, float64](t)
	testRoundTrip[uint32, float64](t)
	testRoundTrip[uint32, int64](t)
	testRoundTrip[float32, float64](t)
	testRoundTrip[int16, int](t)
}
