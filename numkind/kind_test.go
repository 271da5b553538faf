package numkind

import (
	"encoding/json"
	"math"
	"math/bits"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type celsius float32

type identifier uint16

func TestOf(t *testing.T) {
	assert.Equal(t, KindInt8, Of[int8]())
	assert.Equal(t, KindInt16, Of[int16]())
	assert.Equal(t, KindInt32, Of[int32]())
	assert.Equal(t, KindInt64, Of[int64]())
	assert.Equal(t, KindInt, Of[int]())
	assert.Equal(t, KindUint8, Of[uint8]())
	assert.Equal(t, KindUint16, Of[uint16]())
	assert.Equal(t, KindUint32, Of[uint32]())
	assert.Equal(t, KindUint64, Of[uint64]())
	assert.Equal(t, KindUint, Of[uint]())
	assert.Equal(t, KindFloat32, Of[float32]())
	assert.Equal(t, KindFloat64, Of[float64]())
	assert.Equal(t, KindFloat32, Of[celsius]())
	assert.Equal(t, KindUint16, Of[identifier]())
}

func TestOfValue(t *testing.T) {
	k, ok := OfValue(int32(4))
	require.True(t, ok)
	assert.Equal(t, KindInt32, k)
	k, ok = OfValue(celsius(4.5))
	require.True(t, ok)
	assert.Equal(t, KindFloat32, k)
	_, ok = OfValue("4")
	assert.False(t, ok)
	_, ok = OfValue(nil)
	assert.False(t, ok)
	_, ok = OfValue(uintptr(4))
	assert.False(t, ok)
}

func TestInfo(t *testing.T) {
	tests := []struct {
		kind     Kind
		category Category
		bits     int
		min      int64
		max      uint64
	}{
		{KindInt8, CategorySignedInteger, 8, math.MinInt8, math.MaxInt8},
		{KindInt16, CategorySignedInteger, 16, math.MinInt16, math.MaxInt16},
		{KindInt32, CategorySignedInteger, 32, math.MinInt32, math.MaxInt32},
		{KindInt64, CategorySignedInteger, 64, math.MinInt64, math.MaxInt64},
		{KindInt, CategorySignedInteger, bits.UintSize, math.MinInt, math.MaxInt},
		{KindUint8, CategoryUnsignedInteger, 8, 0, math.MaxUint8},
		{KindUint16, CategoryUnsignedInteger, 16, 0, math.MaxUint16},
		{KindUint32, CategoryUnsignedInteger, 32, 0, math.MaxUint32},
		{KindUint64, CategoryUnsignedInteger, 64, 0, math.MaxUint64},
		{KindUint, CategoryUnsignedInteger, bits.UintSize, 0, math.MaxUint},
		{KindFloat32, CategoryFloat, 32, 0, 0},
		{KindFloat64, CategoryFloat, 64, 0, 0},
	}
	for i := range tests {
		test := tests[i]
		t.Run(test.kind.String(), func(t *testing.T) {
			assert.Equal(t, test.category, test.kind.Category())
			assert.Equal(t, test.bits, test.kind.Bits())
			assert.Equal(t, test.min, test.kind.MinInt())
			assert.Equal(t, test.max, test.kind.MaxUint())
			assert.Equal(t, test.kind.Bits(), int(test.kind.Type().Size())*8)
			k, ok := FromReflectKind(test.kind.Type().Kind())
			require.True(t, ok)
			assert.Equal(t, test.kind, k)
		})
	}
	assert.Equal(t, float64(math.MaxFloat32), KindFloat32.MaxFinite())
	assert.Equal(t, math.MaxFloat64, KindFloat64.MaxFinite())
	assert.Equal(t, float64(math.SmallestNonzeroFloat64), KindFloat64.Info().SmallestNormal*0x1p-52)
	assert.Equal(t, 24, KindFloat32.Precision())
	assert.Equal(t, 53, KindFloat64.Precision())
	assert.Equal(t, Info{}, Kind(200).Info())
	assert.Nil(t, Kind(200).Type())
}

func TestPredicates(t *testing.T) {
	assert.True(t, KindInt8.IsSigned())
	assert.True(t, KindInt8.IsInteger())
	assert.True(t, KindInt8.IsSignedInteger())
	assert.False(t, KindInt8.IsUnsignedInteger())
	assert.False(t, KindUint.IsSigned())
	assert.True(t, KindUint.IsUnsignedInteger())
	assert.True(t, KindFloat32.IsSigned())
	assert.True(t, KindFloat32.IsFloat())
	assert.False(t, KindFloat32.IsInteger())
	assert.False(t, Kind(200).IsSigned())
	assert.False(t, Kind(200).IsFloat())
}

func TestContains(t *testing.T) {
	for _, k := range KindValues() {
		assert.True(t, Contains(k, k), k.String())
	}
	assert.True(t, Contains(KindInt64, KindInt8))
	assert.False(t, Contains(KindInt8, KindInt64))
	assert.True(t, Contains(KindInt16, KindUint8))
	assert.False(t, Contains(KindInt16, KindUint16))
	assert.False(t, Contains(KindUint64, KindInt8))
	assert.True(t, Contains(KindUint64, KindUint32))
	assert.True(t, Contains(KindFloat32, KindInt16))
	assert.True(t, Contains(KindFloat32, KindUint16))
	assert.False(t, Contains(KindFloat32, KindInt32))
	assert.True(t, Contains(KindFloat64, KindInt32))
	assert.True(t, Contains(KindFloat64, KindUint32))
	assert.False(t, Contains(KindFloat64, KindInt64))
	assert.True(t, Contains(KindFloat64, KindFloat32))
	assert.False(t, Contains(KindFloat32, KindFloat64))
	assert.False(t, Contains(KindInt64, KindFloat32))
	assert.False(t, Contains(Kind(200), KindInt8))
}

func TestSets(t *testing.T) {
	assert.Equal(t, 12, All().Cardinality())
	assert.True(t, SignedIntegers().Equal(InCategory(CategorySignedInteger)))
	assert.ElementsMatch(t, []Kind{KindInt8, KindInt16, KindInt32, KindInt64, KindInt}, SignedIntegers().ToSlice())
	assert.ElementsMatch(t, []Kind{KindUint8, KindUint16, KindUint32, KindUint64, KindUint}, UnsignedIntegers().ToSlice())
	assert.ElementsMatch(t, []Kind{KindFloat32, KindFloat64}, Floats().ToSlice())
	assert.Equal(t, 10, Integers().Cardinality())
	assert.True(t, All().Equal(Integers().Union(Floats())))
	assert.ElementsMatch(t, []Kind{KindInt8, KindInt16, KindUint8, KindUint16, KindFloat32}, ContainedIn(KindFloat32).ToSlice())
}

func TestKindString(t *testing.T) {
	for _, k := range KindValues() {
		parsed, err := KindString(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
	k, err := KindString("UINT16")
	require.NoError(t, err)
	assert.Equal(t, KindUint16, k)
	_, err = KindString("complex128")
	assert.Error(t, err)
	assert.Equal(t, "Kind(200)", Kind(200).String())
	assert.Equal(t, "signed-integer", CategorySignedInteger.String())
	assert.Equal(t, "float", CategoryFloat.String())
}

func TestKindJSON(t *testing.T) {
	type payload struct {
		Kind Kind `json:"kind"`
	}
	b, err := json.Marshal(payload{Kind: KindUint32})
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"uint32"}`, string(b))
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"kind":"float64"}`), &p))
	assert.Equal(t, KindFloat64, p.Kind)
	assert.Equal(t, reflect.TypeFor[float64](), p.Kind.Type())

	var invalid payload
	assert.Error(t, json.Unmarshal([]byte(`{"kind":"decimal"}`), &invalid))
}
