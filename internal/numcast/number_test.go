package numcast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-numerics/commonerrors"
	"github.com/ARM-software/golang-numerics/commonerrors/errortest"
	"github.com/ARM-software/golang-numerics/numkind"
)

func TestParseNumber(t *testing.T) {
	v, k, err := ParseNumber(" -12 ", "")
	require.NoError(t, err)
	assert.Equal(t, numkind.KindInt64, k)
	assert.Equal(t, int64(-12), v)

	v, k, err = ParseNumber("18446744073709551615", "")
	require.NoError(t, err)
	assert.Equal(t, numkind.KindUint64, k)
	assert.Equal(t, uint64(math.MaxUint64), v)

	v, k, err = ParseNumber("2.5", "")
	require.NoError(t, err)
	assert.Equal(t, numkind.KindFloat64, k)
	assert.Equal(t, 2.5, v)

	v, k, err = ParseNumber("250", "uint8")
	require.NoError(t, err)
	assert.Equal(t, numkind.KindUint8, k)
	assert.Equal(t, uint8(250), v)

	v, _, err = ParseNumber("1.5", "float32")
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), v)

	_, _, err = ParseNumber("256", "uint8")
	errortest.AssertError(t, err, commonerrors.ErrOutOfRange)
	_, _, err = ParseNumber("1e300", "float32")
	errortest.AssertError(t, err, commonerrors.ErrOutOfRange)
	_, _, err = ParseNumber("1e309", "")
	errortest.AssertError(t, err, commonerrors.ErrOutOfRange)
	_, _, err = ParseNumber("-1e309", "float64")
	errortest.AssertError(t, err, commonerrors.ErrOutOfRange)
	_, _, err = ParseNumber("abc", "")
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
	_, _, err = ParseNumber("1", "complex64")
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "-128", FormatNumber(int8(-128)))
	assert.Equal(t, "18446744073709551615", FormatNumber(uint64(math.MaxUint64)))
	assert.Equal(t, "0.1", FormatNumber(float32(0.1)))
	assert.Equal(t, "0.1", FormatNumber(0.1))
	assert.Equal(t, "NaN", FormatNumber(math.NaN()))
	assert.Equal(t, "+Inf", FormatNumber(math.Inf(1)))
	assert.Equal(t, "1e+300", FormatNumber(1e300))
}
