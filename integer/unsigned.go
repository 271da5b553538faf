package integer

import (
	"math/bits"

	"github.com/ARM-software/golang-numerics/constraints"
)

// IsPowerOfTwo returns true if and only if x == 2^k for some k.
func IsPowerOfTwo[T constraints.IUnsignedInteger](x T) bool {
	return x != 0 && x&(x-1) == 0
}

// NextPowerOfTwo returns the smallest power of two greater than or equal to x.
// When the result does not fit in the kind, 0 is returned.
func NextPowerOfTwo[T constraints.IUnsignedInteger](x T) T {
	p, ok := CheckedNextPowerOfTwo(x)
	if !ok {
		return 0
	}
	return p
}

// CheckedNextPowerOfTwo returns the smallest power of two greater than or equal to x, or false if it does not fit in the kind.
func CheckedNextPowerOfTwo[T constraints.IUnsignedInteger](x T) (T, bool) {
	if x <= 1 {
		return 1, true
	}
	exponent := bits.Len64(uint64(x - 1))
	if exponent >= width[T]() {
		return 0, false
	}
	return T(1) << exponent, true
}
