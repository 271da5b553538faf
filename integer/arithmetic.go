package integer

import "github.com/ARM-software/golang-numerics/constraints"

// CheckedAdd computes x + y, returning false if overflow occurred.
func CheckedAdd[T constraints.IInteger](x, y T) (T, bool) {
	r := x + y
	if isSigned[T]() {
		if (y > 0 && r < x) || (y < 0 && r > x) {
			return 0, false
		}
		return r, true
	}
	if r < x {
		return 0, false
	}
	return r, true
}

// CheckedSub computes x - y, returning false if overflow occurred.
func CheckedSub[T constraints.IInteger](x, y T) (T, bool) {
	r := x - y
	if isSigned[T]() {
		if (y > 0 && r > x) || (y < 0 && r < x) {
			return 0, false
		}
		return r, true
	}
	if x < y {
		return 0, false
	}
	return r, true
}

// CheckedMul computes x * y, returning false if overflow occurred.
func CheckedMul[T constraints.IInteger](x, y T) (T, bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	if isSigned[T]() {
		minV, minusOne := MinValue[T](), ^T(0)
		if (x == minusOne && y == minV) || (y == minusOne && x == minV) {
			return 0, false
		}
	}
	r := x * y
	if r/y != x {
		return 0, false
	}
	return r, true
}

// CheckedDiv computes x / y, returning false if y is zero or if the division overflows (minimum value divided by -1).
func CheckedDiv[T constraints.IInteger](x, y T) (T, bool) {
	if !divisible(x, y) {
		return 0, false
	}
	return x / y, true
}

// CheckedRem computes x % y, returning false if y is zero or if the division overflows.
func CheckedRem[T constraints.IInteger](x, y T) (T, bool) {
	if !divisible(x, y) {
		return 0, false
	}
	return x % y, true
}

func divisible[T constraints.IInteger](x, y T) bool {
	if y == 0 {
		return false
	}
	if isSigned[T]() && x == MinValue[T]() && y == ^T(0) {
		return false
	}
	return true
}

// CheckedNeg computes -x, returning false if the result does not fit i.e. the minimum value of a signed kind or any non-zero unsigned value.
func CheckedNeg[T constraints.IInteger](x T) (T, bool) {
	if isSigned[T]() {
		if x == MinValue[T]() {
			return 0, false
		}
		return -x, true
	}
	if x != 0 {
		return 0, false
	}
	return 0, true
}

// CheckedPow raises x to the power of exp, returning false if overflow occurred.
func CheckedPow[T constraints.IInteger](x T, exp uint32) (result T, ok bool) {
	result = 1
	base := x
	for exp > 0 {
		if exp&1 == 1 {
			if result, ok = CheckedMul(result, base); !ok {
				return 0, false
			}
		}
		exp >>= 1
		if exp > 0 {
			if base, ok = CheckedMul(base, base); !ok {
				return 0, false
			}
		}
	}
	return result, true
}

// SaturatingAdd computes x + y, saturating at the numeric bounds instead of overflowing.
func SaturatingAdd[T constraints.IInteger](x, y T) T {
	if r, ok := CheckedAdd(x, y); ok {
		return r
	}
	if isSigned[T]() && y < 0 {
		return MinValue[T]()
	}
	return MaxValue[T]()
}

// SaturatingSub computes x - y, saturating at the numeric bounds instead of overflowing.
func SaturatingSub[T constraints.IInteger](x, y T) T {
	if r, ok := CheckedSub(x, y); ok {
		return r
	}
	if isSigned[T]() && y < 0 {
		return MaxValue[T]()
	}
	return MinValue[T]()
}

// SaturatingMul computes x * y, saturating at the numeric bounds instead of overflowing.
func SaturatingMul[T constraints.IInteger](x, y T) T {
	if r, ok := CheckedMul(x, y); ok {
		return r
	}
	if isSigned[T]() && (x < 0) != (y < 0) {
		return MinValue[T]()
	}
	return MaxValue[T]()
}

// WrappingAdd computes x + y, wrapping around at the boundary of the kind.
func WrappingAdd[T constraints.IInteger](x, y T) T {
	return x + y
}

// WrappingSub computes x - y, wrapping around at the boundary of the kind.
func WrappingSub[T constraints.IInteger](x, y T) T {
	return x - y
}

// WrappingMul computes x * y, wrapping around at the boundary of the kind.
func WrappingMul[T constraints.IInteger](x, y T) T {
	return x * y
}

// WrappingDiv computes x / y, wrapping around at the boundary of the kind: the minimum value divided by -1 is the minimum value.
// Like the division operator, it panics if y is zero.
func WrappingDiv[T constraints.IInteger](x, y T) T {
	return x / y
}

// WrappingRem computes x % y, wrapping around at the boundary of the kind: the minimum value modulo -1 is 0.
// Like the remainder operator, it panics if y is zero.
func WrappingRem[T constraints.IInteger](x, y T) T {
	return x % y
}

// WrappingNeg computes -x, wrapping around at the boundary of the kind.
func WrappingNeg[T constraints.IInteger](x T) T {
	return -x
}

// WrappingShl computes x << n where n is taken modulo the width of the kind.
func WrappingShl[T constraints.IInteger](x T, n uint32) T {
	return x << (n % uint32(width[T]()))
}

// WrappingShr computes x >> n where n is taken modulo the width of the kind. The shift is arithmetic for signed kinds.
func WrappingShr[T constraints.IInteger](x T, n uint32) T {
	return x >> (n % uint32(width[T]()))
}

// Pow raises x to the power of exp using exponentiation by squaring, wrapping around on overflow.
func Pow[T constraints.IInteger](x T, exp uint32) T {
	var result T = 1
	base := x
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		exp >>= 1
		base *= base
	}
	return result
}
