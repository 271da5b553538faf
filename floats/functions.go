package floats

import (
	"math"

	"github.com/ARM-software/golang-numerics/constraints"
)

// MulAdd computes (x * a) + b with a single rounding error for float64.
// float32 operands are fused in float64 and then rounded to float32, so the result may differ from a fused float32 operation in the last bit.
func MulAdd[F constraints.IFloat](x, a, b F) F {
	return F(math.FMA(float64(x), float64(a), float64(b)))
}

// Recip returns 1/x.
func Recip[F constraints.IFloat](x F) F {
	return 1 / x
}

// Powi raises x to an integer power.
func Powi[F constraints.IFloat](x F, n int32) F {
	return F(math.Pow(float64(x), float64(n)))
}

// Powf raises x to a floating point power.
func Powf[F constraints.IFloat](x, n F) F {
	return F(math.Pow(float64(x), float64(n)))
}

// Sqrt returns the square root of x. It returns NaN if x is negative.
func Sqrt[F constraints.IFloat](x F) F {
	return F(math.Sqrt(float64(x)))
}

// Cbrt returns the cube root of x.
func Cbrt[F constraints.IFloat](x F) F {
	return F(math.Cbrt(float64(x)))
}

// Hypot computes sqrt(x*x + y*y) without undue overflow.
func Hypot[F constraints.IFloat](x, y F) F {
	return F(math.Hypot(float64(x), float64(y)))
}

// Exp returns e^x.
func Exp[F constraints.IFloat](x F) F {
	return F(math.Exp(float64(x)))
}

// Exp2 returns 2^x.
func Exp2[F constraints.IFloat](x F) F {
	return F(math.Exp2(float64(x)))
}

// ExpM1 returns e^x - 1, accurately even for x near 0.
func ExpM1[F constraints.IFloat](x F) F {
	return F(math.Expm1(float64(x)))
}

// Ln returns the natural logarithm of x.
func Ln[F constraints.IFloat](x F) F {
	return F(math.Log(float64(x)))
}

// Ln1p returns ln(1+x), accurately even for x near 0.
func Ln1p[F constraints.IFloat](x F) F {
	return F(math.Log1p(float64(x)))
}

// Log returns the logarithm of x in an arbitrary base.
func Log[F constraints.IFloat](x, base F) F {
	return F(math.Log(float64(x)) / math.Log(float64(base)))
}

func Log2[F constraints.IFloat](x F) F {
	return F(math.Log2(float64(x)))
}

func Log10[F constraints.IFloat](x F) F {
	return F(math.Log10(float64(x)))
}

func Sin[F constraints.IFloat](x F) F {
	return F(math.Sin(float64(x)))
}

func Cos[F constraints.IFloat](x F) F {
	return F(math.Cos(float64(x)))
}

func Tan[F constraints.IFloat](x F) F {
	return F(math.Tan(float64(x)))
}

// Asin returns the arcsine of x in radians, in [-pi/2, pi/2]. It returns NaN outside [-1, 1].
func Asin[F constraints.IFloat](x F) F {
	return F(math.Asin(float64(x)))
}

// Acos returns the arccosine of x in radians, in [0, pi]. It returns NaN outside [-1, 1].
func Acos[F constraints.IFloat](x F) F {
	return F(math.Acos(float64(x)))
}

// Atan returns the arctangent of x in radians, in [-pi/2, pi/2].
func Atan[F constraints.IFloat](x F) F {
	return F(math.Atan(float64(x)))
}

// Atan2 computes the four quadrant arctangent of y (self) and x (other) in radians:
//   - x = 0, y = 0: 0
//   - x >= 0: arctan(y/x) -> [-pi/2, pi/2]
//   - y >= 0: arctan(y/x) + pi -> (pi/2, pi]
//   - y < 0: arctan(y/x) - pi -> (-pi, -pi/2)
func Atan2[F constraints.IFloat](y, x F) F {
	return F(math.Atan2(float64(y), float64(x)))
}

// SinCos simultaneously computes the sine and cosine of x.
func SinCos[F constraints.IFloat](x F) (sin, cos F) {
	s, c := math.Sincos(float64(x))
	return F(s), F(c)
}

func Sinh[F constraints.IFloat](x F) F {
	return F(math.Sinh(float64(x)))
}

func Cosh[F constraints.IFloat](x F) F {
	return F(math.Cosh(float64(x)))
}

func Tanh[F constraints.IFloat](x F) F {
	return F(math.Tanh(float64(x)))
}

func Asinh[F constraints.IFloat](x F) F {
	return F(math.Asinh(float64(x)))
}

// Acosh returns the inverse hyperbolic cosine. It returns NaN for x < 1.
func Acosh[F constraints.IFloat](x F) F {
	return F(math.Acosh(float64(x)))
}

// Atanh returns the inverse hyperbolic tangent. It returns ±Inf for ±1 and NaN outside [-1, 1].
func Atanh[F constraints.IFloat](x F) F {
	return F(math.Atanh(float64(x)))
}

// ToDegrees converts radians to degrees.
func ToDegrees[F constraints.IFloat](x F) F {
	return F(float64(x) * (180 / math.Pi))
}

// ToRadians converts degrees to radians.
func ToRadians[F constraints.IFloat](x F) F {
	return F(float64(x) * (math.Pi / 180))
}
