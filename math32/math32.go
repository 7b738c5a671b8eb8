// math32 is a stand-in for the built-in math package for the handful of functions the orientation types need.
// Everything in orientation is stored as float32, so these wrap the float64 versions and convert back, keeping the
// conversions out of the algorithms themselves.
package math32

import "math"

const Pi = math.Pi

// Epsilon is the sine of the arc between two quaternions under which slerp treats them as parallel.
const Epsilon = float32(1e-8)

// ToRadians converts degrees to radians.
func ToRadians(degrees float32) float32 {
	return math.Pi * degrees / 180
}

// ToDegrees converts radians to degrees for human readability.
func ToDegrees(radians float32) float32 {
	return radians / math.Pi * 180
}

// Min returns the minimum value out of two provided values.
func Min[number float32 | float64 | int](x, y number) number {
	if x < y {
		return x
	}
	return y
}

// Max returns the maximum value out of two provided values.
func Max[number float32 | float64 | int](x, y number) number {
	if x > y {
		return x
	}
	return y
}

// Clamp clamps a value to the minimum and maximum values provided.
func Clamp[number float32 | float64 | int](value, min, max number) number {
	if value < min {
		return min
	} else if value > max {
		return max
	}
	return value
}

// IsNaN returns if the provided float32 is a NaN.
func IsNaN(x float32) bool {
	return x != x
}

// IsInf returns if the provided float32 is Inf in the direction of the sign provided (0 for either).
func IsInf(x float32, sign int) bool {
	return math.IsInf(float64(x), sign)
}

// IsFinite returns true if x is neither NaN nor ±Inf.
func IsFinite(x float32) bool {
	return !IsNaN(x) && !IsInf(x, 0)
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) &^ (1 << 31))
}

// Sqrt returns the square root of x.
//
// Special cases are:
//
//	Sqrt(+Inf) = +Inf
//	Sqrt(±0) = ±0
//	Sqrt(x < 0) = NaN
//	Sqrt(NaN) = NaN
func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// Sin returns the sine of the radian argument x.
func Sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

// Cos returns the cosine of the radian argument x.
func Cos(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

// Sincos returns Sin(x), Cos(x).
func Sincos(x float32) (float32, float32) {
	sin, cos := math.Sincos(float64(x))
	return float32(sin), float32(cos)
}

// Acos returns the arccosine, in radians, of x.
//
// Special case is:
//
//	Acos(x) = NaN if x < -1 or x > 1
func Acos(x float32) float32 {
	return float32(math.Acos(float64(x)))
}

// Atan2 returns the arc tangent of y/x, using the signs of the two to determine the quadrant of the return value.
func Atan2(y, x float32) float32 {
	return float32(math.Atan2(float64(y), float64(x)))
}
