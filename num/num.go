/*num contains the floating point policy shared by every geometric routine
in this module: per-width limit constants, the invalid-value sentinel, and
the epsilon comparisons used at every numerical decision point.

All of the geometry code is generic over Float, so the same algorithms run
at single and double precision with the tolerances appropriate to each.
*/
package num

import (
	"math"
)

// Float is the set of floating point widths the geometry code runs at.
type Float interface {
	float32 | float64
}

const (
	eps32 = float32(0x1p-23)
	eps64 = float64(0x1p-52)

	smallestNormal32 = float32(0x1p-126)
	smallestNormal64 = float64(0x1p-1022)
)

// Epsilon returns the machine epsilon of T.
func Epsilon[T Float]() T {
	var z T
	switch any(z).(type) {
	case float32:
		return T(eps32)
	default:
		return T(eps64)
	}
}

// Infinity returns positive infinity in T. It doubles as the sentinel
// written into derived fields of invalid or degenerate entities.
func Infinity[T Float]() T {
	return T(math.Inf(1))
}

// NaN returns a quiet not-a-number in T.
func NaN[T Float]() T {
	return T(math.NaN())
}

// MaxValue returns the largest finite value representable in T.
func MaxValue[T Float]() T {
	var z T
	switch any(z).(type) {
	case float32:
		return T(math.MaxFloat32)
	default:
		// not a constant conversion: math.MaxFloat64 does not fit in
		// float32, so it cannot convert to T directly
		v := math.MaxFloat64
		return T(v)
	}
}

// SmallestNormal returns the smallest positive normal value of T. Nonzero
// finite values below it are subnormal.
func SmallestNormal[T Float]() T {
	var z T
	switch any(z).(type) {
	case float32:
		return T(smallestNormal32)
	default:
		// same story as MaxValue: too small for float32, so not directly
		// convertible to T
		v := smallestNormal64
		return T(v)
	}
}

// IsValid reports whether v is finite.
func IsValid[T Float](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// IsSubnormal reports whether v is finite, nonzero, and below the normal
// magnitude threshold of T. Such values are correct but carry reduced
// precision.
func IsSubnormal[T Float](v T) bool {
	return IsValid(v) && v != 0 && Abs(v) < SmallestNormal[T]()
}

// Abs returns the absolute value of v.
func Abs[T Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Sqrt returns the square root of v.
func Sqrt[T Float](v T) T {
	return T(math.Sqrt(float64(v)))
}

// IsEqual reports whether v1 and v2 are equal to within machine epsilon.
// If both values are nonzero the difference is compared against epsilon
// relative to each of them in turn, so the test is commutative but more
// permissive near zero, where the comparison falls back to an absolute one.
func IsEqual[T Float](v1, v2 T) bool {
	eps := Epsilon[T]()

	if v1 != 0 && v2 != 0 {
		return Abs(v1-v2)/Abs(v1) <= eps && Abs(v1-v2)/Abs(v2) <= eps
	}
	return Abs(v1-v2) <= eps
}

// IsEqualScaled is IsEqual with the tolerance widened to scale*epsilon.
// Use it where accumulated multiplications have widened the error bound,
// e.g. when comparing matrix products.
func IsEqualScaled[T Float](v1, v2, scale T) bool {
	eps := Epsilon[T]() * scale

	if v1 != 0 && v2 != 0 {
		return Abs(v1-v2)/Abs(v1) <= eps && Abs(v1-v2)/Abs(v2) <= eps
	}
	return Abs(v1-v2) <= eps
}

// IsGreaterOrEqual reports v1 > v2 or v1 equal to v2 within epsilon, so
// values inside tolerance order both ways.
func IsGreaterOrEqual[T Float](v1, v2 T) bool {
	return v1 > v2 || IsEqual(v1, v2)
}

// IsLessOrEqual reports v1 < v2 or v1 equal to v2 within epsilon.
func IsLessOrEqual[T Float](v1, v2 T) bool {
	return v1 < v2 || IsEqual(v1, v2)
}
