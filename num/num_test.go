package num

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Canonical input pools. Constants without an exact binary representation
// are used on purpose, so float32 and float64 runs exercise genuinely
// different bit patterns.
var (
	invalidDouble = []float64{
		math.NaN(), math.Inf(1), math.Inf(-1),
	}

	validDouble = []float64{
		0.0,
		1.0,
		1.1,
		1.1e16,
		1.1e-16,
		float64(smallestNormal64) / 2,
		float64(smallestNormal64),
		-float64(smallestNormal64),
		math.MaxFloat64,
		-math.MaxFloat64,
	}

	subnormalDouble = []float64{
		float64(smallestNormal64) / 2,
		float64(smallestNormal64) / 4,
		float64(smallestNormal64) / 8,
	}
)

func TestIsValid(t *testing.T) {
	for i, v := range invalidDouble {
		assert.False(t, IsValid(v), "invalid pool %d", i)
		assert.False(t, IsValid(float32(v)), "invalid pool %d (float32)", i)
	}
	for i, v := range validDouble {
		assert.True(t, IsValid(v), "valid pool %d", i)
	}
}

func TestIsSubnormal(t *testing.T) {
	for i, v := range subnormalDouble {
		assert.True(t, IsSubnormal(v), "subnormal pool %d", i)
		assert.True(t, IsSubnormal(-v), "negated subnormal pool %d", i)
	}

	assert.False(t, IsSubnormal(0.0), "zero is not subnormal")
	assert.False(t, IsSubnormal(1.0), "normal value")
	assert.False(t, IsSubnormal(float64(smallestNormal64)),
		"smallest normal value")
	assert.False(t, IsSubnormal(math.Inf(1)), "infinity")
	assert.False(t, IsSubnormal(math.NaN()), "NaN")

	assert.True(t, IsSubnormal(float32(smallestNormal32)/2),
		"float32 subnormal")
	// subnormal in float32, normal in float64
	assert.False(t, IsSubnormal(float64(smallestNormal32)/2),
		"width dependence")
}

func isEqualCasesOK[T Float](t *testing.T, base T) {
	eps := Epsilon[T]()
	shrink := T(0.75)

	assert.True(t, IsEqual(base, base+eps*base*shrink),
		"just inside above %g", base)
	assert.True(t, IsEqual(base, base-eps*base*shrink),
		"just inside below %g", base)
	assert.False(t, IsEqual(base, base+eps*(base*2)),
		"just outside above %g", base)
	assert.False(t, IsEqual(base, base-eps*(base*2)),
		"just outside below %g", base)
}

func TestIsEqual(t *testing.T) {
	for _, base := range []float64{10.1, -10.1, 10.1e17, -10.1e17} {
		isEqualCasesOK(t, base)
		isEqualCasesOK(t, float32(base))
	}

	// near zero the comparison is absolute, and so more permissive
	eps := Epsilon[float64]()
	assert.True(t, IsEqual(0.0, eps), "zero against epsilon")
	assert.True(t, IsEqual(eps/2, -eps/2), "tiny values straddling zero")
	assert.False(t, IsEqual(0.0, eps*2), "zero against 2 epsilon")
}

func TestIsEqualSymmetry(t *testing.T) {
	for i := 0; i < 1000; i++ {
		a := (rand.Float64() - 0.5) * math.Pow(10, float64(rand.Intn(40)-20))
		b := a * (1 + (rand.Float64()-0.5)*1e-15)
		assert.Equal(t, IsEqual(a, b), IsEqual(b, a),
			"%d) a = %g, b = %g", i, a, b)
	}
}

func TestIsEqualScaled(t *testing.T) {
	eps := Epsilon[float64]()
	a, b := 1.0, 1.0+6*eps

	assert.False(t, IsEqual(a, b), "outside the unscaled tolerance")
	assert.True(t, IsEqualScaled(a, b, 12), "inside the 12x tolerance")
	assert.False(t, IsEqualScaled(a, 1.0+24*eps, 12), "outside 12x")
}

func TestOrdering(t *testing.T) {
	f := 10.1

	assert.True(t, IsGreaterOrEqual(f, f), "value against itself")
	assert.False(t, IsGreaterOrEqual(f, f*2), "strictly smaller")
	assert.True(t, IsGreaterOrEqual(f*2, f), "strictly greater")

	// signs flip the strict comparisons
	assert.True(t, IsGreaterOrEqual(-f, -f*2), "negative, strictly greater")
	assert.False(t, IsGreaterOrEqual(-f*2, -f), "negative, strictly smaller")

	assert.True(t, IsLessOrEqual(f, f*2), "less or equal, strictly smaller")
	assert.False(t, IsLessOrEqual(f*2, f), "less or equal, strictly greater")

	// values within tolerance order both ways
	eps := Epsilon[float64]()
	g := f + f*eps/2
	assert.True(t, IsGreaterOrEqual(f, g) && IsLessOrEqual(f, g),
		"epsilon-equal values")
}

func TestLimits(t *testing.T) {
	assert.True(t, math.IsInf(float64(Infinity[float64]()), 1))
	assert.True(t, math.IsInf(float64(Infinity[float32]()), 1))
	assert.True(t, math.IsNaN(float64(NaN[float64]())))

	assert.Equal(t, float32(math.MaxFloat32), MaxValue[float32]())
	assert.Equal(t, math.MaxFloat64, MaxValue[float64]())

	assert.Equal(t, float32(0x1p-126), SmallestNormal[float32]())
	assert.Equal(t, 0x1p-1022, SmallestNormal[float64]())

	// epsilon is the gap between 1 and the next representable value
	assert.NotEqual(t, 1.0, 1.0+Epsilon[float64]())
	assert.NotEqual(t, float32(1.0), float32(1.0)+Epsilon[float32]())
	assert.Equal(t, 1.0, 1.0+Epsilon[float64]()/4)
}
