package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"robustgeom/num"
)

var invalidValues = []float64{math.NaN(), math.Inf(1), math.Inf(-1)}

func TestPoint3Classification(t *testing.T) {
	p := NewPoint3(1.1, 2.1, 3.1)
	assert.True(t, p.IsValid())
	assert.False(t, p.IsDegenerate())
	assert.False(t, p.IsSubnormal())

	// raw coordinates survive unchanged
	assert.Equal(t, 1.1, p.X())
	assert.Equal(t, 2.1, p.Y())
	assert.Equal(t, 3.1, p.Z())

	for i, bad := range invalidValues {
		q := NewPoint3(bad, 2.1, 3.1)
		assert.False(t, q.IsValid(), "%d) x invalid", i)
		assert.True(t, q.IsDegenerate(), "%d) invalidity implies degeneracy", i)

		q = NewPoint3(1.1, bad, 3.1)
		assert.False(t, q.IsValid(), "%d) y invalid", i)
		q = NewPoint3(1.1, 2.1, bad)
		assert.False(t, q.IsValid(), "%d) z invalid", i)
	}

	// NaN input is preserved, not laundered into the sentinel
	q := NewPoint3(math.NaN(), 2.1, 3.1)
	assert.True(t, math.IsNaN(q.X()))
	assert.Equal(t, 2.1, q.Y())

	sub := num.SmallestNormal[float64]() / 2
	s := NewPoint3(sub, 0, 0)
	assert.True(t, s.IsValid())
	assert.False(t, s.IsDegenerate())
	assert.True(t, s.IsSubnormal())
}

func TestVector3Magnitude(t *testing.T) {
	v := NewVector3(1.0, 2.0, 2.0)
	assert.True(t, v.IsValid())
	assert.Equal(t, 3.0, v.Magnitude())

	// the zero vector is valid and non-degenerate; only UnitVector3 cares
	// about zero length
	z := DefaultVector3[float64]()
	assert.True(t, z.IsValid())
	assert.False(t, z.IsDegenerate())
	assert.Equal(t, 0.0, z.Magnitude())

	// magnitude overflow leaves the vector non-degenerate but marks the
	// cached magnitude with the sentinel
	big := NewVector3(1e300, 1e300, 0)
	assert.True(t, big.IsValid())
	assert.False(t, big.IsDegenerate())
	assert.True(t, math.IsInf(big.Magnitude(), 1))

	inv := NewVector3(math.NaN(), 0, 0)
	assert.False(t, inv.IsValid())
	assert.True(t, math.IsInf(inv.Magnitude(), 1),
		"invalid vector's derived magnitude is forced to the sentinel")
}

func TestUnitVector3Normalization(t *testing.T) {
	u := NewUnitVector3(3.0, 0.0, 4.0)
	assert.True(t, u.IsValid())
	assert.False(t, u.IsDegenerate())
	assert.True(t, num.IsEqual(u.X(), 0.6))
	assert.True(t, num.IsEqual(u.Z(), 0.8))
	assert.Equal(t, 1.0, u.Magnitude())
}

func TestUnitVector3Idempotence(t *testing.T) {
	table := []struct {
		x, y, z float64
	}{
		{1, 0, 0},
		{1, 1, 1},
		{3, -4, 12},
		{1.1e8, -2.1e-8, 3.1},
		{-0.1, 0.2, -0.3},
	}

	for i, c := range table {
		u := NewUnitVector3(c.x, c.y, c.z)
		uu := NewUnitVector3(u.X(), u.Y(), u.Z())
		if !num.IsEqual(u.X(), uu.X()) || !num.IsEqual(u.Y(), uu.Y()) ||
			!num.IsEqual(u.Z(), uu.Z()) {
			t.Errorf("%d) renormalizing (%g, %g, %g) moved it to (%g, %g, %g)",
				i+1, u.X(), u.Y(), u.Z(), uu.X(), uu.Y(), uu.Z())
		}
	}
}

func TestUnitVector3Degenerate(t *testing.T) {
	// zero length
	u := NewUnitVector3(0.0, 0.0, 0.0)
	assert.True(t, u.IsValid())
	assert.True(t, u.IsDegenerate())
	assert.True(t, math.IsInf(u.X(), 1), "direction frozen to the sentinel")
	assert.True(t, math.IsInf(u.Y(), 1))
	assert.True(t, math.IsInf(u.Z(), 1))

	// length computation overflow
	u = NewUnitVector3(1e300, 1e300, 1e300)
	assert.True(t, u.IsValid())
	assert.True(t, u.IsDegenerate())
	assert.True(t, math.IsInf(u.X(), 1))

	// invalid input keeps its raw components
	u = NewUnitVector3(math.NaN(), 1, 0)
	assert.False(t, u.IsValid())
	assert.True(t, u.IsDegenerate())
	assert.True(t, math.IsNaN(u.X()))

	// normalization of a huge vector can produce subnormal components
	u = NewUnitVector3(1e300, 1e-20, 0)
	assert.True(t, u.IsValid())
	assert.False(t, u.IsDegenerate())
	assert.True(t, u.IsSubnormal(),
		"division introduced a subnormal component")
}

func TestInvalidFactories(t *testing.T) {
	p := InvalidPoint3[float64]()
	assert.False(t, p.IsValid())
	assert.True(t, math.IsInf(p.X(), 1))

	v := InvalidVector3[float64]()
	assert.False(t, v.IsValid())

	u := InvalidUnitVector3[float64]()
	assert.False(t, u.IsValid())
	assert.True(t, u.IsDegenerate())
}

func TestMakeVector3(t *testing.T) {
	from := NewPoint3(1.0, 2.0, 3.0)
	to := NewPoint3(2.0, 4.0, 6.0)

	v := MakeVector3(from, to)
	assert.Equal(t, 1.0, v.X())
	assert.Equal(t, 2.0, v.Y())
	assert.Equal(t, 3.0, v.Z())

	u := MakeUnitVector3FromPoints(from, to)
	uv := MakeUnitVector3(v)
	assert.True(t, num.IsEqual(u.X(), uv.X()))
	assert.True(t, num.IsEqual(u.Y(), uv.Y()))
	assert.True(t, num.IsEqual(u.Z(), uv.Z()))

	back := MakeVector3FromUnit(u)
	assert.True(t, num.IsEqual(back.Magnitude(), 1.0))
}

func TestFloat32Width(t *testing.T) {
	// 1e30 squared overflows float32 but not float64
	u32 := NewUnitVector3[float32](1e30, 0, 0)
	assert.True(t, u32.IsDegenerate(), "float32 length overflow")

	u64 := NewUnitVector3(1e30, 0.0, 0.0)
	assert.False(t, u64.IsDegenerate(), "no overflow at double precision")
	assert.True(t, num.IsEqual(u64.X(), 1.0))
}
