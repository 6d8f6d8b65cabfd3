package geom

import (
	"robustgeom/num"
)

// Triangle3 is a triangle given by three points, stored verbatim. The fixed
// winding convention used throughout this package takes the edges p2-p1 and
// p3-p1, in that order.
type Triangle3[T num.Float] struct {
	State
	p1, p2, p3 Point3[T]
}

// NewTriangle3 creates the triangle p1 p2 p3 and classifies it. A valid
// triangle is degenerate if any edge has (near) zero or non-finite length,
// if its area is near zero, or if any ordered pair of its edges has a near
// zero cross product. Degeneracy is the OR of all of those tests.
func NewTriangle3[T num.Float](p1, p2, p3 Point3[T]) Triangle3[T] {
	t := Triangle3[T]{p1: p1, p2: p2, p3: p3}

	if !(p1.IsValid() && p2.IsValid() && p3.IsValid()) {
		t.markInvalid()
		return t
	}
	if p1.IsSubnormal() || p2.IsSubnormal() || p3.IsSubnormal() {
		t.markSubnormal()
	}

	degenerate := false

	d12 := p1.Distance(p2)
	d23 := p2.Distance(p3)
	d31 := p3.Distance(p1)
	for _, d := range []T{d12, d23, d31} {
		if !num.IsValid(d) || num.IsEqual(d, 0) {
			degenerate = true
		}
	}

	e1 := p2.Sub(p1)
	e2 := p3.Sub(p2)
	e3 := p1.Sub(p3)

	cross := e1.Cross(p3.Sub(p1))
	area := num.Sqrt(cross.Dot(cross)) / 2
	if num.IsValid(area) && num.IsEqual(area, 0) {
		degenerate = true
	}

	for _, c := range []Vector3[T]{e1.Cross(e2), e2.Cross(e3), e3.Cross(e1)} {
		if num.IsEqual(c.X(), 0) && num.IsEqual(c.Y(), 0) &&
			num.IsEqual(c.Z(), 0) {
			degenerate = true
		}
	}

	if degenerate {
		t.markDegenerate()
	}
	return t
}

// DefaultTriangle3 returns the unit right triangle in the z = 0 plane.
func DefaultTriangle3[T num.Float]() Triangle3[T] {
	return NewTriangle3(
		NewPoint3[T](0, 0, 0),
		NewPoint3[T](1, 0, 0),
		NewPoint3[T](0, 1, 0),
	)
}

func (t Triangle3[T]) P1() Point3[T] { return t.p1 }
func (t Triangle3[T]) P2() Point3[T] { return t.p2 }
func (t Triangle3[T]) P3() Point3[T] { return t.p3 }

// Area returns the area of the triangle. An invalid triangle has no area
// and returns the infinity sentinel; a degenerate but valid one has an area
// of exactly 0.
func (t Triangle3[T]) Area() T {
	if !t.IsValid() {
		return num.Infinity[T]()
	}
	if t.IsDegenerate() {
		return 0
	}

	c := t.p2.Sub(t.p1).Cross(t.p3.Sub(t.p1))
	return num.Sqrt(c.Dot(c)) / 2
}

// Centroid returns the centroid of the triangle. Degenerate but valid
// triangles still have a well defined centroid.
func (t Triangle3[T]) Centroid() Point3[T] {
	if !t.IsValid() {
		return InvalidPoint3[T]()
	}

	return NewPoint3(
		(t.p1.x+t.p2.x+t.p3.x)/3,
		(t.p1.y+t.p2.y+t.p3.y)/3,
		(t.p1.z+t.p2.z+t.p3.z)/3,
	)
}

// UnitNormal returns the unit normal of the triangle under the package
// winding convention. Degenerate triangles have no normal. The returned
// unit vector can itself be degenerate if the cross product overflowed;
// callers that care should check it.
func (t Triangle3[T]) UnitNormal() UnitVector3[T] {
	if t.IsDegenerate() {
		return InvalidUnitVector3[T]()
	}

	norm := t.p2.Sub(t.p1).Cross(t.p3.Sub(t.p1))
	if !norm.IsValid() {
		return InvalidUnitVector3[T]()
	}
	return MakeUnitVector3(norm)
}
