package geom

import (
	"robustgeom/num"
)

// Line3 is an infinite line through two points. The base and target points
// are stored verbatim; the full and unit direction vectors are derived once
// at construction and frozen to the invalid sentinel if the line is
// degenerate.
type Line3[T num.Float] struct {
	State
	base, target Point3[T]
	vec          Vector3[T]
	direction    UnitVector3[T]
}

// NewLine3 creates the line through p1 and p2 and classifies it. The line
// is degenerate if the points coincide within epsilon.
func NewLine3[T num.Float](p1, p2 Point3[T]) Line3[T] {
	l := Line3[T]{
		base:      p1,
		target:    p2,
		vec:       InvalidVector3[T](),
		direction: InvalidUnitVector3[T](),
	}

	if !(p1.IsValid() && p2.IsValid()) {
		l.markInvalid()
		return l
	}
	if p1.IsSubnormal() || p2.IsSubnormal() {
		l.markSubnormal()
	}

	d := p1.Distance(p2)
	if !num.IsValid(d) || num.IsEqual(d, 0) {
		l.markDegenerate()
		return l
	}

	vec := MakeVector3(p1, p2)
	dir := MakeUnitVector3(vec)
	if dir.IsDegenerate() {
		l.markDegenerate()
		return l
	}

	l.vec = vec
	l.direction = dir
	if vec.IsSubnormal() || dir.IsSubnormal() {
		l.markSubnormal()
	}
	return l
}

// DefaultLine3 returns the line from the origin to (1, 1, 1).
func DefaultLine3[T num.Float]() Line3[T] {
	return NewLine3(NewPoint3[T](0, 0, 0), NewPoint3[T](1, 1, 1))
}

func (l Line3[T]) Base() Point3[T]   { return l.base }
func (l Line3[T]) Target() Point3[T] { return l.target }

// FullDirection returns the cached, non-normalized vector from base to
// target.
func (l Line3[T]) FullDirection() Vector3[T] { return l.vec }

// Direction returns the cached unit direction of the line.
func (l Line3[T]) Direction() UnitVector3[T] { return l.direction }

// Plane is an infinite plane given by a base point and a unit "up" normal.
type Plane[T num.Float] struct {
	State
	base Point3[T]
	up   UnitVector3[T]
}

// NewPlane creates the plane through p with up normal u and classifies it.
// The plane is degenerate exactly when its normal is.
func NewPlane[T num.Float](p Point3[T], u UnitVector3[T]) Plane[T] {
	pl := Plane[T]{base: p, up: u}

	if !(p.IsValid() && u.IsValid()) {
		pl.markInvalid()
		return pl
	}
	if u.IsDegenerate() {
		pl.markDegenerate()
	}
	if p.IsSubnormal() || u.IsSubnormal() {
		pl.markSubnormal()
	}
	return pl
}

// DefaultPlane returns the z = 0 plane with a +z normal.
func DefaultPlane[T num.Float]() Plane[T] {
	return NewPlane(NewPoint3[T](0, 0, 0), NewUnitVector3[T](0, 0, 1))
}

func (pl Plane[T]) Base() Point3[T]    { return pl.base }
func (pl Plane[T]) Up() UnitVector3[T] { return pl.up }

// Ray3 is a half line given by a base point and a unit direction.
type Ray3[T num.Float] struct {
	State
	base      Point3[T]
	direction UnitVector3[T]
}

// NewRay3 creates the ray from p along u and classifies it. The ray is
// degenerate exactly when its direction is.
func NewRay3[T num.Float](p Point3[T], u UnitVector3[T]) Ray3[T] {
	r := Ray3[T]{base: p, direction: u}

	if !(p.IsValid() && u.IsValid()) {
		r.markInvalid()
		return r
	}
	if u.IsDegenerate() {
		r.markDegenerate()
	}
	if p.IsSubnormal() || u.IsSubnormal() {
		r.markSubnormal()
	}
	return r
}

// DefaultRay3 returns the ray from the origin along +z.
func DefaultRay3[T num.Float]() Ray3[T] {
	return NewRay3(NewPoint3[T](0, 0, 0), NewUnitVector3[T](0, 0, 1))
}

func (r Ray3[T]) Base() Point3[T]           { return r.base }
func (r Ray3[T]) Direction() UnitVector3[T] { return r.direction }

// Segment3 is the line segment between two points, stored verbatim. Unlike
// Line3 it caches no direction; routines that need one derive it on the
// spot.
type Segment3[T num.Float] struct {
	State
	p1, p2 Point3[T]
}

// NewSegment3 creates the segment from p1 to p2 and classifies it. The
// segment is degenerate if the points coincide within epsilon.
func NewSegment3[T num.Float](p1, p2 Point3[T]) Segment3[T] {
	s := Segment3[T]{p1: p1, p2: p2}

	if !(p1.IsValid() && p2.IsValid()) {
		s.markInvalid()
		return s
	}
	if p1.IsSubnormal() || p2.IsSubnormal() {
		s.markSubnormal()
	}

	d := p1.Distance(p2)
	if !num.IsValid(d) || num.IsEqual(d, 0) {
		s.markDegenerate()
	}
	return s
}

// DefaultSegment3 returns the segment from the origin to (1, 1, 1).
func DefaultSegment3[T num.Float]() Segment3[T] {
	return NewSegment3(NewPoint3[T](0, 0, 0), NewPoint3[T](1, 1, 1))
}

func (s Segment3[T]) P1() Point3[T] { return s.p1 }
func (s Segment3[T]) P2() Point3[T] { return s.p2 }

// Length returns the distance between the segment's endpoints.
func (s Segment3[T]) Length() T { return s.p1.Distance(s.p2) }

// MakeLine3 creates the line from p in the direction of v.
func MakeLine3[T num.Float](p Point3[T], v Vector3[T]) Line3[T] {
	return NewLine3(p, p.Add(v))
}

// MakeLine3FromUnit creates the line from p in the direction of u.
func MakeLine3FromUnit[T num.Float](p Point3[T], u UnitVector3[T]) Line3[T] {
	return NewLine3(p, p.AddUnit(u))
}

// MakePlane creates the plane through three points. The up normal is the
// normalized cross product of p2-p1 and p3-p1, so it follows the same
// winding convention as Triangle3.
func MakePlane[T num.Float](p1, p2, p3 Point3[T]) Plane[T] {
	n := p2.Sub(p1).Cross(p3.Sub(p1))
	return NewPlane(p1, MakeUnitVector3(n))
}

// MakeRay3 creates the ray from p1 through p2.
func MakeRay3[T num.Float](p1, p2 Point3[T]) Ray3[T] {
	return NewRay3(p1, MakeUnitVector3FromPoints(p1, p2))
}
