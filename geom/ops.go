package geom

import (
	"robustgeom/num"
)

// Add returns v1 + v2.
func (v1 Vector3[T]) Add(v2 Vector3[T]) Vector3[T] {
	return NewVector3(v1.x+v2.x, v1.y+v2.y, v1.z+v2.z)
}

// Sub returns v1 - v2.
func (v1 Vector3[T]) Sub(v2 Vector3[T]) Vector3[T] {
	return NewVector3(v1.x-v2.x, v1.y-v2.y, v1.z-v2.z)
}

// Scale returns v scaled by m.
func (v Vector3[T]) Scale(m T) Vector3[T] {
	return NewVector3(v.x*m, v.y*m, v.z*m)
}

// Dot returns the dot product of v1 and v2.
func (v1 Vector3[T]) Dot(v2 Vector3[T]) T {
	return v1.x*v2.x + v1.y*v2.y + v1.z*v2.z
}

// DotUnit returns the dot product of v and the unit vector u.
func (v Vector3[T]) DotUnit(u UnitVector3[T]) T {
	return v.x*u.x + v.y*u.y + v.z*u.z
}

// Cross returns the cross product of v1 and v2.
func (v1 Vector3[T]) Cross(v2 Vector3[T]) Vector3[T] {
	return NewVector3(
		v1.y*v2.z-v1.z*v2.y,
		v1.z*v2.x-v1.x*v2.z,
		v1.x*v2.y-v1.y*v2.x,
	)
}

// CrossUnit returns the cross product of v and the unit vector u.
func (v Vector3[T]) CrossUnit(u UnitVector3[T]) Vector3[T] {
	return NewVector3(
		v.y*u.z-v.z*u.y,
		v.z*u.x-v.x*u.z,
		v.x*u.y-v.y*u.x,
	)
}

// Scale returns u scaled by m, as a plain vector.
func (u UnitVector3[T]) Scale(m T) Vector3[T] {
	return NewVector3(u.x*m, u.y*m, u.z*m)
}

// Dot returns the dot product of u and v.
func (u UnitVector3[T]) Dot(v Vector3[T]) T {
	return u.x*v.x + u.y*v.y + u.z*v.z
}

// DotUnit returns the dot product of two unit vectors.
func (u1 UnitVector3[T]) DotUnit(u2 UnitVector3[T]) T {
	return u1.x*u2.x + u1.y*u2.y + u1.z*u2.z
}

// Cross returns the cross product of u and v.
func (u UnitVector3[T]) Cross(v Vector3[T]) Vector3[T] {
	return NewVector3(
		u.y*v.z-u.z*v.y,
		u.z*v.x-u.x*v.z,
		u.x*v.y-u.y*v.x,
	)
}

// CrossUnit returns the cross product of two unit vectors, renormalized.
// The product of nearly parallel unit vectors has near zero length, so the
// result can be degenerate.
func (u1 UnitVector3[T]) CrossUnit(u2 UnitVector3[T]) UnitVector3[T] {
	return NewUnitVector3(
		u1.y*u2.z-u1.z*u2.y,
		u1.z*u2.x-u1.x*u2.z,
		u1.x*u2.y-u1.y*u2.x,
	)
}

// Add returns the point p translated by v.
func (p Point3[T]) Add(v Vector3[T]) Point3[T] {
	return NewPoint3(p.x+v.x, p.y+v.y, p.z+v.z)
}

// AddUnit returns the point p translated by the unit vector u.
func (p Point3[T]) AddUnit(u UnitVector3[T]) Point3[T] {
	return NewPoint3(p.x+u.x, p.y+u.y, p.z+u.z)
}

// Sub returns the vector pointing from q to p.
func (p Point3[T]) Sub(q Point3[T]) Vector3[T] {
	return NewVector3(p.x-q.x, p.y-q.y, p.z-q.z)
}

// SubVec returns the point p translated by -v.
func (p Point3[T]) SubVec(v Vector3[T]) Point3[T] {
	return NewPoint3(p.x-v.x, p.y-v.y, p.z-v.z)
}

// Distance returns the Euclidean distance between two points. A NaN
// anywhere in the inputs comes out as the infinity sentinel, never as NaN.
func (p Point3[T]) Distance(q Point3[T]) T {
	dx := p.x - q.x
	dy := p.y - q.y
	dz := p.z - q.z
	sum := dx*dx + dy*dy + dz*dz

	if !num.IsValid(sum) {
		return num.Infinity[T]()
	}
	return num.Sqrt(sum)
}

// Distance returns the signed distance from a point to the plane. It is
// positive on the side the up normal points to.
func (pl Plane[T]) Distance(p Point3[T]) T {
	return pl.up.Dot(p.Sub(pl.base))
}

// ClosestPoint returns the point on the line closest to p.
func (l Line3[T]) ClosestPoint(p Point3[T]) Point3[T] {
	v := MakeVector3(l.base, p)
	f := l.direction.Dot(v)
	return l.base.Add(l.direction.Scale(f))
}

// ClosestPoint returns the orthogonal projection of p onto the plane.
func (pl Plane[T]) ClosestPoint(p Point3[T]) Point3[T] {
	d := pl.Distance(p)
	return p.SubVec(pl.up.Scale(d))
}
