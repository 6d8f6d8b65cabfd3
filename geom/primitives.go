package geom

import (
	"robustgeom/num"
)

// Point3 is a position in 3D space. Its coordinates are stored exactly as
// given, even when they are not finite.
type Point3[T num.Float] struct {
	State
	x, y, z T
}

// NewPoint3 creates a point from raw coordinates and classifies it.
func NewPoint3[T num.Float](x, y, z T) Point3[T] {
	p := Point3[T]{x: x, y: y, z: z}

	if !(num.IsValid(x) && num.IsValid(y) && num.IsValid(z)) {
		p.markInvalid()
		return p
	}
	if num.IsSubnormal(x) || num.IsSubnormal(y) || num.IsSubnormal(z) {
		p.markSubnormal()
	}
	return p
}

// DefaultPoint3 returns the origin.
func DefaultPoint3[T num.Float]() Point3[T] {
	return NewPoint3[T](0, 0, 0)
}

// InvalidPoint3 returns the canonical invalid point, with every coordinate
// set to the infinity sentinel.
func InvalidPoint3[T num.Float]() Point3[T] {
	inf := num.Infinity[T]()
	return NewPoint3(inf, inf, inf)
}

func (p Point3[T]) X() T { return p.x }
func (p Point3[T]) Y() T { return p.y }
func (p Point3[T]) Z() T { return p.z }

// Vector3 is a direction with magnitude in 3D space. The magnitude is
// computed once at construction; if it overflows it is stored as the
// infinity sentinel, but the vector itself stays non-degenerate.
type Vector3[T num.Float] struct {
	State
	x, y, z T
	mag     T
}

// NewVector3 creates a vector from raw components and classifies it.
func NewVector3[T num.Float](x, y, z T) Vector3[T] {
	v := Vector3[T]{x: x, y: y, z: z, mag: num.Infinity[T]()}

	if !(num.IsValid(x) && num.IsValid(y) && num.IsValid(z)) {
		v.markInvalid()
		return v
	}

	sum := x*x + y*y + z*z
	if num.IsValid(sum) {
		v.mag = num.Sqrt(sum)
	}

	if num.IsSubnormal(x) || num.IsSubnormal(y) || num.IsSubnormal(z) ||
		num.IsSubnormal(v.mag) {
		v.markSubnormal()
	}
	return v
}

// DefaultVector3 returns the zero vector.
func DefaultVector3[T num.Float]() Vector3[T] {
	return NewVector3[T](0, 0, 0)
}

// InvalidVector3 returns the canonical invalid vector.
func InvalidVector3[T num.Float]() Vector3[T] {
	inf := num.Infinity[T]()
	return NewVector3(inf, inf, inf)
}

func (v Vector3[T]) X() T { return v.x }
func (v Vector3[T]) Y() T { return v.y }
func (v Vector3[T]) Z() T { return v.z }

// Magnitude returns the cached Euclidean length of v. It is the infinity
// sentinel if v is invalid or the length overflowed.
func (v Vector3[T]) Magnitude() T { return v.mag }

// UnitVector3 is a direction of unit length. Construction normalizes the
// given components; if the source has (near) zero length or normalization
// overflows, the unit vector is degenerate and its components are frozen to
// the infinity sentinel.
type UnitVector3[T num.Float] struct {
	State
	x, y, z T
}

// NewUnitVector3 creates a unit vector by normalizing the raw components.
func NewUnitVector3[T num.Float](x, y, z T) UnitVector3[T] {
	u := UnitVector3[T]{x: x, y: y, z: z}

	if !(num.IsValid(x) && num.IsValid(y) && num.IsValid(z)) {
		u.markInvalid()
		return u
	}
	if num.IsSubnormal(x) || num.IsSubnormal(y) || num.IsSubnormal(z) {
		u.markSubnormal()
	}

	mag := x*x + y*y + z*z
	if num.IsValid(mag) {
		mag = num.Sqrt(mag)
	} else {
		// overflow during the length computation
		mag = num.Infinity[T]()
	}

	if !num.IsValid(mag) || num.IsEqual(mag, 0) {
		u.markDegenerate()
		inf := num.Infinity[T]()
		u.x, u.y, u.z = inf, inf, inf
		return u
	}

	u.x /= mag
	u.y /= mag
	u.z /= mag

	// the divisions can produce subnormal results from normal inputs, so
	// the quotients get checked again
	if num.IsSubnormal(u.x) || num.IsSubnormal(u.y) || num.IsSubnormal(u.z) {
		u.markSubnormal()
	}
	return u
}

// DefaultUnitVector3 returns the +y axis.
func DefaultUnitVector3[T num.Float]() UnitVector3[T] {
	return NewUnitVector3[T](0, 1, 0)
}

// InvalidUnitVector3 returns the canonical invalid unit vector.
func InvalidUnitVector3[T num.Float]() UnitVector3[T] {
	inf := num.Infinity[T]()
	return NewUnitVector3(inf, inf, inf)
}

func (u UnitVector3[T]) X() T { return u.x }
func (u UnitVector3[T]) Y() T { return u.y }
func (u UnitVector3[T]) Z() T { return u.z }

// Magnitude of a unit vector is 1 by construction.
func (u UnitVector3[T]) Magnitude() T { return 1 }

// Vec returns u as a plain Vector3.
func (u UnitVector3[T]) Vec() Vector3[T] {
	return NewVector3(u.x, u.y, u.z)
}

// MakeVector3 creates the vector pointing from one point to another.
func MakeVector3[T num.Float](from, to Point3[T]) Vector3[T] {
	return NewVector3(to.x-from.x, to.y-from.y, to.z-from.z)
}

// MakeVector3FromUnit creates the length 1 vector with the direction of u.
func MakeVector3FromUnit[T num.Float](u UnitVector3[T]) Vector3[T] {
	return u.Vec()
}

// MakeUnitVector3 creates a unit vector with the direction of v.
func MakeUnitVector3[T num.Float](v Vector3[T]) UnitVector3[T] {
	return NewUnitVector3(v.x, v.y, v.z)
}

// MakeUnitVector3FromPoints creates the unit vector pointing from one point
// to another.
func MakeUnitVector3FromPoints[T num.Float](from, to Point3[T]) UnitVector3[T] {
	return NewUnitVector3(to.x-from.x, to.y-from.y, to.z-from.z)
}
