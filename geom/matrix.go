package geom

import (
	"robustgeom/num"
)

// Matrix3 is a 3x3 matrix stored in row-major order. The magnitude of its
// largest element is cached for use in scaled epsilon comparisons.
type Matrix3[T num.Float] struct {
	State
	vals   [9]T
	maxMag T
}

// NewMatrix3 creates a matrix from row-major values and classifies it.
// Matrices have no intrinsic degeneracy of their own.
func NewMatrix3[T num.Float](vals [9]T) Matrix3[T] {
	m := Matrix3[T]{vals: vals, maxMag: num.Infinity[T]()}

	for _, v := range vals {
		if !num.IsValid(v) {
			m.markInvalid()
			return m
		}
	}

	m.maxMag = 0
	for _, v := range vals {
		if a := num.Abs(v); a > m.maxMag {
			m.maxMag = a
		}
		if num.IsSubnormal(v) {
			m.markSubnormal()
		}
	}
	return m
}

// IdentityMatrix3 returns the identity matrix.
func IdentityMatrix3[T num.Float]() Matrix3[T] {
	return NewMatrix3([9]T{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
}

// At returns the element at row r, column c.
func (m Matrix3[T]) At(r, c int) T { return m.vals[r*3+c] }

// MaxMagnitude returns the cached magnitude of the largest element. It is
// the infinity sentinel if the matrix is invalid.
func (m Matrix3[T]) MaxMagnitude() T { return m.maxMag }

// Mult returns the matrix product m * m2.
func (m Matrix3[T]) Mult(m2 Matrix3[T]) Matrix3[T] {
	var out [9]T
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum T
			for k := 0; k < 3; k++ {
				sum += m.vals[i*3+k] * m2.vals[k*3+j]
			}
			out[i*3+j] = sum
		}
	}
	return NewMatrix3(out)
}

// Transpose returns the transpose of m.
func (m Matrix3[T]) Transpose() Matrix3[T] {
	v := m.vals
	return NewMatrix3([9]T{
		v[0], v[3], v[6],
		v[1], v[4], v[7],
		v[2], v[5], v[8],
	})
}

// Determinant returns the determinant of m.
func (m Matrix3[T]) Determinant() T {
	v := m.vals
	return v[0]*(v[4]*v[8]-v[5]*v[7]) -
		v[1]*(v[3]*v[8]-v[5]*v[6]) +
		v[2]*(v[3]*v[7]-v[4]*v[6])
}

// rotationIdentityTol is the absolute tolerance used when checking that a
// rotation matrix times its transpose is the identity. It is deliberately a
// fixed constant per width rather than an epsilon-scaled bound, which in
// practice was too loose for this check.
func rotationIdentityTol[T num.Float]() T {
	var z T
	switch any(z).(type) {
	case float32:
		return T(1e-6)
	default:
		return T(1e-14)
	}
}

// RotationMatrix3 is an orthonormal 3x3 matrix built from three unit vector
// columns.
type RotationMatrix3[T num.Float] struct {
	State
	mat  Matrix3[T]
	cols [3]UnitVector3[T]
}

// NewRotationMatrix3 creates a rotation matrix with the given columns and
// classifies it. The matrix is degenerate if any column is, if it is not
// orthogonal (the product with its transpose strays from the identity
// beyond a fixed absolute tolerance), or if its determinant differs from 1
// by more than 12 * MaxMagnitude * epsilon. The factor of 12 accounts for
// the multiply-adds in the 3x3 determinant expansion.
func NewRotationMatrix3[T num.Float](c1, c2, c3 UnitVector3[T]) RotationMatrix3[T] {
	r := RotationMatrix3[T]{cols: [3]UnitVector3[T]{c1, c2, c3}}
	r.mat = NewMatrix3([9]T{
		c1.x, c2.x, c3.x,
		c1.y, c2.y, c3.y,
		c1.z, c2.z, c3.z,
	})

	if !(c1.IsValid() && c2.IsValid() && c3.IsValid()) {
		r.markInvalid()
		return r
	}
	if c1.IsSubnormal() || c2.IsSubnormal() || c3.IsSubnormal() {
		r.markSubnormal()
	}

	if c1.IsDegenerate() || c2.IsDegenerate() || c3.IsDegenerate() {
		r.markDegenerate()
		return r
	}

	prod := r.mat.Mult(r.mat.Transpose())
	tol := rotationIdentityTol[T]()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var want T
			if i == j {
				want = 1
			}
			if num.Abs(prod.At(i, j)-want) > tol {
				r.markDegenerate()
				return r
			}
		}
	}

	det := r.mat.Determinant()
	if !num.IsEqualScaled(det, 1, 12*r.mat.MaxMagnitude()) {
		r.markDegenerate()
	}
	return r
}

// DefaultRotationMatrix3 returns the identity rotation.
func DefaultRotationMatrix3[T num.Float]() RotationMatrix3[T] {
	return NewRotationMatrix3(
		NewUnitVector3[T](1, 0, 0),
		NewUnitVector3[T](0, 1, 0),
		NewUnitVector3[T](0, 0, 1),
	)
}

// Matrix returns the underlying 3x3 matrix.
func (r RotationMatrix3[T]) Matrix() Matrix3[T] { return r.mat }

// Col returns column i as a unit vector.
func (r RotationMatrix3[T]) Col(i int) UnitVector3[T] { return r.cols[i] }

// Apply rotates the vector v.
func (r RotationMatrix3[T]) Apply(v Vector3[T]) Vector3[T] {
	m := &r.mat.vals
	return NewVector3(
		m[0]*v.x+m[1]*v.y+m[2]*v.z,
		m[3]*v.x+m[4]*v.y+m[5]*v.z,
		m[6]*v.x+m[7]*v.y+m[8]*v.z,
	)
}
