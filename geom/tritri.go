package geom

import (
	"robustgeom/num"
)

// The triangle-triangle overlap test follows Moller's "A Fast
// Triangle-Triangle Intersection Test" (Journal of Graphics Tools, 1997),
// in the no-division variant. Stage 1 rejects pairs separated by either
// supporting plane. Stage 2 projects both triangles onto the coordinate
// axis with the largest component of the plane-plane intersection line and
// compares the resulting 1D intervals. If the triangles are coplanar the
// projection is undefined and an explicit 2D test runs instead.
//
// Signed distances within epsilon of zero are snapped to exactly zero
// before any sign test. Stage 2 and the coplanar fallback both depend on
// that snap; without it sign noise at coplanar boundaries flips the
// interval selection.

func sub3[T num.Float](v1, v2 [3]T) [3]T {
	return [3]T{v1[0] - v2[0], v1[1] - v2[1], v1[2] - v2[2]}
}

func cross3[T num.Float](v1, v2 [3]T) [3]T {
	return [3]T{
		v1[1]*v2[2] - v1[2]*v2[1],
		v1[2]*v2[0] - v1[0]*v2[2],
		v1[0]*v2[1] - v1[1]*v2[0],
	}
}

func dot3[T num.Float](v1, v2 [3]T) T {
	return v1[0]*v2[0] + v1[1]*v2[1] + v1[2]*v2[2]
}

func sort2[T num.Float](a, b T) (T, T) {
	if a > b {
		return b, a
	}
	return a, b
}

func coords[T num.Float](p Point3[T]) [3]T {
	return [3]T{p.x, p.y, p.z}
}

// snapZero forces values within epsilon of zero to exactly zero.
func snapZero[T num.Float](v T) T {
	if num.IsEqual(v, 0) {
		return 0
	}
	return v
}

// edgeEdgeTest checks the segment v0-v0+a against the segment u0-u1 in the
// projected plane given by the axis indices i0, i1. Based on Franklin
// Antonio's "Faster Line Segment Intersection" (Graphics Gems III).
func edgeEdgeTest[T num.Float](ax, ay T, v0, u0, u1 [3]T, i0, i1 int) bool {
	bx := u0[i0] - u1[i0]
	by := u0[i1] - u1[i1]
	cx := v0[i0] - u0[i0]
	cy := v0[i1] - u0[i1]
	f := ay*bx - ax*by
	d := by*cx - bx*cy
	if (f > 0 && d >= 0 && d <= f) || (f < 0 && d <= 0 && d >= f) {
		e := ax*cy - ay*cx
		if f > 0 {
			return e >= 0 && e <= f
		}
		return e <= 0 && e >= f
	}
	return false
}

// edgeAgainstTriEdges checks the projected edge v0-v1 against all three
// projected edges of the triangle u0 u1 u2.
func edgeAgainstTriEdges[T num.Float](v0, v1, u0, u1, u2 [3]T, i0, i1 int) bool {
	ax := v1[i0] - v0[i0]
	ay := v1[i1] - v0[i1]
	return edgeEdgeTest(ax, ay, v0, u0, u1, i0, i1) ||
		edgeEdgeTest(ax, ay, v0, u1, u2, i0, i1) ||
		edgeEdgeTest(ax, ay, v0, u2, u0, i0, i1)
}

// pointInTri reports whether the projection of v0 lies inside the projected
// triangle u0 u1 u2.
func pointInTri[T num.Float](v0, u0, u1, u2 [3]T, i0, i1 int) bool {
	a := u1[i1] - u0[i1]
	b := -(u1[i0] - u0[i0])
	c := -a*u0[i0] - b*u0[i1]
	d0 := a*v0[i0] + b*v0[i1] + c

	a = u2[i1] - u1[i1]
	b = -(u2[i0] - u1[i0])
	c = -a*u1[i0] - b*u1[i1]
	d1 := a*v0[i0] + b*v0[i1] + c

	a = u0[i1] - u2[i1]
	b = -(u0[i0] - u2[i0])
	c = -a*u2[i0] - b*u2[i1]
	d2 := a*v0[i0] + b*v0[i1] + c

	return d0*d1 > 0 && d0*d2 > 0
}

// coplanarTriTri is the fallback for triangle pairs sharing a plane. Both
// triangles are projected onto the axis pair that maximizes their area (the
// coordinate with the largest normal component is dropped), then every edge
// pair and both containment cases are checked.
func coplanarTriTri[T num.Float](n, v0, v1, v2, u0, u1, u2 [3]T) Result {
	a0 := num.Abs(n[0])
	a1 := num.Abs(n[1])
	a2 := num.Abs(n[2])

	var i0, i1 int
	if a0 > a1 {
		if a0 > a2 {
			i0, i1 = 1, 2 // n[0] is greatest
		} else {
			i0, i1 = 0, 1 // n[2] is greatest
		}
	} else {
		if a2 > a1 {
			i0, i1 = 0, 1 // n[2] is greatest
		} else {
			i0, i1 = 0, 2 // n[1] is greatest
		}
	}

	if edgeAgainstTriEdges(v0, v1, u0, u1, u2, i0, i1) ||
		edgeAgainstTriEdges(v1, v2, u0, u1, u2, i0, i1) ||
		edgeAgainstTriEdges(v2, v0, u0, u1, u2, i0, i1) {
		return Ok
	}

	// no edges cross, but one triangle may contain the other outright
	if pointInTri(v0, u0, u1, u2, i0, i1) || pointInTri(u0, v0, v1, v2, i0, i1) {
		return Ok
	}
	return NoIntersection
}

// computeIntervals selects the vertex configuration for the 1D interval of
// a triangle along the intersection line, from the projected coordinates
// vv0 vv1 vv2 and the snapped signed distances d0 d1 d2. coplanar is
// returned as true when all three distances are zero, in which case the
// interval is undefined.
func computeIntervals[T num.Float](
	vv0, vv1, vv2, d0, d1, d2, d0d1, d0d2 T,
) (a, b, c, x0, x1 T, coplanar bool) {
	switch {
	case d0d1 > 0:
		// d0, d1 are on the same side, d2 on the other or on the plane
		return vv2, (vv0 - vv2) * d2, (vv1 - vv2) * d2, d2 - d0, d2 - d1, false
	case d0d2 > 0:
		return vv1, (vv0 - vv1) * d1, (vv2 - vv1) * d1, d1 - d0, d1 - d2, false
	case d1*d2 > 0 || d0 != 0:
		return vv0, (vv1 - vv0) * d0, (vv2 - vv0) * d0, d0 - d1, d0 - d2, false
	case d1 != 0:
		return vv1, (vv0 - vv1) * d1, (vv2 - vv1) * d1, d1 - d0, d1 - d2, false
	case d2 != 0:
		return vv2, (vv0 - vv2) * d2, (vv1 - vv2) * d2, d2 - d0, d2 - d1, false
	default:
		return 0, 0, 0, 0, 0, true
	}
}

// IntersectTriangles reports whether two triangles overlap. Degenerate
// inputs short-circuit to Degenerate; otherwise the result is Ok or
// NoIntersection.
func IntersectTriangles[T num.Float](tri1, tri2 Triangle3[T]) Result {
	if tri1.IsDegenerate() || tri2.IsDegenerate() {
		return Degenerate
	}

	v0, v1, v2 := coords(tri1.p1), coords(tri1.p2), coords(tri1.p3)
	u0, u1, u2 := coords(tri2.p1), coords(tri2.p2), coords(tri2.p3)

	// plane equation 1: n1 . x + pd1 = 0
	e1 := sub3(v1, v0)
	e2 := sub3(v2, v0)
	n1 := cross3(e1, e2)
	pd1 := -dot3(n1, v0)

	// signed distances of tri2's vertices from plane 1, snapped to zero
	du0 := snapZero(dot3(n1, u0) + pd1)
	du1 := snapZero(dot3(n1, u1) + pd1)
	du2 := snapZero(dot3(n1, u2) + pd1)

	du0du1 := du0 * du1
	du0du2 := du0 * du2

	// same sign on all of them and none zero: plane 1 separates
	if du0du1 > 0 && du0du2 > 0 {
		return NoIntersection
	}

	// plane equation 2: n2 . x + pd2 = 0
	e1 = sub3(u1, u0)
	e2 = sub3(u2, u0)
	n2 := cross3(e1, e2)
	pd2 := -dot3(n2, u0)

	dv0 := snapZero(dot3(n2, v0) + pd2)
	dv1 := snapZero(dot3(n2, v1) + pd2)
	dv2 := snapZero(dot3(n2, v2) + pd2)

	dv0dv1 := dv0 * dv1
	dv0dv2 := dv0 * dv2

	if dv0dv1 > 0 && dv0dv2 > 0 {
		return NoIntersection
	}

	// direction of the plane-plane intersection line
	d := cross3(n1, n2)

	// project onto the axis with the largest component of that line
	index := 0
	max := num.Abs(d[0])
	if bb := num.Abs(d[1]); bb > max {
		max, index = bb, 1
	}
	if cc := num.Abs(d[2]); cc > max {
		index = 2
	}

	vp0, vp1, vp2 := v0[index], v1[index], v2[index]
	up0, up1, up2 := u0[index], u1[index], u2[index]

	a, b, c, x0, x1, coplanar := computeIntervals(
		vp0, vp1, vp2, dv0, dv1, dv2, dv0dv1, dv0dv2)
	if coplanar {
		return coplanarTriTri(n1, v0, v1, v2, u0, u1, u2)
	}

	dd, e, f, y0, y1, coplanar := computeIntervals(
		up0, up1, up2, du0, du1, du2, du0du1, du0du2)
	if coplanar {
		return coplanarTriTri(n1, v0, v1, v2, u0, u1, u2)
	}

	xx := x0 * x1
	yy := y0 * y1
	xxyy := xx * yy

	tmp := a * xxyy
	isect10, isect11 := sort2(tmp+b*x1*yy, tmp+c*x0*yy)

	tmp = dd * xxyy
	isect20, isect21 := sort2(tmp+e*xx*y1, tmp+f*xx*y0)

	if isect11 < isect20 || isect21 < isect10 {
		return NoIntersection
	}
	return Ok
}
