package geom

import (
	"robustgeom/num"
)

// IntersectPlaneLine intersects a plane with an infinite line. When the
// direction has no component along the plane normal the line is classified
// as Coplanar or Parallel by the distance of its base point from the plane.
func IntersectPlaneLine[T num.Float](pl Plane[T], l Line3[T]) (Point3[T], Result) {
	if pl.IsDegenerate() || l.IsDegenerate() {
		return InvalidPoint3[T](), Degenerate
	}

	dp := l.direction.DotUnit(pl.up)
	if num.IsEqual(dp, 0) {
		if num.IsEqual(pl.Distance(l.base), 0) {
			return InvalidPoint3[T](), Coplanar
		}
		return InvalidPoint3[T](), Parallel
	}

	d := pl.base.Sub(l.base).DotUnit(pl.up) / dp
	p := l.base.Add(l.direction.Scale(d))

	if !p.IsValid() {
		return p, Overflow
	}
	return p, Ok
}

// IntersectLinePlane is IntersectPlaneLine with the arguments swapped.
func IntersectLinePlane[T num.Float](l Line3[T], pl Plane[T]) (Point3[T], Result) {
	return IntersectPlaneLine(pl, l)
}

// IntersectPlaneRay intersects a plane with a ray. A ray touching the plane
// with its base point counts as an intersection, so the parametric distance
// is compared against zero exactly, without an epsilon.
func IntersectPlaneRay[T num.Float](pl Plane[T], r Ray3[T]) (Point3[T], Result) {
	if pl.IsDegenerate() || r.IsDegenerate() {
		return InvalidPoint3[T](), Degenerate
	}

	dp := r.direction.DotUnit(pl.up)
	if num.IsEqual(dp, 0) {
		if num.IsEqual(pl.Distance(r.base), 0) {
			return InvalidPoint3[T](), Coplanar
		}
		return InvalidPoint3[T](), Parallel
	}

	d := pl.base.Sub(r.base).DotUnit(pl.up) / dp
	if d < 0 {
		return InvalidPoint3[T](), NoIntersection
	}

	p := r.base.Add(r.direction.Scale(d))
	if !p.IsValid() {
		return p, Overflow
	}
	return p, Ok
}

// IntersectRayPlane is IntersectPlaneRay with the arguments swapped.
func IntersectRayPlane[T num.Float](r Ray3[T], pl Plane[T]) (Point3[T], Result) {
	return IntersectPlaneRay(pl, r)
}

// IntersectPlaneSegment intersects a plane with a segment. The endpoints
// count as intersecting, so the parametric bounds are exact, not epsilon
// padded.
func IntersectPlaneSegment[T num.Float](pl Plane[T], s Segment3[T]) (Point3[T], Result) {
	if pl.IsDegenerate() || s.IsDegenerate() {
		return InvalidPoint3[T](), Degenerate
	}

	segDir := MakeUnitVector3FromPoints(s.p1, s.p2)

	dp := segDir.DotUnit(pl.up)
	if num.IsEqual(dp, 0) {
		if num.IsEqual(pl.Distance(s.p1), 0) {
			return InvalidPoint3[T](), Coplanar
		}
		return InvalidPoint3[T](), Parallel
	}

	d := pl.base.Sub(s.p1).DotUnit(pl.up) / dp
	if d < 0 || d > s.Length() {
		return InvalidPoint3[T](), NoIntersection
	}

	p := s.p1.Add(segDir.Scale(d))
	if !p.IsValid() {
		return p, Overflow
	}
	return p, Ok
}

// IntersectSegmentPlane is IntersectPlaneSegment with the arguments swapped.
func IntersectSegmentPlane[T num.Float](s Segment3[T], pl Plane[T]) (Point3[T], Result) {
	return IntersectPlaneSegment(pl, s)
}

// IntersectTriangleRay runs the Moller-Trumbore barycentric test between a
// triangle and a ray. A determinant within epsilon of zero means the ray
// lies in the triangle's plane and is reported Coplanar. The barycentric
// bounds are epsilon inclusive, so touching an edge counts as a hit.
func IntersectTriangleRay[T num.Float](tri Triangle3[T], r Ray3[T]) (Point3[T], Result) {
	if tri.IsDegenerate() || r.IsDegenerate() {
		return InvalidPoint3[T](), Degenerate
	}

	edge1 := tri.p2.Sub(tri.p1)
	edge2 := tri.p3.Sub(tri.p1)

	pvec := r.direction.Cross(edge2)

	det := edge1.Dot(pvec)
	if num.IsEqual(det, 0) {
		return InvalidPoint3[T](), Coplanar
	}

	tvec := r.base.Sub(tri.p1)

	u := tvec.Dot(pvec) / det
	if !(num.IsGreaterOrEqual(u, 0) && num.IsLessOrEqual(u, 1)) {
		return InvalidPoint3[T](), NoIntersection
	}

	qvec := tvec.Cross(edge1)

	v := r.direction.Dot(qvec) / det
	if !(num.IsGreaterOrEqual(v, 0) && num.IsLessOrEqual(u+v, 1)) {
		return InvalidPoint3[T](), NoIntersection
	}

	t := edge2.Dot(qvec) / det
	if !num.IsGreaterOrEqual(t, 0) {
		return InvalidPoint3[T](), NoIntersection
	}

	p := r.base.Add(r.direction.Scale(t))
	if !p.IsValid() {
		return p, Overflow
	}
	return p, Ok
}

// IntersectRayTriangle is IntersectTriangleRay with the arguments swapped.
func IntersectRayTriangle[T num.Float](r Ray3[T], tri Triangle3[T]) (Point3[T], Result) {
	return IntersectTriangleRay(tri, r)
}

// IntersectTriangleLine is the Moller-Trumbore test for an infinite line:
// the same barycentric math as IntersectTriangleRay but with no bound on
// the parametric distance.
func IntersectTriangleLine[T num.Float](tri Triangle3[T], l Line3[T]) (Point3[T], Result) {
	if tri.IsDegenerate() || l.IsDegenerate() {
		return InvalidPoint3[T](), Degenerate
	}

	edge1 := tri.p2.Sub(tri.p1)
	edge2 := tri.p3.Sub(tri.p1)

	pvec := l.direction.Cross(edge2)

	det := edge1.Dot(pvec)
	if num.IsEqual(det, 0) {
		return InvalidPoint3[T](), Coplanar
	}

	tvec := l.base.Sub(tri.p1)

	u := tvec.Dot(pvec) / det
	if !(num.IsGreaterOrEqual(u, 0) && num.IsLessOrEqual(u, 1)) {
		return InvalidPoint3[T](), NoIntersection
	}

	qvec := tvec.Cross(edge1)

	v := l.direction.Dot(qvec) / det
	if !(num.IsGreaterOrEqual(v, 0) && num.IsLessOrEqual(u+v, 1)) {
		return InvalidPoint3[T](), NoIntersection
	}

	t := edge2.Dot(qvec) / det
	p := l.base.Add(l.direction.Scale(t))

	if !p.IsValid() {
		return p, Overflow
	}
	return p, Ok
}

// IntersectLineTriangle is IntersectTriangleLine with the arguments swapped.
func IntersectLineTriangle[T num.Float](l Line3[T], tri Triangle3[T]) (Point3[T], Result) {
	return IntersectTriangleLine(tri, l)
}

// IntersectTriangleSegment is the Moller-Trumbore test for a segment. The
// segment's direction is a derived unit vector, so the far endpoint is
// enforced with an explicit distance comparison against the segment length
// rather than a parametric bound.
func IntersectTriangleSegment[T num.Float](tri Triangle3[T], s Segment3[T]) (Point3[T], Result) {
	if tri.IsDegenerate() || s.IsDegenerate() {
		return InvalidPoint3[T](), Degenerate
	}

	segDir := MakeUnitVector3FromPoints(s.p1, s.p2)

	edge1 := tri.p2.Sub(tri.p1)
	edge2 := tri.p3.Sub(tri.p1)

	pvec := segDir.Cross(edge2)

	det := edge1.Dot(pvec)
	if num.IsEqual(det, 0) {
		return InvalidPoint3[T](), Coplanar
	}

	tvec := s.p1.Sub(tri.p1)

	u := tvec.Dot(pvec) / det
	if !(num.IsGreaterOrEqual(u, 0) && num.IsLessOrEqual(u, 1)) {
		return InvalidPoint3[T](), NoIntersection
	}

	qvec := tvec.Cross(edge1)

	v := segDir.Dot(qvec) / det
	if !(num.IsGreaterOrEqual(v, 0) && num.IsLessOrEqual(u+v, 1)) {
		return InvalidPoint3[T](), NoIntersection
	}

	t := edge2.Dot(qvec) / det
	if !num.IsValid(t) {
		return InvalidPoint3[T](), Overflow
	}
	if t < 0 {
		return InvalidPoint3[T](), NoIntersection
	}

	p := s.p1.Add(segDir.Scale(t))
	if !p.IsValid() {
		// the overflowed point is returned as computed, since it can help
		// the caller figure out what blew up
		return p, Overflow
	}

	if p.Distance(s.p1) > s.p1.Distance(s.p2) {
		return InvalidPoint3[T](), NoIntersection
	}
	return p, Ok
}

// IntersectSegmentTriangle is IntersectTriangleSegment with the arguments
// swapped.
func IntersectSegmentTriangle[T num.Float](s Segment3[T], tri Triangle3[T]) (Point3[T], Result) {
	return IntersectTriangleSegment(tri, s)
}

// IntersectTrianglePlane intersects a triangle with a plane by testing the
// triangle's three edges against it. Result precedence is fixed: any Ok
// wins, then any Overflow, then unanimous Coplanar, then unanimous
// Parallel, then NoIntersection.
func IntersectTrianglePlane[T num.Float](tri Triangle3[T], pl Plane[T]) Result {
	if tri.IsDegenerate() || pl.IsDegenerate() {
		return Degenerate
	}

	// the triangle is not degenerate, so its edges cannot be either
	s1 := NewSegment3(tri.p1, tri.p2)
	s2 := NewSegment3(tri.p2, tri.p3)
	s3 := NewSegment3(tri.p3, tri.p1)

	_, r1 := IntersectPlaneSegment(pl, s1)
	_, r2 := IntersectPlaneSegment(pl, s2)
	_, r3 := IntersectPlaneSegment(pl, s3)

	if r1 == Ok || r2 == Ok || r3 == Ok {
		return Ok
	}
	if r1 == Overflow || r2 == Overflow || r3 == Overflow {
		return Overflow
	}
	if r1 == Coplanar && r2 == Coplanar && r3 == Coplanar {
		return Coplanar
	}
	if r1 == Parallel && r2 == Parallel && r3 == Parallel {
		return Parallel
	}
	return NoIntersection
}

// IntersectPlaneTriangle is IntersectTrianglePlane with the arguments
// swapped.
func IntersectPlaneTriangle[T num.Float](pl Plane[T], tri Triangle3[T]) Result {
	return IntersectTrianglePlane(tri, pl)
}
