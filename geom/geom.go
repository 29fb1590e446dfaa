// Package geom provides the trivial 2D coordinate helpers the DCEL package
// builds on: exact-equality comparison, polar angle between two points, and
// the signed area of a closed polygon. There is no exact-predicate support
// here and none is planned — callers are expected to supply canonical,
// well-conditioned coordinates.
package geom

import "math"

// Point is a 2D coordinate pair.
type Point struct {
	X, Y float64
}

// Equal reports whether a and b have identical X and Y by exact
// floating-point comparison. No epsilon tolerance is applied; callers that
// need fuzzy matching must canonicalize coordinates before calling into this
// package.
func Equal(a, b Point) bool {
	return a.X == b.X && a.Y == b.Y
}

// PolarAngle returns the angle of the vector (to - from) in (-pi, pi],
// matching math.Atan2's range. from and to must be distinct points; the
// angle of a zero-length vector is undefined and this function returns 0
// for it rather than panicking, since degenerate geometry is explicitly
// out of scope for robustness here.
func PolarAngle(from, to Point) float64 {
	dx := to.X - from.X
	dy := to.Y - from.Y
	if dx == 0 && dy == 0 {
		return 0
	}
	return math.Atan2(dy, dx)
}

// SignedArea computes the signed area of the polygon traced by pts via the
// shoelace formula. A positive result indicates the boundary is wound
// counter-clockwise; zero or negative indicates clockwise, degenerate, or
// too-short a cycle to enclose area.
func SignedArea(pts []Point) float64 {
	n := len(pts)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return sum / 2
}

// Centroid returns the arithmetic mean of pts, used as a cheap
// representative point for point-in-polygon containment tests. It is not
// the polygon centroid of mass for non-convex shapes, only a fast
// approximation good enough for the even-odd crossing test in the DCEL's
// hole detection.
func Centroid(pts []Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	var sx, sy float64
	for _, p := range pts {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(pts))
	return Point{sx / n, sy / n}
}

// ContainsPoint reports whether p lies strictly inside the polygon traced by
// pts, using the standard even-odd ray-crossing test. Points exactly on the
// boundary are not guaranteed to report true or false consistently — that
// ambiguity is inherent to the crossing test and is not resolved here.
func ContainsPoint(pts []Point, p Point) bool {
	n := len(pts)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := pts[i], pts[j]
		crosses := (pi.Y > p.Y) != (pj.Y > p.Y)
		if crosses {
			xIntersect := (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y) + pi.X
			if p.X < xIntersect {
				inside = !inside
			}
		}
	}
	return inside
}
