package dcel

import "github.com/sksmith/dcel/geom"

// newFace instantiates a face bounded by the cycle reached by walking Next
// from wedge. It does not stamp h.Face on the cycle's half-edges; the
// caller (construction or a mutation's face-refresh step) does that while
// walking the same cycle, so the work isn't done twice.
func newFace(id int, wedge *Hedge, owner *DCEL) *Face {
	return &Face{
		id:              id,
		Wedge:           wedge,
		owner:           owner,
		vertexListDirty: true,
		holesDirty:      true,
	}
}

// boundary returns the half-edges of the face's cycle in order, starting
// at Wedge. It is the canonical definition of "this face's boundary" used
// by VertexList, Equals and the hole-adjacency check.
func (f *Face) boundary() []*Hedge {
	if f.Wedge == nil {
		return nil
	}
	cycle := []*Hedge{f.Wedge}
	for h := f.Wedge.Next; h != f.Wedge; h = h.Next {
		cycle = append(cycle, h)
	}
	return cycle
}

// VertexList returns the sequence of origin vertices visited while walking
// the face's boundary, materializing and caching it on first access or
// after invalidate has been called.
func (f *Face) VertexList() []*Vertex {
	if f.vertexListDirty {
		cycle := f.boundary()
		f.vertexList = make([]*Vertex, len(cycle))
		for i, h := range cycle {
			f.vertexList[i] = h.Origin
		}
		f.vertexListDirty = false
		f.areaValid = false
	}
	return f.vertexList
}

// points converts VertexList into geom.Points for the geometry kernel.
func (f *Face) points() []geom.Point {
	vs := f.VertexList()
	pts := make([]geom.Point, len(vs))
	for i, v := range vs {
		pts[i] = v.point()
	}
	return pts
}

// Area returns the signed shoelace area of the face's boundary, cached
// until VertexList is invalidated.
func (f *Face) Area() float64 {
	if !f.areaValid {
		f.area = geom.SignedArea(f.points())
		f.areaValid = true
	}
	return f.area
}

// Internal reports whether the face has positive signed area.
func (f *Face) Internal() bool { return f.Area() > 0 }

// External reports whether the face has non-positive signed area — a hole
// or the unbounded face.
func (f *Face) External() bool { return !f.Internal() }

// invalidate marks the face's caches stale. Called after any mutation that
// touches this face's boundary.
func (f *Face) invalidate() {
	f.vertexListDirty = true
	f.areaValid = false
}

// invalidateHoles marks the cached hole set stale. Called on every face
// whenever a mutation creates or destroys an external face anywhere in the
// DCEL, since hole membership is a global, not local, property.
func (f *Face) invalidateHoles() {
	f.holesDirty = true
}

// Equals reports whether f and g describe the same boundary cycle — true
// iff g.Wedge is reachable by walking Next from f.Wedge. Used after an edit
// when two provisional faces may describe the same cycle; this walks one
// cycle once rather than constructing set data structures to compare.
func (f *Face) Equals(g *Face) bool {
	if f == g {
		return true
	}
	if f.Wedge == nil || g.Wedge == nil {
		return false
	}
	for _, h := range f.boundary() {
		if h == g.Wedge {
			return true
		}
	}
	return false
}

// sharesEdgeWith reports whether f and g have any pair of twinned
// half-edges on their boundaries — i.e. they are adjacent across a common
// edge, not one nested inside the other. Used by Holes to reject the
// degenerate case where the "hole" candidate is really just the
// complementary face sharing the exact same boundary cycle in reverse.
func (f *Face) sharesEdgeWith(g *Face) bool {
	for _, h := range f.boundary() {
		if h.Twin.Face == g {
			return true
		}
	}
	return false
}

// Holes returns the faces whose boundary lies strictly inside f's
// boundary, determined by an even-odd containment test on each candidate
// face's centroid plus an external-orientation check. This is a reporting
// query for external clients (internalFaces/externalFaces consumers); it
// never affects topological invariants. Recomputed when holesDirty.
func (f *Face) Holes() []*Face {
	if !f.holesDirty {
		return f.holes
	}
	f.holes = nil
	boundary := f.points()
	if len(boundary) >= 3 {
		for _, g := range f.owner.faces {
			if g == f || !g.External() {
				continue
			}
			if f.sharesEdgeWith(g) {
				continue
			}
			if geom.ContainsPoint(boundary, geom.Centroid(g.points())) {
				f.holes = append(f.holes, g)
			}
		}
	}
	f.holesDirty = false
	return f.holes
}

// dispose drops the face's own references. Per spec §4.4 it does not touch
// the Face pointer of any half-edge still on its old boundary — the caller
// guarantees those half-edges have already been reassigned to a new face
// or removed from the DCEL entirely.
func (f *Face) dispose() {
	f.Wedge = nil
	f.owner = nil
	f.vertexList = nil
	f.holes = nil
}
