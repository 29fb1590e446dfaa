package dcel

// findVertexAt returns the vertex at exactly (x,y), or nil. Point identity
// is geom.Equal (plain float64 ==), per spec §3.1 — no tolerance.
func (d *DCEL) findVertexAt(x, y float64) *Vertex {
	for _, v := range d.vertices {
		if v.X == x && v.Y == y {
			return v
		}
	}
	return nil
}

// findOrCreateVertex returns the vertex at (x,y), creating and
// registering one if none exists. The second return reports whether a
// new vertex was created, which threadEndpointInsert needs to choose
// between the isolated-2-cycle and splice-into-rotation cases.
func (d *DCEL) findOrCreateVertex(x, y float64) (*Vertex, bool) {
	if v := d.findVertexAt(x, y); v != nil {
		return v, false
	}
	return d.newVertex(x, y), true
}

// FindVertex returns the vertex at exactly (x,y), or nil if none exists.
func (d *DCEL) FindVertex(x, y float64) *Vertex {
	return d.findVertexAt(x, y)
}

// FindHedge returns the half-edge running from (x1,y1) to (x2,y2), or nil.
// Note the asymmetry documented in spec §4.5.5: FindHedge(a, b) and
// FindHedge(b, a) return the two distinct mated half-edges of the same
// undirected edge, not the same object — callers that want "the edge
// regardless of direction" must try both directions themselves.
func (d *DCEL) FindHedge(x1, y1, x2, y2 float64) *Hedge {
	return d.lookup.find(x1, y1, x2, y2)
}

// InternalFaces returns every face with positive signed area.
func (d *DCEL) InternalFaces() []*Face {
	var out []*Face
	for _, f := range d.faces {
		if f.Internal() {
			out = append(out, f)
		}
	}
	return out
}

// ExternalFaces returns every face with non-positive signed area (holes
// and the unbounded face).
func (d *DCEL) ExternalFaces() []*Face {
	var out []*Face
	for _, f := range d.faces {
		if f.External() {
			out = append(out, f)
		}
	}
	return out
}

// Vertices returns every vertex currently in the subdivision.
func (d *DCEL) Vertices() []*Vertex { return d.vertices }

// Hedges returns every half-edge currently in the subdivision.
func (d *DCEL) Hedges() []*Hedge { return d.hedges }

// Faces returns every face currently in the subdivision.
func (d *DCEL) Faces() []*Face { return d.faces }

// Dispose tears down every vertex, half-edge and face owned by the DCEL,
// breaking the reference cycles (twin/next/prev, Face.owner) that would
// otherwise keep the whole graph reachable from any one handle a caller
// still held. After Dispose the DCEL holds no elements; it must not be
// mutated further.
func (d *DCEL) Dispose() {
	for _, f := range d.faces {
		f.dispose()
	}
	for _, h := range d.hedges {
		h.dispose()
	}
	for _, v := range d.vertices {
		v.dispose()
	}
	d.vertices = nil
	d.hedges = nil
	d.faces = nil
	d.lookup = newHedgeLookup()
}
