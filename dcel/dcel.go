package dcel

// DCEL is the owning structure for a planar subdivision: every Vertex,
// Hedge and Face reachable from it belongs to it exclusively. Half-edges
// and faces hold non-owning back-references into the DCEL's own
// collections; because the graph is cyclic by construction (twin/next/prev
// chains, Face.owner), teardown is an explicit pass over each collection
// (see Dispose), not reference counting.
//
// A DCEL is not safe for concurrent use: mutation (AddEdge, RemoveEdge,
// SplitEdge) must not overlap with any other call on the same instance,
// including concurrent reads. Read-only queries are safe to run
// concurrently with each other as long as no mutation is in flight.
type DCEL struct {
	nextVertexID int
	nextHedgeID  int
	nextFaceID   int

	vertices []*Vertex
	hedges   []*Hedge
	faces    []*Face

	lookup        *hedgeLookup
	allowParallel bool
}

// New constructs a DCEL from a point list and a set of undirected edges
// given as index pairs into points, per spec §4.5.1. Each edge must
// reference two distinct, valid point indices and must not duplicate an
// edge already present (unless WithParallelEdges is supplied); violations
// are contract bugs and New panics with a TopologyError, leaving no
// partially-built DCEL observable.
func New(points [][2]float64, edges [][2]int, opts ...Option) *DCEL {
	d := &DCEL{lookup: newHedgeLookup()}
	for _, opt := range opts {
		opt(d)
	}

	vs := make([]*Vertex, len(points))
	for i, p := range points {
		vs[i] = d.newVertex(p[0], p[1])
	}

	for _, e := range edges {
		a, b := e[0], e[1]
		if a < 0 || a >= len(vs) || b < 0 || b >= len(vs) {
			fail("New", "edge references an unknown vertex index")
		}
		if a == b {
			fail("New", "self-loop edges are not supported")
		}
		va, vb := vs[a], vs[b]
		d.checkNoDuplicate("New", va, vb)

		// h1: a -> b, appended to b's incident (destination b)
		// h2: b -> a, appended to a's incident (destination a)
		h1 := d.newHedgeAt(va)
		h2 := d.newHedgeAt(vb)
		h1.Twin = h2
		h2.Twin = h1
		vb.incident = append(vb.incident, h1)
		va.incident = append(va.incident, h2)
		d.lookup.add(h1)
		d.lookup.add(h2)
	}

	for _, v := range vs {
		if len(v.incident) == 0 {
			continue
		}
		v.sortIncident()
		threadVertexFull(v)
	}

	d.identifyFaces()
	return d
}

// threadVertexFull installs the rotational linkage for every half-edge
// incident to v (per spec §4.5.1 step 3), used only during bulk
// construction where all of v's half-edges arrive at once. AddEdge's
// incremental equivalent is threadEndpointInsert, which splices a single
// new half-edge into an already-threaded rotation instead.
func threadVertexFull(v *Vertex) {
	k := len(v.incident)
	if k == 1 {
		i0 := v.incident[0]
		i0.Next = i0.Twin
		i0.Twin.Prev = i0
		return
	}
	for j := 0; j < k; j++ {
		cur := v.incident[j]
		next := v.incident[(j+1)%k]
		next.Next = cur.Twin
		cur.Twin.Prev = next
	}
}

// threadEndpointInsert installs rotational linkage for a single newly
// added half-edge h (whose destination is v) per spec §4.5.2 step 3.
// wasNew reports whether v itself was just created by this AddEdge call
// (degree now exactly 1): in that case h turns straight back onto its twin
// at v. Otherwise h is spliced between its angular neighbors in v's
// freshly re-sorted incident list.
func threadEndpointInsert(v *Vertex, h *Hedge, wasNew bool) {
	if wasNew {
		h.Next = h.Twin
		h.Twin.Prev = h
		return
	}
	k := len(v.incident)
	idx := v.indexOfIncident(h)
	hprev := v.incident[(idx-1+k)%k]
	hnext := v.incident[(idx+1)%k]
	h.Next = hprev.Twin
	hprev.Twin.Prev = h
	hnext.Next = h.Twin
	h.Twin.Prev = hnext
}

// identifyFaces assigns a Face to every half-edge, per spec §4.5.1 step 4:
// walk H in order, and whenever a half-edge's Face is still unassigned,
// walk its Next cycle to materialize and stamp a new Face.
func (d *DCEL) identifyFaces() {
	for _, h := range d.hedges {
		if h.Face != nil {
			continue
		}
		d.buildFaceFrom(h)
	}
}

// buildFaceFrom walks start's Next cycle, stamps every half-edge on it with
// a freshly allocated Face, registers the face, and returns it.
func (d *DCEL) buildFaceFrom(start *Hedge) *Face {
	f := newFace(d.nextFaceID, start, d)
	d.nextFaceID++
	start.Face = f
	for h := start.Next; h != start; h = h.Next {
		h.Face = f
	}
	d.faces = append(d.faces, f)
	return f
}

// AddEdge inserts an undirected edge between (x1,y1) and (x2,y2), creating
// either endpoint if it doesn't already exist, per spec §4.5.2. It returns
// the two mated half-edges created: h1 runs (x2,y2) -> (x1,y1), h2 runs
// (x1,y1) -> (x2,y2). A self-loop, or a duplicate directed edge when the
// DCEL was not constructed with WithParallelEdges, is a contract
// violation: AddEdge validates before mutating anything and panics with a
// TopologyError rather than leave partial linkage observable.
func (d *DCEL) AddEdge(x1, y1, x2, y2 float64) (h1, h2 *Hedge) {
	if x1 == x2 && y1 == y2 {
		fail("AddEdge", "self-loop edges are not supported")
	}

	v1, v1New := d.findOrCreateVertex(x1, y1)
	v2, v2New := d.findOrCreateVertex(x2, y2)
	d.checkNoDuplicate("AddEdge", v1, v2)

	h1 = d.newHedgeAt(v2)
	h2 = d.newHedgeAt(v1)
	h1.Twin = h2
	h2.Twin = h1
	d.lookup.add(h1)
	d.lookup.add(h2)

	v1.incident = append(v1.incident, h1)
	v2.incident = append(v2.incident, h2)
	v1.sortIncident()
	v2.sortIncident()

	threadEndpointInsert(v1, h1, v1New)
	threadEndpointInsert(v2, h2, v2New)

	head1 := h1.Next
	head2 := h2.Next
	oldFaces := dedupFaces(head1.Face, head2.Face)
	removedExternal := d.dropFaces(oldFaces)

	f1 := d.buildFaceFrom(head1)
	newFaces := []*Face{f1}
	if head2.Face != f1 {
		newFaces = append(newFaces, d.buildFaceFrom(head2))
	}

	if removedExternal || anyExternal(newFaces) {
		d.markAllHolesDirty()
	}
	return h1, h2
}

// RemoveEdge removes the edge carrying the directed half-edge from
// (x1,y1) to (x2,y2), per spec §4.5.3. If no such half-edge exists this
// is a non-fatal lookup miss: RemoveEdge logs a diagnostic via Logger and
// returns false without mutating the DCEL. On success it returns true.
func (d *DCEL) RemoveEdge(x1, y1, x2, y2 float64) bool {
	h := d.lookup.find(x1, y1, x2, y2)
	if h == nil {
		Logger.Printf("RemoveEdge: no half-edge from (%g,%g) to (%g,%g)", x1, y1, x2, y2)
		return false
	}
	t := h.Twin

	head1 := h.Next
	head2 := t.Next

	oldFaces := dedupFaces(h.Face, t.Face)
	removedExternal := d.dropFaces(oldFaces)

	d.removeHedgeObj(h)
	d.removeHedgeObj(t)

	side1Usable := !d.detachEndpoint(t.Origin, h)
	side2Usable := !d.detachEndpoint(h.Origin, t)

	h.dispose()
	t.dispose()

	var newFaces []*Face
	if side1Usable {
		f1 := d.buildFaceFrom(head1)
		newFaces = append(newFaces, f1)
		if side2Usable && head2.Face != f1 {
			newFaces = append(newFaces, d.buildFaceFrom(head2))
		}
	} else if side2Usable {
		newFaces = append(newFaces, d.buildFaceFrom(head2))
	}

	if removedExternal || anyExternal(newFaces) {
		d.markAllHolesDirty()
	}
	return true
}

// SplitEdge inserts a new vertex (sx,sy) in the middle of the edge from
// (x1,y1) to (x2,y2), replacing its two half-edges with four and
// preserving both incident faces unchanged in identity, per spec §4.5.4.
// It reports false (and logs a diagnostic) if the original edge doesn't
// exist, mutating nothing.
func (d *DCEL) SplitEdge(x1, y1, x2, y2, sx, sy float64) bool {
	h := d.lookup.find(x1, y1, x2, y2)
	if h == nil {
		Logger.Printf("SplitEdge: no half-edge from (%g,%g) to (%g,%g)", x1, y1, x2, y2)
		return false
	}
	t := h.Twin

	s := d.newVertex(sx, sy)

	// h1: h.Origin -> s     h2: s -> t.Origin
	// h3: t.Origin -> s     h4: s -> h.Origin
	h1 := d.newHedgeAt(h.Origin)
	h2 := d.newHedgeAt(s)
	h3 := d.newHedgeAt(t.Origin)
	h4 := d.newHedgeAt(s)

	h1.Twin, h4.Twin = h4, h1
	h2.Twin, h3.Twin = h3, h2

	if h.Face != nil {
		if h.Face.Wedge == h {
			h.Face.Wedge = h1
		}
		h1.Face = h.Face
		h2.Face = h.Face
		h.Face.invalidate()
	}
	if t.Face != nil {
		if t.Face.Wedge == t {
			t.Face.Wedge = h3
		}
		h3.Face = t.Face
		h4.Face = t.Face
		t.Face.invalidate()
	}

	h1.Next, h2.Prev = h2, h1
	h3.Next, h4.Prev = h4, h3

	if h.Prev != t {
		h1.Prev = h.Prev
	} else {
		h1.Prev = h4
	}
	h1.Prev.Next = h1

	if h.Next != t {
		h2.Next = h.Next
	} else {
		h2.Next = h3
	}
	h2.Next.Prev = h2

	if t.Prev != h {
		h3.Prev = t.Prev
	} else {
		h3.Prev = h2
	}
	h3.Prev.Next = h3

	if t.Next != h {
		h4.Next = t.Next
	} else {
		h4.Next = h1
	}
	h4.Next.Prev = h4

	s.incident = []*Hedge{h1, h3}

	replaceIncident(h.Origin, t, h4)
	replaceIncident(t.Origin, h, h2)

	d.lookup.remove(h)
	d.lookup.remove(t)
	d.removeHedgeObj(h)
	d.removeHedgeObj(t)
	h.dispose()
	t.dispose()

	d.lookup.add(h1)
	d.lookup.add(h2)
	d.lookup.add(h3)
	d.lookup.add(h4)

	return true
}

// replaceIncident swaps old for replacement in v.incident, in place, so
// the vertex's rotational order is preserved without a re-sort — SplitEdge
// never changes any angle, only which half-edge object occupies that slot.
func replaceIncident(v *Vertex, old, replacement *Hedge) {
	for i, h := range v.incident {
		if h == old {
			v.incident[i] = replacement
			return
		}
	}
}

// detachEndpoint removes removed from v's incident list and, if that
// empties v, deletes v from the DCEL entirely. It reports whether v was
// emptied (in which case the caller must not attempt to build a new face
// on that side — see spec §4.5.3 step 3).
func (d *DCEL) detachEndpoint(v *Vertex, removed *Hedge) bool {
	emptied := v.removeIncident(removed)
	if emptied {
		d.removeVertexObj(v)
	}
	return emptied
}

// dropFaces removes and disposes every face in fs, reporting whether any
// of them was external.
func (d *DCEL) dropFaces(fs []*Face) bool {
	removedExternal := false
	for _, f := range fs {
		if f.External() {
			removedExternal = true
		}
		d.removeFaceObj(f)
	}
	return removedExternal
}

func (d *DCEL) markAllHolesDirty() {
	for _, f := range d.faces {
		f.invalidateHoles()
	}
}

func anyExternal(fs []*Face) bool {
	for _, f := range fs {
		if f.External() {
			return true
		}
	}
	return false
}

// dedupFaces filters nils out of fs and collapses duplicate pointers,
// preserving first-seen order.
func dedupFaces(fs ...*Face) []*Face {
	var out []*Face
	seen := make(map[*Face]bool, len(fs))
	for _, f := range fs {
		if f == nil || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

// checkNoDuplicate panics with a TopologyError if a or b already realize a
// directed edge between each other in either direction and the DCEL was
// not constructed with WithParallelEdges. Per spec §9 this is an open
// question the source leaves ambiguous; this package's resolved contract
// is to reject by default (see DESIGN.md).
func (d *DCEL) checkNoDuplicate(op string, a, b *Vertex) {
	if d.allowParallel {
		return
	}
	if d.lookup.find(a.X, a.Y, b.X, b.Y) != nil || d.lookup.find(b.X, b.Y, a.X, a.Y) != nil {
		fail(op, "an edge between these vertices already exists")
	}
}

func (d *DCEL) newVertex(x, y float64) *Vertex {
	v := &Vertex{id: d.nextVertexID, X: x, Y: y}
	d.nextVertexID++
	d.vertices = append(d.vertices, v)
	return v
}

func (d *DCEL) newHedgeAt(origin *Vertex) *Hedge {
	h := newHedge(d.nextHedgeID, origin)
	d.nextHedgeID++
	d.hedges = append(d.hedges, h)
	return h
}

func (d *DCEL) removeFaceObj(f *Face) {
	for i, g := range d.faces {
		if g == f {
			d.faces = append(d.faces[:i], d.faces[i+1:]...)
			break
		}
	}
	f.dispose()
}

func (d *DCEL) removeVertexObj(v *Vertex) {
	for i, g := range d.vertices {
		if g == v {
			d.vertices = append(d.vertices[:i], d.vertices[i+1:]...)
			break
		}
	}
	v.dispose()
}

func (d *DCEL) removeHedgeObj(h *Hedge) {
	for i, g := range d.hedges {
		if g == h {
			d.hedges = append(d.hedges[:i], d.hedges[i+1:]...)
			break
		}
	}
	d.lookup.remove(h)
}
