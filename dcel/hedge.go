package dcel

// newHedge allocates a half-edge with its origin set; all linkage fields
// (Twin, Next, Prev, Face) are installed by the DCEL that owns it.
func newHedge(id int, origin *Vertex) *Hedge {
	return &Hedge{id: id, Origin: origin}
}

// dispose breaks every pointer the half-edge holds. The caller removes it
// from the owning DCEL's collection first.
func (h *Hedge) dispose() {
	h.Origin = nil
	h.Twin = nil
	h.Next = nil
	h.Prev = nil
	h.Face = nil
}
