package dcel

// directedPairKey identifies a half-edge by its (origin, destination)
// coordinate pair. Unlike the teacher's EdgeLookup (which normalizes
// min/max vertex ID because its edges are undirected), this key is
// direction-sensitive: h and h.Twin occupy distinct slots, since the DCEL
// must be able to find "the half-edge from A to B" specifically.
type directedPairKey struct {
	ox, oy, dx, dy float64
}

func keyOf(origin, dest *Vertex) directedPairKey {
	return directedPairKey{origin.X, origin.Y, dest.X, dest.Y}
}

// hedgeLookup provides O(1) lookup of a half-edge by its directed
// (origin, destination) coordinate pair, grounded on the teacher's
// EdgeLookup in conway/utils.go. findHedge's documented contract (linear
// scan, nil on miss) is unchanged from the caller's point of view; only
// the internal implementation is upgraded.
type hedgeLookup struct {
	m map[directedPairKey]*Hedge
}

func newHedgeLookup() *hedgeLookup {
	return &hedgeLookup{m: make(map[directedPairKey]*Hedge)}
}

func (l *hedgeLookup) add(h *Hedge) {
	l.m[keyOf(h.Origin, h.Destination())] = h
}

func (l *hedgeLookup) remove(h *Hedge) {
	delete(l.m, keyOf(h.Origin, h.Destination()))
}

func (l *hedgeLookup) find(ox, oy, dx, dy float64) *Hedge {
	return l.m[directedPairKey{ox, oy, dx, dy}]
}
