package dcel

import (
	"sort"

	"github.com/sksmith/dcel/geom"
)

// point returns the vertex's coordinates as a geom.Point.
func (v *Vertex) point() geom.Point { return geom.Point{X: v.X, Y: v.Y} }

// sortIncident stably sorts v.incident by the polar angle, from v, to the
// far endpoint of each incident edge. Every half-edge in v.incident has v
// itself as its destination, so the far endpoint is its Origin, not its
// Destination. The sort must be stable so that colinear incident edges
// (identical polar angle) keep their insertion order — addEdge's splice
// logic indexes into this list immediately after sorting and relies on
// that determinism.
func (v *Vertex) sortIncident() {
	origin := v.point()
	sort.SliceStable(v.incident, func(i, j int) bool {
		ai := geom.PolarAngle(origin, v.incident[i].Origin.point())
		aj := geom.PolarAngle(origin, v.incident[j].Origin.point())
		return ai < aj
	})
}

// indexOfIncident returns the position of h within v.incident, or -1 if
// absent. v.incident is small in practice (vertex degree), so a linear
// scan is simpler and fast enough rather than maintaining a side index.
func (v *Vertex) indexOfIncident(h *Hedge) int {
	for i, e := range v.incident {
		if e == h {
			return i
		}
	}
	return -1
}

// removeIncident deletes h from v.incident and relinks the angular
// neighbors across the gap it leaves, per spec §4.5.3 step 3. It reports
// whether the vertex's incident set is now empty (the caller must then
// dispose the vertex rather than attempt to relink).
func (v *Vertex) removeIncident(h *Hedge) (emptied bool) {
	k := len(v.incident)
	idx := v.indexOfIncident(h)
	if idx < 0 {
		return k == 0
	}
	if k == 1 {
		v.incident = nil
		return true
	}

	prev := v.incident[(idx-1+k)%k]
	next := v.incident[(idx+1)%k]
	next.Next = prev.Twin
	prev.Twin.Prev = next

	v.incident = append(v.incident[:idx], v.incident[idx+1:]...)
	return false
}

// dispose clears the vertex's incident list. The caller is responsible for
// removing v from the owning DCEL's vertex collection.
func (v *Vertex) dispose() {
	v.incident = nil
}
