package dcel

import "fmt"

// Validate checks the structural invariants of a well-formed DCEL: twin
// involution, next/prev inverse, boundary consistency (Next.Face ==
// h.Face), rotational consistency (h.Prev.Twin sits at the same vertex as
// h), absence of duplicate directed edges, every incident half-edge ending
// at its vertex, and every face's boundary pointing back at that face. It
// does not check the angular sort order of incident lists or face areas.
// It returns the first
// violation found as a TopologyError, or nil if the DCEL is consistent.
// Unlike AddEdge/RemoveEdge/SplitEdge, Validate never panics — it's a
// read-only diagnostic, not a mutation precondition check.
func (d *DCEL) Validate() error {
	seen := make(map[directedPairKey]*Hedge, len(d.hedges))
	for _, h := range d.hedges {
		if h.Twin == nil || h.Twin.Twin != h {
			return TopologyError{Op: "Validate", Message: fmt.Sprintf("hedge %d: twin is not involutive", h.id)}
		}
		if h.Next == nil || h.Next.Prev != h {
			return TopologyError{Op: "Validate", Message: fmt.Sprintf("hedge %d: next/prev are not inverse", h.id)}
		}
		if h.Prev == nil || h.Prev.Next != h {
			return TopologyError{Op: "Validate", Message: fmt.Sprintf("hedge %d: prev/next are not inverse", h.id)}
		}
		if h.Origin == nil {
			return TopologyError{Op: "Validate", Message: fmt.Sprintf("hedge %d: has no origin", h.id)}
		}
		if h.Next.Face != h.Face {
			return TopologyError{Op: "Validate", Message: fmt.Sprintf("hedge %d: boundary is not face-consistent", h.id)}
		}
		if h.Prev.Destination() != h.Origin {
			return TopologyError{Op: "Validate", Message: fmt.Sprintf("hedge %d: prev does not terminate at its origin", h.id)}
		}

		key := keyOf(h.Origin, h.Destination())
		if dup, ok := seen[key]; ok && dup != h {
			return TopologyError{Op: "Validate", Message: fmt.Sprintf("duplicate directed edge at hedge %d and %d", dup.id, h.id)}
		}
		seen[key] = h
	}

	for _, v := range d.vertices {
		for _, h := range v.incident {
			if h.Destination() != v {
				return TopologyError{Op: "Validate", Message: fmt.Sprintf("vertex %d: incident hedge %d does not terminate here", v.id, h.id)}
			}
		}
	}

	for _, f := range d.faces {
		if f.Wedge == nil {
			return TopologyError{Op: "Validate", Message: fmt.Sprintf("face %d: has no boundary", f.id)}
		}
		for _, h := range f.boundary() {
			if h.Face != f {
				return TopologyError{Op: "Validate", Message: fmt.Sprintf("face %d: boundary hedge %d points to a different face", f.id, h.id)}
			}
		}
	}

	return nil
}

// Stats summarizes the subdivision's size: vertex, half-edge and face
// counts, with faces split into internal and external.
type Stats struct {
	Vertices      int
	Hedges        int
	Faces         int
	InternalFaces int
	ExternalFaces int
}

// Stats computes a Stats snapshot of the DCEL's current size.
func (d *DCEL) Stats() Stats {
	s := Stats{
		Vertices: len(d.vertices),
		Hedges:   len(d.hedges),
		Faces:    len(d.faces),
	}
	for _, f := range d.faces {
		if f.Internal() {
			s.InternalFaces++
		} else {
			s.ExternalFaces++
		}
	}
	return s
}

func (s Stats) String() string {
	return fmt.Sprintf("vertices=%d hedges=%d faces=%d (internal=%d external=%d)",
		s.Vertices, s.Hedges, s.Faces, s.InternalFaces, s.ExternalFaces)
}
