package dcel

import (
	"errors"
	"log"
)

// Logger receives the non-fatal diagnostics emitted by RemoveEdge and
// SplitEdge when asked to operate on an edge that doesn't exist. It is a
// package variable, not a DCEL field, so embedders can redirect it (or
// silence it by setting log.New(io.Discard, "", 0)) without threading a
// logger through every constructor.
var Logger = log.New(log.Writer(), "dcel: ", log.LstdFlags)

// Sentinel errors for lookup-miss conditions that are not contract bugs.
var (
	// ErrVertexNotFound reports that no vertex exists at the given
	// coordinates. FindVertex itself reports a miss by returning nil, not
	// this error.
	ErrVertexNotFound = errors.New("dcel: vertex not found")

	// ErrHedgeNotFound reports that no half-edge realizes the requested
	// directed pair. FindHedge, RemoveEdge and SplitEdge report a miss with
	// nil or false, not this error.
	ErrHedgeNotFound = errors.New("dcel: half-edge not found")
)

// TopologyError reports a violated topological precondition: a duplicate
// directed edge, a self-loop, or a broken cycle invariant discovered by
// Validate. These are contract bugs, not ordinary failures — the
// documented policy (see package doc and spec §7) is that mutation paths
// are all-or-nothing and a violation discovered mid-operation must never
// leave the DCEL half-updated. New and AddEdge validate preconditions
// before touching any linkage and panic with a TopologyError value on
// violation (RemoveEdge and SplitEdge never panic; a missing edge makes
// them return false); Recover (in safe.go) turns such a panic back into an
// error for callers that would rather not use panic/recover themselves.
type TopologyError struct {
	Op      string
	Message string
}

func (e TopologyError) Error() string {
	return "dcel: " + e.Op + ": " + e.Message
}

func fail(op, msg string) {
	panic(TopologyError{Op: op, Message: msg})
}

// Option configures a DCEL at construction time.
type Option func(*DCEL)

// WithParallelEdges relaxes the default "no duplicate directed edges"
// precondition so AddEdge may create a second edge between a pair of
// vertices that are already connected, instead of treating it as a
// TopologyError. The spec leaves this behavior as an open question for
// implementers to decide; this package's default (this option absent) is
// to reject, per the spec's stated preference — see DESIGN.md.
func WithParallelEdges() Option {
	return func(d *DCEL) { d.allowParallel = true }
}

// Vertex is a point in the plane together with the rotationally-ordered
// set of half-edges whose destination it is.
type Vertex struct {
	id       int
	X, Y     float64
	incident []*Hedge // destination(h) == this vertex, sorted by polar angle
}

// Hedge is one directed half of an undirected edge. Origin is where it
// starts; its destination is Twin.Origin. Next and Prev walk the boundary
// of the face on the half-edge's left side.
type Hedge struct {
	id     int
	Origin *Vertex
	Twin   *Hedge
	Next   *Hedge
	Prev   *Hedge
	Face   *Face
}

// Destination returns the vertex this half-edge points at (h.Twin.Origin).
func (h *Hedge) Destination() *Vertex {
	return h.Twin.Origin
}

// Face is a closed half-edge cycle bounding a connected region of the
// plane's complement of the edge set. Area, the materialized vertex list,
// and hole membership are computed lazily and cached until the
// corresponding dirty flag is raised by a mutation.
type Face struct {
	id    int
	Wedge *Hedge
	owner *DCEL

	area            float64
	areaValid       bool
	vertexList      []*Vertex
	vertexListDirty bool

	holes      []*Face
	holesDirty bool
}
