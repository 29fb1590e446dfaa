package dcel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sksmith/dcel/dcel"
)

func triangle() *dcel.DCEL {
	return dcel.New(
		[][2]float64{{0, 0}, {1, 0}, {0, 1}},
		[][2]int{{0, 1}, {1, 2}, {2, 0}},
	)
}

func TestNew(t *testing.T) {
	t.Run("Triangle", func(t *testing.T) {
		d := triangle()
		stats := d.Stats()
		assert.Equal(t, 3, stats.Vertices)
		assert.Equal(t, 6, stats.Hedges)
		assert.Equal(t, 2, stats.Faces)
		assert.Equal(t, 1, stats.InternalFaces)
		assert.Equal(t, 1, stats.ExternalFaces)
		require.NoError(t, d.Validate())
	})

	t.Run("Square", func(t *testing.T) {
		d := dcel.New(
			[][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
			[][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
		)
		stats := d.Stats()
		assert.Equal(t, 4, stats.Vertices)
		assert.Equal(t, 8, stats.Hedges)
		assert.Equal(t, 2, stats.Faces)
		require.NoError(t, d.Validate())
	})

	t.Run("UnknownVertexIndexPanics", func(t *testing.T) {
		assert.Panics(t, func() {
			dcel.New([][2]float64{{0, 0}, {1, 0}}, [][2]int{{0, 5}})
		})
	})

	t.Run("SelfLoopPanics", func(t *testing.T) {
		assert.Panics(t, func() {
			dcel.New([][2]float64{{0, 0}}, [][2]int{{0, 0}})
		})
	})

	t.Run("DuplicateEdgeRejectedByDefault", func(t *testing.T) {
		assert.Panics(t, func() {
			dcel.New([][2]float64{{0, 0}, {1, 0}}, [][2]int{{0, 1}, {0, 1}})
		})
	})

	t.Run("DuplicateEdgeAllowedWithOption", func(t *testing.T) {
		assert.NotPanics(t, func() {
			dcel.New([][2]float64{{0, 0}, {1, 0}}, [][2]int{{0, 1}, {0, 1}}, dcel.WithParallelEdges())
		})
	})
}

func TestAddEdge(t *testing.T) {
	t.Run("PendantFromExistingVertex", func(t *testing.T) {
		d := triangle()
		d.AddEdge(0, 0, 1, 1)

		stats := d.Stats()
		assert.Equal(t, 4, stats.Vertices)
		assert.Equal(t, 8, stats.Hedges)
		assert.Equal(t, 2, stats.Faces)
		require.NoError(t, d.Validate())
	})

	t.Run("BetweenTwoNewVertices", func(t *testing.T) {
		d := triangle()
		d.AddEdge(5, 5, 6, 6)

		stats := d.Stats()
		assert.Equal(t, 5, stats.Vertices)
		assert.Equal(t, 8, stats.Hedges)
		assert.Equal(t, 3, stats.Faces, "a disjoint pendant edge introduces exactly one new face")
		require.NoError(t, d.Validate())
	})

	t.Run("ChordSplitsExistingFace", func(t *testing.T) {
		d := dcel.New(
			[][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
			[][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
		)
		d.AddEdge(0, 0, 1, 1)

		stats := d.Stats()
		assert.Equal(t, 4, stats.Vertices)
		assert.Equal(t, 10, stats.Hedges)
		assert.Equal(t, 3, stats.Faces, "a chord between two existing vertices of the same face splits it in two")
		require.NoError(t, d.Validate())
	})

	t.Run("SelfLoopPanics", func(t *testing.T) {
		d := triangle()
		assert.Panics(t, func() {
			d.AddEdge(0, 0, 0, 0)
		})
	})

	t.Run("DuplicateRejectedByDefault", func(t *testing.T) {
		d := triangle()
		assert.Panics(t, func() {
			d.AddEdge(0, 0, 1, 0)
		})
	})
}

func TestRemoveEdge(t *testing.T) {
	t.Run("MissingEdgeReturnsFalse", func(t *testing.T) {
		d := triangle()
		ok := d.RemoveEdge(9, 9, 10, 10)
		assert.False(t, ok)
		require.NoError(t, d.Validate())
	})

	t.Run("PendantRoundTrip", func(t *testing.T) {
		d := triangle()
		d.AddEdge(0, 0, 1, 1)
		before := d.Stats()

		ok := d.RemoveEdge(0, 0, 1, 1)
		require.True(t, ok)

		after := d.Stats()
		assert.Equal(t, before.Vertices-1, after.Vertices)
		assert.Equal(t, before.Hedges-2, after.Hedges)
		assert.Equal(t, before.Faces-0, after.Faces, "removing a pendant restores the face it was absorbed into")
		require.NoError(t, d.Validate())

		assert.Nil(t, d.FindVertex(1, 1))
	})

	t.Run("ChordRoundTrip", func(t *testing.T) {
		d := dcel.New(
			[][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
			[][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
		)
		d.AddEdge(0, 0, 1, 1)
		require.Equal(t, 3, d.Stats().Faces)

		ok := d.RemoveEdge(0, 0, 1, 1)
		require.True(t, ok)
		assert.Equal(t, 2, d.Stats().Faces)
		require.NoError(t, d.Validate())
	})
}

func TestSplitEdge(t *testing.T) {
	t.Run("PreservesFaceIdentityAndCount", func(t *testing.T) {
		d := triangle()
		before := d.Stats()

		ok := d.SplitEdge(0, 0, 1, 0, 0.5, 0)
		require.True(t, ok)

		after := d.Stats()
		assert.Equal(t, before.Vertices+1, after.Vertices)
		assert.Equal(t, before.Hedges+2, after.Hedges)
		assert.Equal(t, before.Faces, after.Faces)
		require.NoError(t, d.Validate())

		assert.NotNil(t, d.FindVertex(0.5, 0))
		assert.NotNil(t, d.FindHedge(0, 0, 0.5, 0))
		assert.NotNil(t, d.FindHedge(0.5, 0, 1, 0))
		assert.Nil(t, d.FindHedge(0, 0, 1, 0), "the original directed edge no longer exists after the split")
	})

	t.Run("MissingEdgeReturnsFalse", func(t *testing.T) {
		d := triangle()
		ok := d.SplitEdge(9, 9, 10, 10, 9.5, 9.5)
		assert.False(t, ok)
	})
}

func TestFindHedgeAsymmetry(t *testing.T) {
	d := triangle()
	forward := d.FindHedge(0, 0, 1, 0)
	backward := d.FindHedge(1, 0, 0, 0)
	require.NotNil(t, forward)
	require.NotNil(t, backward)
	assert.NotSame(t, forward, backward)
	assert.Same(t, forward, backward.Twin)
}

func TestInternalExternalFaces(t *testing.T) {
	d := triangle()
	internal := d.InternalFaces()
	external := d.ExternalFaces()
	require.Len(t, internal, 1)
	require.Len(t, external, 1)
	assert.InDelta(t, 0.5, internal[0].Area(), 1e-9)
}

func TestDispose(t *testing.T) {
	d := triangle()
	d.Dispose()
	assert.Empty(t, d.Vertices())
	assert.Empty(t, d.Hedges())
	assert.Empty(t, d.Faces())
}
