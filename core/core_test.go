package core_test

import (
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/eegmst/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddEdge_Validation covers each rejected edge shape.
func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())

	_, err := g.AddEdge("", "B", 1)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.AddEdge("A", "A", 1)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge("A", "B", math.NaN())
	assert.ErrorIs(t, err, core.ErrBadWeight)

	_, err = g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "A", 2)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	unweighted := core.NewGraph()
	_, err = unweighted.AddEdge("A", "B", 0.5)
	assert.ErrorIs(t, err, core.ErrBadWeight)
	_, err = unweighted.AddEdge("A", "B", 0)
	assert.NoError(t, err)
}

// TestVertices_InsertionOrder verifies vertices keep the order they were added in.
func TestVertices_InsertionOrder(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	for _, id := range []string{"Fp1", "Cz", "A"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddVertex("Cz")) // idempotent
	_, err := g.AddEdge("Cz", "Z", 0.25)
	require.NoError(t, err)

	assert.Equal(t, []string{"Fp1", "Cz", "A", "Z"}, g.Vertices())
	assert.Equal(t, 4, g.VertexCount())
	assert.True(t, g.HasVertex("Z"))
	assert.False(t, g.HasVertex(""))
}

// TestNeighbors_SortedAndMirrored checks that undirected edges are visible from both ends.
func TestNeighbors_SortedAndMirrored(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("B", "A", 1)
	_, _ = g.AddEdge("D", "B", 3)

	ids, err := g.NeighborIDs("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D"}, ids)

	ids, err = g.NeighborIDs("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, ids)

	deg, err := g.Degree("B")
	require.NoError(t, err)
	assert.Equal(t, 3, deg)

	_, err = g.Degree("Q")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Neighbors("Q")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	nbrs, err := g.Neighbors("A")
	require.NoError(t, err)
	require.NotEmpty(t, nbrs)
	assert.Equal(t, "B", nbrs[0].Other("A"))
	assert.Equal(t, "A", nbrs[0].Other("B"))
}

// TestEdges_CreationOrder verifies Edges() enumerates e1, e2, ... e10 numerically.
func TestEdges_CreationOrder(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	for i := 0; i < 11; i++ {
		_, err := g.AddEdge("hub", string(rune('a'+i)), float64(i))
		require.NoError(t, err)
	}
	edges := g.Edges()
	require.Len(t, edges, 11)
	assert.Equal(t, "e1", edges[0].ID)
	assert.Equal(t, "e10", edges[9].ID)
	assert.Equal(t, "e11", edges[10].ID)
	assert.Equal(t, 11, g.EdgeCount())
}

// TestConcurrentReads exercises read locks from many goroutines.
func TestConcurrentReads(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 1)

	var wg sync.WaitGroup
	errs := make(chan error, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := g.NeighborIDs("B"); err != nil {
				errs <- err
			}
			_ = g.Edges()
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
