package walkshed

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triangleSegments is a cyclic network: two legs via an intermediate vertex
// plus a direct diagonal, so the far corner is reachable over two paths of
// different length.
func triangleSegments() []*RoadSegment {
	return []*RoadSegment{
		{FID: 0, Parts: []orb.LineString{{{0.0, 0.0}, {100.0, 0.0}}}},
		{FID: 1, Parts: []orb.LineString{{{100.0, 0.0}, {100.0, 100.0}}}},
		{FID: 2, Parts: []orb.LineString{{{0.0, 0.0}, {100.0, 100.0}}}},
	}
}

func TestReachableWithinShortestOnCycle(t *testing.T) {
	graph, err := buildRoadGraph(triangleSegments(), 1.0)
	require.NoError(t, err)

	start, _ := graph.registry.snap(orb.Point{0.0, 0.0})
	corner, _ := graph.registry.snap(orb.Point{100.0, 100.0})
	middle, _ := graph.registry.snap(orb.Point{100.0, 0.0})

	distances, err := graph.reachableWithin(start, 400.0)
	require.NoError(t, err)
	require.Len(t, distances, 3)

	// The diagonal (~141.42 m) must win over the 200 m path via the middle
	// vertex, regardless of relaxation order.
	assert.InDelta(t, 100.0*math.Sqrt2, distances[corner], 1e-9)
	assert.InDelta(t, 100.0, distances[middle], 1e-9)
	assert.InDelta(t, 0.0, distances[start], 1e-9)
}

func TestReachableWithinCutoffOnCycle(t *testing.T) {
	graph, err := buildRoadGraph(triangleSegments(), 1.0)
	require.NoError(t, err)

	start, _ := graph.registry.snap(orb.Point{0.0, 0.0})
	corner, _ := graph.registry.snap(orb.Point{100.0, 100.0})

	// Budget between the diagonal and the two-leg path: the corner stays
	// reachable at the diagonal distance, nothing is recorded beyond budget.
	distances, err := graph.reachableWithin(start, 150.0)
	require.NoError(t, err)
	require.Len(t, distances, 3)
	assert.InDelta(t, 100.0*math.Sqrt2, distances[corner], 1e-9)
	for id, dist := range distances {
		assert.LessOrEqual(t, dist, 150.0, "vertex %d beyond cutoff must not be finalized", id)
	}
}

func TestReachableWithinStartWithoutEdges(t *testing.T) {
	graph, err := buildRoadGraph(triangleSegments(), 1.0)
	require.NoError(t, err)

	// Register a vertex which is incident to no edge
	isolated, _ := graph.registry.snap(orb.Point{5000.0, 5000.0})
	distances, err := graph.reachableWithin(isolated, 400.0)
	require.NoError(t, err)
	require.Len(t, distances, 1)
	assert.Equal(t, 0.0, distances[isolated])
}

func TestReachableWithinUnknownStart(t *testing.T) {
	graph, err := buildRoadGraph(triangleSegments(), 1.0)
	require.NoError(t, err)

	_, err = graph.reachableWithin(9999, 400.0)
	assert.Error(t, err)
}
