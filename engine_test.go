package walkshed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// starSegments is a star network around the origin: three spokes fully
// within the 400 m budget, one spoke crossing the boundary and one segment
// entirely beyond it.
func starSegments() []*RoadSegment {
	return []*RoadSegment{
		{FID: 0, Parts: []orb.LineString{{{0.0, 0.0}, {100.0, 0.0}}}, Props: map[string]interface{}{"street": "east"}},
		{FID: 1, Parts: []orb.LineString{{{0.0, 0.0}, {0.0, 200.0}}}},
		{FID: 2, Parts: []orb.LineString{{{0.0, 0.0}, {-300.0, 0.0}}}},
		{FID: 3, Parts: []orb.LineString{{{0.0, 0.0}, {0.0, -500.0}}}},
		{FID: 4, Parts: []orb.LineString{{{0.0, -500.0}, {0.0, -1500.0}}}},
	}
}

func TestReachableNetworkStar(t *testing.T) {
	engine := NewEngine(
		WithMaxDistance(400.0),
		WithSnapTolerance(1.0),
		WithLogger(discardLogger()),
	)
	place := Place{ID: 1, Name: "Center Crossing", Geom: orb.Point{5.0, 5.0}}

	features, err := engine.ReachableNetwork(place, starSegments(), "star.geojson")
	require.NoError(t, err)
	require.Len(t, features, 4)

	// Spokes of 100/200/300 m are fully included, in fid order
	for i, fid := range []int{0, 1, 2} {
		assert.Equal(t, fid, features[i].FID)
		line, ok := features[i].Geom.(orb.LineString)
		require.True(t, ok)
		assert.InDelta(t, float64((fid+1)*100), planar.Length(line), 1e-9)
	}
	assert.Equal(t, "east", features[0].Props["street"])

	// The 500 m spoke is truncated at exactly the budget
	truncated := features[3]
	assert.Equal(t, 3, truncated.FID)
	line, ok := truncated.Geom.(orb.LineString)
	require.True(t, ok)
	assert.InDelta(t, 400.0, planar.Length(line), 1e-9)
	assert.Equal(t, orb.Point{0.0, -400.0}, line[len(line)-1])

	// Center plus the three reachable spoke endpoints
	for _, feature := range features {
		assert.Equal(t, 4, feature.ReachableNodes)
		assert.Equal(t, 1, feature.CrossingID)
		assert.Equal(t, "Center Crossing", feature.CrossingName)
		assert.Equal(t, "star.geojson", feature.NetworkFile)
	}
}

func TestReachableNetworkDeterministic(t *testing.T) {
	engine := NewEngine(WithMaxDistance(400.0), WithLogger(discardLogger()))
	place := Place{ID: 1, Name: "Center", Geom: orb.Point{0.0, 0.0}}

	first, err := engine.ReachableNetwork(place, starSegments(), "star.geojson")
	require.NoError(t, err)
	second, err := engine.ReachableNetwork(place, starSegments(), "star.geojson")
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].FID, second[i].FID)
		assert.Equal(t, first[i].Geom, second[i].Geom)
	}
}

func TestReachableNetworkIsolatedStart(t *testing.T) {
	// Start vertex connected by a single short edge, everything else far away
	segments := []*RoadSegment{
		{FID: 0, Parts: []orb.LineString{{{0.0, 0.0}, {10.0, 0.0}}}},
		{FID: 1, Parts: []orb.LineString{{{5000.0, 0.0}, {5100.0, 0.0}}}},
	}
	engine := NewEngine(WithMaxDistance(400.0), WithLogger(discardLogger()))
	place := Place{ID: 1, Name: "Lonely", Geom: orb.Point{1.0, 1.0}}

	features, err := engine.ReachableNetwork(place, segments, "net.geojson")
	require.NoError(t, err)
	require.Len(t, features, 1)
	assert.Equal(t, 0, features[0].FID)
	assert.Equal(t, 2, features[0].ReachableNodes)
}

const placesGeoJSON = `{
	"type": "FeatureCollection",
	"features": [
		{"type": "Feature", "properties": {"name": "Main Crossing"}, "geometry": {"type": "Point", "coordinates": [0.0, 0.0]}},
		{"type": "Feature", "properties": {"name": "Ghost Crossing"}, "geometry": {"type": "Point", "coordinates": [10.0, 10.0]}}
	]
}`

const networkGeoJSON = `{
	"type": "FeatureCollection",
	"features": [
		{"type": "Feature", "properties": {"highway": "footway"}, "geometry": {"type": "LineString", "coordinates": [[0.0, 0.0], [0.001, 0.0]]}}
	]
}`

func TestRunSkipsPlaceWithoutNetwork(t *testing.T) {
	dir := t.TempDir()
	placesFile := filepath.Join(dir, "places.geojson")
	networkFile := filepath.Join(dir, "network.geojson")
	require.NoError(t, os.WriteFile(placesFile, []byte(placesGeoJSON), 0644))
	require.NoError(t, os.WriteFile(networkFile, []byte(networkGeoJSON), 0644))

	cfg := &Config{
		Places:         placesFile,
		DefaultNetwork: filepath.Join(dir, "missing.geojson"),
		MaxDistance:    100000.0,
		SnapTolerance:  1.0,
		Networks:       map[string]string{"Main Crossing": networkFile},
	}

	engine := NewEngine(
		WithMaxDistance(cfg.MaxDistance),
		WithSnapTolerance(cfg.SnapTolerance),
		WithLogger(discardLogger()),
	)
	features, err := engine.Run(cfg)
	require.NoError(t, err)

	// Only the first place has a network; the second is skipped gracefully
	require.Len(t, features, 1)
	assert.Equal(t, 1, features[0].CrossingID)
	assert.Equal(t, "Main Crossing", features[0].CrossingName)
	assert.Equal(t, networkFile, features[0].NetworkFile)
	assert.Equal(t, 2, features[0].ReachableNodes)
}

func TestRunEmptyResult(t *testing.T) {
	dir := t.TempDir()
	placesFile := filepath.Join(dir, "places.geojson")
	require.NoError(t, os.WriteFile(placesFile, []byte(placesGeoJSON), 0644))

	cfg := &Config{
		Places:         placesFile,
		DefaultNetwork: filepath.Join(dir, "missing.geojson"),
		MaxDistance:    400.0,
		SnapTolerance:  1.0,
	}

	engine := NewEngine(WithLogger(discardLogger()))
	_, err := engine.Run(cfg)
	assert.ErrorIs(t, err, ErrEmptyResult)
}
