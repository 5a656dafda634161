package walkshed

import (
	"github.com/paulmach/orb"
)

// ReachableFeature is one output row: a fully reachable segment or a
// truncated sub-segment, annotated with provenance of the place it was
// computed for. Geometry stays in planar EPSG:3857 until export.
type ReachableFeature struct {
	FID            int
	Geom           orb.Geometry
	Props          map[string]interface{}
	CrossingID     int
	CrossingName   string
	NetworkFile    string
	ReachableNodes int
}

// assembleResult merges full-inclusion segments and clipped partials into one
// place's output rows. Full segments come first in fid order and carry the
// original feature attributes; partials follow in edge order with geometry
// only. An empty outcome yields zero rows.
func assembleResult(place Place, networkFile string, segments map[int]*RoadSegment, outcome clipOutcome, reachableNodes int) []ReachableFeature {
	features := make([]ReachableFeature, 0, len(outcome.fullFIDs)+len(outcome.partials))

	for _, fid := range outcome.fullFIDs {
		seg, ok := segments[fid]
		if !ok {
			continue
		}
		features = append(features, ReachableFeature{
			FID:            fid,
			Geom:           seg.Geometry(),
			Props:          seg.Props,
			CrossingID:     place.ID,
			CrossingName:   place.Name,
			NetworkFile:    networkFile,
			ReachableNodes: reachableNodes,
		})
	}

	for _, partial := range outcome.partials {
		features = append(features, ReachableFeature{
			FID:            partial.fid,
			Geom:           partial.geom,
			CrossingID:     place.ID,
			CrossingName:   place.Name,
			NetworkFile:    networkFile,
			ReachableNodes: reachableNodes,
		})
	}

	return features
}
