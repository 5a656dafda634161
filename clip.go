package walkshed

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/paulmach/orb"
)

// clippedPart is the sub-segment of a boundary-crossing segment which is
// still within the walking budget.
type clippedPart struct {
	fid  int
	geom orb.LineString
}

// clipOutcome splits one place's edges into segments eligible for full
// inclusion and truncated partial geometries for edges straddling the cutoff.
type clipOutcome struct {
	fullFIDs []int
	partials []clippedPart
}

// clipAtBoundary partitions edges by how the distance map covers their
// endpoints. Both endpoints reachable: the owning segment joins the
// full-inclusion set in its entirety. Exactly one endpoint reachable: the
// original segment geometry is cut from its start to the remaining budget.
// The remaining distance is measured along the whole segment's own arc
// length, not along the crossing edge, so for multi-edge segments the clipped
// sub-segment is an approximation of the true walking boundary; this mirrors
// the upstream parameterization on purpose.
//
// A truncation failure skips only the affected edge.
func clipAtBoundary(graph *roadGraph, distances map[int64]float64, segments map[int]*RoadSegment, maxDistance float64, logger *log.Logger) clipOutcome {
	fullSet := make(map[int]struct{})
	partials := []clippedPart{}

	for _, edge := range graph.edges {
		sourceDist, sourceInside := distances[edge.source]
		targetDist, targetInside := distances[edge.target]

		switch {
		case sourceInside && targetInside:
			fullSet[edge.fid] = struct{}{}
		case sourceInside || targetInside:
			insideDist := sourceDist
			if !sourceInside {
				insideDist = targetDist
			}
			seg, ok := segments[edge.fid]
			if !ok {
				logger.Warn("Segment not found for boundary edge", "fid", edge.fid)
				continue
			}
			if len(seg.Parts) != 1 {
				logger.Warn("Can't truncate multi-part segment", "fid", edge.fid, "parts", len(seg.Parts))
				continue
			}
			remaining := maxDistance - insideDist
			if remaining <= 0 || remaining >= seg.Length() {
				continue
			}
			truncated, err := cutLineFromStart(seg.Parts[0], remaining)
			if err != nil {
				logger.Warn("Truncation failed", "fid", edge.fid, "err", err)
				continue
			}
			partials = append(partials, clippedPart{fid: edge.fid, geom: truncated})
		}
	}

	fullFIDs := make([]int, 0, len(fullSet))
	for fid := range fullSet {
		fullFIDs = append(fullFIDs, fid)
	}
	sort.Ints(fullFIDs)

	return clipOutcome{fullFIDs: fullFIDs, partials: partials}
}
