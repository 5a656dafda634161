package walkshed

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Place is a single point of interest (a pedestrian crossing). Geometry is
// expected to be in planar EPSG:3857 meters by the time the pipeline runs.
type Place struct {
	ID   int // 1-based ordinal in the input collection
	Name string
	Geom orb.Point
}

// RoadSegment is one line feature of a road network. Parts holds a single
// line string for simple features and several for multi-part ones. Geometry
// may be rewritten by vertex snapping before graph construction; FID keeps
// the link to the original feature and its attributes for the whole lifetime
// of one place's processing.
type RoadSegment struct {
	FID   int
	Parts []orb.LineString
	Props map[string]interface{}
}

// Length returns planar length of the segment summed over all parts.
func (seg *RoadSegment) Length() float64 {
	total := 0.0
	for _, part := range seg.Parts {
		total += planar.Length(part)
	}
	return total
}

// Geometry returns the segment as a single orb geometry: a LineString for
// simple segments and a MultiLineString for multi-part ones.
func (seg *RoadSegment) Geometry() orb.Geometry {
	if len(seg.Parts) == 1 {
		return seg.Parts[0]
	}
	multi := make(orb.MultiLineString, len(seg.Parts))
	copy(multi, seg.Parts)
	return multi
}
