package walkshed

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/pkg/errors"
)

// pointOnSegment returns a point on given segment using distance
func pointOnSegment(p, q orb.Point, distance float64) orb.Point {
	fraction := distance / planar.Distance(p, q)
	return orb.Point{
		(1-fraction)*p.X() + fraction*q.X(),
		(1-fraction)*p.Y() + fraction*q.Y(),
	}
}

// cutLineFromStart returns the part of given line from its start (arc length 0)
// up to the requested arc length. If the requested length exceeds the line's
// length the whole line is returned.
func cutLineFromStart(line orb.LineString, distance float64) (orb.LineString, error) {
	if len(line) < 2 {
		return nil, errors.Errorf("line must contain at least 2 points, got %d", len(line))
	}
	if distance <= 0 {
		return nil, errors.Errorf("cut distance must be positive, got %f", distance)
	}
	result := orb.LineString{line[0]}
	walked := 0.0
	for i := 1; i < len(line); i++ {
		dist := planar.Distance(line[i-1], line[i])
		if walked+dist >= distance {
			result = append(result, pointOnSegment(line[i-1], line[i], distance-walked))
			return result, nil
		}
		walked += dist
		result = append(result, line[i])
	}
	return result, nil
}
