package walkshed

import (
	"github.com/pkg/errors"
)

// Conditions which skip a single place (or the final export) without
// aborting the run. Callers match them with errors.Is / errors.Cause.
var (
	// ErrEmptyGraph is reported when no edge can be derived from the input lines.
	ErrEmptyGraph = errors.New("no edges derivable from road network")
	// ErrNoNearestNode is reported when the spatial index can't resolve a start vertex.
	ErrNoNearestNode = errors.New("no nearest graph vertex")
	// ErrMissingNetwork is reported when the road network file for a place is unavailable.
	ErrMissingNetwork = errors.New("road network unavailable")
	// ErrEmptyResult is reported when no place produced any output rows.
	ErrEmptyResult = errors.New("no reachable lines computed")
)
