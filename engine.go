package walkshed

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

// Engine runs the reachability pipeline for a set of crossings against their
// road networks and accumulates the output rows in place order.
type Engine struct {
	maxDistance   float64
	snapTolerance float64
	logger        *log.Logger
}

func (engine *Engine) String() string {
	return fmt.Sprintf(`
Walkshed engine parameters:
	max_distance: %f
	snap_tolerance: %f
	`,
		engine.maxDistance,
		engine.snapTolerance,
	)
}

// NewEngine returns an engine with the default walking budget and snap
// tolerance; both can be overridden via options.
func NewEngine(options ...func(*Engine)) *Engine {
	engine := &Engine{
		maxDistance:   DefaultMaxDistance,
		snapTolerance: DefaultSnapTolerance,
		logger:        log.New(os.Stderr),
	}
	for _, option := range options {
		option(engine)
	}
	return engine
}

func WithMaxDistance(maxDistance float64) func(*Engine) {
	return func(engine *Engine) {
		if maxDistance > 0 {
			engine.maxDistance = maxDistance
		}
	}
}

func WithSnapTolerance(snapTolerance float64) func(*Engine) {
	return func(engine *Engine) {
		if snapTolerance > 0 {
			engine.snapTolerance = snapTolerance
		}
	}
}

func WithLogger(logger *log.Logger) func(*Engine) {
	return func(engine *Engine) {
		if logger != nil {
			engine.logger = logger
		}
	}
}

// ReachableNetwork computes one place's reachable portion of its road
// network: build the graph with snapping, locate the start vertex nearest to
// the place, run the bounded shortest-path search and clip the edges which
// straddle the budget. Segment geometries are rewritten by snapping, so
// callers must pass a freshly loaded network.
//
// ErrEmptyGraph and ErrNoNearestNode mean the place should be skipped.
func (engine *Engine) ReachableNetwork(place Place, segments []*RoadSegment, networkFile string) ([]ReachableFeature, error) {
	graph, err := buildRoadGraph(segments, engine.snapTolerance)
	if err != nil {
		return nil, err
	}
	engine.logger.Debug("Graph built", "place", place.Name, "vertices", graph.numVertices(), "edges", graph.numEdges())

	index, err := newNearestIndex(graph)
	if err != nil {
		return nil, err
	}
	start, ok := index.nearestVertex(place.Geom)
	if !ok {
		return nil, ErrNoNearestNode
	}
	engine.logger.Debug("Start vertex found", "place", place.Name, "vertex", start, "coord", graph.vertexCoord(start))

	distances, err := graph.reachableWithin(start, engine.maxDistance)
	if err != nil {
		return nil, errors.Wrap(err, "Can't compute reachability")
	}
	engine.logger.Info("Reachable vertices found", "place", place.Name, "count", len(distances), "max_distance", engine.maxDistance)

	byFID := make(map[int]*RoadSegment, len(segments))
	for _, seg := range segments {
		byFID[seg.FID] = seg
	}

	outcome := clipAtBoundary(graph, distances, byFID, engine.maxDistance, engine.logger)
	features := assembleResult(place, networkFile, byFID, outcome, len(distances))
	engine.logger.Info("Place processed", "place", place.Name, "full", len(outcome.fullFIDs), "partial", len(outcome.partials), "rows", len(features))
	return features, nil
}

// Run processes every place from the configuration sequentially and
// concatenates the per-place rows. A place whose network file is missing or
// whose pipeline reports a skip condition contributes zero rows and does not
// affect the others. ErrEmptyResult is returned when no place produced
// output.
func (engine *Engine) Run(cfg *Config) ([]ReachableFeature, error) {
	engine.logger.Debug(engine.String())

	places, err := LoadPlaces(cfg.Places)
	if err != nil {
		return nil, errors.Wrap(err, "Can't load places")
	}
	engine.logger.Info("Places loaded", "count", len(places), "file", cfg.Places)

	allReachable := []ReachableFeature{}
	for _, place := range places {
		networkFile := cfg.NetworkFor(place.Name)
		engine.logger.Info("Processing place", "place", place.Name, "network", networkFile)

		segments, err := LoadNetwork(networkFile)
		if err != nil {
			engine.logger.Warn("Skipping place: road network unavailable", "place", place.Name, "network", networkFile, "err", err)
			continue
		}
		features, err := engine.ReachableNetwork(place, segments, networkFile)
		if err != nil {
			engine.logger.Warn("Skipping place", "place", place.Name, "err", err)
			continue
		}
		if len(features) == 0 {
			engine.logger.Warn("No reachable segments for place", "place", place.Name)
			continue
		}
		allReachable = append(allReachable, features...)
	}

	if len(allReachable) == 0 {
		return nil, ErrEmptyResult
	}
	return allReachable, nil
}
