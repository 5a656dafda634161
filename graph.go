package walkshed

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// vertexRegistry assigns a stable int64 id to every canonical vertex
// coordinate. A coordinate within the snap tolerance of an already registered
// vertex is merged onto it, which repairs near-touching geometries before the
// graph is built. Lookup is done through a uniform grid with cell size equal
// to the tolerance, so only the 3x3 cell neighborhood has to be scanned.
type vertexRegistry struct {
	tolerance float64
	cells     map[gridCell][]int64
	coords    []orb.Point
}

type gridCell struct {
	x int64
	y int64
}

func newVertexRegistry(tolerance float64) *vertexRegistry {
	if tolerance <= 0 {
		// Exact coordinate equality only
		tolerance = 1e-9
	}
	return &vertexRegistry{
		tolerance: tolerance,
		cells:     make(map[gridCell][]int64),
	}
}

func (registry *vertexRegistry) cellOf(pt orb.Point) gridCell {
	return gridCell{
		x: int64(math.Floor(pt.X() / registry.tolerance)),
		y: int64(math.Floor(pt.Y() / registry.tolerance)),
	}
}

// snap returns the id and the canonical coordinate for given point. The point
// is registered as a new vertex if no canonical vertex lies within tolerance.
func (registry *vertexRegistry) snap(pt orb.Point) (int64, orb.Point) {
	cell := registry.cellOf(pt)
	bestID := int64(-1)
	bestDist := registry.tolerance
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			neighbor := gridCell{x: cell.x + dx, y: cell.y + dy}
			for _, id := range registry.cells[neighbor] {
				dist := planar.Distance(pt, registry.coords[id])
				if dist <= bestDist {
					bestDist = dist
					bestID = id
				}
			}
		}
	}
	if bestID >= 0 {
		return bestID, registry.coords[bestID]
	}
	id := int64(len(registry.coords))
	registry.coords = append(registry.coords, pt)
	registry.cells[cell] = append(registry.cells[cell], id)
	return id, pt
}

// graphEdge is an unordered pair of vertex ids with its planar weight and a
// back-reference to the owning road segment.
type graphEdge struct {
	source int64
	target int64
	weight float64
	fid    int
}

// halfEdge is one directed half of an undirected edge in the adjacency list.
type halfEdge struct {
	target int64
	weight float64
}

type edgeKey struct {
	a int64
	b int64
}

func newEdgeKey(u, v int64) edgeKey {
	if v < u {
		u, v = v, u
	}
	return edgeKey{a: u, b: v}
}

// roadGraph is the undirected weighted graph built from one place's road
// network. The adjacency list drives the shortest-path search; edges keep
// insertion order so downstream output is deterministic.
type roadGraph struct {
	registry  *vertexRegistry
	adjacency map[int64][]halfEdge
	edges     []graphEdge
	edgeIdx   map[edgeKey]int
}

// buildRoadGraph snaps all segment geometries onto the shared vertex registry
// and derives one edge per consecutive coordinate pair. Segment geometries are
// rewritten in place with the snapped coordinates, since the clipper later
// measures remaining distance along the snapped geometry.
//
// If two different segments contribute an identical vertex pair, only the
// latest fid is retained for that edge. The source topology is a planar graph
// with coordinate equality as connectivity, so parallel edges are not
// supported; this is a known precision limitation.
func buildRoadGraph(segments []*RoadSegment, tolerance float64) (*roadGraph, error) {
	graph := &roadGraph{
		registry:  newVertexRegistry(tolerance),
		adjacency: make(map[int64][]halfEdge),
		edgeIdx:   make(map[edgeKey]int),
	}

	for _, seg := range segments {
		for i, part := range seg.Parts {
			snapped := make(orb.LineString, len(part))
			for j, pt := range part {
				_, canonical := graph.registry.snap(pt)
				snapped[j] = canonical
			}
			seg.Parts[i] = snapped
		}
	}

	for _, seg := range segments {
		for _, part := range seg.Parts {
			for i := 1; i < len(part); i++ {
				u, _ := graph.registry.snap(part[i-1])
				v, _ := graph.registry.snap(part[i])
				if u == v {
					// Consecutive points collapsed by snapping
					continue
				}
				graph.addEdge(u, v, planar.Distance(part[i-1], part[i]), seg.FID)
			}
		}
	}

	if len(graph.edges) == 0 {
		return nil, ErrEmptyGraph
	}
	return graph, nil
}

// addEdge inserts an undirected edge. Insertion is idempotent on the
// unordered vertex pair: a duplicate pair only updates the stored fid.
func (graph *roadGraph) addEdge(u, v int64, weight float64, fid int) {
	key := newEdgeKey(u, v)
	if idx, ok := graph.edgeIdx[key]; ok {
		graph.edges[idx].fid = fid
		return
	}
	graph.adjacency[u] = append(graph.adjacency[u], halfEdge{target: v, weight: weight})
	graph.adjacency[v] = append(graph.adjacency[v], halfEdge{target: u, weight: weight})
	graph.edgeIdx[key] = len(graph.edges)
	graph.edges = append(graph.edges, graphEdge{source: u, target: v, weight: weight, fid: fid})
}

func (graph *roadGraph) vertexCoord(id int64) orb.Point {
	return graph.registry.coords[id]
}

func (graph *roadGraph) numVertices() int {
	return len(graph.adjacency)
}

func (graph *roadGraph) numEdges() int {
	return len(graph.edges)
}
