package walkshed

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/quadtree"
	"github.com/pkg/errors"
)

// indexedVertex makes a graph vertex addressable by the quadtree.
type indexedVertex struct {
	id int64
	pt orb.Point
}

func (v indexedVertex) Point() orb.Point {
	return v.pt
}

// nearestIndex answers "nearest graph vertex to an arbitrary point" queries.
// Only vertices incident to at least one edge are indexed, since an isolated
// vertex can't be a start of any walk.
type nearestIndex struct {
	tree *quadtree.Quadtree
}

func newNearestIndex(graph *roadGraph) (*nearestIndex, error) {
	if len(graph.adjacency) == 0 {
		return nil, ErrNoNearestNode
	}
	var bound orb.Bound
	first := true
	for id := range graph.adjacency {
		pt := graph.vertexCoord(id)
		if first {
			bound = orb.Bound{Min: pt, Max: pt}
			first = false
			continue
		}
		bound = bound.Extend(pt)
	}
	tree := quadtree.New(bound.Pad(1))
	for id := range graph.adjacency {
		vertex := indexedVertex{id: id, pt: graph.vertexCoord(id)}
		if err := tree.Add(vertex); err != nil {
			return nil, errors.Wrapf(err, "Can't index vertex %d", vertex.id)
		}
	}
	return &nearestIndex{tree: tree}, nil
}

// nearestVertex resolves the nearest vertex id for given point. The second
// return value reports whether a vertex could be resolved at all.
func (index *nearestIndex) nearestVertex(pt orb.Point) (int64, bool) {
	found := index.tree.Find(pt)
	if found == nil {
		return 0, false
	}
	vertex, ok := found.(indexedVertex)
	if !ok {
		return 0, false
	}
	return vertex.id, true
}
