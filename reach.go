package walkshed

import (
	"container/heap"

	"github.com/pkg/errors"
)

// vertexDist is a priority queue entry of the bounded shortest-path search.
type vertexDist struct {
	id   int64
	dist float64
}

type vertexDistHeap []vertexDist

func (h vertexDistHeap) Len() int            { return len(h) }
func (h vertexDistHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h vertexDistHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *vertexDistHeap) Push(x interface{}) { *h = append(*h, x.(vertexDist)) }
func (h *vertexDistHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// reachableWithin computes the distance map of the bounded shortest-path tree
// rooted at the start vertex: vertex id to shortest walking distance, for
// every vertex whose distance does not exceed maxDistance. Dijkstra with an
// early cutoff: a vertex whose tentative distance would exceed the budget is
// never queued, and a finalized vertex is never revisited, so the stored
// value is the true shortest distance even when several paths reach the same
// vertex. Vertices absent from the map are not reachable within the budget.
// A start vertex without edges yields a map holding only the start at
// distance 0.
func (graph *roadGraph) reachableWithin(start int64, maxDistance float64) (map[int64]float64, error) {
	if start < 0 || start >= int64(len(graph.registry.coords)) {
		return nil, errors.Errorf("no such start vertex: %d", start)
	}
	distances := make(map[int64]float64)
	queue := &vertexDistHeap{{id: start, dist: 0}}
	heap.Init(queue)
	for queue.Len() != 0 {
		next := heap.Pop(queue).(vertexDist)
		if _, ok := distances[next.id]; ok {
			// Already finalized via a shorter path
			continue
		}
		distances[next.id] = next.dist
		for _, edge := range graph.adjacency[next.id] {
			if _, ok := distances[edge.target]; ok {
				continue
			}
			if alt := next.dist + edge.weight; alt <= maxDistance {
				heap.Push(queue, vertexDist{id: edge.target, dist: alt})
			}
		}
	}
	return distances, nil
}
