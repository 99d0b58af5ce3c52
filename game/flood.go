package game

import (
	"github.com/gammazero/deque"

	"github.com/they4kman/gosweep/util/collections"
)

type NeighborGetter func(Coordinates) []Coordinates

// Visitor handles a single cell of the flood, returning whether the flood
// should continue through its neighbours
type Visitor func(Coordinates) bool

// flood performs a breadth-first traversal from start. Each cell is visited
// at most once.
func flood(start Coordinates, visit Visitor, getNeighbors NeighborGetter) {
	visited := collections.NewSet(start)

	var visitQueue deque.Deque
	visitQueue.PushBack(start)

	for visitQueue.Len() > 0 {
		c := visitQueue.PopFront().(Coordinates)
		if !visit(c) {
			continue
		}

		for _, neighbor := range getNeighbors(c) {
			// Don't visit, if already visited
			if visited.Contains(neighbor) {
				continue
			}
			visited.Add(neighbor)
			visitQueue.PushBack(neighbor)
		}
	}
}
