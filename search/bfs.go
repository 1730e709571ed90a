// SPDX-License-Identifier: MIT

package search

import "github.com/katalvlaran/navgraph/container"

// BreadthFirst searches with a FIFO frontier. Nodes are marked visited when
// enqueued and counted as explored when dequeued. The path has the fewest
// edges; its distance is summed with EdgeWeight afterwards and is not
// necessarily minimal on weighted graphs.
func (s *Searcher) BreadthFirst(start, goal int) Result {
	w, ok := s.begin(start, goal)
	if !ok {
		return s.notFound(BreadthFirst)
	}
	visited := fill(w.g.NodeCount(), false)
	queue := container.NewQueue[int](0)
	w.startClock()

	queue.Enqueue(w.start)
	visited.Put(w.start, true)
	for !queue.IsEmpty() {
		cur, _ := queue.Front()
		queue.Dequeue()
		w.explore(cur)

		if cur == w.goal {
			p := w.path()
			return w.found(BreadthFirst, p, w.summedDistance(p))
		}

		for e := range w.g.AdjacencyAt(cur).All() {
			next := w.destination(e)
			if !visited.Get(next) {
				visited.Put(next, true)
				w.parent.Put(next, cur)
				queue.Enqueue(next)
			}
		}
	}

	return w.exhausted(BreadthFirst)
}
