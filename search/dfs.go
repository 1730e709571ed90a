// SPDX-License-Identifier: MIT

package search

import "github.com/katalvlaran/navgraph/container"

// DepthFirst searches with an explicit stack. A node is marked visited and
// counted as explored when popped, so it may sit on the stack several times.
// Neighbours are pushed in adjacency order, and every push of an unvisited
// neighbour overwrites its parent. The path found is not necessarily the
// shortest; its distance is summed with EdgeWeight afterwards.
func (s *Searcher) DepthFirst(start, goal int) Result {
	w, ok := s.begin(start, goal)
	if !ok {
		return s.notFound(DepthFirst)
	}
	n := w.g.NodeCount()
	visited := fill(n, false)
	stack := container.NewArray[int](0)
	w.startClock()

	stack.PushBack(w.start)
	for !stack.IsEmpty() {
		cur, _ := stack.Back()
		stack.PopBack()
		if visited.Get(cur) {
			continue
		}
		visited.Put(cur, true)
		w.explore(cur)

		if cur == w.goal {
			p := w.path()
			return w.found(DepthFirst, p, w.summedDistance(p))
		}

		for e := range w.g.AdjacencyAt(cur).All() {
			next := w.destination(e)
			if !visited.Get(next) {
				w.parent.Put(next, cur)
				stack.PushBack(next)
			}
		}
	}

	return w.exhausted(DepthFirst)
}
