// SPDX-License-Identifier: MIT

package search

// BestFirst is a greedy search ordered by the Euclidean distance to the goal
// alone; accumulated cost plays no part. A node is visited on its first pop
// and takes its parent from that entry. Unvisited neighbours are pushed with
// a fresh heuristic every time they are seen, so one node may be queued
// several times. The distance is summed with EdgeWeight afterwards.
func (s *Searcher) BestFirst(start, goal int) Result {
	w, ok := s.begin(start, goal)
	if !ok {
		return s.notFound(BestFirst)
	}
	visited := fill(w.g.NodeCount(), false)
	h := w.goalDistance()
	open := newFrontier(byHeuristic, w.g)
	w.startClock()

	open.Push(frontierItem{pos: w.start, parent: noParent, h: h(w.start)})
	for !open.IsEmpty() {
		cur, _ := open.Top()
		open.Pop()
		if visited.Get(cur.pos) {
			continue
		}
		visited.Put(cur.pos, true)
		w.parent.Put(cur.pos, cur.parent)
		w.explore(cur.pos)

		if cur.pos == w.goal {
			p := w.path()
			return w.found(BestFirst, p, w.summedDistance(p))
		}

		for e := range w.g.AdjacencyAt(cur.pos).All() {
			next := w.destination(e)
			if !visited.Get(next) {
				open.Push(frontierItem{pos: next, parent: cur.pos, h: h(next)})
			}
		}
	}

	return w.exhausted(BestFirst)
}
