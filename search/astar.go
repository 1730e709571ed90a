// SPDX-License-Identifier: MIT

//
// File: astar.go
// Role: A* over f = g + h with a g-score table and an in-open flag.
// Policy:
//   - A neighbour is relaxed only when the tentative g strictly improves its
//     g-score; the improvement always updates g-score and parent.
//   - An improved neighbour is pushed only when it is not already queued. A
//     queued entry keeps the priority it was pushed with.
//   - Every pop clears the node's in-open flag, counts it as explored and
//     expands it from its current g-score.
//   - The search stops when the goal is popped; the result distance is its
//     g-score.
//   - Negative cycles reachable from the start keep improving g-scores and the
//     search does not terminate.

package search

// AStar returns a path guided by the Euclidean heuristic. A queued node is
// not re-prioritised when its g-score improves, so the goal can be popped
// through a stale ordering: the path is not guaranteed to be minimal even
// with consistent coordinates.
func (s *Searcher) AStar(start, goal int) Result {
	w, ok := s.begin(start, goal)
	if !ok {
		return s.notFound(AStar)
	}
	gScore := fill(w.g.NodeCount(), inf)
	inOpen := fill(w.g.NodeCount(), false)
	h := w.goalDistance()
	open := newFrontier(byEstimate, w.g)
	w.startClock()

	gScore.Put(w.start, 0)
	open.Push(frontierItem{pos: w.start, parent: noParent, h: h(w.start)})
	inOpen.Put(w.start, true)
	for !open.IsEmpty() {
		cur, _ := open.Top()
		open.Pop()
		inOpen.Put(cur.pos, false)
		w.explore(cur.pos)

		if cur.pos == w.goal {
			return w.found(AStar, w.path(), gScore.Get(cur.pos))
		}

		g := gScore.Get(cur.pos)
		for e := range w.g.AdjacencyAt(cur.pos).All() {
			next := w.destination(e)
			tentative := g + e.Weight
			if tentative >= gScore.Get(next) {
				continue
			}
			gScore.Put(next, tentative)
			w.parent.Put(next, cur.pos)
			if !inOpen.Get(next) {
				open.Push(frontierItem{pos: next, parent: cur.pos, g: tentative, h: h(next)})
				inOpen.Put(next, true)
			}
		}
	}

	return w.exhausted(AStar)
}
