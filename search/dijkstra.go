// SPDX-License-Identifier: MIT

//
// File: dijkstra.go
// Role: Dijkstra's algorithm with a linear minimum scan.
// Policy:
//   - Each round scans every position for the unvisited node with the smallest
//     tentative distance. The scan runs in position order and requires a
//     strictly smaller distance to switch, so ties go to the lowest position.
//   - Only edges into unvisited nodes are relaxed.
//   - The search stops as soon as the goal is selected; the result distance is
//     the goal's tentative distance, not a re-summed path.
//   - Correct only for non-negative weights. Negative weights are not rejected;
//     the result is then whatever the scan produces.
// Complexity:
//   - Time O(V² + E), Space O(V).

package search

// Dijkstra returns a minimum-weight path on graphs with non-negative weights.
func (s *Searcher) Dijkstra(start, goal int) Result {
	w, ok := s.begin(start, goal)
	if !ok {
		return s.notFound(Dijkstra)
	}
	n := w.g.NodeCount()
	dist := fill(n, inf)
	visited := fill(n, false)
	w.startClock()

	dist.Put(w.start, 0)
	for round := 0; round < n; round++ {
		u := noParent
		best := inf
		for v := 0; v < n; v++ {
			if !visited.Get(v) && dist.Get(v) < best {
				best = dist.Get(v)
				u = v
			}
		}
		if u == noParent {
			break
		}
		visited.Put(u, true)
		w.explore(u)

		if u == w.goal {
			return w.found(Dijkstra, w.path(), dist.Get(u))
		}

		du := dist.Get(u)
		for e := range w.g.AdjacencyAt(u).All() {
			v := w.destination(e)
			if !visited.Get(v) && du+e.Weight < dist.Get(v) {
				dist.Put(v, du+e.Weight)
				w.parent.Put(v, u)
			}
		}
	}

	return w.exhausted(Dijkstra)
}
