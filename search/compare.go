// SPDX-License-Identifier: MIT

package search

// Compare runs every algorithm once on the same pair, in Algorithms() order.
func (s *Searcher) Compare(start, goal int) Comparison {
	algs := Algorithms()
	c := Comparison{Start: start, Goal: goal, Entries: make([]Entry, 0, len(algs))}
	for _, alg := range algs {
		res, _ := s.Run(alg, start, goal)
		c.Entries = append(c.Entries, Entry{Algorithm: alg, Result: res})
	}

	return c
}
