package search_test

import (
	"fmt"

	"github.com/katalvlaran/navgraph/search"
)

// ExampleSearcher_Dijkstra finds the cheap detour around the heavy diagonal.
func ExampleSearcher_Dijkstra() {
	s := search.New(buildSquare())
	res := s.Dijkstra(0, 3)
	fmt.Println(res.PathFound, res.Path, res.TotalDistance)
	// Output: true [0 1 3] 2
}

// ExampleSearcher_Compare shows how the strategies differ on the same pair.
func ExampleSearcher_Compare() {
	c := search.New(buildSquare()).Compare(0, 3)
	for _, e := range c.Entries[:4] {
		fmt.Printf("%-10s %v %g\n", e.Algorithm, e.Result.Path, e.Result.TotalDistance)
	}
	// Output:
	// DFS        [0 2 3] 2
	// BFS        [0 3] 10
	// Dijkstra   [0 1 3] 2
	// Best-First [0 3] 10
}
