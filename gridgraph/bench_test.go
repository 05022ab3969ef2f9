package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/aislenav/gridgraph"
)

// randomGrid builds an n×n grid where roughly a quarter of the cells are shelves.
func randomGrid(n int, seed int64) [][]int {
	rng := rand.New(rand.NewSource(seed))
	grid := make([][]int, n)
	for r := 0; r < n; r++ {
		row := make([]int, n)
		for c := 0; c < n; c++ {
			if rng.Intn(4) == 0 {
				row[c] = gridgraph.CodeShelf
			}
		}
		grid[r] = row
	}

	return grid
}

// BenchmarkConnectedComponents measures ConnectedComponents on a 500×500 grid.
// Complexity: O(R×C)
func BenchmarkConnectedComponents(b *testing.B) {
	gg, err := gridgraph.From2D(randomGrid(500, 42))
	if err != nil {
		b.Fatalf("setup From2D failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedComponents()
	}
}

// BenchmarkDistanceField measures a single-source BFS on a 500×500 grid.
// Complexity: O(R×C)
func BenchmarkDistanceField(b *testing.B) {
	grid := randomGrid(500, 42)
	grid[0][0] = gridgraph.CodeWalkway
	gg, err := gridgraph.From2D(grid)
	if err != nil {
		b.Fatalf("setup From2D failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.DistanceField(gridgraph.Cell{})
	}
}
