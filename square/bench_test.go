package square_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/latticegraph/square"
)

// BenchmarkAppendNeighbors measures neighbor enumeration on a randomly
// masked 1000×1000 grid with values in [0,4] (value 0 is a wall).
// Complexity: O(4) per call.
func BenchmarkAppendNeighbors(b *testing.B) {
	const n = 1000
	rng := rand.New(rand.NewSource(42))
	grid := make([][]int, n)
	for y := 0; y < n; y++ {
		row := make([]int, n)
		for x := 0; x < n; x++ {
			row[x] = rng.Intn(5)
		}
		grid[y] = row
	}
	g, err := square.FromValues(grid, 1)
	if err != nil {
		b.Fatalf("setup FromValues failed: %v", err)
	}
	buf := make([]int, 0, 4)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf, _ = g.AppendNeighbors(buf[:0], i%g.Len())
	}
}

// BenchmarkIndexCoord measures the index↔coordinate round trip on a torus.
func BenchmarkIndexCoord(b *testing.B) {
	shape, err := square.NewShape(1000, 1000, square.WithTorus())
	if err != nil {
		b.Fatalf("setup NewShape failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := shape.CoordOf(i % shape.Len())
		_, _ = shape.IndexOf(square.Coord{Row: c.Row - 1, Col: c.Col + 1})
	}
}
