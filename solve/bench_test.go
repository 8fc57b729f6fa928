package solve_test

import (
	"fmt"
	"testing"

	"github.com/puzzlekit/puzzlekit/solve"
)

// BenchmarkDepthFirst_Chain measures DFS over a linear chain of N states.
func BenchmarkDepthFirst_Chain(b *testing.B) {
	const N = 1000
	start := countState{max: N}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = solve.DepthFirst(start)
	}
}

// BenchmarkBreadthFirst_Chain measures BFS over the same chain; the two
// orders coincide on a chain, so any delta is pure frontier overhead.
func BenchmarkBreadthFirst_Chain(b *testing.B) {
	const N = 1000
	start := countState{max: N}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = solve.BreadthFirst(start)
	}
}

// BenchmarkBreadthFirst_Diamonds measures BFS over a wide layered space
// where the visited set does real deduplication work.
func BenchmarkBreadthFirst_Diamonds(b *testing.B) {
	const layers = 200
	adj := make(map[string][]string, 3*layers)
	for i := 0; i < layers; i++ {
		top := nodeID("t", i)
		left := nodeID("l", i)
		right := nodeID("r", i)
		next := nodeID("t", i+1)
		adj[top] = []string{left, right}
		adj[left] = []string{next}
		adj[right] = []string{next}
	}
	start := graphState{
		id:     nodeID("t", 0),
		adj:    adj,
		solved: map[string]bool{nodeID("t", layers): true},
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = solve.BreadthFirst(start)
	}
}

func nodeID(kind string, i int) string {
	return fmt.Sprintf("%s:%d", kind, i)
}
