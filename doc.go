// Package puzzlekit is a small toolkit for solving combinatorial puzzles
// by uninformed state-space search.
//
// A puzzle is anything that can enumerate its legal one-step extensions,
// report whether it is solved, and cheaply prove itself unsolvable. Given
// such a type, puzzlekit explores the implicit graph of reachable states
// and hands back the first solved state it generates.
//
// Everything is organized under three subpackages:
//
//	puzzle/ — the State contract every concrete puzzle type satisfies
//	tree/   — path-tree nodes for representing and printing solution paths
//	solve/  — DepthFirst and BreadthFirst search over any puzzle.State
//
// Quick sketch:
//
//	res, err := solve.BreadthFirst(start)
//	if err != nil {
//		...
//	}
//	if res.Found() {
//		fmt.Println(res.Solution.State)
//	}
//
// The search core is pure Go, single-threaded, and generic over the
// puzzle.State interface — it never inspects a concrete puzzle's
// representation, so any type satisfying the contract plugs in.
//
//	go get github.com/puzzlekit/puzzlekit/solve
package puzzlekit
