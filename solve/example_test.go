package solve_test

import (
	"fmt"

	"github.com/puzzlekit/puzzlekit/puzzle"
	"github.com/puzzlekit/puzzlekit/solve"
)

// ladderState is a word-ladder puzzle: transform word into target one
// letter at a time, passing only through dictionary words. All states of
// one puzzle share the dictionary and target, so the current word alone
// is a collision-free canonical string.
type ladderState struct {
	word   string
	target string
	dict   []string // sorted, for a reproducible extension order
}

func (l ladderState) IsSolved() bool { return l.word == l.target }

func (l ladderState) Extensions() []puzzle.State {
	var exts []puzzle.State
	for _, w := range l.dict {
		if w != l.word && oneLetterApart(w, l.word) {
			exts = append(exts, ladderState{word: w, target: l.target, dict: l.dict})
		}
	}
	return exts
}

func (l ladderState) FailFast() bool { return false }

func (l ladderState) Equal(other puzzle.State) bool {
	m, ok := other.(ladderState)
	return ok && l.word == m.word && l.target == m.target
}

func (l ladderState) String() string { return l.word }

func oneLetterApart(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	diff := 0
	for i := range a {
		if a[i] != b[i] {
			diff++
		}
	}
	return diff == 1
}

// ExampleBreadthFirst solves a small word ladder. Breadth-first order
// guarantees the ladder found uses as few steps as any other.
func ExampleBreadthFirst() {
	start := ladderState{
		word:   "cost",
		target: "cave",
		dict:   []string{"cart", "case", "cast", "cave", "cost"},
	}

	res, err := solve.BreadthFirst(start)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Found())
	fmt.Println(res.Solution.State)
	// Output:
	// true
	// cave
}

// ExampleDepthFirst counts up from 0 to 3, watching the frontier grow
// through the OnEnqueue hook.
func ExampleDepthFirst() {
	res, err := solve.DepthFirst(
		countState{max: 3},
		solve.WithOnEnqueue(func(s puzzle.State, depth int) {
			fmt.Printf("enqueue %v at depth %d\n", s, depth)
		}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("solved:", res.Solution.State)
	// Output:
	// enqueue count:1/3 at depth 1
	// enqueue count:2/3 at depth 2
	// solved: count:3/3
}
