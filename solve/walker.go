package solve

import (
	"fmt"

	"github.com/puzzlekit/puzzlekit/puzzle"
	"github.com/puzzlekit/puzzlekit/tree"
)

// item pairs a frontier node with its depth from the start state.
type item struct {
	node  *tree.Node
	depth int
}

// walker encapsulates the mutable state of one search run. Both entry
// points drive the same walker and differ only in which end of the
// frontier they pop from.
type walker struct {
	opts     Options
	frontier []item
	seen     map[string]bool // canonical string → already enqueued
	res      *Result
}

// newWalker validates the start state and options and seeds the frontier
// with a node wrapping start. The start state is deliberately not tested
// with IsSolved and not recorded in the visited set: solutions are
// recognized only among generated extensions.
func newWalker(start puzzle.State, opts []Option) (*walker, error) {
	if start == nil {
		return nil, ErrNilState
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	w := &walker{
		opts: o,
		seen: make(map[string]bool),
		res:  &Result{},
	}
	w.frontier = append(w.frontier, item{node: tree.NewNode(start, nil, nil)})
	return w, nil
}

// run processes the frontier until it empties, a solution is generated,
// or an abort (hook error, state limit). pop selects the stack or queue
// discipline.
func (w *walker) run(pop func() item) error {
	for len(w.frontier) > 0 {
		it := pop()
		w.res.Expanded++
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(it.node.State, it.depth); err != nil {
				return fmt.Errorf("solve: OnVisit hook at depth %d: %w", it.depth, err)
			}
		}
		if err := w.expand(it); err != nil {
			return err
		}
		if w.res.Solution != nil {
			return nil
		}
	}
	return nil
}

// popNewest removes and returns the most recently pushed item (LIFO).
func (w *walker) popNewest() item {
	last := len(w.frontier) - 1
	it := w.frontier[last]
	w.frontier = w.frontier[:last]
	return it
}

// popOldest removes and returns the oldest enqueued item (FIFO).
func (w *walker) popOldest() item {
	it := w.frontier[0]
	w.frontier = w.frontier[1:]
	return it
}

// expand asks the popped node's state for extensions and filters each
// one, in the puzzle's order: a solved extension wins immediately;
// fail-fast, already-seen, and dead-end extensions are pruned; survivors
// are recorded as seen and enqueued.
func (w *walker) expand(it item) error {
	next := it.depth + 1
	for _, ext := range it.node.State.Extensions() {
		if ext.IsSolved() {
			// first solved extension wins; siblings stay unexamined
			w.res.Solution = tree.NewNode(ext, nil, nil)
			return nil
		}
		key := ext.String()
		if ext.FailFast() || w.seen[key] || len(ext.Extensions()) == 0 {
			w.res.Pruned++
			continue
		}
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			w.res.Pruned++
			continue
		}
		if w.opts.MaxStates > 0 && w.res.Enqueued >= w.opts.MaxStates {
			return fmt.Errorf("%w: %d states enqueued", ErrStateLimit, w.res.Enqueued)
		}
		w.seen[key] = true
		if w.opts.OnEnqueue != nil {
			w.opts.OnEnqueue(ext, next)
		}
		w.frontier = append(w.frontier, item{node: tree.NewNode(ext, nil, nil), depth: next})
		w.res.Enqueued++
	}
	return nil
}
