package sudoku

import (
	"iter"

	"github.com/gammazero/deque"
)

// coord addresses one cell of a solving grid.
type coord struct {
	i, j int
}

// board is the work-in-progress grid. It is a value type, so cloning a
// search branch is a plain array copy and branches never share state.
type board [N][N]Cell

// newBoard builds a solving grid from a puzzle and queues every clue for
// propagation.
//
// panics [AssertionError] when the puzzle holds an out-of-domain value
func newBoard(p Puzzle, q *deque.Deque[coord]) (b board) {
	for i := range N {
		for j := range N {
			if n := p[i][j]; n == NoClue {
				b[i][j] = NewCell()
			} else {
				b[i][j] = PinnedCell(n)
				q.PushBack(coord{i, j})
			}
		}
	}
	return
}

// solution converts the board to a finished grid. It fails while any cell
// is not pinned to a single digit, including cells with no digits left.
func (b *board) solution() (Solution, bool) {
	var s Solution
	for i := range N {
		for j := range N {
			n, ok := b[i][j].Possible().Unique()
			if !ok {
				return s, false
			}
			s[i][j] = n
		}
	}
	return s, true
}

// propagate runs naked-single elimination until the update queue drains.
// A dequeued cell that has collapsed to one digit knocks that digit out of
// every other cell in its row, column and block; each fresh elimination
// requeues the peer. The queue holds exactly the cells whose update flag
// is set, so requeueing an already-flagged cell is never needed.
func (b *board) propagate(q *deque.Deque[coord]) {
	for q.Len() > 0 {
		at := q.PopFront()
		cell := &b[at.i][at.j]
		cell.ackUpdate()
		n, ok := cell.Possible().Unique()
		if !ok {
			continue
		}
		drop := func(i, j int) {
			if i == at.i && j == at.j {
				return
			}
			peer := &b[i][j]
			flagged := peer.HasUpdate()
			if peer.Remove(n) && !flagged {
				q.PushBack(coord{i, j})
			}
		}
		for i, j := range rowCoords(at.i) {
			drop(i, j)
		}
		for i, j := range colCoords(at.j) {
			drop(i, j)
		}
		for i, j := range blockCoords(at.i-at.i%3, at.j-at.j%3) {
			drop(i, j)
		}
	}
}

// branchCell picks the undetermined cell with the fewest remaining
// possibilities, the first in row-major order on a tie. A contradictory
// board surfaces here too: an emptied cell wins the scan and then offers
// zero digits to branch on.
func (b *board) branchCell() (at coord, ok bool) {
	best := N + 1
	for i := range N {
		for j := range N {
			if count := b[i][j].Possible().Count(); count != 1 && count < best {
				best = count
				at = coord{i, j}
				ok = true
			}
		}
	}
	return
}

// solve propagates to a fixed point, reports the board if it is finished
// and otherwise splits on the cheapest undetermined cell, recursing into a
// full copy per candidate digit. It returns false once fn has asked to
// stop.
func (b *board) solve(q *deque.Deque[coord], fn func(Solution) bool) bool {
	b.propagate(q)
	if s, ok := b.solution(); ok {
		return fn(s)
	}
	at, ok := b.branchCell()
	if !ok {
		return true
	}
	for n := range b[at.i][at.j].Possible().All() {
		clone := *b
		clone[at.i][at.j] = PinnedCell(n)
		var cq deque.Deque[coord]
		cq.PushBack(at)
		if !clone.solve(&cq, fn) {
			return false
		}
	}
	return true
}

// ForEachSolution enumerates every completion of p consistent with the
// row, column and block rules, invoking fn once per solution. The order is
// deterministic for a given puzzle. fn may return false to abandon the
// rest of the search; returning true lets it run to exhaustion, and no
// invocation at all is the zero-solutions outcome.
//
// The Solution passed to fn is the callback's to read for the duration of
// the call only.
func ForEachSolution(p Puzzle, fn func(Solution) bool) {
	var q deque.Deque[coord]
	b := newBoard(p, &q)
	b.solve(&q, fn)
}

// Solutions is [ForEachSolution] in the shape of a lazy sequence. Every
// range over it restarts the search from scratch.
func Solutions(p Puzzle) iter.Seq[Solution] {
	return func(yield func(Solution) bool) {
		ForEachSolution(p, yield)
	}
}
