package sudoku

import (
	"fmt"
	"iter"
	"strings"
)

// N is the edge length of the board and the size of the digit domain.
const N = 9

// Digit is a 0-based Sudoku digit. All text exchange is 1-indexed.
type Digit int8

// NoClue marks an unfilled puzzle cell.
const NoClue Digit = -1

// Puzzle is the input grid of optional clues. It is built once from text
// and never mutated by the solver.
type Puzzle [N][N]Digit

// Solution is a completed grid.
type Solution [N][N]Digit

// EmptyPuzzle returns a puzzle with no clues at all.
func EmptyPuzzle() (p Puzzle) {
	for i := range p {
		for j := range p[i] {
			p[i][j] = NoClue
		}
	}
	return
}

func (p Puzzle) String() string {
	var b strings.Builder
	for i := range N {
		for j := range N {
			if j > 0 {
				b.WriteByte(' ')
			}
			if p[i][j] == NoClue {
				b.WriteByte('.')
			} else {
				fmt.Fprintf(&b, "%d", p[i][j]+1)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (s Solution) String() string {
	var b strings.Builder
	for i := range N {
		for j := range N {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d", s[i][j]+1)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// rowCoords yields the 9 coordinates of row i in column order.
func rowCoords(i int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for j := range N {
			if !yield(i, j) {
				return
			}
		}
	}
}

// colCoords yields the 9 coordinates of column j in row order.
func colCoords(j int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i := range N {
			if !yield(i, j) {
				return
			}
		}
	}
}

// blockCoords yields the 9 coordinates of the 3×3 block whose top left
// corner is (i, j), row-major.
//
// panics [AssertionError] when the origin is off the grid or misaligned
func blockCoords(i, j int) iter.Seq2[int, int] {
	if i < 0 || i >= N || j < 0 || j >= N || i%3 != 0 || j%3 != 0 {
		panic(AssertionError{"block origin must be a multiple of 3 on the grid"})
	}
	return func(yield func(int, int) bool) {
		for di := range 3 {
			for dj := range 3 {
				if !yield(i+di, j+dj) {
					return
				}
			}
		}
	}
}

// Validate checks that every row, column and block holds each of the nine
// digits exactly once.
func (s Solution) Validate() error {
	for i := range N {
		if err := s.checkUnit("row", rowCoords(i)); err != nil {
			return err
		}
		if err := s.checkUnit("column", colCoords(i)); err != nil {
			return err
		}
	}
	for i := 0; i < N; i += 3 {
		for j := 0; j < N; j += 3 {
			if err := s.checkUnit("block", blockCoords(i, j)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s Solution) checkUnit(kind string, coords iter.Seq2[int, int]) error {
	var seen PossibilitySet
	for i, j := range coords {
		n := s[i][j]
		if n < 0 || n >= N {
			return fmt.Errorf("%s holds out-of-domain value %d at %d:%d", kind, n, i, j)
		}
		if seen[n] {
			return fmt.Errorf("%s holds digit %d twice (second at %d:%d)", kind, n+1, i, j)
		}
		seen[n] = true
	}
	return nil
}

// Satisfies reports whether s keeps every clue of p.
func (s Solution) Satisfies(p Puzzle) bool {
	for i := range N {
		for j := range N {
			if p[i][j] != NoClue && s[i][j] != p[i][j] {
				return false
			}
		}
	}
	return true
}
