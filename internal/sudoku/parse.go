package sudoku

import (
	"bufio"
	"fmt"
	"io"
)

// ParsePuzzle reads a puzzle in the plain text exchange format: nine lines,
// nine cells per line. A cell is a digit rune ('0' or '.' for an unclued
// cell, '1'..'9' for a clue); any other rune is a separator and skipped, so
// both "530070000" and "5 3 . . 7 . . . ." parse.
func ParsePuzzle(r io.Reader) (Puzzle, error) {
	p := EmptyPuzzle()
	scanner := bufio.NewScanner(r)
	for i := range N {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return p, fmt.Errorf("unable to read row %d: %w", i+1, err)
			}
			return p, fmt.Errorf("puzzle has %d rows, want %d", i, N)
		}
		if err := parseRow(&p, i, scanner.Text()); err != nil {
			return p, err
		}
	}
	return p, nil
}

func parseRow(p *Puzzle, i int, line string) error {
	j := 0
	for _, r := range line {
		if j == N {
			break
		}
		switch {
		case r == '0' || r == '.':
			p[i][j] = NoClue
		case '1' <= r && r <= '9':
			p[i][j] = Digit(r - '1')
		default:
			continue
		}
		j++
	}
	if j < N {
		return fmt.Errorf("row %d has %d cells, want %d", i+1, j, N)
	}
	return nil
}
