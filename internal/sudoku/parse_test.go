package sudoku

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePuzzle(t *testing.T) {
	p := mustParse(t, classicSampleText)
	assert.Equal(t, Digit(4), p[0][0]) // '5' is digit 4 internally
	assert.Equal(t, NoClue, p[0][2])
	assert.Equal(t, Digit(8), p[8][8])
}

func TestParsePuzzleSeparators(t *testing.T) {
	spaced := `5 3 . | . 7 . | . . .
6 . . | 1 9 5 | . . .
. 9 8 | . . . | . 6 .
8 . . | . 6 . | . . 3
4 . . | 8 . 3 | . . 1
7 . . | . 2 . | . . 6
. 6 . | . . . | 2 8 .
. . . | 4 1 9 | . . 5
. . . | . 8 . | . 7 9
`
	p, err := ParsePuzzle(strings.NewReader(spaced))
	require.NoError(t, err)
	assert.Equal(t, mustParse(t, classicSampleText), p)
}

func TestParsePuzzleExtraInputIgnored(t *testing.T) {
	long := classicSampleText + "999999999\n"
	p, err := ParsePuzzle(strings.NewReader(long))
	require.NoError(t, err)
	assert.Equal(t, mustParse(t, classicSampleText), p)
}

func TestParsePuzzleTooFewRows(t *testing.T) {
	lines := strings.SplitAfter(classicSampleText, "\n")
	short := strings.Join(lines[:5], "")
	_, err := ParsePuzzle(strings.NewReader(short))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rows")
}

func TestParsePuzzleShortRow(t *testing.T) {
	bad := strings.Replace(classicSampleText, "530070000", "5300", 1)
	_, err := ParsePuzzle(strings.NewReader(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1")
}
