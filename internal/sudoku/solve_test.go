package sudoku

import (
	"strings"
	"testing"

	"github.com/gammazero/deque"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const classicSampleText = `530070000
600195000
098000060
800060003
400803001
700020006
060000280
000419005
000080079
`

const classicSolutionText = `534678912
672195348
198342567
859761423
426853791
713924856
961537284
287419635
345286179
`

// classicSolutionText with the rectangle (3,5) (3,8) (4,5) (4,8) blanked.
// The four cells hold 1 and 3 on the diagonals, the rows share a band and
// the columns sit in different block columns, so exactly the two diagonal
// assignments complete the grid.
const twoSolutionsText = `534678912
672195348
198342567
859760420
426850790
713924856
961537284
287419635
345286179
`

const swappedSolutionText = `534678912
672195348
198342567
859763421
426851793
713924856
961537284
287419635
345286179
`

func mustParse(t *testing.T, text string) Puzzle {
	t.Helper()
	p, err := ParsePuzzle(strings.NewReader(text))
	require.NoError(t, err)
	return p
}

func mustSolutionOf(t *testing.T, text string) (s Solution) {
	t.Helper()
	p := mustParse(t, text)
	for i := range N {
		for j := range N {
			require.NotEqual(t, NoClue, p[i][j], "cell %d:%d is blank", i, j)
			s[i][j] = p[i][j]
		}
	}
	return
}

func collectSolutions(p Puzzle, limit int) (got []Solution) {
	ForEachSolution(p, func(s Solution) bool {
		got = append(got, s)
		return limit == 0 || len(got) < limit
	})
	return
}

func TestSingleBlankPuzzle(t *testing.T) {
	full := mustSolutionOf(t, classicSolutionText)
	text := strings.Replace(classicSolutionText, "345286179", "345286170", 1)
	puzzle := mustParse(t, text)

	got := collectSolutions(puzzle, 0)
	require.Len(t, got, 1)
	assert.Equal(t, full, got[0])
	assert.True(t, got[0].Satisfies(puzzle))
}

func TestClassicFixtureAgreement(t *testing.T) {
	puzzle := mustParse(t, classicSampleText)
	solution := mustSolutionOf(t, classicSolutionText)
	assert.True(t, solution.Satisfies(puzzle), "every clue must match the full grid")
}

func TestClassicPuzzle(t *testing.T) {
	puzzle := mustParse(t, classicSampleText)

	got := collectSolutions(puzzle, 0)
	require.Len(t, got, 1)
	assert.Equal(t, mustSolutionOf(t, classicSolutionText), got[0])
	assert.NoError(t, got[0].Validate())
	assert.True(t, got[0].Satisfies(puzzle))

	assert.Equal(t, got, collectSolutions(puzzle, 0))
}

func TestTwoSolutionPuzzle(t *testing.T) {
	puzzle := mustParse(t, twoSolutionsText)

	got := collectSolutions(puzzle, 0)
	require.Len(t, got, 2)
	assert.Equal(t, mustSolutionOf(t, classicSolutionText), got[0])
	assert.Equal(t, mustSolutionOf(t, swappedSolutionText), got[1])
	for _, s := range got {
		assert.NoError(t, s.Validate())
		assert.True(t, s.Satisfies(puzzle))
	}
}

func TestContradictoryPuzzle(t *testing.T) {
	text := strings.Replace(classicSampleText, "530070000", "530070005", 1)
	puzzle := mustParse(t, text)
	assert.Empty(t, collectSolutions(puzzle, 0))
}

func TestCallbackStopsSearch(t *testing.T) {
	puzzle := mustParse(t, twoSolutionsText)

	got := collectSolutions(puzzle, 1)
	require.Len(t, got, 1)
	assert.Equal(t, mustSolutionOf(t, classicSolutionText), got[0])
}

func TestEmptyPuzzleStream(t *testing.T) {
	first := collectSolutions(EmptyPuzzle(), 5)
	require.Len(t, first, 5)
	for i, s := range first {
		assert.NoError(t, s.Validate())
		for _, prev := range first[:i] {
			assert.NotEqual(t, prev, s)
		}
	}

	assert.Equal(t, first, collectSolutions(EmptyPuzzle(), 5))
}

func TestSolutionsSequence(t *testing.T) {
	puzzle := mustParse(t, twoSolutionsText)

	var all []Solution
	for s := range Solutions(puzzle) {
		all = append(all, s)
	}
	assert.Equal(t, collectSolutions(puzzle, 0), all)

	for s := range Solutions(puzzle) {
		assert.Equal(t, all[0], s)
		break
	}
}

func TestBoardConversion(t *testing.T) {
	text := strings.Replace(classicSolutionText, "345286179", "345286170", 1)
	puzzle := mustParse(t, text)

	var q deque.Deque[coord]
	b := newBoard(puzzle, &q)

	_, ok := b.solution()
	assert.False(t, ok, "board with an open cell must not convert")

	b.propagate(&q)
	s, ok := b.solution()
	require.True(t, ok)
	assert.Equal(t, mustSolutionOf(t, classicSolutionText), s)
}
