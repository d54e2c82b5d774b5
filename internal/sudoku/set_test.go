package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyAndFullSets(t *testing.T) {
	assert.Equal(t, 0, EmptySet().Count())
	assert.True(t, EmptySet().IsEmpty())
	assert.False(t, EmptySet().IsUnique())

	assert.Equal(t, N, FullSet().Count())
	assert.False(t, FullSet().IsEmpty())
	assert.False(t, FullSet().IsUnique())
}

func TestSingleton(t *testing.T) {
	for n := Digit(0); n < N; n++ {
		s := Singleton(n)
		assert.Equal(t, 1, s.Count())
		assert.True(t, s.IsUnique())
		u, ok := s.Unique()
		assert.True(t, ok)
		assert.Equal(t, n, u)
	}
}

func TestSingletonOutOfDomain(t *testing.T) {
	assert.Panics(t, func() { Singleton(N) })
	assert.Panics(t, func() { Singleton(-1) })
}

func TestUnique(t *testing.T) {
	_, ok := EmptySet().Unique()
	assert.False(t, ok)
	_, ok = FullSet().Unique()
	assert.False(t, ok)
	_, ok = PossibilitySet{false, true, false, false, false, false, false, true, false}.Unique()
	assert.False(t, ok)
}

func TestCountMatchesAscendingIteration(t *testing.T) {
	sets := []PossibilitySet{
		EmptySet(),
		FullSet(),
		Singleton(3),
		{false, true, true, false, true, true, false, true, false},
	}
	for _, s := range sets {
		var digits []Digit
		for n := range s.All() {
			digits = append(digits, n)
		}
		assert.Len(t, digits, s.Count())
		for i := 1; i < len(digits); i++ {
			assert.Less(t, digits[i-1], digits[i])
		}
	}
}

func TestIterationStopsEarly(t *testing.T) {
	seen := 0
	for range FullSet().All() {
		seen++
		if seen == 4 {
			break
		}
	}
	assert.Equal(t, 4, seen)
}
