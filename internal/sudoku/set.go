package sudoku

import "iter"

// PossibilitySet tracks which digits may still fill a cell. During a solve
// it only ever shrinks.
type PossibilitySet [N]bool

// EmptySet returns the set with no possibilities.
func EmptySet() PossibilitySet {
	return PossibilitySet{}
}

// FullSet returns the set containing every digit.
func FullSet() (s PossibilitySet) {
	for n := range s {
		s[n] = true
	}
	return
}

// Singleton returns the set containing only n.
//
// panics [AssertionError] when n is outside the digit domain
func Singleton(n Digit) PossibilitySet {
	if n < 0 || n >= N {
		panic(AssertionError{"digit out of domain"})
	}
	var s PossibilitySet
	s[n] = true
	return s
}

// Count reports the number of digits in the set.
func (s PossibilitySet) Count() (count int) {
	for _, ok := range s {
		if ok {
			count++
		}
	}
	return
}

func (s PossibilitySet) IsEmpty() bool {
	return s.Count() == 0
}

func (s PossibilitySet) IsUnique() bool {
	return s.Count() == 1
}

// Unique returns the only digit in the set, if the set holds exactly one.
func (s PossibilitySet) Unique() (Digit, bool) {
	found := NoClue
	for n, ok := range s {
		if !ok {
			continue
		}
		if found != NoClue {
			return NoClue, false
		}
		found = Digit(n)
	}
	if found == NoClue {
		return NoClue, false
	}
	return found, true
}

// All iterates the digits of the set in ascending order.
func (s PossibilitySet) All() iter.Seq[Digit] {
	return func(yield func(Digit) bool) {
		for n, ok := range s {
			if ok && !yield(Digit(n)) {
				return
			}
		}
	}
}
