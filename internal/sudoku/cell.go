package sudoku

// Cell is one slot of a solving grid: the digits it may still hold, plus a
// flag marking an elimination the solver has not reacted to yet.
type Cell struct {
	possible PossibilitySet
	pending  bool
}

// NewCell returns an unconstrained cell with nothing to report.
func NewCell() Cell {
	return Cell{possible: FullSet()}
}

// PinnedCell returns a cell fixed to n. The update flag starts set: a clue
// is a fact the solver still has to propagate.
//
// panics [AssertionError] when n is outside the digit domain
func PinnedCell(n Digit) Cell {
	return Cell{possible: Singleton(n), pending: true}
}

// Remove rules out n. The first removal marks the cell updated and reports
// a change; removing an absent digit is a no-op.
func (c *Cell) Remove(n Digit) bool {
	if n < 0 || n >= N {
		panic(AssertionError{"digit out of domain"})
	}
	if !c.possible[n] {
		return false
	}
	c.possible[n] = false
	c.pending = true
	return true
}

// HasUpdate reports whether the cell lost a digit since the solver last
// examined it.
func (c *Cell) HasUpdate() bool {
	return c.pending
}

// ackUpdate clears the update flag once the solver has examined the cell.
func (c *Cell) ackUpdate() {
	c.pending = false
}

// Possible returns the cell's remaining candidates.
func (c Cell) Possible() PossibilitySet {
	return c.possible
}
