package sudoku

// AssertionError is the panic payload for a violated precondition, such as
// a digit outside the grid's domain.
type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}
