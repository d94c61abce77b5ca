package langton

import "errors"

var (
	// ErrInvalidTurnToken reports a turn that is neither Right nor Left, or a
	// rule character other than 'R' and 'L'.
	ErrInvalidTurnToken = errors.New("langton: invalid turn token")
	// ErrInvalidDirectionIndex reports an integer outside 0..3 passed to
	// DirectionFromIndex.
	ErrInvalidDirectionIndex = errors.New("langton: invalid direction index")
	// ErrEmptyRule reports a rule with no turns.
	ErrEmptyRule = errors.New("langton: rule needs at least one turn")
	// ErrRuleTooLong reports a rule with more states than a cell can hold.
	ErrRuleTooLong = errors.New("langton: rule has too many states")
	// ErrEmptyCatalog reports an engine configured without any rule.
	ErrEmptyCatalog = errors.New("langton: rule catalog is empty")
)
