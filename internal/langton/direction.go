package langton

import "fmt"

// Direction is the heading of an ant. The four values form a cyclic group
// under rotation, numbered clockwise from Up.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

const directionCount = 4

// Index returns the direction as an integer in 0..3.
func (d Direction) Index() int { return int(d) }

// DirectionFromIndex converts 0..3 back into a Direction.
func DirectionFromIndex(i int) (Direction, error) {
	if i < 0 || i >= directionCount {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDirectionIndex, i)
	}
	return Direction(i), nil
}

// Rotate turns d clockwise by steps quarter turns. Negative steps turn
// counter-clockwise.
func (d Direction) Rotate(steps int) Direction {
	idx := (int(d) + steps) % directionCount
	if idx < 0 {
		idx += directionCount
	}
	return Direction(idx)
}

// Cycle applies a single turn token: Right rotates clockwise, Left
// counter-clockwise. Up and Down are not turns.
func (d Direction) Cycle(turn Direction) (Direction, error) {
	steps, err := turnSteps(turn)
	if err != nil {
		return d, err
	}
	return d.Rotate(steps), nil
}

// Delta returns the unit offset of one move in direction d. The y axis grows
// downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	default:
		return -1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

func turnSteps(turn Direction) (int, error) {
	switch turn {
	case Right:
		return 1, nil
	case Left:
		return -1, nil
	}
	return 0, fmt.Errorf("%w: %v", ErrInvalidTurnToken, turn)
}
