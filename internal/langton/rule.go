package langton

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// MaxRuleStates is the longest turn sequence a rule may hold; cell states
// are stored in a byte.
const MaxRuleStates = 256

// Rule maps each cell state to a turn and a display color. State i turns by
// turns[i] and is painted with palette[i].
type Rule struct {
	name    string
	turns   []Direction
	steps   []int
	palette []color.RGBA
}

// NewRule parses a string of 'R'/'L' characters and derives a palette of the
// same length by interpolating linearly from start to end. Colors are packed
// 0xRRGGBB values.
func NewRule(turns string, start, end uint32) (*Rule, error) {
	if len(turns) == 0 {
		return nil, ErrEmptyRule
	}
	if len(turns) > MaxRuleStates {
		return nil, fmt.Errorf("%w: %d > %d", ErrRuleTooLong, len(turns), MaxRuleStates)
	}
	r := &Rule{
		turns: make([]Direction, 0, len(turns)),
		steps: make([]int, 0, len(turns)),
	}
	for i, c := range []byte(turns) {
		switch c {
		case 'R':
			r.turns = append(r.turns, Right)
			r.steps = append(r.steps, 1)
		case 'L':
			r.turns = append(r.turns, Left)
			r.steps = append(r.steps, -1)
		default:
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidTurnToken, c, i)
		}
	}
	r.palette = gradient(start, end, len(turns))
	return r, nil
}

// NewNamedRule is NewRule with a display name attached.
func NewNamedRule(name, turns string, start, end uint32) (*Rule, error) {
	r, err := NewRule(turns, start, end)
	if err != nil {
		return nil, fmt.Errorf("rule %q: %w", name, err)
	}
	r.name = name
	return r, nil
}

// Name returns the display name, or the turn string for anonymous rules.
func (r *Rule) Name() string {
	if r.name == "" {
		return r.Turns()
	}
	return r.name
}

// Len returns the number of cell states the rule supports.
func (r *Rule) Len() int { return len(r.turns) }

// Turns renders the turn sequence back into its 'R'/'L' form.
func (r *Rule) Turns() string {
	var b strings.Builder
	b.Grow(len(r.turns))
	for _, t := range r.turns {
		if t == Right {
			b.WriteByte('R')
		} else {
			b.WriteByte('L')
		}
	}
	return b.String()
}

// Direction returns the turn for a state. state must be below Len.
func (r *Rule) Direction(state uint8) Direction { return r.turns[state] }

// Color returns the palette entry for a state. state must be below Len.
func (r *Rule) Color(state uint8) color.RGBA { return r.palette[state] }

// Palette returns a copy of the per-state colors.
func (r *Rule) Palette() []color.RGBA {
	out := make([]color.RGBA, len(r.palette))
	copy(out, r.palette)
	return out
}

// apply rotates d by the turn of state.
func (r *Rule) apply(d Direction, state uint8) Direction {
	return d.Rotate(r.steps[state])
}

func gradient(start, end uint32, n int) []color.RGBA {
	out := make([]color.RGBA, n)
	if n == 1 {
		out[0] = unpackRGB(start)
		return out
	}
	s, e := unpackRGB(start), unpackRGB(end)
	for i := range out {
		t := float64(i) / float64(n-1)
		out[i] = color.RGBA{
			R: lerp(s.R, e.R, t),
			G: lerp(s.G, e.G, t),
			B: lerp(s.B, e.B, t),
			A: 0xff,
		}
	}
	return out
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round((1-t)*float64(a) + t*float64(b)))
}

func unpackRGB(c uint32) color.RGBA {
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 0xff}
}
