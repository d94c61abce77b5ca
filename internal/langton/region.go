package langton

import "turmites/internal/core"

// AntsInRegion returns copies of every ant inside r, bounds inclusive.
func (e *Engine) AntsInRegion(r core.Rect) []Ant {
	var out []Ant
	e.ants.scan(r, func(c *antCell) bool {
		out = append(out, c.ants...)
		return true
	})
	return out
}

// EachAntInRegion calls fn for every ant inside r until fn returns false. It
// avoids the copy AntsInRegion makes, for renderers walking the viewport.
func (e *Engine) EachAntInRegion(r core.Rect, fn func(a Ant) bool) {
	e.ants.scan(r, func(c *antCell) bool {
		for _, a := range c.ants {
			if !fn(a) {
				return false
			}
		}
		return true
	})
}

// VisibleAnts counts the ants inside r.
func (e *Engine) VisibleAnts(r core.Rect) int {
	n := 0
	e.ants.scan(r, func(c *antCell) bool {
		n += len(c.ants)
		return true
	})
	return n
}
