package core

import "maps"

// SparseGrid stores byte-sized cell states on an unbounded plane. Cells that
// were never written read as zero.
type SparseGrid struct {
	cells map[Point]uint8
}

// NewSparseGrid allocates an empty grid.
func NewSparseGrid() *SparseGrid {
	return &SparseGrid{cells: make(map[Point]uint8)}
}

// Get returns the state stored at p, or 0 when the cell is unvisited.
func (g *SparseGrid) Get(p Point) uint8 { return g.cells[p] }

// Set stores a state at p. Writing 0 still marks the cell as visited.
func (g *SparseGrid) Set(p Point, v uint8) { g.cells[p] = v }

// Len returns the number of visited cells.
func (g *SparseGrid) Len() int { return len(g.cells) }

// Each calls fn for every visited cell until fn returns false. Iteration
// order is unspecified.
func (g *SparseGrid) Each(fn func(p Point, v uint8) bool) {
	for p, v := range g.cells {
		if !fn(p, v) {
			return
		}
	}
}

// Snapshot returns a copy of the visited cells.
func (g *SparseGrid) Snapshot() map[Point]uint8 { return maps.Clone(g.cells) }

// Clear forgets every visited cell.
func (g *SparseGrid) Clear() { clear(g.cells) }
