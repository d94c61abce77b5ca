package langton

import (
	"github.com/google/btree"

	"turmites/internal/core"
)

const indexDegree = 16

// antCell holds every ant standing on one coordinate.
type antCell struct {
	pos  core.Point
	ants []Ant
}

func lessCell(a, b *antCell) bool { return core.ComparePoints(a.pos, b.pos) < 0 }

// antIndex maps coordinates to the ants standing on them, ordered x-major
// then y so rectangles can be scanned as one contiguous key range. Every ant
// stored under a key has that key as its position.
type antIndex struct {
	tree *btree.BTreeG[*antCell]
	ants int
}

func newAntIndex(free *btree.FreeListG[*antCell]) *antIndex {
	return &antIndex{tree: btree.NewWithFreeListG(indexDegree, lessCell, free)}
}

// insert appends a to the cell at its position, creating the cell if needed.
func (ix *antIndex) insert(a Ant) {
	if c, ok := ix.tree.Get(&antCell{pos: a.Pos()}); ok {
		c.ants = append(c.ants, a)
	} else {
		ix.tree.ReplaceOrInsert(&antCell{pos: a.Pos(), ants: []Ant{a}})
	}
	ix.ants++
}

// at returns the ants standing on p.
func (ix *antIndex) at(p core.Point) []Ant {
	if c, ok := ix.tree.Get(&antCell{pos: p}); ok {
		return c.ants
	}
	return nil
}

// ascend visits occupied cells in key order until fn returns false.
func (ix *antIndex) ascend(fn func(c *antCell) bool) {
	ix.tree.Ascend(fn)
}

// scan visits the occupied cells inside r. The key range from (MinX, MinY)
// to (MaxX, MaxY) also admits cells of the in-between columns whose y lies
// outside r, so each candidate is filtered again. The pivot is local since
// the tree rereads it while descending and fn may query the index.
func (ix *antIndex) scan(r core.Rect, fn func(c *antCell) bool) {
	if r.Empty() {
		return
	}
	hi := core.Point{X: r.MaxX, Y: r.MaxY}
	lo := &antCell{pos: core.Point{X: r.MinX, Y: r.MinY}}
	ix.tree.AscendGreaterOrEqual(lo, func(c *antCell) bool {
		if core.ComparePoints(c.pos, hi) > 0 {
			return false
		}
		if !r.Contains(c.pos) {
			return true
		}
		return fn(c)
	})
}

// len returns the number of ants stored.
func (ix *antIndex) len() int { return ix.ants }

// cells returns the number of occupied coordinates.
func (ix *antIndex) cells() int { return ix.tree.Len() }

// clear drops every ant and hands the tree nodes back to the free list.
func (ix *antIndex) clear() {
	ix.tree.Clear(true)
	ix.ants = 0
}
