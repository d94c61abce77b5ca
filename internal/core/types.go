package core

// Point is an integer cell coordinate on the unbounded plane.
type Point struct {
	X int
	Y int
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int) Point { return Point{X: p.X + dx, Y: p.Y + dy} }

// ComparePoints orders points x-major, then y.
func ComparePoints(a, b Point) int {
	switch {
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return 1
	case a.Y < b.Y:
		return -1
	case a.Y > b.Y:
		return 1
	}
	return 0
}

// Rect is an axis-aligned rectangle of cells. All bounds are inclusive.
type Rect struct {
	MinX, MaxX int
	MinY, MaxY int
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Empty reports whether the rectangle holds no cells.
func (r Rect) Empty() bool { return r.MaxX < r.MinX || r.MaxY < r.MinY }

// Size returns the number of columns and rows covered.
func (r Rect) Size() Size {
	if r.Empty() {
		return Size{}
	}
	return Size{W: r.MaxX - r.MinX + 1, H: r.MaxY - r.MinY + 1}
}

// Size describes the dimensions of a block of cells.
type Size struct {
	W int
	H int
}
