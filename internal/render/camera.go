package render

import (
	"math"

	"turmites/internal/core"
)

const (
	minZoom = 0.2
	maxZoom = 20.0
)

// Camera maps between screen pixels and grid cells. X and Y are the world
// position of the screen's top-left corner, in unscaled pixels.
type Camera struct {
	X, Y     float64
	CellSize int
	Zoom     float64
	Speed    float64
}

// NewCamera returns a camera at the origin with the default zoom.
func NewCamera() *Camera {
	return &Camera{CellSize: 10, Zoom: 3, Speed: 5}
}

// ScaledCellSize returns the on-screen size of one cell.
func (c *Camera) ScaledCellSize() float64 { return float64(c.CellSize) * c.Zoom }

// Move pans by (dx, dy) units. Panning slows down as the zoom grows so the
// on-screen speed stays comfortable.
func (c *Camera) Move(dx, dy float64) {
	step := c.Speed * c.Speed / c.Zoom
	c.X += dx * step
	c.Y += dy * step
}

// ZoomAt multiplies the zoom by factor while keeping the world point under
// the screen position (sx, sy) fixed.
func (c *Camera) ZoomAt(factor, sx, sy float64) {
	worldX := c.X + sx/c.Zoom
	worldY := c.Y + sy/c.Zoom
	c.Zoom = math.Min(maxZoom, math.Max(minZoom, c.Zoom*factor))
	c.X = worldX - sx/c.Zoom
	c.Y = worldY - sy/c.Zoom
}

// ScreenToGrid returns the cell under the screen position (sx, sy).
func (c *Camera) ScreenToGrid(sx, sy float64) core.Point {
	worldX := sx/c.Zoom + c.X
	worldY := sy/c.Zoom + c.Y
	cell := float64(c.CellSize)
	return core.Point{X: int(math.Floor(worldX / cell)), Y: int(math.Floor(worldY / cell))}
}

// GridToScreen returns the screen position of the top-left corner of p.
func (c *Camera) GridToScreen(p core.Point) (float64, float64) {
	cell := float64(c.CellSize)
	return (float64(p.X)*cell - c.X) * c.Zoom, (float64(p.Y)*cell - c.Y) * c.Zoom
}

// VisibleRange returns the cells covering a screen of w by h pixels. The
// range overshoots by up to one cell on the far edges.
func (c *Camera) VisibleRange(w, h int) core.Rect {
	cell := float64(c.CellSize)
	return core.Rect{
		MinX: int(math.Floor(c.X / cell)),
		MinY: int(math.Floor(c.Y / cell)),
		MaxX: int(math.Ceil((c.X + float64(w)/c.Zoom) / cell)),
		MaxY: int(math.Ceil((c.Y + float64(h)/c.Zoom) / cell)),
	}
}

// ShowGridLines reports whether cell borders are large enough to draw.
func (c *Camera) ShowGridLines() bool { return c.Zoom > 0.5 }
