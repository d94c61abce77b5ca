package render

import (
	"image/color"

	"turmites/internal/core"
	"turmites/internal/langton"
)

// CellSource is the read side of the engine grid.
type CellSource interface {
	EachCell(fn func(p core.Point, state uint8) bool)
}

var directionColors = [...]color.RGBA{
	langton.Up:    {R: 230, G: 41, B: 55, A: 255},
	langton.Right: {R: 0, G: 228, B: 48, A: 255},
	langton.Down:  {R: 0, G: 121, B: 241, A: 255},
	langton.Left:  {R: 253, G: 249, B: 0, A: 255},
}

// DirectionColor returns the marker color of an ant heading in d.
func DirectionColor(d langton.Direction) color.RGBA {
	if int(d) < len(directionColors) {
		return directionColors[d]
	}
	return color.RGBA{A: 255}
}

// fillViewport rasterises the cells of view into buf, one RGBA pixel per
// cell in row-major order. Unvisited cells get background; states past the
// end of the palette use its last color.
func fillViewport(buf []byte, view core.Rect, cells CellSource, palette []color.RGBA, background color.RGBA) {
	size := view.Size()
	for i := 0; i < size.W*size.H; i++ {
		setPixel(buf, i, background)
	}
	if len(palette) == 0 {
		return
	}
	last := len(palette) - 1
	cells.EachCell(func(p core.Point, state uint8) bool {
		if !view.Contains(p) {
			return true
		}
		idx := int(state)
		if idx > last {
			idx = last
		}
		setPixel(buf, (p.Y-view.MinY)*size.W+(p.X-view.MinX), palette[idx])
		return true
	})
}

// markAnt paints the pixel of a single ant, ignoring ants outside view.
func markAnt(buf []byte, view core.Rect, a langton.Ant) {
	if !view.Contains(a.Pos()) {
		return
	}
	w := view.Size().W
	setPixel(buf, (a.Y-view.MinY)*w+(a.X-view.MinX), DirectionColor(a.Direction))
}

func setPixel(buf []byte, i int, c color.RGBA) {
	base := i * 4
	buf[base+0] = c.R
	buf[base+1] = c.G
	buf[base+2] = c.B
	buf[base+3] = c.A
}

// antTriangle returns the corners of an ant marker centred on (cx, cy) with
// its tip pointing along d.
func antTriangle(cx, cy, size float32, d langton.Direction) [3][2]float32 {
	switch d {
	case langton.Up:
		return [3][2]float32{{cx, cy - size}, {cx - size, cy + size}, {cx + size, cy + size}}
	case langton.Right:
		return [3][2]float32{{cx + size, cy}, {cx - size, cy - size}, {cx - size, cy + size}}
	case langton.Down:
		return [3][2]float32{{cx, cy + size}, {cx - size, cy - size}, {cx + size, cy - size}}
	default:
		return [3][2]float32{{cx - size, cy}, {cx + size, cy - size}, {cx + size, cy + size}}
	}
}
