//go:build ebiten

package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"turmites/internal/core"
	"turmites/internal/langton"
)

// Ants are drawn as triangles once a cell is at least this many pixels wide;
// below that they are single pixels in the cell image.
const minTriangleCell = 4

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Board draws the visible part of an engine: cells, grid lines, ants and the
// placement cursor.
type Board struct {
	img  *ebiten.Image
	buf  []byte
	size core.Size

	Background  color.RGBA
	GridColor   color.RGBA
	CursorColor color.RGBA

	vs []ebiten.Vertex
	is []uint16
}

// NewBoard returns a board with the default colors.
func NewBoard() *Board {
	return &Board{
		Background:  color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff},
		GridColor:   color.RGBA{R: 130, G: 130, B: 130, A: 255},
		CursorColor: color.RGBA{R: 230, G: 41, B: 55, A: 255},
	}
}

// Draw paints the cells and ants visible through cam.
func (b *Board) Draw(dst *ebiten.Image, cam *Camera, e *langton.Engine) {
	bounds := dst.Bounds()
	view := cam.VisibleRange(bounds.Dx(), bounds.Dy())
	if view.Empty() {
		return
	}
	triangles := cam.ScaledCellSize() >= minTriangleCell

	b.ensureImage(view.Size())
	fillViewport(b.buf, view, e, e.Rule().Palette(), b.Background)
	if !triangles {
		e.EachAntInRegion(view, func(a langton.Ant) bool {
			markAnt(b.buf, view, a)
			return true
		})
	}
	b.img.WritePixels(b.buf)

	scaled := cam.ScaledCellSize()
	x, y := cam.GridToScreen(core.Point{X: view.MinX, Y: view.MinY})
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scaled, scaled)
	op.GeoM.Translate(x, y)
	dst.DrawImage(b.img, op)

	if cam.ShowGridLines() {
		b.drawGridLines(dst, cam, view)
	}
	if triangles {
		b.drawAnts(dst, cam, view, e)
	}
}

// DrawCursor outlines the placement rectangle anchored at cell p.
func (b *Board) DrawCursor(dst *ebiten.Image, cam *Camera, p core.Point, cursor core.Size) {
	x, y := cam.GridToScreen(p)
	scaled := cam.ScaledCellSize()
	vector.StrokeRect(dst, float32(x), float32(y), float32(float64(cursor.W)*scaled), float32(float64(cursor.H)*scaled), 6, b.CursorColor, false)
}

func (b *Board) ensureImage(size core.Size) {
	if b.img != nil && b.size == size {
		return
	}
	if b.img != nil {
		b.img.Dispose()
	}
	b.size = size
	b.img = ebiten.NewImage(size.W, size.H)
	b.buf = make([]byte, 4*size.W*size.H)
}

func (b *Board) drawGridLines(dst *ebiten.Image, cam *Camera, view core.Rect) {
	bounds := dst.Bounds()
	w, h := float32(bounds.Dx()), float32(bounds.Dy())
	for gx := view.MinX; gx <= view.MaxX; gx++ {
		x, _ := cam.GridToScreen(core.Point{X: gx})
		vector.StrokeLine(dst, float32(x), 0, float32(x), h, 1, b.GridColor, false)
	}
	for gy := view.MinY; gy <= view.MaxY; gy++ {
		_, y := cam.GridToScreen(core.Point{Y: gy})
		vector.StrokeLine(dst, 0, float32(y), w, float32(y), 1, b.GridColor, false)
	}
}

func (b *Board) drawAnts(dst *ebiten.Image, cam *Camera, view core.Rect, e *langton.Engine) {
	scaled := cam.ScaledCellSize()
	half := float32(scaled / 2)
	b.vs, b.is = b.vs[:0], b.is[:0]

	e.EachAntInRegion(view, func(a langton.Ant) bool {
		x, y := cam.GridToScreen(a.Pos())
		tri := antTriangle(float32(x)+half, float32(y)+half, half, a.Direction)
		var path vector.Path
		path.MoveTo(tri[0][0], tri[0][1])
		path.LineTo(tri[1][0], tri[1][1])
		path.LineTo(tri[2][0], tri[2][1])
		path.Close()

		start := len(b.vs)
		b.vs, b.is = path.AppendVerticesAndIndicesForFilling(b.vs, b.is)
		c := DirectionColor(a.Direction)
		for i := start; i < len(b.vs); i++ {
			b.vs[i].SrcX, b.vs[i].SrcY = 1, 1
			b.vs[i].ColorR = float32(c.R) / 0xff
			b.vs[i].ColorG = float32(c.G) / 0xff
			b.vs[i].ColorB = float32(c.B) / 0xff
			b.vs[i].ColorA = 1
		}
		// Indices are uint16; flush well before they overflow.
		if len(b.vs) > 60000 {
			b.flushTriangles(dst)
		}
		return true
	})
	b.flushTriangles(dst)
}

func (b *Board) flushTriangles(dst *ebiten.Image) {
	if len(b.is) > 0 {
		dst.DrawTriangles(b.vs, b.is, whiteSubImage, &ebiten.DrawTrianglesOptions{})
	}
	b.vs, b.is = b.vs[:0], b.is[:0]
}
