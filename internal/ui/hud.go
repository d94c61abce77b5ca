//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"turmites/internal/core"
)

type parameterProvider interface {
	Name() string
	Parameters() core.ParameterSnapshot
}

var (
	statsColor  = color.RGBA{R: 0x70, G: 0x1f, B: 0x7e, A: 0xff}
	headerColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

// HUD draws the statistics block and the parameter panel on the left edge of
// the screen.
type HUD struct {
	sim   parameterProvider
	panel *Panel
	width int
	title string

	img   *ebiten.Image
	pixel *ebiten.Image

	// ShowPanel toggles the parameter panel; the statistics are always drawn.
	ShowPanel bool
}

// NewHUD constructs a HUD for sim with a panel of the given width.
func NewHUD(sim parameterProvider, width int) *HUD {
	h := &HUD{
		sim:       sim,
		panel:     NewPanel(sim, width),
		width:     width,
		title:     fmt.Sprintf("%s controls", sim.Name()),
		pixel:     ebiten.NewImage(1, 1),
		ShowPanel: width > 0,
	}
	h.pixel.Fill(color.White)
	return h
}

// Update refreshes the panel values and applies clicks on its buttons. It
// reports whether the click was consumed so the caller does not also treat
// it as a placement.
func (h *HUD) Update() bool {
	if h == nil || !h.ShowPanel {
		return false
	}
	h.panel.Refresh(h.sim.Parameters())
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx >= h.width || my >= h.panel.Height() {
		return false
	}
	h.panel.Click(mx, my)
	return true
}

// Contains reports whether the screen position lies over the panel.
func (h *HUD) Contains(x, y int) bool {
	return h != nil && h.ShowPanel && x < h.width && y < h.panel.Height()
}

// Draw paints the panel and the statistics block.
func (h *HUD) Draw(screen *ebiten.Image, stats Stats, mouseX, mouseY int) {
	if h == nil {
		return
	}
	if h.ShowPanel {
		h.drawPanel(screen)
	}
	face := basicfont.Face7x13
	sw := screen.Bounds().Dx()
	for i, line := range stats.Lines() {
		w := text.BoundString(face, line).Dx()
		text.Draw(screen, line, face, sw-w-panelPadding, panelPadding+headerBaseline+i*20, statsColor)
	}
	text.Draw(screen, stats.MouseLabel(), face, mouseX+12, mouseY, statsColor)
}

func (h *HUD) drawPanel(screen *ebiten.Image) {
	height := h.panel.Height()
	if h.img == nil || h.img.Bounds().Dy() != height {
		h.img = ebiten.NewImage(h.width, height)
	}
	h.img.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 220})

	face := basicfont.Face7x13
	text.Draw(h.img, h.title, face, panelPadding, panelPadding+headerBaseline, headerColor)
	if len(h.panel.controls) == 0 {
		text.Draw(h.img, "No adjustable parameters", face, panelPadding, controlsTop+labelBaseline, mutedColor)
	}
	for i := range h.panel.controls {
		state := &h.panel.controls[i]
		text.Draw(h.img, state.control.Label, face, panelPadding, state.top+labelBaseline, labelColor)

		value, valueColor := "--", mutedColor
		if state.hasValue {
			value, valueColor = fmt.Sprint(state.value), labelColor
		}
		w := text.BoundString(face, value).Dx()
		text.Draw(h.img, value, face, state.minusRect.Min.X-buttonGap-w, state.top+labelBaseline, valueColor)

		h.drawButton(state.minusRect, "-", h.panel.canAdjust(state, -1))
		h.drawButton(state.plusRect, "+", h.panel.canAdjust(state, 1))
	}
	screen.DrawImage(h.img, nil)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.img.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.img, label, face, x, y, fg)
}
