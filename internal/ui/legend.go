//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"turmites/internal/langton"
)

const swatchSize = 16

// Legend lists the states of the active rule with their colors and turns
// along the bottom of the screen.
type Legend struct {
	Visible bool
}

// NewLegend returns a hidden legend.
func NewLegend() *Legend { return &Legend{} }

// Draw paints one swatch per state of rule.
func (l *Legend) Draw(screen *ebiten.Image, rule *langton.Rule) {
	if l == nil || !l.Visible || rule == nil {
		return
	}
	face := basicfont.Face7x13
	y := float32(screen.Bounds().Dy() - panelPadding - swatchSize)
	turns := rule.Turns()
	x := float32(panelPadding)
	for state, c := range rule.Palette() {
		vector.DrawFilledRect(screen, x, y, swatchSize, swatchSize, c, false)
		vector.StrokeRect(screen, x, y, swatchSize, swatchSize, 1, color.White, false)
		label := fmt.Sprintf("%d%c", state, turns[state])
		text.Draw(screen, label, face, int(x), int(y)-4, labelColor)
		x += swatchSize + float32(len(label))*7 + 8
	}
}
