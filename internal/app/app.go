//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"turmites/internal/langton"
	"turmites/internal/render"
	"turmites/internal/ui"
)

var ruleKeys = []ebiten.Key{
	ebiten.KeyF1, ebiten.KeyF2, ebiten.KeyF3, ebiten.KeyF4, ebiten.KeyF5, ebiten.KeyF6,
	ebiten.KeyF7, ebiten.KeyF8, ebiten.KeyF9, ebiten.KeyF10, ebiten.KeyF11, ebiten.KeyF12,
}

var keyBindings = []struct {
	key  ebiten.Key
	kind ActionKind
}{
	{ebiten.KeyArrowUp, ActionCursorTaller},
	{ebiten.KeyArrowDown, ActionCursorShorter},
	{ebiten.KeyArrowRight, ActionCursorWider},
	{ebiten.KeyArrowLeft, ActionCursorNarrower},
	{ebiten.KeyR, ActionClearAnts},
	{ebiten.KeyT, ActionClearGrid},
	{ebiten.KeySpace, ActionTogglePause},
	{ebiten.KeyF, ActionSingleStep},
	{ebiten.KeyJ, ActionSpeedUp},
	{ebiten.KeyK, ActionSpeedReset},
	{ebiten.KeyL, ActionToggleLegend},
	{ebiten.KeyH, ActionTogglePanel},
}

// Game adapts the engine to the ebiten.Game interface.
type Game struct {
	ctrl   *Controller
	board  *render.Board
	hud    *ui.HUD
	legend *ui.Legend
	meter  *ui.RateMeter

	actions []Action
	panel   bool
}

// New constructs a Game driving e.
func New(e *langton.Engine, cellSize, panelWidth int) *Game {
	cam := render.NewCamera()
	if cellSize > 0 {
		cam.CellSize = cellSize
	}
	g := &Game{
		ctrl:   NewController(e, cam),
		board:  render.NewBoard(),
		legend: ui.NewLegend(),
		meter:  ui.NewRateMeter(time.Second),
		hud:    ui.NewHUD(e, panelWidth),
		panel:  panelWidth > 0,
	}
	return g
}

// Update polls input, applies it and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.hud.ShowPanel = g.panel && g.ctrl.ShowPanel
	clickConsumed := g.hud.Update()

	g.actions = g.pollActions(g.actions[:0], clickConsumed)
	stepped := g.ctrl.Tick(g.actions)
	g.meter.Add(time.Now(), stepped)
	g.legend.Visible = g.ctrl.ShowLegend
	return nil
}

func (g *Game) pollActions(out []Action, clickConsumed bool) []Action {
	mx, my := ebiten.CursorPosition()
	fx, fy := float64(mx), float64(my)

	if _, wy := ebiten.Wheel(); wy != 0 {
		out = append(out, Action{Kind: ActionZoom, Factor: 1 + wy*0.1, X: fx, Y: fy})
	}
	pan := [...]struct {
		key    ebiten.Key
		dx, dy float64
	}{
		{ebiten.KeyW, 0, -1}, {ebiten.KeyS, 0, 1}, {ebiten.KeyA, -1, 0}, {ebiten.KeyD, 1, 0},
	}
	for _, p := range pan {
		if ebiten.IsKeyPressed(p.key) {
			out = append(out, Action{Kind: ActionPan, X: p.dx, Y: p.dy})
		}
	}

	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			out = append(out, Action{Kind: b.kind})
		}
	}
	for i, key := range ruleKeys {
		if inpututil.IsKeyJustPressed(key) {
			out = append(out, Action{Kind: ActionSelectRule, Index: i})
		}
	}
	out = append(out, Action{Kind: ActionHideBoard, On: ebiten.IsKeyPressed(ebiten.KeyTab)})

	place := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		(ebiten.IsKeyPressed(ebiten.KeyShiftLeft) && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
	if place && !clickConsumed && !g.hud.Contains(mx, my) {
		out = append(out, Action{Kind: ActionPlace, Cell: g.ctrl.Camera.ScreenToGrid(fx, fy)})
	}
	return out
}

// Draw renders the board, the cursor and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff})
	e, cam := g.ctrl.Engine, g.ctrl.Camera
	mx, my := ebiten.CursorPosition()
	mouseCell := cam.ScreenToGrid(float64(mx), float64(my))

	if !g.ctrl.HideBoard {
		g.board.Draw(screen, cam, e)
		g.board.DrawCursor(screen, cam, mouseCell, e.Cursor())
	}
	g.legend.Draw(screen, e.Rule())

	view := cam.VisibleRange(screen.Bounds().Dx(), screen.Bounds().Dy())
	stats := ui.Stats{
		Zoom:        cam.Zoom,
		Cells:       e.CellCount(),
		VisibleAnts: e.VisibleAnts(view),
		TotalAnts:   e.AntCount(),
		Iteration:   e.Iteration(),
		Speed:       e.Speed(),
		Rate:        g.meter.Rate(time.Now()),
		Rule:        e.Rule().Name(),
		Paused:      e.Paused(),
		Mouse:       mouseCell,
		Cursor:      e.Cursor(),
	}
	g.hud.Draw(screen, stats, mx, my)
}

// Layout uses the window size as the logical screen so the visible range
// follows resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
