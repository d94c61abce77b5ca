package app

import (
	"turmites/internal/core"
	"turmites/internal/langton"
	"turmites/internal/render"
)

// ActionKind enumerates what an input event asks the simulation to do.
type ActionKind int

const (
	ActionPan ActionKind = iota
	ActionZoom
	ActionCursorWider
	ActionCursorNarrower
	ActionCursorTaller
	ActionCursorShorter
	ActionPlace
	ActionClearAnts
	ActionClearGrid
	ActionTogglePause
	ActionSingleStep
	ActionSelectRule
	ActionSpeedUp
	ActionSpeedReset
	ActionHideBoard
	ActionToggleLegend
	ActionTogglePanel
)

// Action is one decoded input event. Only the fields relevant to Kind are
// set.
type Action struct {
	Kind ActionKind

	// Pan direction, or zoom anchor in screen pixels.
	X, Y float64
	// Zoom multiplier.
	Factor float64
	// Placement cell.
	Cell core.Point
	// Rule index.
	Index int
	// Board visibility for ActionHideBoard.
	On bool
}

// Controller applies actions to an engine and camera. It also holds the view
// toggles the drawing code reads.
type Controller struct {
	Engine *langton.Engine
	Camera *render.Camera

	HideBoard  bool
	ShowLegend bool
	ShowPanel  bool
}

// NewController wires an engine and a camera together.
func NewController(e *langton.Engine, cam *render.Camera) *Controller {
	return &Controller{Engine: e, Camera: cam, ShowPanel: true}
}

// Apply performs a and returns the number of iterations it ran.
func (c *Controller) Apply(a Action) int {
	e := c.Engine
	switch a.Kind {
	case ActionPan:
		c.Camera.Move(a.X, a.Y)
	case ActionZoom:
		c.Camera.ZoomAt(a.Factor, a.X, a.Y)
	case ActionCursorWider:
		if e.Cursor().W < e.MaxCursor() {
			e.IncrementCursorX(1)
		}
	case ActionCursorNarrower:
		if e.Cursor().W > 1 {
			e.DecrementCursorX(1)
		}
	case ActionCursorTaller:
		if e.Cursor().H < e.MaxCursor() {
			e.IncrementCursorY(1)
		}
	case ActionCursorShorter:
		if e.Cursor().H > 1 {
			e.DecrementCursorY(1)
		}
	case ActionPlace:
		e.PlaceAnts(a.Cell)
	case ActionClearAnts:
		e.ClearAnts()
	case ActionClearGrid:
		e.ClearGrid()
	case ActionTogglePause:
		e.TogglePause()
	case ActionSingleStep:
		e.SetPaused(true)
		e.StepOnce()
		return 1
	case ActionSelectRule:
		e.SelectRule(a.Index)
	case ActionSpeedUp:
		e.SetSpeed(e.Speed() * 2)
	case ActionSpeedReset:
		e.SetSpeed(1)
	case ActionHideBoard:
		c.HideBoard = a.On
	case ActionToggleLegend:
		c.ShowLegend = !c.ShowLegend
	case ActionTogglePanel:
		c.ShowPanel = !c.ShowPanel
	}
	return 0
}

// Tick applies the frame's actions and then advances the engine by its
// speed. A frame that single-stepped does not tick again, so LastDelta
// keeps reporting that step. It returns the iterations performed during
// the frame.
func (c *Controller) Tick(actions []Action) int {
	n := 0
	for _, a := range actions {
		n += c.Apply(a)
	}
	if n > 0 {
		return n
	}
	return c.Engine.Tick()
}
