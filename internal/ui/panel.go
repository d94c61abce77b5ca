package ui

import (
	"image"
	"strconv"

	"turmites/internal/core"
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	controlsTop    = panelPadding + headerBaseline + 14
)

// Panel tracks the adjustable parameters of a simulation and the hit boxes of
// their -/+ buttons. Coordinates are relative to the panel's top-left corner.
type Panel struct {
	width    int
	controls []controlState
	setter   core.IntParameterSetter
}

type controlState struct {
	control  core.ParameterControl
	value    int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewPanel lays out the controls of sim for a panel of the given width. sim
// may implement core.ParameterControlsProvider and core.IntParameterSetter;
// without them the panel is read-only.
func NewPanel(sim any, width int) *Panel {
	p := &Panel{width: width}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			p.controls = append(p.controls, controlState{control: ctrl})
		}
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		p.setter = setter
	}
	p.layout()
	return p
}

// Refresh copies current values out of a parameter snapshot.
func (p *Panel) Refresh(snapshot core.ParameterSnapshot) {
	for i := range p.controls {
		state := &p.controls[i]
		param, ok := snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			continue
		}
		v, err := strconv.Atoi(param.Value)
		state.value, state.hasValue = v, err == nil
	}
}

// Click applies a press at panel coordinates (x, y). It reports whether a
// button was hit and the setter accepted the new value.
func (p *Panel) Click(x, y int) bool {
	pt := image.Pt(x, y)
	for i := range p.controls {
		state := &p.controls[i]
		if !state.hasValue {
			continue
		}
		if pt.In(state.minusRect) {
			return p.adjust(state, -1)
		}
		if pt.In(state.plusRect) {
			return p.adjust(state, 1)
		}
	}
	return false
}

func (p *Panel) adjust(state *controlState, direction int) bool {
	if !p.canAdjust(state, direction) {
		return false
	}
	target := state.control.Clamp(state.value + direction*stepOf(state.control))
	if !p.setter.SetIntParameter(state.control.Key, target) {
		return false
	}
	state.value = target
	return true
}

func (p *Panel) canAdjust(state *controlState, direction int) bool {
	if p.setter == nil || !state.hasValue {
		return false
	}
	target := state.value + direction*stepOf(state.control)
	if state.control.HasMin && direction < 0 && target < state.control.Min {
		return false
	}
	if state.control.HasMax && direction > 0 && target > state.control.Max {
		return false
	}
	return true
}

func stepOf(ctrl core.ParameterControl) int {
	if ctrl.Step <= 0 {
		return 1
	}
	return ctrl.Step
}

func (p *Panel) layout() {
	for i := range p.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(p.width-panelPadding-buttonSize, buttonY, p.width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		p.controls[i].top = top
		p.controls[i].minusRect = minus
		p.controls[i].plusRect = plus
	}
}

// Height returns the pixel height needed to show every control.
func (p *Panel) Height() int {
	return controlsTop + len(p.controls)*lineHeight + panelPadding
}
