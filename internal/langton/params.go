package langton

import (
	"strconv"

	"turmites/internal/core"
)

const (
	paramSpeed   = "speed"
	paramRule    = "rule"
	paramCursorW = "cursor_w"
	paramCursorH = "cursor_h"
)

// Parameters exposes the engine settings for display.
func (e *Engine) Parameters() core.ParameterSnapshot {
	rule := e.Rule()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Simulation",
			Params: []core.Parameter{
				intParam(paramSpeed, "Speed", e.speed),
				boolParam("paused", "Paused", e.paused),
				{Key: "iteration", Label: "Iteration", Type: core.ParamTypeInt, Value: strconv.FormatUint(e.iteration, 10)},
			},
		},
		{
			Name: "Rule",
			Params: []core.Parameter{
				intParam(paramRule, "Rule", e.selected),
				stringParam("rule_name", "Name", rule.Name()),
				stringParam("rule_turns", "Turns", rule.Turns()),
				intParam("rule_states", "States", rule.Len()),
			},
		},
		{
			Name: "Cursor",
			Params: []core.Parameter{
				intParam(paramCursorW, "Cursor width", e.cursor.W),
				intParam(paramCursorH, "Cursor height", e.cursor.H),
			},
		},
	}}
}

// ParameterControls lists the settings the HUD may adjust.
func (e *Engine) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: paramSpeed, Label: "Speed", Step: 1, Min: 1, HasMin: true},
		{Key: paramRule, Label: "Rule", Step: 1, Min: 0, Max: len(e.rules) - 1, HasMin: true, HasMax: true},
		{Key: paramCursorW, Label: "Cursor width", Step: 1, Min: 1, Max: e.maxCursor, HasMin: true, HasMax: true},
		{Key: paramCursorH, Label: "Cursor height", Step: 1, Min: 1, Max: e.maxCursor, HasMin: true, HasMax: true},
	}
}

// SetIntParameter applies a HUD edit. It reports whether key is known and the
// value was accepted.
func (e *Engine) SetIntParameter(key string, value int) bool {
	switch key {
	case paramSpeed:
		e.SetSpeed(value)
	case paramRule:
		if value == e.selected {
			return true
		}
		return e.SelectRule(value)
	case paramCursorW:
		e.cursor.W = e.clampCursor(value)
	case paramCursorH:
		e.cursor.H = e.clampCursor(value)
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(value)}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: value}
}
