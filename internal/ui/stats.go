package ui

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"turmites/internal/core"
)

// Stats is the telemetry shown in the corner of the screen.
type Stats struct {
	Zoom        float64
	Cells       int
	VisibleAnts int
	TotalAnts   int
	Iteration   uint64
	Speed       int
	Rate        float64
	Rule        string
	Paused      bool
	Mouse       core.Point
	Cursor      core.Size
}

// Lines renders s as the right-aligned HUD block, top to bottom.
func (s Stats) Lines() []string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	return []string{
		fmt.Sprintf("Zoom %.2fx", s.Zoom),
		"Cells: " + humanize.Comma(int64(s.Cells)),
		fmt.Sprintf("Ants: %s/%s", humanize.Comma(int64(s.VisibleAnts)), humanize.Comma(int64(s.TotalAnts))),
		fmt.Sprintf("Iter: %s at %s (%s/s)", humanize.Comma(int64(s.Iteration)), humanize.Comma(int64(s.Speed)), humanize.Comma(int64(s.Rate+0.5))),
		fmt.Sprintf("Rule: %s [%s]", s.Rule, state),
	}
}

// MouseLabel renders the hovered cell and cursor dimensions.
func (s Stats) MouseLabel() string {
	return fmt.Sprintf("(%d, %d)/(%d, %d)", s.Mouse.X, s.Mouse.Y, s.Cursor.W, s.Cursor.H)
}
