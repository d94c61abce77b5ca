//go:build !ebiten

package ui

// HUD is a no-op placeholder for headless builds.
type HUD struct {
	ShowPanel bool
}

// NewHUD returns nil in the headless build.
func NewHUD(any, int) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update() bool { return false }

// Contains always reports false in the headless build.
func (h *HUD) Contains(int, int) bool { return false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, Stats, int, int) {}

// Legend is a no-op placeholder for headless builds.
type Legend struct {
	Visible bool
}

// NewLegend constructs a stub legend.
func NewLegend() *Legend { return &Legend{} }

// Draw is a no-op placeholder.
func (l *Legend) Draw(any, any) {}
