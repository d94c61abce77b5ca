package langton

import (
	"log/slog"

	"github.com/google/btree"

	"turmites/internal/core"
)

// Engine owns the grid, the ant population and the rule catalog of one
// simulation. It is not safe for concurrent use; drivers call it from a
// single loop.
type Engine struct {
	grid *core.SparseGrid
	ants *antIndex
	free *btree.FreeListG[*antCell]

	rules    []*Rule
	selected int

	paused    bool
	iteration uint64
	speed     int
	delta     int

	cursor    core.Size
	maxCursor int

	log *slog.Logger
}

// New builds an engine from cfg. It fails when the catalog is empty or one of
// its presets is malformed.
func New(cfg Config) (*Engine, error) {
	rules, err := BuildRules(cfg.Presets)
	if err != nil {
		return nil, err
	}
	return NewWithRules(cfg, rules)
}

// NewWithRules builds an engine around prebuilt rules; cfg.Presets is
// ignored.
func NewWithRules(cfg Config, rules []*Rule) (*Engine, error) {
	if len(rules) == 0 {
		return nil, ErrEmptyCatalog
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	maxCursor := cfg.MaxCursor
	if maxCursor <= 0 {
		maxCursor = DefaultConfig().MaxCursor
	}
	speed := cfg.Speed
	if speed <= 0 {
		speed = 1
	}
	free := btree.NewFreeListG[*antCell](btree.DefaultFreeListSize)
	e := &Engine{
		grid:      core.NewSparseGrid(),
		ants:      newAntIndex(free),
		free:      free,
		rules:     rules,
		paused:    cfg.Paused,
		speed:     speed,
		cursor:    core.Size{W: 1, H: 1},
		maxCursor: maxCursor,
		log:       logger,
	}
	e.SelectRule(cfg.Rule)
	return e, nil
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "langton" }

// Tick performs Speed iterations unless the engine is paused.
func (e *Engine) Tick() int { return e.Step(e.speed) }

// Step performs n iterations unless the engine is paused. It returns the
// number of iterations performed, which is also reported by LastDelta.
func (e *Engine) Step(n int) int {
	if e.paused || n <= 0 {
		e.delta = 0
		return 0
	}
	e.run(n)
	return n
}

// StepOnce performs exactly one iteration regardless of the pause state.
func (e *Engine) StepOnce() { e.run(1) }

func (e *Engine) run(n int) {
	rule := e.rules[e.selected]
	for i := 0; i < n; i++ {
		e.iterate(rule)
	}
	e.iteration += uint64(n)
	e.delta = n
}

// iterate advances every ant by one cell. The index is rebuilt from scratch:
// each occupied cell is read once, its state is bumped, and all ants that
// were standing on it turn by the state they found before the bump.
func (e *Engine) iterate(rule *Rule) {
	prev := e.ants
	next := newAntIndex(e.free)
	states := rule.Len()

	prev.ascend(func(c *antCell) bool {
		current := int(e.grid.Get(c.pos)) % states
		e.grid.Set(c.pos, uint8((current+1)%states))

		for _, a := range c.ants {
			a.Direction = rule.apply(a.Direction, uint8(current))
			a.advance()
			next.insert(a)
		}
		return true
	})

	e.ants = next
	prev.clear()
}

// PlaceAnts adds one ant facing Up on every cell of the cursor rectangle
// whose top-left corner is origin.
func (e *Engine) PlaceAnts(origin core.Point) {
	for x := 0; x < e.cursor.W; x++ {
		for y := 0; y < e.cursor.H; y++ {
			e.ants.insert(NewAnt(origin.Add(x, y), Up))
		}
	}
}

// AddAnt adds a single ant.
func (e *Engine) AddAnt(a Ant) { e.ants.insert(a) }

// ClearAnts removes every ant.
func (e *Engine) ClearAnts() { e.ants.clear() }

// ClearGrid forgets every visited cell.
func (e *Engine) ClearGrid() { e.grid.Clear() }

// Reset clears ants and grid and rewinds the iteration counter.
func (e *Engine) Reset() {
	e.ClearGrid()
	e.ClearAnts()
	e.iteration = 0
	e.delta = 0
}

// SelectRule makes rules[index] active and resets the simulation, since cell
// states mean different things under different rules. An index outside the
// catalog is logged and ignored.
func (e *Engine) SelectRule(index int) bool {
	if index < 0 || index >= len(e.rules) {
		e.log.Warn("rule index out of range", "index", index, "rules", len(e.rules))
		return false
	}
	e.selected = index
	e.Reset()
	return true
}

// Rule returns the active rule.
func (e *Engine) Rule() *Rule { return e.rules[e.selected] }

// RuleIndex returns the index of the active rule.
func (e *Engine) RuleIndex() int { return e.selected }

// Rules returns the catalog in selection order.
func (e *Engine) Rules() []*Rule {
	out := make([]*Rule, len(e.rules))
	copy(out, e.rules)
	return out
}

// Paused reports whether Step and Tick are suspended.
func (e *Engine) Paused() bool { return e.paused }

// SetPaused sets the pause state.
func (e *Engine) SetPaused(v bool) { e.paused = v }

// TogglePause flips the pause state.
func (e *Engine) TogglePause() { e.paused = !e.paused }

// Speed returns the iterations performed per Tick.
func (e *Engine) Speed() int { return e.speed }

// SetSpeed changes the iterations performed per Tick. Values below 1 are
// raised to 1.
func (e *Engine) SetSpeed(v int) {
	if v < 1 {
		v = 1
	}
	e.speed = v
}

// Iteration returns the number of iterations performed since the last reset.
func (e *Engine) Iteration() uint64 { return e.iteration }

// LastDelta returns the iterations performed by the latest Step, Tick or
// StepOnce call.
func (e *Engine) LastDelta() int { return e.delta }

// Cursor returns the placement rectangle dimensions.
func (e *Engine) Cursor() core.Size { return e.cursor }

// MaxCursor returns the largest allowed value of either cursor axis.
func (e *Engine) MaxCursor() int { return e.maxCursor }

// IncrementCursorX widens the cursor by delta, saturating at MaxCursor.
func (e *Engine) IncrementCursorX(delta int) { e.cursor.W = e.clampCursor(e.cursor.W + delta) }

// IncrementCursorY heightens the cursor by delta, saturating at MaxCursor.
func (e *Engine) IncrementCursorY(delta int) { e.cursor.H = e.clampCursor(e.cursor.H + delta) }

// DecrementCursorX narrows the cursor by delta, saturating at 0.
func (e *Engine) DecrementCursorX(delta int) { e.cursor.W = e.clampCursor(e.cursor.W - delta) }

// DecrementCursorY shortens the cursor by delta, saturating at 0.
func (e *Engine) DecrementCursorY(delta int) { e.cursor.H = e.clampCursor(e.cursor.H - delta) }

func (e *Engine) clampCursor(v int) int {
	if v < 0 {
		return 0
	}
	if v > e.maxCursor {
		return e.maxCursor
	}
	return v
}

// CellState returns the state of the cell at p, 0 when unvisited.
func (e *Engine) CellState(p core.Point) uint8 { return e.grid.Get(p) }

// CellCount returns the number of visited cells.
func (e *Engine) CellCount() int { return e.grid.Len() }

// EachCell calls fn for every visited cell until fn returns false. fn must
// not mutate the engine.
func (e *Engine) EachCell(fn func(p core.Point, state uint8) bool) { e.grid.Each(fn) }

// GridSnapshot returns a copy of every visited cell.
func (e *Engine) GridSnapshot() map[core.Point]uint8 { return e.grid.Snapshot() }

// AntCount returns the number of ants.
func (e *Engine) AntCount() int { return e.ants.len() }

// OccupiedCells returns the number of distinct coordinates holding ants.
func (e *Engine) OccupiedCells() int { return e.ants.cells() }

// AntsAt returns copies of the ants standing on p.
func (e *Engine) AntsAt(p core.Point) []Ant {
	ants := e.ants.at(p)
	if len(ants) == 0 {
		return nil
	}
	out := make([]Ant, len(ants))
	copy(out, ants)
	return out
}

// Ants returns copies of every ant in coordinate order.
func (e *Engine) Ants() []Ant {
	out := make([]Ant, 0, e.ants.len())
	e.ants.ascend(func(c *antCell) bool {
		out = append(out, c.ants...)
		return true
	})
	return out
}
