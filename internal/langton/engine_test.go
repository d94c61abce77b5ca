package langton

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"turmites/internal/core"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	e, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func origin() core.Point { return core.Point{} }

func TestEngineDefaults(t *testing.T) {
	e := newTestEngine(t)
	if !e.Paused() || e.Iteration() != 0 || e.Speed() != 1 || e.RuleIndex() != 0 {
		t.Fatalf("unexpected defaults: paused=%v iteration=%d speed=%d rule=%d", e.Paused(), e.Iteration(), e.Speed(), e.RuleIndex())
	}
	if e.Cursor() != (core.Size{W: 1, H: 1}) {
		t.Fatalf("cursor = %+v, expected 1x1", e.Cursor())
	}
	if e.AntCount() != 0 || e.CellCount() != 0 {
		t.Fatal("new engine must start empty")
	}
}

func TestSingleAntFirstStep(t *testing.T) {
	e := newTestEngine(t)
	e.SetPaused(false)
	e.PlaceAnts(origin())

	if n := e.Step(1); n != 1 {
		t.Fatalf("Step returned %d", n)
	}
	if got := e.CellState(origin()); got != 1 {
		t.Fatalf("cell (0,0) = %d, expected 1", got)
	}
	ants := e.Ants()
	if len(ants) != 1 {
		t.Fatalf("got %d ants", len(ants))
	}
	if ants[0] != (Ant{X: 1, Y: 0, Direction: Right}) {
		t.Fatalf("ant = %+v, expected (1,0) facing Right", ants[0])
	}
	if e.Iteration() != 1 || e.LastDelta() != 1 {
		t.Fatalf("iteration=%d delta=%d", e.Iteration(), e.LastDelta())
	}
}

func TestClassicAntClosesSquare(t *testing.T) {
	e := newTestEngine(t)
	e.SetPaused(false)
	e.PlaceAnts(origin())
	e.Step(5)

	ants := e.Ants()
	if len(ants) != 1 || ants[0] != (Ant{X: -1, Y: 0, Direction: Left}) {
		t.Fatalf("ants = %+v, expected one ant at (-1,0) facing Left", ants)
	}
	want := map[core.Point]uint8{{X: 0, Y: 0}: 0, {X: 1, Y: 0}: 1, {X: 1, Y: 1}: 1, {X: 0, Y: 1}: 1}
	got := e.GridSnapshot()
	if len(got) != len(want) {
		t.Fatalf("grid = %v, expected %v", got, want)
	}
	for p, v := range want {
		if got[p] != v {
			t.Fatalf("cell %v = %d, expected %d", p, got[p], v)
		}
	}
	if e.Iteration() != 5 {
		t.Fatalf("iteration = %d", e.Iteration())
	}
}

func TestPausedStepDoesNothing(t *testing.T) {
	e := newTestEngine(t)
	e.PlaceAnts(origin())
	if n := e.Tick(); n != 0 {
		t.Fatalf("paused Tick performed %d iterations", n)
	}
	if e.CellCount() != 0 || e.Iteration() != 0 || e.LastDelta() != 0 {
		t.Fatal("paused engine must not advance")
	}
	e.StepOnce()
	if e.Iteration() != 1 || e.CellState(origin()) != 1 || !e.Paused() {
		t.Fatalf("StepOnce: iteration=%d paused=%v", e.Iteration(), e.Paused())
	}
}

func TestEngineBehavior(t *testing.T) {
	Convey("Given an unpaused engine running the classic rule", t, func() {
		e := newTestEngine(t)
		e.SetPaused(false)

		Convey("Ants sharing a cell all read the state it had before the step", func() {
			e.AddAnt(Ant{Direction: Up})
			e.AddAnt(Ant{Direction: Down})
			e.AddAnt(Ant{Direction: Up})
			e.Step(1)

			So(e.CellState(origin()), ShouldEqual, 1)
			So(e.AntsAt(core.Point{X: 1, Y: 0}), ShouldResemble, []Ant{{X: 1, Y: 0, Direction: Right}, {X: 1, Y: 0, Direction: Right}})
			So(e.AntsAt(core.Point{X: -1, Y: 0}), ShouldResemble, []Ant{{X: -1, Y: 0, Direction: Left}})
			So(e.OccupiedCells(), ShouldEqual, 2)
		})

		Convey("The ant population is preserved by stepping", func() {
			e.IncrementCursorX(2)
			e.IncrementCursorY(3)
			e.PlaceAnts(core.Point{X: -2, Y: 5})
			e.PlaceAnts(core.Point{X: -2, Y: 5})
			So(e.AntCount(), ShouldEqual, 24)

			for i := 0; i < 50; i++ {
				e.Step(7)
				So(e.AntCount(), ShouldEqual, 24)
				So(len(e.Ants()), ShouldEqual, 24)
			}
			So(e.Iteration(), ShouldEqual, 350)
		})

		Convey("Every stored ant sits under its own coordinate", func() {
			e.IncrementCursorX(4)
			e.IncrementCursorY(4)
			e.PlaceAnts(origin())
			e.Step(40)
			e.ants.ascend(func(c *antCell) bool {
				for _, a := range c.ants {
					So(a.Pos(), ShouldResemble, c.pos)
				}
				return true
			})
		})

		Convey("Tick performs Speed iterations", func() {
			e.PlaceAnts(origin())
			e.SetSpeed(8)
			So(e.Tick(), ShouldEqual, 8)
			So(e.Iteration(), ShouldEqual, 8)
			So(e.LastDelta(), ShouldEqual, 8)

			e.SetSpeed(0)
			So(e.Speed(), ShouldEqual, 1)
		})

		Convey("Cell states stay below the rule length", func() {
			So(e.SelectRule(2), ShouldBeTrue)
			e.SetPaused(false)
			e.IncrementCursorX(3)
			e.PlaceAnts(origin())
			e.Step(300)
			e.EachCell(func(_ core.Point, v uint8) bool {
				So(int(v), ShouldBeLessThan, e.Rule().Len())
				return true
			})
		})

		Convey("Reset clears ants, grid and the iteration counter", func() {
			e.PlaceAnts(origin())
			e.Step(3)
			e.Reset()
			So(e.AntCount(), ShouldEqual, 0)
			So(e.CellCount(), ShouldEqual, 0)
			So(e.Iteration(), ShouldEqual, 0)
		})

		Convey("ClearAnts and ClearGrid empty their own store only", func() {
			e.PlaceAnts(origin())
			e.Step(2)
			e.ClearAnts()
			So(e.AntCount(), ShouldEqual, 0)
			So(e.CellCount(), ShouldEqual, 2)
			e.ClearGrid()
			So(e.CellCount(), ShouldEqual, 0)
			So(e.Iteration(), ShouldEqual, 2)
		})
	})
}

func TestSelectRule(t *testing.T) {
	Convey("Given an engine with a running simulation", t, func() {
		var logs bytes.Buffer
		cfg := DefaultConfig()
		cfg.Logger = slog.New(slog.NewTextHandler(&logs, nil))
		e, err := New(cfg)
		So(err, ShouldBeNil)
		e.SetPaused(false)
		e.PlaceAnts(origin())
		e.Step(4)

		Convey("An out-of-range index is reported and ignored", func() {
			So(e.SelectRule(len(e.Rules())), ShouldBeFalse)
			So(e.SelectRule(-1), ShouldBeFalse)
			So(e.RuleIndex(), ShouldEqual, 0)
			So(e.AntCount(), ShouldEqual, 1)
			So(e.CellCount(), ShouldEqual, 4)
			So(e.Iteration(), ShouldEqual, 4)
			So(logs.String(), ShouldContainSubstring, "rule index out of range")
		})

		Convey("A valid index switches rule and resets", func() {
			So(e.SelectRule(4), ShouldBeTrue)
			So(e.RuleIndex(), ShouldEqual, 4)
			So(e.Rule().Name(), ShouldEqual, "Brain")
			So(e.AntCount(), ShouldEqual, 0)
			So(e.CellCount(), ShouldEqual, 0)
			So(e.Iteration(), ShouldEqual, 0)
		})
	})
}

func TestCursorBounds(t *testing.T) {
	e := newTestEngine(t)
	ops := []func(int){e.IncrementCursorX, e.DecrementCursorX, e.IncrementCursorY, e.DecrementCursorY}
	rng := core.NewRNG(7)
	for i := 0; i < 2000; i++ {
		op := ops[rng.IntRange(0, len(ops)-1)]
		op(rng.IntRange(0, 40))
		c := e.Cursor()
		if c.W < 0 || c.W > 10 || c.H < 0 || c.H > 10 {
			t.Fatalf("cursor %+v escaped [0,10] after %d operations", c, i+1)
		}
	}

	e.IncrementCursorX(1000)
	e.DecrementCursorY(1000)
	if c := e.Cursor(); c.W != 10 || c.H != 0 {
		t.Fatalf("cursor = %+v, expected saturation at 10x0", c)
	}
	e.PlaceAnts(origin())
	if e.AntCount() != 0 {
		t.Fatalf("zero-height cursor placed %d ants", e.AntCount())
	}
}

func TestPlaceAntsFillsCursor(t *testing.T) {
	e := newTestEngine(t)
	e.IncrementCursorX(2)
	e.IncrementCursorY(1)
	e.PlaceAnts(core.Point{X: 10, Y: -3})
	if e.AntCount() != 6 {
		t.Fatalf("placed %d ants, expected 6", e.AntCount())
	}
	for x := 10; x < 13; x++ {
		for y := -3; y < -1; y++ {
			ants := e.AntsAt(core.Point{X: x, Y: y})
			if len(ants) != 1 || ants[0].Direction != Up {
				t.Fatalf("cell (%d,%d) holds %+v", x, y, ants)
			}
		}
	}
}

func TestNewRejectsBadCatalog(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Presets = nil
	if _, err := New(cfg); err != ErrEmptyCatalog {
		t.Fatalf("error = %v, expected ErrEmptyCatalog", err)
	}
	cfg.Presets = []Preset{{Name: "bad", Turns: "RLU"}}
	if _, err := New(cfg); err == nil {
		t.Fatal("malformed preset accepted")
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"speed": "16", "rule": "3", "max_cursor": "x", "paused": "false"})
	if c.Speed != 16 || c.Rule != 3 || c.MaxCursor != 10 || c.Paused {
		t.Fatalf("config = %+v", c)
	}
	if d := FromMap(nil); d.Speed != 1 || !d.Paused {
		t.Fatalf("defaults = %+v", d)
	}
}

func TestParameterControls(t *testing.T) {
	e := newTestEngine(t)
	if !e.SetIntParameter("speed", 32) || e.Speed() != 32 {
		t.Fatalf("speed = %d", e.Speed())
	}
	if !e.SetIntParameter("cursor_w", 50) || e.Cursor().W != 10 {
		t.Fatalf("cursor = %+v", e.Cursor())
	}
	if e.SetIntParameter("rule", 99) || e.RuleIndex() != 0 {
		t.Fatal("out-of-range rule accepted")
	}
	if !e.SetIntParameter("rule", 1) || e.RuleIndex() != 1 {
		t.Fatal("rule parameter ignored")
	}
	if e.SetIntParameter("nope", 1) {
		t.Fatal("unknown key accepted")
	}
	p, ok := e.Parameters().Lookup("rule_name")
	if !ok || p.Value != "Lettuce" {
		t.Fatalf("rule_name = %+v", p)
	}
}
