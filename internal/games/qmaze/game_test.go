package qmaze

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/quantum-maze/internal/config"
	"github.com/vovakirdan/quantum-maze/internal/core"
	"github.com/vovakirdan/quantum-maze/internal/maze"
	"github.com/vovakirdan/quantum-maze/internal/registry"
)

func newGame(t *testing.T, cfg config.MazeConfig, v Variant, seed int64) *Game {
	t.Helper()
	g, err := New(cfg, v)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24})
	return g
}

func advanceInput() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionAdvance)
	return in
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultMazeConfig()
	cfg.Quantum.Qubits = 0
	if _, err := New(cfg, VariantUniform); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("New() = %v, want ErrInvalidConfig", err)
	}
}

func TestDeterminism(t *testing.T) {
	cfg := config.DefaultMazeConfig()

	for _, seed := range []int64{1, 42, 12345} {
		g1 := newGame(t, cfg, VariantUniform, seed)
		g2 := newGame(t, cfg, VariantUniform, seed)

		o1 := Run(g1, nil)
		o2 := Run(g2, nil)

		if o1 != o2 {
			t.Errorf("seed %d: outcomes differ: %+v vs %+v", seed, o1, o2)
		}
		if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
			t.Errorf("seed %d: snapshots differ:\n%+v\n%+v", seed, s1, s2)
		}
	}
}

func TestRunTerminates(t *testing.T) {
	cfg := config.DefaultMazeConfig()

	for seed := int64(0); seed < 20; seed++ {
		g := newGame(t, cfg, VariantUniform, seed)

		frames := 0
		lastSteps := 0
		o := Run(g, func(f Frame) {
			frames++
			if f.View.Steps < lastSteps {
				t.Errorf("seed %d: steps went backwards: %d -> %d", seed, lastSteps, f.View.Steps)
			}
			if f.View.Steps > f.View.MaxSteps {
				t.Errorf("seed %d: steps %d exceed max %d", seed, f.View.Steps, f.View.MaxSteps)
			}
			if !f.View.Player.InSquare(f.View.Size) {
				t.Errorf("seed %d: player out of bounds at %+v", seed, f.View.Player)
			}
			lastSteps = f.View.Steps
		})

		if o.Err != nil {
			t.Fatalf("seed %d: Run() error: %v", seed, o.Err)
		}
		if !o.Status.Terminal() {
			t.Errorf("seed %d: Run() ended in %v", seed, o.Status)
		}
		if o.MaxSteps != 2*cfg.Maze.Size*cfg.Maze.Size {
			t.Errorf("seed %d: MaxSteps = %d", seed, o.MaxSteps)
		}
		if frames == 0 {
			t.Errorf("seed %d: no frames delivered", seed)
		}

		view := g.View()
		if o.Won() != (view.Player == view.Exit) {
			t.Errorf("seed %d: won=%v but player %+v exit %+v", seed, o.Won(), view.Player, view.Exit)
		}
		if o.Status == maze.StatusExhausted && o.Steps != o.MaxSteps {
			t.Errorf("seed %d: exhausted at %d of %d steps", seed, o.Steps, o.MaxSteps)
		}
	}
}

func TestStepRequiresAdvance(t *testing.T) {
	g := newGame(t, config.DefaultMazeConfig(), VariantUniform, 7)

	res := g.Step(core.NewInputFrame())
	if res.Moved {
		t.Error("Step without Advance should not move")
	}
	if _, _, ok := g.LastChoice(); ok {
		t.Error("no choice expected before the first advance")
	}

	res = g.Step(advanceInput())
	if !res.Moved {
		t.Error("Step with Advance should measure and move")
	}
	choice, _, ok := g.LastChoice()
	if !ok || len(choice.Bits) != 2 {
		t.Errorf("LastChoice() = %+v, %v", choice, ok)
	}
}

func TestPauseBlocksAdvance(t *testing.T) {
	g := newGame(t, config.DefaultMazeConfig(), VariantUniform, 7)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("expected paused state")
	}

	before := g.Snapshot()
	if res := g.Step(advanceInput()); res.Moved {
		t.Error("paused game should not move")
	}
	if after := g.Snapshot(); after.Steps != before.Steps || after.Player != before.Player {
		t.Error("paused game state changed")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestSingleCellStartsWon(t *testing.T) {
	cfg := config.DefaultMazeConfig()
	cfg.Maze.Size = 1
	g := newGame(t, cfg, VariantUniform, 1)

	if !g.State().Won || !g.State().GameOver {
		t.Fatalf("State() = %+v, want won", g.State())
	}

	frames := 0
	o := Run(g, func(Frame) { frames++ })
	if !o.Won() || o.Steps != 0 || frames != 0 {
		t.Errorf("Run() = %+v with %d frames, want immediate win", o, frames)
	}

	if res := g.Step(advanceInput()); res.Moved {
		t.Error("finished game should ignore Advance")
	}
}

func TestForcedRightWalk(t *testing.T) {
	// RY(pi) on both qubits always measures "11", so every move is R
	cfg := config.DefaultMazeConfig()
	cfg.Maze.Size = 3
	cfg.Maze.WallDensity = 0
	cfg.Quantum.Qubits = 2
	cfg.Quantum.TiltAngles = []float64{math.Pi, math.Pi}
	g := newGame(t, cfg, VariantTilted, 3)

	g.Step(advanceInput())
	choice, result, _ := g.LastChoice()
	if choice.Bits != "11" || choice.Direction != maze.DirRight || result != maze.MoveOK {
		t.Fatalf("first move = %+v (%v), want 11 -> R", choice, result)
	}

	// After two moves the player sits on the right edge and R is a free no-op,
	// so the walk stalls instead of looping forever
	o := Run(g, nil)
	if !errors.Is(o.Err, ErrStalled) {
		t.Fatalf("Run() err = %v, want ErrStalled", o.Err)
	}
	if o.Steps != 2 || g.View().Player != (core.Point{Row: 0, Col: 2}) {
		t.Errorf("stalled at %+v after %d steps", g.View().Player, o.Steps)
	}
	if !g.State().GameOver || g.State().Won {
		t.Errorf("State() = %+v, want stopped without a win", g.State())
	}
}

func TestRestartAfterFinish(t *testing.T) {
	g := newGame(t, config.DefaultMazeConfig(), VariantUniform, 99)
	Run(g, nil)

	if _, err := g.Result(); err != nil {
		t.Fatalf("Result() after Run: %v", err)
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)

	if g.Status() != maze.StatusInProgress || g.State().Score != 0 {
		t.Errorf("after restart: status=%v steps=%d", g.Status(), g.State().Score)
	}
	if g.Snapshot().Seed == 99 {
		t.Error("restart should draw a new seed")
	}
	if _, err := g.Result(); !errors.Is(err, ErrNotFinished) {
		t.Errorf("Result() = %v, want ErrNotFinished", err)
	}
}

func TestDistributionAndBloch(t *testing.T) {
	cfg := config.DefaultMazeConfig()
	g := newGame(t, cfg, VariantUniform, 1)

	dist, err := g.Distribution()
	if err != nil {
		t.Fatalf("Distribution() failed: %v", err)
	}
	if len(dist) != 4 {
		t.Fatalf("Distribution() has %d outcomes, want 4", len(dist))
	}
	for bits, p := range dist {
		if math.Abs(p-0.25) > 1e-9 {
			t.Errorf("P(%s) = %v, want 0.25", bits, p)
		}
	}

	vectors, err := g.BlochVectors()
	if err != nil {
		t.Fatalf("BlochVectors() failed: %v", err)
	}
	for q, b := range vectors {
		if math.Abs(b.X-1) > 1e-9 || math.Abs(b.Z) > 1e-9 {
			t.Errorf("qubit %d Bloch = %+v, want +X", q, b)
		}
	}
}

func TestRender(t *testing.T) {
	g := newGame(t, config.DefaultMazeConfig(), VariantUniform, 5)
	g.Step(advanceInput())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Quantum Maze", "Steps:", "Qubits choose:", "E", "P"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newGame(t, config.DefaultMazeConfig(), VariantUniform, 5)

	screen := core.NewScreen(30, 8)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected too-small message")
	}
}

func TestRenderFinished(t *testing.T) {
	cfg := config.DefaultMazeConfig()
	cfg.Maze.Size = 1
	g := newGame(t, cfg, VariantUniform, 1)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Finished maze in 0 steps") {
		t.Error("expected win message")
	}
}

func TestRegistered(t *testing.T) {
	for _, v := range []Variant{VariantUniform, VariantTilted} {
		g, err := registry.Create(v.ID, config.DefaultMazeConfig())
		if err != nil {
			t.Fatalf("registry.Create(%s) failed: %v", v.ID, err)
		}
		if g.ID() != v.ID || g.Title() != v.Title {
			t.Errorf("created %s/%s, want %s/%s", g.ID(), g.Title(), v.ID, v.Title)
		}
	}
}

func TestVariantFor(t *testing.T) {
	cfg := config.DefaultMazeConfig()
	if VariantFor(cfg) != VariantUniform {
		t.Error("hadamard config should pick the uniform variant")
	}
	cfg.Quantum.Preparation = "tilted"
	if VariantFor(cfg) != VariantTilted {
		t.Error("tilted config should pick the tilted variant")
	}
}

func TestFixedLayout(t *testing.T) {
	cfg := config.DefaultMazeConfig()
	cfg.Maze.Layout = []string{
		"..#",
		"#..",
		"..E",
	}
	g := newGame(t, cfg, VariantUniform, 11)

	v := g.View()
	if v.Size != 3 || v.Cells[0][2] != maze.CellWall || v.Cells[1][0] != maze.CellWall {
		t.Fatalf("layout not applied: %+v", v)
	}

	o := Run(g, nil)
	if o.Err != nil || !o.Status.Terminal() {
		t.Errorf("Run() = %+v", o)
	}

	// The same layout comes back on every reset
	g.Reset(core.RuntimeConfig{Seed: 12})
	if g.View().Cells[1][0] != maze.CellWall || g.View().Steps != 0 {
		t.Error("reset did not rebuild the fixed layout")
	}
}
