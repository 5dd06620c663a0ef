package game

import (
	"testing"

	"github.com/vovikan/tui-platformer/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     42,
	}
}

// newTestGame wires the game to a fixed level pack and clears the CLI
// overrides, restoring them when the test finishes.
func newTestGame(t *testing.T, mode GameMode, maps ...[]string) *Game {
	t.Helper()

	levels := make([]*Level, len(maps))
	for i, lines := range maps {
		levels[i] = MustParseLevel(string(rune('a'+i)), "Test", lines)
	}

	SetConfigPath("")
	SetDifficultyPreset("")
	SetStartLevel(0)
	SetLevelSource(NewSource(levels))
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
		SetStartLevel(0)
		SetLevelSource(nil)
	})

	var g *Game
	if mode == ModeTrial {
		g = NewTrial()
	} else {
		g = New()
	}
	if err := g.Reset(testConfig()); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	return g
}

// walkRoom is a flat corridor with the exit at the far end.
var walkRoom = []string{
	"#####",
	"#S.E#",
	"#####",
}

// spikeRoom puts a spike between the spawn and the exit.
var spikeRoom = []string{
	"######",
	"#S.^E#",
	"######",
}

func rightFrame() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	return in
}

// stepUntil runs the game with the given input until pred returns true,
// failing the test if it never does within maxTicks.
func stepUntil(t *testing.T, g *Game, in core.InputFrame, maxTicks int, pred func(core.StepResult) bool) core.StepResult {
	t.Helper()
	for i := 0; i < maxTicks; i++ {
		res := g.Step(in, dt60)
		if pred(res) {
			return res
		}
	}
	t.Fatalf("condition not reached within %d ticks", maxTicks)
	return core.StepResult{}
}

func hasEvent(res core.StepResult, kind core.EventKind) bool {
	for _, ev := range res.Events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}

func TestGameResetState(t *testing.T) {
	g := newTestGame(t, ModeCampaign, walkRoom, walkRoom)

	state := g.State()
	if state.Lives != 3 {
		t.Errorf("Lives = %d, expected 3", state.Lives)
	}
	if state.Level != 0 || state.Score != 0 || state.GameOver || state.Paused {
		t.Errorf("unexpected initial state: %+v", state)
	}

	snap := g.Snapshot()
	if snap.X != 1.5 || snap.Y != 1.5 {
		t.Errorf("spawn = (%f, %f), expected cell center (1.5, 1.5)", snap.X, snap.Y)
	}
	if snap.LevelCount != 2 {
		t.Errorf("LevelCount = %d, expected 2", snap.LevelCount)
	}
	if snap.LevelID != "a" {
		t.Errorf("LevelID = %q, expected %q", snap.LevelID, "a")
	}
}

func TestGameStartLevelClamped(t *testing.T) {
	g := newTestGame(t, ModeCampaign, walkRoom, walkRoom)

	// Out-of-range request clamps to the last level rather than failing.
	SetStartLevel(99)
	if err := g.Reset(testConfig()); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if got := g.State().Level; got != 1 {
		t.Errorf("Level = %d, expected clamp to 1", got)
	}
}

func TestGameEmptySourceFails(t *testing.T) {
	SetLevelSource(NewSource(nil))
	t.Cleanup(func() { SetLevelSource(nil) })

	g := New()
	if err := g.Reset(testConfig()); err == nil {
		t.Fatal("Reset() should fail with an empty level source")
	}

	// A failed load freezes the simulation instead of stepping garbage.
	res := g.Step(rightFrame(), dt60)
	if g.Snapshot().Tick != 0 {
		t.Error("Step() should be a no-op after a failed Reset")
	}
	if len(res.Events) != 0 {
		t.Error("no events expected from a frozen game")
	}
}

func TestGameHazardCostsLifeAndRespawns(t *testing.T) {
	g := newTestGame(t, ModeCampaign, spikeRoom)

	res := stepUntil(t, g, rightFrame(), 600, func(r core.StepResult) bool {
		return hasEvent(r, core.EventHazardHit)
	})

	if got := res.State.Lives; got != 2 {
		t.Errorf("Lives = %d, expected 2 after one hit", got)
	}
	if res.State.Level != 0 {
		t.Errorf("Level = %d, expected unchanged", res.State.Level)
	}

	snap := g.Snapshot()
	if snap.X != 1.5 || snap.Y != 1.5 {
		t.Errorf("respawn = (%f, %f), expected spawn center (1.5, 1.5)", snap.X, snap.Y)
	}
	if snap.VX != 0 || snap.VY != 0 {
		t.Errorf("respawn velocity = (%f, %f), expected zero", snap.VX, snap.VY)
	}
}

func TestGameCampaignGameOverResetsRun(t *testing.T) {
	g := newTestGame(t, ModeCampaign, spikeRoom)

	res := stepUntil(t, g, rightFrame(), 2000, func(r core.StepResult) bool {
		return hasEvent(r, core.EventGameOver)
	})

	// The campaign never stays in a game-over screen: the run restarts
	// with full lives on the first level.
	if res.State.GameOver {
		t.Error("campaign should auto-restart instead of staying game over")
	}
	if res.State.Lives != 3 {
		t.Errorf("Lives = %d, expected restored to 3", res.State.Lives)
	}
	if res.State.Level != 0 {
		t.Errorf("Level = %d, expected 0", res.State.Level)
	}
	if res.State.Score != 0 {
		t.Errorf("Score = %d, expected reset to 0", res.State.Score)
	}
}

func TestGameCampaignGameOverResetsFromLaterLevel(t *testing.T) {
	g := newTestGame(t, ModeCampaign, walkRoom, spikeRoom)

	// Start the run on the second level and burn through the lives there.
	SetStartLevel(1)
	if err := g.Reset(testConfig()); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if got := g.State().Level; got != 1 {
		t.Fatalf("Level = %d, expected start at 1", got)
	}

	res := stepUntil(t, g, rightFrame(), 2000, func(r core.StepResult) bool {
		return hasEvent(r, core.EventGameOver)
	})

	// The restart goes back to the first level, not the one that killed us.
	if res.State.GameOver {
		t.Error("campaign should auto-restart instead of staying game over")
	}
	if res.State.Level != 0 {
		t.Errorf("Level = %d, expected reset to 0", res.State.Level)
	}
	if res.State.Lives != 3 {
		t.Errorf("Lives = %d, expected restored to 3", res.State.Lives)
	}
	if snap := g.Snapshot(); snap.LevelID != "a" {
		t.Errorf("LevelID = %q, expected first level %q", snap.LevelID, "a")
	}
}

func TestGameTrialGameOverStops(t *testing.T) {
	g := newTestGame(t, ModeTrial, spikeRoom)

	res := stepUntil(t, g, rightFrame(), 2000, func(r core.StepResult) bool {
		return hasEvent(r, core.EventGameOver)
	})
	if !res.State.GameOver {
		t.Fatal("trial should end in game over when lives run out")
	}

	// Frozen: further movement input changes nothing.
	before := g.Snapshot()
	for i := 0; i < 30; i++ {
		g.Step(rightFrame(), dt60)
	}
	after := g.Snapshot()
	if before.X != after.X || before.Y != after.Y || before.Tick != after.Tick {
		t.Error("game over state should freeze the simulation")
	}
}

func TestGameExitAdvancesAndWraps(t *testing.T) {
	g := newTestGame(t, ModeCampaign, walkRoom, walkRoom)

	res := stepUntil(t, g, rightFrame(), 600, func(r core.StepResult) bool {
		return hasEvent(r, core.EventExitReached)
	})
	if res.State.Level != 1 {
		t.Errorf("Level = %d, expected advance to 1", res.State.Level)
	}
	if res.State.Score != 130 {
		t.Errorf("Score = %d, expected 100 + 10*3 = 130", res.State.Score)
	}
	if res.State.Lives != 3 {
		t.Errorf("Lives = %d, exits must not touch lives", res.State.Lives)
	}

	// Clearing the last level wraps back to the first.
	res = stepUntil(t, g, rightFrame(), 600, func(r core.StepResult) bool {
		return hasEvent(r, core.EventExitReached)
	})
	if res.State.Level != 0 {
		t.Errorf("Level = %d, expected wrap to 0", res.State.Level)
	}
	if res.State.Score != 260 {
		t.Errorf("Score = %d, expected 260 after two clears", res.State.Score)
	}
}

func TestGameExitEventCarriesLevelInfo(t *testing.T) {
	g := newTestGame(t, ModeCampaign, walkRoom, walkRoom)

	res := stepUntil(t, g, rightFrame(), 600, func(r core.StepResult) bool {
		return hasEvent(r, core.EventExitReached)
	})

	var ev core.Event
	for _, e := range res.Events {
		if e.Kind == core.EventExitReached {
			ev = e
		}
	}
	if ev.LevelID != "a" {
		t.Errorf("LevelID = %q, expected %q", ev.LevelID, "a")
	}
	if ev.Level != 0 {
		t.Errorf("Level = %d, expected 0", ev.Level)
	}
	if ev.Seconds <= 0 {
		t.Errorf("Seconds = %f, expected positive clear time", ev.Seconds)
	}
}

func TestGameTrialExitEndsRun(t *testing.T) {
	g := newTestGame(t, ModeTrial, walkRoom)

	res := stepUntil(t, g, rightFrame(), 600, func(r core.StepResult) bool {
		return hasEvent(r, core.EventExitReached)
	})
	if !res.State.GameOver {
		t.Fatal("trial exit should end the run")
	}
	// Base clear score plus a time bonus for the fast clear.
	if res.State.Score <= 130 {
		t.Errorf("Score = %d, expected base 130 plus time bonus", res.State.Score)
	}
}

func TestGamePauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, ModeCampaign, walkRoom)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause, dt60)
	if !g.State().Paused {
		t.Fatal("pause intent should pause the game")
	}

	before := g.Snapshot()
	for i := 0; i < 30; i++ {
		g.Step(rightFrame(), dt60)
	}
	after := g.Snapshot()
	if before.X != after.X || before.Tick != after.Tick {
		t.Error("paused simulation should not advance")
	}

	// Unpausing resumes on the same tick.
	g.Step(pause, dt60)
	if g.State().Paused {
		t.Error("second pause intent should resume")
	}
	if g.Snapshot().Tick != after.Tick+1 {
		t.Error("resumed simulation should advance again")
	}
}

func TestGameZeroDtIsNoOp(t *testing.T) {
	g := newTestGame(t, ModeCampaign, walkRoom)

	before := g.Snapshot()
	g.Step(rightFrame(), 0)
	g.Step(rightFrame(), -dt60)
	after := g.Snapshot()

	if before.Tick != after.Tick || before.X != after.X || before.Y != after.Y {
		t.Error("non-positive dt should not advance the simulation")
	}
}

func TestGameRestartIntent(t *testing.T) {
	g := newTestGame(t, ModeCampaign, spikeRoom)

	// Burn one life first.
	stepUntil(t, g, rightFrame(), 600, func(r core.StepResult) bool {
		return hasEvent(r, core.EventHazardHit)
	})
	if g.State().Lives != 2 {
		t.Fatalf("Lives = %d, expected 2", g.State().Lives)
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	res := g.Step(restart, dt60)

	if res.State.Lives != 3 {
		t.Errorf("Lives = %d, expected restart to restore 3", res.State.Lives)
	}
	if res.State.Level != 0 {
		t.Errorf("Level = %d, expected to stay on the current level", res.State.Level)
	}
	snap := g.Snapshot()
	if snap.X != 1.5 || snap.Y != 1.5 {
		t.Errorf("restart position = (%f, %f), expected spawn center", snap.X, snap.Y)
	}
	if snap.LevelSeconds != 0 {
		t.Errorf("LevelSeconds = %f, expected reset to 0", snap.LevelSeconds)
	}
}

func TestGameDeterminism(t *testing.T) {
	// Identical input sequences must produce identical trajectories.
	run := func() Snapshot {
		g := newTestGame(t, ModeCampaign, spikeRoom)
		for i := 0; i < 300; i++ {
			in := core.NewInputFrame()
			if i%3 != 0 {
				in.Set(core.ActionRight)
			}
			if i%40 == 0 {
				in.Set(core.ActionJump)
			}
			g.Step(in, dt60)
		}
		return g.Snapshot()
	}

	s1 := run()
	s2 := run()

	if s1 != s2 {
		t.Errorf("runs diverged:\n  run1: %+v\n  run2: %+v", s1, s2)
	}
}
