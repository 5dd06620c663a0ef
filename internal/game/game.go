package game

import (
	"fmt"
	"math"

	"github.com/vovikan/tui-platformer/internal/config"
	"github.com/vovikan/tui-platformer/internal/core"
	"github.com/vovikan/tui-platformer/internal/registry"
)

// Visual characters for rendering
const (
	PlayerChar = '●'
	SolidChar  = '█'
	SpikeChar  = '▲'
	ExitChar   = '◎'
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Play through all levels, wrapping forever
	ModeTrial                    // Single level time trial, exit ends the run
)

// camEase controls the cosmetic camera follow speed. Display only; the
// simulation never reads the camera.
const camEase = 8.0

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// startLevel stores the level selected via CLI (zero-based)
var startLevel int

// levelSource overrides the built-in campaign when an external level pack
// is loaded via CLI.
var levelSource Source

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// SetStartLevel sets the starting level index (zero-based).
func SetStartLevel(index int) {
	startLevel = index
}

// SetLevelSource replaces the built-in campaign with an external level pack.
func SetLevelSource(src Source) {
	levelSource = src
}

// Game implements the ball platformer. One circular player body moves through
// a tile level under gravity; spikes cost lives, exits advance levels.
type Game struct {
	mode GameMode

	source Source
	level  *Level
	player Player
	tuning Tuning

	lives      int
	startLives int
	levelIndex int
	score      int
	paused     bool
	gameOver   bool
	tickCount  uint64
	levelTime  float64 // Seconds spent on the current level, across respawns

	// Cosmetic camera center, eased toward the player each tick.
	camX, camY float64

	runtime core.RuntimeConfig
	cfg     config.PlatformerConfig
	loadErr error
}

// New creates a new platformer game instance (campaign mode).
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewTrial creates a new platformer game instance in time-trial mode.
func NewTrial() *Game {
	return &Game{mode: ModeTrial}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeTrial {
		return "platformer_trial"
	}
	return "platformer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeTrial {
		return "Ball Platformer (Time Trial)"
	}
	return "Ball Platformer"
}

// Reset initializes or restarts the game. Level-source failures are fatal:
// the simulation never runs against an absent or inconsistent level.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	g.runtime = runtime

	cfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		cfg = config.DefaultPlatformerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPlatformerPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.tuning = tuningFromConfig(cfg.Physics)

	g.source = levelSource
	if g.source == nil {
		g.source = BuiltinSource()
	}
	if g.source.Count() == 0 {
		g.loadErr = fmt.Errorf("game: level source is empty")
		return g.loadErr
	}

	g.startLives = cfg.Gameplay.Lives
	g.lives = g.startLives
	g.score = 0
	g.paused = false
	g.gameOver = false
	g.tickCount = 0
	g.levelTime = 0
	g.loadErr = nil

	g.levelIndex = core.Clamp(startLevel, 0, g.source.Count()-1)
	if err := g.loadLevel(g.levelIndex); err != nil {
		return err
	}
	return nil
}

// tuningFromConfig converts the YAML physics section into a Tuning record.
func tuningFromConfig(p config.PlatformerPhysics) Tuning {
	return Tuning{
		Gravity:      p.Gravity,
		MoveAccel:    p.MoveAccel,
		AirAccel:     p.AirAccel,
		Friction:     p.Friction,
		JumpVelocity: p.JumpVelocity,
		MaxFall:      p.MaxFall,
		Bounce:       p.Bounce,
		Radius:       p.Radius,
	}
}

// loadLevel loads a level by index and respawns the player at its spawn.
func (g *Game) loadLevel(index int) error {
	level, err := g.source.Load(index)
	if err != nil {
		g.loadErr = err
		return err
	}
	g.level = level
	g.player.respawnAt(level)
	g.snapCamera()
	g.levelTime = 0
	return nil
}

// snapCamera centers the camera on the player without easing.
func (g *Game) snapCamera() {
	g.camX = g.player.Pos.X
	g.camY = g.player.Pos.Y
}

// Step advances the game by one tick of elapsed time dt (seconds).
// A dt of zero or less is a no-op tick: the very first frame after a
// (re)start only establishes the time baseline, and a stalled clock must not
// feed non-finite values into the integrator. Pause and restart intents stay
// responsive on no-op ticks.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if g.loadErr != nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		if g.gameOver {
			//nolint:errcheck // Source was validated on the previous Reset
			g.Reset(g.runtime)
		} else {
			g.manualRestart()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.paused || g.gameOver || dt <= 0 {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.levelTime += dt

	intent := Intent{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Jump:  in.Has(core.ActionJump),
	}
	g.player.integrate(intent, dt, g.tuning)
	g.player.resolveMove(g.level, dt, g.tuning)

	var events []core.Event
	switch {
	case intersectsHazard(g.level, g.player.Pos, g.tuning.Radius):
		events = g.onHazard(events)
	case intersectsExit(g.level, g.player.Pos, g.tuning.Radius):
		events = g.onExit(events)
	}

	g.easeCamera(dt)

	return core.StepResult{State: g.State(), Events: events}
}

// easeCamera moves the display camera toward the player. Exponential ease,
// frame-rate independent.
func (g *Game) easeCamera(dt float64) {
	k := 1 - math.Exp(-camEase*dt)
	g.camX += (g.player.Pos.X - g.camX) * k
	g.camY += (g.player.Pos.Y - g.camY) * k
}

// onHazard handles a spike touch: lose a life, reset the whole run when
// lives are exhausted, and always respawn at the current level's spawn.
func (g *Game) onHazard(events []core.Event) []core.Event {
	g.lives--
	events = append(events, core.Event{Kind: core.EventHazardHit, Level: g.levelIndex, LevelID: g.level.ID})

	if g.lives <= 0 {
		// Score is reported in the event; the reset below zeroes it.
		events = append(events, core.Event{Kind: core.EventGameOver, Level: g.levelIndex, LevelID: g.level.ID, Score: g.score})
		if g.mode == ModeTrial {
			g.gameOver = true
			g.player.respawnAt(g.level)
			g.snapCamera()
			return events
		}
		// Full game-over reset: starting lives, first level.
		g.lives = g.startLives
		g.levelIndex = 0
		if err := g.loadLevel(0); err != nil {
			return events
		}
		g.score = 0
		return events
	}

	g.player.respawnAt(g.level)
	return events
}

// onExit handles reaching a level exit: bank score, advance (wrapping) in
// campaign mode or finish the run in trial mode. Lives are untouched.
func (g *Game) onExit(events []core.Event) []core.Event {
	events = append(events, core.Event{
		Kind:    core.EventExitReached,
		Level:   g.levelIndex,
		LevelID: g.level.ID,
		Seconds: g.levelTime,
	})
	g.score += 100 + 10*g.lives

	if g.mode == ModeTrial {
		// Faster clears score higher.
		bonus := 3000 - int(g.levelTime*10)
		if bonus > 0 {
			g.score += bonus
		}
		g.gameOver = true
		return events
	}

	next := (g.levelIndex + 1) % g.source.Count()
	g.levelIndex = next
	//nolint:errcheck // Source was validated on Reset; loadErr freezes the game
	g.loadLevel(next)
	return events
}

// manualRestart resets lives and respawns at the current level's spawn.
// The level index is unchanged.
func (g *Game) manualRestart() {
	g.lives = g.startLives
	g.levelTime = 0
	g.paused = false
	g.player.respawnAt(g.level)
	g.snapCamera()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Level:    g.levelIndex,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the games with the registry
func init() {
	registry.Register("platformer", func() registry.Game {
		return New()
	})
	registry.Register("platformer_trial", func() registry.Game {
		return NewTrial()
	})
}
