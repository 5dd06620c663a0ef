package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovikan/tui-platformer/internal/core"
	"github.com/vovikan/tui-platformer/internal/registry"
	"github.com/vovikan/tui-platformer/internal/storage"
)

// maxTickDelta caps the elapsed time fed into one simulation tick.
// A suspended or stalled terminal otherwise produces a dt large enough to
// step the body across more than a tile.
const maxTickDelta = 250 * time.Millisecond

// Model is the Bubble Tea model for running the platformer.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time // Zero until the first tick establishes the baseline
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
	initErr    error
}

// NewModel creates a new Bubble Tea model for the given game.
// The game is reset here so level-source failures surface before the
// program starts ticking.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		initErr:    game.Reset(cfg),
	}
}

// InitErr returns the game initialization error, if any.
func (m Model) InitErr() error {
	return m.initErr
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	if m.initErr != nil {
		return tea.Quit
	}
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleTick runs one simulation tick. dt is derived from consecutive tick
// timestamps; the first tick only establishes the baseline.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt float64
	if !m.lastTick.IsZero() {
		delta := now.Sub(m.lastTick)
		if delta > maxTickDelta {
			delta = maxTickDelta
		}
		dt = delta.Seconds()
	}
	m.lastTick = now

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State

	// Persist run milestones
	if m.store != nil {
		for _, ev := range result.Events {
			switch ev.Kind {
			case core.EventExitReached:
				//nolint:errcheck // Best-effort save, game continues regardless
				m.store.SaveClear(ev.LevelID, ev.Seconds)
			case core.EventGameOver:
				if ev.Score > 0 {
					//nolint:errcheck // Best-effort save, game continues regardless
					m.store.SaveScore(m.game.ID(), ev.Score)
					m.scoreSaved = true
				}
			}
		}
	}

	// Trial wins end the run without a game-over event; save that score once.
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.game.ID(), m.gameState.Score)
		}
		m.scoreSaved = true
	}
	if !m.gameState.GameOver {
		m.scoreSaved = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)
	if err := model.InitErr(); err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
