package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vselivanov/blockfall/internal/core"
	"github.com/vselivanov/blockfall/internal/registry"
	"github.com/vselivanov/blockfall/internal/replay"
	"github.com/vselivanov/blockfall/internal/storage"
)

// Model is the Bubble Tea model that runs a game session. It steps the
// engine on a fixed tick, records the input log for replay persistence,
// and in playback mode feeds a recorded log back instead of the keyboard.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState

	tick     uint64
	recorder *replay.Recorder
	player   *replay.Player
	quitting bool
}

// NewModel creates a model that plays the game live, recording inputs so
// the session can be saved as a replay when it ends.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		recorder:   replay.NewRecorder(game.ID(), cfg.Seed, cfg.TickRate),
	}
}

// NewPlaybackModel creates a model that replays a recording. The seed and
// tick rate come from the recording so the game unfolds identically; the
// keyboard is ignored except for quitting.
func NewPlaybackModel(game registry.Game, rec replay.Recording, cfg core.RuntimeConfig) Model {
	cfg.Seed = rec.Seed
	cfg.TickRate = rec.TickRate
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		player:     replay.NewPlayer(rec.Events),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. During playback only quit keys work.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.player != nil {
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick steps the engine by one simulation tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.tick++

	frame := m.inputFrame
	if m.player != nil {
		frame = m.player.FrameAt(m.tick)
	} else if m.recorder != nil {
		m.recorder.Observe(m.tick, frame)
	}

	result := m.game.Step(frame)
	m.gameState = result.State
	m.inputFrame.Clear()

	// Save the replay at the first game over. Restarts after that point
	// are still part of the session but not of the saved recording.
	if m.gameState.GameOver && m.recorder != nil {
		rec := m.recorder.Finish(m.tick, m.gameState)
		m.recorder = nil
		if m.store != nil && rec.Score > 0 {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveReplay(rec)
		}
	}

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

// Run starts a live game session in the terminal.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, store, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// RunPlayback replays a saved recording in the terminal.
func RunPlayback(game registry.Game, rec replay.Recording, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewPlaybackModel(game, rec, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
