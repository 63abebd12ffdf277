package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hotcold/internal/core"
	"github.com/vovakirdan/hotcold/internal/games/hotcold"
	"github.com/vovakirdan/hotcold/internal/games/hotcold/levels"
	"github.com/vovakirdan/hotcold/internal/storage"
)

// GameModel is the Bubble Tea model for playing levels.
type GameModel struct {
	game       *hotcold.Game
	catalog    *levels.Catalog
	store      *storage.Store
	logger     *log.Logger
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.MultiInputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	userDir    string
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current attempt has been recorded
}

// NewGameModel creates a model playing the given level.
func NewGameModel(opts Options, l levels.Level, cfg core.RuntimeConfig) GameModel {
	game := hotcold.New(opts.Game)
	game.LoadLevel(l)
	game.Reset(cfg)

	return GameModel{
		game:       game,
		catalog:    opts.Catalog,
		store:      opts.Store,
		logger:     opts.logger(),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewMultiInputFrame(),
		keyMapper:  NewKeyMapper(),
		userDir:    opts.UserDir,
		gameState:  game.State(),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		// The level keeps its size, so the attempt survives a resize.
		m.game.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToMultiFrame(msg, &m.inputFrame) {
		m.abandon()
		m.quitting = true
		return m, tea.Quit
	}

	p1 := m.inputFrame.Player1()
	switch {
	case p1.Has(core.ActionBack):
		m.abandon()
		m.backToMenu = true

	case p1.Has(core.ActionConfirm) && m.gameState.Won:
		next, ok := m.catalog.Next(m.game.ID())
		if !ok {
			m.backToMenu = true
			return m, nil
		}
		m.game.LoadLevel(next)
		m.gameState = m.game.State()
		m.runSaved = false
		m.inputFrame.Clear()
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	restart := m.inputFrame.Player1().Has(core.ActionRestart) || m.inputFrame.Player2().Has(core.ActionRestart)
	if restart {
		m.abandon()
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if restart {
		m.runSaved = false
	}

	// Save the outcome once per terminal state
	if m.gameState.GameOver && !m.runSaved {
		outcome := storage.OutcomeLost
		if m.gameState.Won {
			outcome = storage.OutcomeWon
			m.saveReplay()
		}
		m.saveRun(outcome)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// abandon records an attempt that ends before win or loss.
func (m *GameModel) abandon() {
	if m.gameState.GameOver || m.gameState.Tick == 0 {
		return
	}
	m.saveRun(storage.OutcomeAbandoned)
}

func (m *GameModel) saveRun(outcome string) {
	m.runSaved = true
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRun(m.game.ID(), outcome, m.gameState.Tick, m.game.Fingerprint()); err != nil {
		m.logger.Warn("could not save run", "level", m.game.ID(), "error", err)
	}
}

// saveReplay writes the winning inputs as a replay script.
func (m *GameModel) saveReplay() {
	if m.userDir == "" {
		return
	}
	script, err := m.game.Recording()
	if err != nil {
		return
	}
	data, err := script.Marshal()
	if err != nil {
		m.logger.Warn("could not encode replay", "error", err)
		return
	}

	dir := filepath.Join(m.userDir, "replays")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create replay directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s_%d.yaml", m.game.ID(), timestamp, m.gameState.Tick))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		m.logger.Warn("could not save replay", "path", path, "error", err)
		return
	}
	m.logger.Debug("replay saved", "path", path)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	if m.userDir == "" {
		return
	}

	// Render current state
	m.game.Render(m.screen)

	dir := filepath.Join(m.userDir, "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last known game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// LevelID returns the level being played.
func (m GameModel) LevelID() string {
	return m.game.ID()
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the level select.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
