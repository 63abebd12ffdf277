package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hotcold/internal/core"
	"github.com/vovakirdan/hotcold/internal/games/hotcold"
	"github.com/vovakirdan/hotcold/internal/games/hotcold/levels"
	"github.com/vovakirdan/hotcold/internal/storage"
)

// Options holds what a session needs to run.
type Options struct {
	Catalog *levels.Catalog
	Store   *storage.Store // nil disables run records
	Game    hotcold.Options
	Config  core.RuntimeConfig

	// StartLevel skips the level select when set.
	StartLevel string

	// UserDir receives replays of won levels and screenshots. Empty disables both.
	UserDir string

	Logger *log.Logger
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.Default()
}

type view int

const (
	viewMenu view = iota
	viewGame
	viewRecords
)

// SessionModel manages the full flow: level select -> play -> level select,
// with the records board reachable from the level select.
// This is the top-level model used both locally and for SSH sessions.
type SessionModel struct {
	opts     Options
	config   core.RuntimeConfig
	view     view
	menu     MenuModel
	game     GameModel
	records  RecordsModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts Options) (SessionModel, error) {
	m := SessionModel{
		opts:   opts,
		config: opts.Config,
	}

	if opts.StartLevel != "" {
		l, err := opts.Catalog.Get(opts.StartLevel)
		if err != nil {
			return m, err
		}
		m.game = NewGameModel(opts, l, m.config)
		m.view = viewGame
		return m, nil
	}

	m.menu = NewMenuModel(opts.Catalog, opts.Store, m.config, "")
	return m, nil
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.view == viewGame {
		return m.game.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewRecords:
		return m.updateRecords(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in the level select.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Ticks left over from a finished game are dropped here.
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsRecords() {
		m.records = NewRecordsModel(m.opts.Catalog, m.opts.Store, m.config.ScreenW, m.config.ScreenH)
		m.view = viewRecords
		return m, m.records.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		l, err := m.opts.Catalog.Get(selected.LevelID)
		if err != nil {
			// Shouldn't happen since the menu only lists catalog levels
			m.opts.logger().Error("cannot start level", "level", selected.LevelID, "error", err)
			m.menu = NewMenuModel(m.opts.Catalog, m.opts.Store, m.config, "")
			return m, nil
		}

		m.game = NewGameModel(m.opts, l, m.config)
		m.view = viewGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when playing.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.menu = NewMenuModel(m.opts.Catalog, m.opts.Store, m.config, m.game.LevelID())
		m.view = viewMenu
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateRecords handles updates when showing the records board.
func (m SessionModel) updateRecords(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	newModel, cmd := m.records.Update(msg)
	if recordsModel, ok := newModel.(RecordsModel); ok {
		m.records = recordsModel
	}

	if m.records.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.records.IsGoingBack() {
		m.menu = NewMenuModel(m.opts.Catalog, m.opts.Store, m.config, "")
		m.view = viewMenu
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.game.View()
	case viewRecords:
		return m.records.View()
	default:
		return m.menu.View()
	}
}

// Run starts a local session in the alternate screen.
func Run(opts Options) error {
	if opts.Catalog == nil || opts.Catalog.Len() == 0 {
		return fmt.Errorf("no levels to play")
	}

	model, err := NewSessionModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
