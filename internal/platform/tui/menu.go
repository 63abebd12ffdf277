package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hotcold/internal/core"
	"github.com/vovakirdan/hotcold/internal/games/hotcold/levels"
	"github.com/vovakirdan/hotcold/internal/storage"
)

// MenuItem represents a selectable level in the menu.
type MenuItem struct {
	LevelID string
	Title   string
	Best    uint64 // fewest ticks among wins, 0 if never won
	Played  int
}

// MenuModel is the Bubble Tea model for the level select screen.
type MenuModel struct {
	items       []MenuItem
	cursor      int
	width       int
	height      int
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	quitting    bool
	selected    *MenuItem // Set when user selects a level
	openRecords bool      // True if user pressed Tab for records
}

// NewMenuModel creates a new menu model. The cursor starts on current
// when it names a level in the catalog.
func NewMenuModel(catalog *levels.Catalog, store *storage.Store, cfg core.RuntimeConfig, current string) MenuModel {
	var stats map[string]storage.LevelStats
	if store != nil {
		// Best-effort: the menu still works without records
		stats, _ = store.AllLevelStats()
	}

	list := catalog.List()
	items := make([]MenuItem, 0, len(list))
	for _, l := range list {
		st := stats[l.ID]
		items = append(items, MenuItem{
			LevelID: l.ID,
			Title:   l.Name,
			Best:    st.BestTicks,
			Played:  st.Attempts,
		})
	}

	cursor := max(catalog.Index(current), 0)

	return MenuModel{
		items:     items,
		cursor:    cursor,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}

	case MenuActionRecords:
		m.openRecords = true
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	hot := lipgloss.NewStyle().Bold(true).Foreground(colorStyles[core.ColorHot].GetForeground())
	cold := lipgloss.NewStyle().Bold(true).Foreground(colorStyles[core.ColorCold].GetForeground())
	title := hot.Render("H O T") + "  &  " + cold.Render("C O L D")

	b.WriteString("\n")
	b.WriteString(centerText(title, m.width, lipgloss.Width(title)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a level", m.width, 0))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(centerText("No levels found", m.width, 0))
		b.WriteString("\n")
	}

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		best := "-"
		if item.Best > 0 {
			best = fmt.Sprintf("best %d", item.Best)
		}

		line := fmt.Sprintf("%s%d. %-16s %10s", cursor, i+1, item.Title, best)
		b.WriteString(centerText(line, m.width, 0))
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Records  |  Q: Quit"
	b.WriteString(centerText(controls, m.width, 0))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsRecords returns true if user requested the records board.
func (m MenuModel) WantsRecords() bool {
	return m.openRecords
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. A zero visible width
// means the text has no escape sequences.
func centerText(text string, width, visible int) string {
	if visible == 0 {
		visible = len(text)
	}
	if visible >= width {
		return text
	}
	padding := (width - visible) / 2
	return strings.Repeat(" ", padding) + text
}
