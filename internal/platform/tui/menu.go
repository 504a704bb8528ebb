package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/quantum-maze/internal/core"
	"github.com/vovakirdan/quantum-maze/internal/registry"
)

// MenuChoice is what the user picked in the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceVisualize
	ChoiceScores
	ChoiceQuit
)

// MenuItem represents a selectable menu entry.
type MenuItem struct {
	Label  string
	Choice MenuChoice
	GameID string // Set for ChoicePlay
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem
}

// DefaultMenuItems lists one play entry per registered variant followed by
// the visualizer, the scoreboard and quit.
func DefaultMenuItems() []MenuItem {
	games := registry.List()
	items := make([]MenuItem, 0, len(games)+3)
	for _, g := range games {
		items = append(items, MenuItem{Label: "Play " + g.Title, Choice: ChoicePlay, GameID: g.ID})
	}
	return append(items,
		MenuItem{Label: "Visualize qubits", Choice: ChoiceVisualize},
		MenuItem{Label: "Best runs", Choice: ChoiceScores},
		MenuItem{Label: "Quit", Choice: ChoiceQuit},
	)
}

// NewMenuModel creates a new menu model.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items:     DefaultMenuItems(),
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
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

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
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	cursorStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("  Q U A N T U M   M A Z E  ", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Every step is chosen by measuring qubits.", m.width))
	b.WriteString("\n")
	b.WriteString(centerText("Reach the exit E before the steps run out.", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Label
		if i == m.cursor {
			line = cursorStyle.Render("> " + item.Label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Select  |  Q: Quit", m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	GameID string
	Config core.RuntimeConfig
}

// Result converts the final menu state into a MenuResult.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Choice: ChoiceQuit, Config: m.config}
	if m.selected != nil && !m.quitting {
		result.Choice = m.selected.Choice
		result.GameID = m.selected.GameID
	}
	return result
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Choice: ChoiceQuit, Config: cfg}, nil
	}
	return m.Result(), nil
}
