package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/quantum-maze/internal/config"
	"github.com/vovakirdan/quantum-maze/internal/maze"
	"github.com/vovakirdan/quantum-maze/internal/quantum"
	"github.com/vovakirdan/quantum-maze/internal/registry"
	"github.com/vovakirdan/quantum-maze/internal/sampler"
)

const (
	maxBarWidth = 40
	minBarWidth = 8
)

var (
	barStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	barEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	labelStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// QubitSource is a game that can describe its prepared register.
type QubitSource interface {
	Title() string
	Distribution() (quantum.Outcomes, error)
	BlochVectors() ([]quantum.Bloch, error)
}

// QubitSources creates every registered variant that exposes its register.
func QubitSources(cfg config.MazeConfig) ([]QubitSource, error) {
	var sources []QubitSource
	for _, info := range registry.List() {
		g, err := registry.Create(info.ID, cfg)
		if err != nil {
			return nil, err
		}
		if src, ok := g.(QubitSource); ok {
			sources = append(sources, src)
		}
	}
	return sources, nil
}

// RenderDistribution draws one bar per outcome in ascending bitstring
// order, labelled with the direction the outcome selects.
func RenderDistribution(outcomes quantum.Outcomes, barWidth int) string {
	barWidth = max(minBarWidth, min(barWidth, maxBarWidth))

	var b strings.Builder
	for _, o := range outcomes.Sorted() {
		dir := "?"
		if k, err := strconv.ParseUint(o.Bits, 2, 64); err == nil {
			dir = sampler.DirectionFor(k, maze.Directions).String()
		}

		filled := int(o.Probability*float64(barWidth) + 0.5)
		filled = max(0, min(filled, barWidth))

		fmt.Fprintf(&b, "  %s -> %s  ", labelStyle.Render(o.Bits), dir)
		b.WriteString(barStyle.Render(strings.Repeat("█", filled)))
		b.WriteString(barEmptyStyle.Render(strings.Repeat("░", barWidth-filled)))
		fmt.Fprintf(&b, " %5.1f%%\n", o.Probability*100)
	}
	return b.String()
}

// RenderBloch lists each qubit's Bloch vector and its chance to measure 1.
func RenderBloch(vectors []quantum.Bloch) string {
	var b strings.Builder
	for q, v := range vectors {
		p1 := (1 - v.Z) / 2
		fmt.Fprintf(&b, "  %s  x=%+.2f y=%+.2f z=%+.2f  |r|=%.2f  P(1)=%.2f\n",
			labelStyle.Render(fmt.Sprintf("q%d", q)), v.X, v.Y, v.Z, v.Length(), p1)
	}
	return b.String()
}

// VisualizerModel shows the outcome distribution and Bloch vectors of
// each variant's prepared register.
type VisualizerModel struct {
	sources   []QubitSource
	cursor    int
	help      help.Model
	keys      ViewerKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewVisualizerModel creates a new visualizer model.
func NewVisualizerModel(sources []QubitSource, width, height int) VisualizerModel {
	h := help.New()
	h.Width = width
	return VisualizerModel{
		sources: sources,
		help:    h,
		keys:    DefaultViewerKeyMap(),
		width:   width,
		height:  height,
	}
}

// Init initializes the visualizer model.
func (m VisualizerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the visualizer.
func (m VisualizerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			if len(m.sources) > 0 {
				m.cursor = (m.cursor + 1) % len(m.sources)
			}
		case key.Matches(msg, m.keys.Prev):
			if len(m.sources) > 0 {
				m.cursor = (m.cursor - 1 + len(m.sources)) % len(m.sources)
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// View renders the visualizer.
func (m VisualizerModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	if len(m.sources) == 0 {
		b.WriteString(titleStyle.Render(centerText("QUBITS", m.width)))
		b.WriteString("\n\nNo variants available.\n")
		return b.String()
	}

	src := m.sources[m.cursor]
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("QUBITS - "+src.Title(), m.width)))
	b.WriteString("\n\n")

	b.WriteString(dimStyle.Render("  Outcome distribution (k mod 4 over U D L R)"))
	b.WriteString("\n\n")
	if dist, err := src.Distribution(); err != nil {
		fmt.Fprintf(&b, "  error: %v\n", err)
	} else {
		b.WriteString(RenderDistribution(dist, m.width-30))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  Bloch vectors"))
	b.WriteString("\n\n")
	if vectors, err := src.BlochVectors(); err != nil {
		fmt.Fprintf(&b, "  error: %v\n", err)
	} else {
		b.WriteString(RenderBloch(vectors))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m VisualizerModel) IsGoingBack() bool {
	return m.goingBack
}

// RunVisualizer runs the visualizer screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunVisualizer(sources []QubitSource, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewVisualizerModel(sources, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(VisualizerModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
