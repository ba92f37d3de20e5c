// Package tui renders a layout.Result as an interactive terminal
// preview: wraps drawn as boxes, fragments placed at their measured
// positions, scrollable when the layout is larger than the window.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sbcohen2000/raggedblocks/pkg/layout"
)

var (
	colorCyan = lipgloss.Color("36")
	colorDim  = lipgloss.Color("240")

	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim   = lipgloss.NewStyle().Foreground(colorDim)
)

// Model is the bubbletea model for the layout preview.
type Model struct {
	Result    layout.Result
	Algorithm string

	cellWidth, cellHeight float64
	canvas                *Canvas

	viewWidth, viewHeight int
	scrollX, scrollY      int
}

// NewModel creates a preview model for res, rendered at one character
// cell per (cellWidth, cellHeight) layout units.
func NewModel(res layout.Result, algorithm string, cellWidth, cellHeight float64) Model {
	return Model{
		Result:     res,
		Algorithm:  algorithm,
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
		canvas:     Render(res, cellWidth, cellHeight),
		viewHeight: 24,
		viewWidth:  80,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.scrollY > 0 {
				m.scrollY--
			}
		case "down", "j":
			m.scrollY++
		case "left", "h":
			if m.scrollX > 0 {
				m.scrollX--
			}
		case "right", "l":
			m.scrollX++
		}
	case tea.WindowSizeMsg:
		m.viewWidth = msg.Width
		m.viewHeight = msg.Height - 3
		if m.viewHeight < 1 {
			m.viewHeight = 1
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	title := styleTitle.Render(fmt.Sprintf("ragged-blocks preview (%s)", m.Algorithm))
	help := styleDim.Render("↑/↓/←/→ scroll  q quit")
	body := m.visibleRegion()
	return title + "\n" + help + "\n\n" + body
}

func (m Model) visibleRegion() string {
	full := m.canvas.String()
	lines := splitLines(full)

	endY := m.scrollY + m.viewHeight
	if endY > len(lines) {
		endY = len(lines)
	}
	startY := m.scrollY
	if startY > endY {
		startY = endY
	}

	var out string
	for i, line := range lines[startY:endY] {
		if i > 0 {
			out += "\n"
		}
		out += clipLine(line, m.scrollX, m.viewWidth)
	}
	return out
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i, r := range s {
		if r == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	lines = append(lines, s[start:])
	return lines
}

func clipLine(line string, offset, width int) string {
	runes := []rune(line)
	if offset >= len(runes) {
		return ""
	}
	end := offset + width
	if end > len(runes) {
		end = len(runes)
	}
	return string(runes[offset:end])
}

// Run starts the interactive preview program and blocks until the user
// quits.
func Run(res layout.Result, algorithm string, cellWidth, cellHeight float64) error {
	m := NewModel(res, algorithm, cellWidth, cellHeight)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
