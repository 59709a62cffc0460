package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/orrery/internal/astro"
	"github.com/litescript/orrery/internal/sim"
)

// Styles for the bodies table
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57")).
				Padding(0, 1)

	litStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230"))

	darkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))
)

// FocusBodyMsg asks the root model to show body ID in the system view.
type FocusBodyMsg struct {
	ID string
}

// BodiesModel is a table of every body in the current frame.
type BodiesModel struct {
	width  int
	height int
	cursor int
	frame  sim.Frame
}

// NewBodiesModel creates a new bodies table.
func NewBodiesModel() BodiesModel {
	return BodiesModel{}
}

// SetSize updates the viewport size.
func (m BodiesModel) SetSize(width, height int) BodiesModel {
	m.width = width
	m.height = height
	return m
}

// UpdateFrame updates the model with a new frame.
func (m BodiesModel) UpdateFrame(f sim.Frame) BodiesModel {
	m.frame = f
	if m.cursor >= len(f.Bodies) {
		m.cursor = max(len(f.Bodies)-1, 0)
	}
	return m
}

// Update handles messages.
func (m BodiesModel) Update(msg tea.Msg) (BodiesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		n := len(m.frame.Bodies)

		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < n-1 {
				m.cursor++
			}
		case "home":
			m.cursor = 0
		case "end":
			if n > 0 {
				m.cursor = n - 1
			}
		case "enter":
			if b, ok := m.Selected(); ok {
				id := b.ID
				return m, func() tea.Msg { return FocusBodyMsg{ID: id} }
			}
		}
	}

	return m, nil
}

// Selected returns the body under the cursor, if any.
func (m BodiesModel) Selected() (sim.BodyState, bool) {
	if m.cursor < 0 || m.cursor >= len(m.frame.Bodies) {
		return sim.BodyState{}, false
	}
	return m.frame.Bodies[m.cursor], true
}

// View renders the table.
func (m BodiesModel) View() string {
	var b strings.Builder

	if len(m.frame.Bodies) == 0 {
		b.WriteString("No bodies\n")
		return b.String()
	}

	if p := m.frame.Phase; p != nil {
		b.WriteString(m.renderPhase(p))
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderTable())
	return b.String()
}

func (m BodiesModel) renderPhase(p *sim.PhaseState) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Phase"))
	b.WriteString("\n")

	trend := "waning"
	if p.Waxing {
		trend = "waxing"
	}
	fmt.Fprintf(&b, "  %s from %s, lit by %s  %s %5.1f%%  %s (%s)\n",
		p.Observed, p.Reference, p.Light,
		m.renderIlluminationBar(p.Fraction, 20), p.Fraction*100, p.Name, trend)

	return b.String()
}

// renderIlluminationBar draws the lit fraction as a bar.
func (m BodiesModel) renderIlluminationBar(fraction float64, width int) string {
	filled := int(fraction*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	lit := litStyle.Render(strings.Repeat("█", filled))
	dark := darkStyle.Render(strings.Repeat("░", width-filled))
	return "[" + lit + dark + "]"
}

func (m BodiesModel) renderTable() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Bodies"))
	b.WriteString("\n")

	header := fmt.Sprintf("%-14s %-11s %-9s %10s %12s %8s %7s %9s %6s",
		"Body", "Kind", "Parent", "From root", "From parent", "Lon", "Lat", "Light", "Spin")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	rows := sim.GenerateSummaryRows(&m.frame)

	// Calculate visible rows based on height
	maxRows := m.height - 8 // Leave room for the phase panel and header
	if maxRows < 5 {
		maxRows = 5
	}

	startIdx := 0
	if m.cursor >= maxRows {
		startIdx = m.cursor - maxRows + 1
	}
	endIdx := min(startIdx+maxRows, len(rows))

	for i := startIdx; i < endIdx; i++ {
		r := rows[i]
		body := m.frame.Bodies[i]

		spin := "-"
		if body.SpinRad != 0 {
			spin = fmt.Sprintf("%.0f°", astro.RadToDeg(body.SpinRad))
		}

		line := fmt.Sprintf("%-14s %-11s %-9s %10s %12s %8s %7s %9s %6s",
			truncate(r.ID, 14), r.Kind, truncate(r.Parent, 9),
			r.FromRoot, r.FromPar, r.Lon, r.Lat, r.Light, spin)

		if i == m.cursor {
			b.WriteString(selectedRowStyle.Render(line))
		} else {
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	// Scroll indicator
	if len(rows) > maxRows {
		b.WriteString(fmt.Sprintf("\n  Showing %d-%d of %d bodies", startIdx+1, endIdx, len(rows)))
	}

	return b.String()
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
