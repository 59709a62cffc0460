// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/orrery/internal/clock"
	"github.com/litescript/orrery/internal/sim"
	"github.com/litescript/orrery/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewSystem ViewMode = iota
	ViewBodies
)

const viewCount = 2

// FrameTickMsg advances the simulation by the wall time since the last
// tick.
type FrameTickMsg time.Time

// Model is the root Bubble Tea model.
type Model struct {
	session  *sim.Session
	interval time.Duration

	// UI state
	viewMode  ViewMode
	width     int
	height    int
	ready     bool
	statusMsg string

	lastTick time.Time
	frame    sim.Frame

	// Sub-models
	system SystemModel
	bodies BodiesModel
}

// New creates a new root UI model driving session.
func New(session *sim.Session) Model {
	fps := session.Config().FPS
	frame := session.Frame()

	return Model{
		session:  session,
		interval: time.Duration(float64(time.Second) / fps),
		viewMode: ViewSystem,
		frame:    frame,
		system:   NewSystemModel(session.Tree()).UpdateFrame(frame),
		bodies:   NewBodiesModel().UpdateFrame(frame),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	clk := m.session.Clock()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1":
			m.viewMode = ViewSystem
		case "2", "b":
			m.viewMode = ViewBodies
		case "tab":
			m.viewMode = (m.viewMode + 1) % viewCount

		case " ", "p":
			if clk.TogglePause() {
				m.statusMsg = "Paused"
			} else {
				m.statusMsg = "Running"
			}
			m.refresh()
		case ">", ".":
			clk.SetScale(clock.NextPreset(clk.Scale()))
			m.statusMsg = "Time scale " + clock.FormatScale(clk.Scale())
			m.refresh()
		case "<", ",":
			clk.SetScale(clock.PrevPreset(clk.Scale()))
			m.statusMsg = "Time scale " + clock.FormatScale(clk.Scale())
			m.refresh()
		case "i":
			clk.SetScale(-clk.Scale())
			m.statusMsg = "Time scale " + clock.FormatScale(clk.Scale())
			m.refresh()
		case "R":
			clk.ResetToNow()
			m.statusMsg = "Reset to " + clock.FormatInstant(clk.Now())
			m.refresh()

		default:
			cmds = append(cmds, m.updateActiveView(msg))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Logo takes 8 lines plus the tab line, footer 2 lines
		contentHeight := msg.Height - 12
		m.system = m.system.SetSize(msg.Width, contentHeight)
		m.bodies = m.bodies.SetSize(msg.Width, contentHeight)

	case FrameTickMsg:
		cmds = append(cmds, tickCmd(m.interval))
		now := time.Time(msg)
		var delta time.Duration
		if !m.lastTick.IsZero() {
			delta = now.Sub(m.lastTick)
		}
		m.lastTick = now
		m.setFrame(m.session.Step(delta))

	case FocusBodyMsg:
		if m.system.SetFocus(msg.ID) {
			m.viewMode = ViewSystem
		}

	default:
		cmds = append(cmds, m.updateActiveView(msg))
	}

	return m, tea.Batch(cmds...)
}

// refresh re-reads the frame without advancing time, so key presses show
// up before the next tick.
func (m *Model) refresh() {
	m.setFrame(m.session.Frame())
}

func (m *Model) setFrame(f sim.Frame) {
	m.frame = f
	m.system = m.system.UpdateFrame(f)
	m.bodies = m.bodies.UpdateFrame(f)
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewSystem:
		m.system, cmd = m.system.Update(msg)
	case ViewBodies:
		m.bodies, cmd = m.bodies.Update(msg)
	}
	return cmd
}

// Frame returns the most recently displayed frame.
func (m Model) Frame() sim.Frame { return m.frame }

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewSystem:
		content = m.system.View()
	case ViewBodies:
		content = m.bodies.View()
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	return m.renderLogo() + m.renderTabs() + "\n"
}

func (m Model) renderLogo() string {
	logo := []string{
		`   ██████╗ ██████╗ ██████╗ ███████╗██████╗ ██╗   ██╗`,
		`  ██╔═══██╗██╔══██╗██╔══██╗██╔════╝██╔══██╗╚██╗ ██╔╝`,
		`  ██║   ██║██████╔╝██████╔╝█████╗  ██████╔╝ ╚████╔╝ `,
		`  ██║   ██║██╔══██╗██╔══██╗██╔══╝  ██╔══██╗  ╚██╔╝  `,
		`  ╚██████╔╝██║  ██║██║  ██║███████╗██║  ██║   ██║   `,
		`   ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝   ╚═╝   `,
	}

	var b strings.Builder
	for row, line := range logo {
		runes := []rune(line)
		for col, r := range runes {
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(gradientColor(col, row, len(runes), len(logo))))
			b.WriteString(style.Render(string(r)))
		}
		b.WriteString("\n")
	}

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	b.WriteString(muted.Render(fmt.Sprintf("  Keplerian orrery · v%s", version.Version)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] System", "[2] Bodies"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))
	pausedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27")).Bold(true)

	spinnerFrames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

	f := m.frame
	var state string
	if f.Paused {
		state = pausedStyle.Render("⏸ paused")
	} else {
		state = accentStyle.Render(spinnerFrames[f.Seq%uint64(len(spinnerFrames))])
	}

	status := state + "  " + valueStyle.Render(clock.FormatInstant(f.Instant)) +
		dimStyle.Render(fmt.Sprintf("  JD %.4f  ", f.JulianDay)) +
		valueStyle.Render(clock.FormatScale(f.Scale))

	if p := f.Phase; p != nil {
		status += dimStyle.Render("  |  ") + valueStyle.Render(fmt.Sprintf("%s %s %.0f%%", p.Observed, p.Name, p.Fraction*100))
	}

	var help string
	switch m.viewMode {
	case ViewBodies:
		help = "↑↓: select | enter: show in system"
	default:
		help = "j/k: focus | n/N: primaries | +/-: zoom | arrows: pan | f: find | z: mode | l: labels | o: orbits | t: stars"
	}
	help = "space: pause | </>: speed | i: reverse | R: now | " + help

	footer := "  " + status + "\n  " + dimStyle.Render(help)
	if m.statusMsg != "" {
		footer += "  " + accentStyle.Render(m.statusMsg)
	}
	return footer
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameTickMsg(t)
	})
}
