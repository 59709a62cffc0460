package ui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/orrery/internal/astro"
	"github.com/litescript/orrery/internal/celestial"
	"github.com/litescript/orrery/internal/sim"
)

// LabelMode controls how body labels are displayed.
type LabelMode int

const (
	LabelNone    LabelMode = iota // No labels
	LabelFocused                  // Only the focused body
	LabelAll                      // Every visible body
)

func (l LabelMode) String() string {
	switch l {
	case LabelNone:
		return "off"
	case LabelFocused:
		return "focus"
	case LabelAll:
		return "all"
	default:
		return "?"
	}
}

// orbitSegments is the polyline resolution of drawn orbits.
const orbitSegments = 128

// SystemModel renders a top-down view of the body tree.
type SystemModel struct {
	width  int
	height int
	frame  sim.Frame

	// Orbit polylines relative to the parent, by body id. Elements are
	// fixed for the lifetime of a tree, so they are sampled once.
	orbits map[string][]astro.Vec3

	// View state
	focusIdx   int     // Index into frame.Bodies; 0 is the root
	zoomLevel  int     // Index into zoomLevels
	panX       float64 // Pan offset in display units
	panY       float64
	scaleMode  astro.ScaleMode
	labelMode  LabelMode
	userPanned bool // True if user has manually panned (disables auto-center on zoom)
	showOrbits bool
	showStars  bool
}

// Discrete zoom levels for clean stepping
var zoomLevels = []float64{0.25, 0.5, 0.75, 1.0, 1.5, 2.0, 3.0, 5.0, 10.0}

const defaultZoom = 3

// NewSystemModel creates a system view for tree. A nil tree draws no
// orbits.
func NewSystemModel(tree *celestial.Tree) SystemModel {
	m := SystemModel{
		orbits:     make(map[string][]astro.Vec3),
		zoomLevel:  defaultZoom,
		scaleMode:  astro.ScaleLogR,
		labelMode:  LabelFocused,
		showOrbits: true,
		showStars:  true,
	}
	if tree != nil {
		tree.Walk(func(h celestial.Handle, n celestial.Node) {
			if pts := tree.SamplePointsOf(h, orbitSegments); len(pts) > 0 {
				m.orbits[n.ID] = pts
			}
		})
	}
	return m
}

// scale returns the current zoom scale.
func (m SystemModel) scale() float64 {
	if m.zoomLevel < 0 || m.zoomLevel >= len(zoomLevels) {
		return 1.0
	}
	return zoomLevels[m.zoomLevel]
}

func (m SystemModel) projection() astro.ProjectionConfig {
	return astro.ProjectionConfig{Scale: m.scale(), Mode: m.scaleMode}
}

// SetSize updates the viewport size.
func (m SystemModel) SetSize(width, height int) SystemModel {
	m.width = width
	m.height = height
	return m
}

// UpdateFrame replaces the displayed frame. The view follows a focused
// body unless the user has panned away.
func (m SystemModel) UpdateFrame(f sim.Frame) SystemModel {
	m.frame = f
	if m.focusIdx >= len(f.Bodies) {
		m.focusIdx = 0
	}
	if !m.userPanned {
		m.centerOnFocused()
	}
	return m
}

// Update handles input messages.
func (m SystemModel) Update(msg tea.Msg) (SystemModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "[":
			m.focusPrev()
		case "k", "]":
			m.focusNext()
		// Top-level bodies only, skipping moons
		case "n":
			m.focusNextPrimary()
		case "N":
			m.focusPrevPrimary()

		case "up":
			m.panY -= 0.1 / m.scale()
			m.userPanned = true
		case "down":
			m.panY += 0.1 / m.scale()
			m.userPanned = true
		case "left":
			m.panX -= 0.1 / m.scale()
			m.userPanned = true
		case "right":
			m.panX += 0.1 / m.scale()
			m.userPanned = true
		case "c":
			m.panX, m.panY = 0, 0 // Center on the root
			m.userPanned = true

		case "f":
			m.centerOnFocused()
			m.userPanned = false

		case "+", "=":
			if m.zoomLevel < len(zoomLevels)-1 {
				m.zoomLevel++
				if !m.userPanned {
					m.centerOnFocused()
				}
			}
		case "-":
			if m.zoomLevel > 0 {
				m.zoomLevel--
				if !m.userPanned {
					m.centerOnFocused()
				}
			}
		case "0":
			m.zoomLevel = defaultZoom
			if !m.userPanned {
				m.centerOnFocused()
			}

		case "z":
			m.scaleMode = (m.scaleMode + 1) % 3
			if !m.userPanned {
				m.centerOnFocused()
			}

		case "l":
			m.labelMode = (m.labelMode + 1) % 3

		case "o":
			m.showOrbits = !m.showOrbits

		case "t":
			m.showStars = !m.showStars

		case "r":
			m.focusIdx = 0
			m.panX, m.panY = 0, 0
			m.zoomLevel = defaultZoom
			m.userPanned = false
		}
	}
	return m, nil
}

func (m *SystemModel) focusNext() {
	n := len(m.frame.Bodies)
	if n == 0 {
		return
	}
	m.focusIdx = (m.focusIdx + 1) % n
	m.centerOnFocused()
	m.userPanned = false
}

func (m *SystemModel) focusPrev() {
	n := len(m.frame.Bodies)
	if n == 0 {
		return
	}
	m.focusIdx = (m.focusIdx - 1 + n) % n
	m.centerOnFocused()
	m.userPanned = false
}

func (m *SystemModel) focusNextPrimary() {
	m.stepPrimary(1)
}

func (m *SystemModel) focusPrevPrimary() {
	m.stepPrimary(-1)
}

func (m *SystemModel) stepPrimary(dir int) {
	bodies := m.frame.Bodies
	n := len(bodies)
	for i := 1; i <= n; i++ {
		idx := ((m.focusIdx+dir*i)%n + n) % n
		if bodies[idx].Depth == 1 {
			m.focusIdx = idx
			m.centerOnFocused()
			m.userPanned = false
			return
		}
	}
}

// SetFocus focuses body id. It reports whether the body is in the frame.
func (m *SystemModel) SetFocus(id string) bool {
	for i, b := range m.frame.Bodies {
		if b.ID == id {
			m.focusIdx = i
			m.centerOnFocused()
			m.userPanned = false
			return true
		}
	}
	return false
}

// FocusedBody returns the focused body, if any.
func (m SystemModel) FocusedBody() (sim.BodyState, bool) {
	if m.focusIdx < 0 || m.focusIdx >= len(m.frame.Bodies) {
		return sim.BodyState{}, false
	}
	return m.frame.Bodies[m.focusIdx], true
}

// centerOnFocused pans the view to center on the currently focused body.
func (m *SystemModel) centerOnFocused() {
	b, ok := m.FocusedBody()
	if !ok || b.Parent == "" {
		m.panX, m.panY = 0, 0
		return
	}
	proj := astro.ProjectTopDown(b.Position.Vec3(), m.projection())
	m.panX = -proj.X
	m.panY = -proj.Y
}

// View renders the system view.
func (m SystemModel) View() string {
	if m.width < 40 || m.height < 10 {
		return "Terminal too small for system view"
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.buildCanvas(), m.renderHUD())
}

// cell is one character of the canvas with its foreground color.
// Background cells (stars, orbit tracks) may be drawn over.
type cell struct {
	ch   rune
	fg   lipgloss.Color
	bold bool
	bg   bool
}

// bodyPos tracks a body's screen position for label rendering.
type bodyPos struct {
	x, y      int
	name      string
	isFocused bool
}

type canvas struct {
	cells [][]cell
	w, h  int
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, cells: make([][]cell, h)}
	for y := range c.cells {
		c.cells[y] = make([]cell, w)
		for x := range c.cells[y] {
			c.cells[y][x] = cell{ch: ' '}
		}
	}
	return c
}

func (c *canvas) in(x, y int) bool { return x >= 0 && x < c.w && y >= 0 && y < c.h }

func (c *canvas) empty(x, y int) bool { return c.in(x, y) && c.cells[y][x].ch == ' ' }

// free reports whether (x, y) is on the canvas and holds nothing but
// background.
func (c *canvas) free(x, y int) bool {
	if !c.in(x, y) {
		return false
	}
	cl := c.cells[y][x]
	return cl.ch == ' ' || cl.bg
}

// screen maps display units to canvas cells.
type screen struct {
	originX, originY int
	displayScale     float64
	cfg              astro.ProjectionConfig
}

func (s screen) project(v astro.Vec3) (int, int) {
	p := astro.ProjectTopDown(v, s.cfg)
	// Screen Y grows downward; scene Z is drawn upward.
	return s.originX + int(math.Round(p.X*s.displayScale)), s.originY - int(math.Round(p.Y*s.displayScale))
}

// buildCanvas renders the bodies to a string canvas.
func (m SystemModel) buildCanvas() string {
	// Reserve space for the HUD
	canvasH := m.height - 3
	if canvasH < 5 {
		canvasH = 5
	}
	c := newCanvas(m.width, canvasH)

	screenCenterX := m.width / 2
	screenCenterY := canvasH / 2

	scale := m.scale()
	// Map log(30 AU + 1) ~ 1.5 to fit in half the canvas
	maxDisplayR := float64(min(screenCenterX, screenCenterY*2)) * 0.9
	displayScale := maxDisplayR / 1.5 * scale

	sc := screen{
		originX:      screenCenterX + int(m.panX*displayScale),
		originY:      screenCenterY - int(m.panY*displayScale),
		displayScale: displayScale,
		cfg:          m.projection(),
	}

	bodies := m.frame.Bodies
	index := make(map[string]int, len(bodies))
	for i, b := range bodies {
		index[b.ID] = i
	}

	if m.showStars {
		m.drawStarfield(c, sc)
	}
	if m.showOrbits {
		m.drawOrbits(c, sc, index)
	}

	// Screen position per body; children are placed after their parent.
	cellOf := make([][2]int, len(bodies))
	var positions []bodyPos

	for i, b := range bodies {
		sx, sy := sc.project(b.Position.Vec3())
		if pi, ok := index[b.Parent]; ok && b.Depth > 1 {
			sx, sy = nudgeSatellite(sx, sy, cellOf[pi], b.Relative.Vec3())
		}
		cellOf[i] = [2]int{sx, sy}

		if !c.in(sx, sy) {
			continue
		}
		focused := i == m.focusIdx
		// The root and focused body always win their cell.
		if !c.free(sx, sy) && !focused && i != 0 {
			continue
		}
		c.cells[sy][sx] = cell{ch: bodyGlyph(b, focused), fg: bodyColor(b.Color, focused), bold: focused}
		positions = append(positions, bodyPos{x: sx, y: sy, name: b.Name, isFocused: focused})
	}

	m.renderLabels(c, positions)
	return renderCanvas(c)
}

// drawOrbits draws the orbit tracks of top-level bodies and of the
// focused body. Satellite tracks collapse into their parent's cell at
// any useful zoom, so they are not drawn.
func (m SystemModel) drawOrbits(c *canvas, sc screen, index map[string]int) {
	for i, b := range m.frame.Bodies {
		if b.Depth != 1 && i != m.focusIdx {
			continue
		}
		pts, ok := m.orbits[b.ID]
		if !ok {
			continue
		}
		var parentPos astro.Vec3
		if pi, ok := index[b.Parent]; ok {
			parentPos = m.frame.Bodies[pi].Position.Vec3()
		}

		fg := orbitColor(b.Color)
		px, py := sc.project(parentPos.Add(pts[0]))
		for _, p := range pts[1:] {
			x, y := sc.project(parentPos.Add(p))
			drawSegment(c, px, py, x, y, fg)
			px, py = x, y
		}
	}
}

// drawSegment plots a dotted line between two cells on empty cells only.
func drawSegment(c *canvas, x0, y0, x1, y1 int, fg lipgloss.Color) {
	dx, dy := x1-x0, y1-y0
	steps := max(abs(dx), abs(dy))
	if steps > 4*(c.w+c.h) {
		// Both ends far off-screen; not worth walking.
		return
	}
	for s := 0; s <= steps; s++ {
		x, y := x0, y0
		if steps > 0 {
			x = x0 + int(math.Round(float64(dx*s)/float64(steps)))
			y = y0 + int(math.Round(float64(dy*s)/float64(steps)))
		}
		if c.empty(x, y) {
			c.cells[y][x] = cell{ch: '·', fg: fg, bg: true}
		}
	}
}

// starShellAU is the distance at which background stars are drawn at 1x
// zoom. The shell shrinks as the view zooms in so stars stay near the
// viewport edge.
const starShellAU = 100.0

// drawStarfield renders the bright star catalog as a fixed background,
// projected the same way as bodies.
func (m SystemModel) drawStarfield(c *canvas, sc screen) {
	shell := starShellAU / m.scale()
	fg := lipgloss.Color("238")

	for _, star := range astro.BrightStars() {
		x, y := sc.project(star.Direction().Scale(shell))
		if !c.empty(x, y) {
			continue
		}
		c.cells[y][x] = cell{ch: starGlyph(star.Mag), fg: fg, bg: true}
	}
}

// starGlyph returns a subtle glyph based on star magnitude.
func starGlyph(mag float64) rune {
	if mag <= 1.0 {
		return '∗'
	}
	return '˙'
}

// nudgeSatellite moves a satellite that would share its parent's cell
// one cell toward its true direction from the parent, so moons stay
// visible and visibly circle their planet.
func nudgeSatellite(sx, sy int, parent [2]int, rel astro.Vec3) (int, int) {
	if sx != parent[0] || sy != parent[1] {
		return sx, sy
	}
	angle := math.Atan2(rel.Z, rel.X)
	return parent[0] + int(math.Round(math.Cos(angle))), parent[1] - int(math.Round(math.Sin(angle)))
}

// renderLabels draws body labels on the canvas based on label mode.
func (m SystemModel) renderLabels(c *canvas, positions []bodyPos) {
	if m.labelMode == LabelNone || len(positions) == 0 {
		return
	}

	labelFg := lipgloss.Color("249")
	focusFg := lipgloss.Color("229")

	for _, pos := range positions {
		show := false
		switch m.labelMode {
		case LabelFocused:
			show = pos.isFocused
		case LabelAll:
			show = true
		}
		if !show {
			continue
		}

		labelX := pos.x + 2
		if pos.y < 0 || pos.y >= c.h || labelX >= c.w {
			continue
		}

		text, fg := pos.name, labelFg
		if pos.isFocused {
			text, fg = "◄ "+pos.name, focusFg
		}

		x := labelX
		for _, r := range text {
			if x >= c.w {
				break
			}
			// Only write over empty or background cells
			if c.free(x, pos.y) {
				c.cells[pos.y][x] = cell{ch: r, fg: fg, bold: pos.isFocused}
			}
			x++
		}
	}
}

func bodyGlyph(b sim.BodyState, focused bool) rune {
	kind, ok := celestial.ParseKind(b.Kind)
	if !ok {
		return '?'
	}
	switch kind {
	case celestial.Star:
		return '☉'
	case celestial.Planet:
		if focused {
			return '●'
		}
		return '•'
	case celestial.Moon:
		if focused {
			return '◆'
		}
		return '∘'
	case celestial.DwarfPlanet:
		if focused {
			return '◉'
		}
		return '○'
	case celestial.Asteroid:
		if focused {
			return '◆'
		}
		return '∙'
	case celestial.Comet:
		if focused {
			return '◆'
		}
		return '✧'
	default:
		return kind.Symbol()
	}
}

func renderCanvas(c *canvas) string {
	var b strings.Builder
	for _, row := range c.cells {
		for _, cl := range row {
			if cl.ch == ' ' {
				b.WriteRune(' ')
				continue
			}
			style := lipgloss.NewStyle().Foreground(cl.fg).Bold(cl.bold)
			b.WriteString(style.Render(string(cl.ch)))
		}
		b.WriteRune('\n')
	}
	return b.String()
}

func (m SystemModel) renderHUD() string {
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	field := func(label, value string) {
		b.WriteString("  ")
		b.WriteString(labelStyle.Render(label + " "))
		b.WriteString(valueStyle.Render(value))
	}

	focused, ok := m.FocusedBody()
	switch {
	case !ok:
		b.WriteString(dimStyle.Render("(no bodies)"))
	case focused.Parent == "":
		b.WriteString(headerStyle.Render(fmt.Sprintf("%c %s", bodyGlyph(focused, false), focused.Name)))
		b.WriteString("  ")
		b.WriteString(dimStyle.Render(fmt.Sprintf("(%s, root of the system)", focused.Kind)))
	default:
		b.WriteString(headerStyle.Render(fmt.Sprintf("◆ %s", focused.Name)))
		b.WriteString(dimStyle.Render(fmt.Sprintf(" %s of %s", focused.Kind, focused.Parent)))
		field("Distance:", fmt.Sprintf("%.4f AU", focused.DistanceFromRoot))
		if focused.Depth > 1 {
			field("From parent:", fmt.Sprintf("%.0f km", astro.AUToKm(focused.DistanceFromParent)))
		}
		field("Light:", astro.FormatLightTime(focused.LightTimeSec))
	}
	b.WriteString("\n")

	if ok && focused.Parent != "" {
		field("Lon:", fmt.Sprintf("%.1f°", focused.EclipticLonDeg))
		field("Lat:", fmt.Sprintf("%+.1f°", focused.EclipticLatDeg))
		field("Spin:", fmt.Sprintf("%.0f°", astro.RadToDeg(focused.SpinRad)))
		b.WriteString("  ")
	}

	orbits, stars := "off", "off"
	if m.showOrbits {
		orbits = "on"
	}
	if m.showStars {
		stars = "on"
	}

	b.WriteString(dimStyle.Render("Mode:"))
	b.WriteString(valueStyle.Render(m.scaleMode.String()))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Zoom:"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.2gx", m.scale())))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Labels:"))
	b.WriteString(valueStyle.Render(m.labelMode.String()))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Orbits:"))
	b.WriteString(valueStyle.Render(orbits))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Stars:"))
	b.WriteString(valueStyle.Render(stars))

	return b.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
