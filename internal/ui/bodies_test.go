package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/orrery/internal/sim"
)

func TestRenderIlluminationBar(t *testing.T) {
	m := BodiesModel{}

	tests := []struct {
		name       string
		fraction   float64
		width      int
		wantFilled int
	}{
		{"new", 0.0, 10, 0},
		{"full", 1.0, 10, 10},
		{"quarter", 0.5, 10, 5},
		{"crescent", 0.24, 10, 2},
		{"over", 1.2, 10, 10},
		{"under", -0.1, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := m.renderIlluminationBar(tt.fraction, tt.width)

			if !strings.HasPrefix(bar, "[") || !strings.HasSuffix(bar, "]") {
				t.Errorf("bar should have brackets, got %q", bar)
			}
			if got := strings.Count(bar, "█"); got != tt.wantFilled {
				t.Errorf("filled count = %d, want %d", got, tt.wantFilled)
			}
			if got := strings.Count(bar, "░"); got != tt.width-tt.wantFilled {
				t.Errorf("dark count = %d, want %d", got, tt.width-tt.wantFilled)
			}
		})
	}
}

func TestBodiesCursor(t *testing.T) {
	m := NewBodiesModel().SetSize(120, 40).UpdateFrame(testFrame())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if b, _ := m.Selected(); b.ID != "moon" {
		t.Errorf("selected %q, want moon", b.ID)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	if b, _ := m.Selected(); b.ID != "mars" {
		t.Errorf("end selected %q, want mars", b.ID)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 3 {
		t.Errorf("cursor moved past the end: %d", m.cursor)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyHome})
	if m.cursor != 0 {
		t.Errorf("home cursor = %d", m.cursor)
	}
}

func TestBodiesEnterFocuses(t *testing.T) {
	m := NewBodiesModel().UpdateFrame(testFrame())
	m.cursor = 3

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should emit a command")
	}
	msg, ok := cmd().(FocusBodyMsg)
	if !ok || msg.ID != "mars" {
		t.Errorf("got %#v, want FocusBodyMsg{mars}", cmd())
	}
}

func TestBodiesView(t *testing.T) {
	f := testFrame()
	f.Phase = &sim.PhaseState{Observed: "moon", Reference: "earth", Light: "sun", Fraction: 0.5, Waxing: true, Name: "First Quarter"}

	m := NewBodiesModel().SetSize(120, 40).UpdateFrame(f)
	out := m.View()
	for _, want := range []string{"Phase", "First Quarter (waxing)", "Bodies", "earth", "mars"} {
		if !strings.Contains(out, want) {
			t.Errorf("View missing %q", want)
		}
	}

	if got := NewBodiesModel().View(); !strings.Contains(got, "No bodies") {
		t.Errorf("empty View = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"earth", 9, "earth"},
		{"churyumov-gerasimenko", 9, "churyu..."},
		{"abcdef", 3, "abc"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
