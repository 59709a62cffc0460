package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/litescript/orrery/internal/astro"
	"github.com/litescript/orrery/internal/clock"
)

// WriteJSON writes the frame as indented JSON.
func (f *Frame) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(f)
}

// JSONLines returns a sink writing one compact JSON frame per line.
func JSONLines(w io.Writer) Sink {
	enc := json.NewEncoder(w)
	return func(f Frame) error {
		return enc.Encode(f)
	}
}

// Limit wraps a sink so that Run stops after n frames.
func Limit(n int, next Sink) Sink {
	count := 0
	return func(f Frame) error {
		if err := next(f); err != nil {
			return err
		}
		count++
		if count >= n {
			return ErrStop
		}
		return nil
	}
}

// OrbitExport is the JSON form of a sampled orbit polyline.
type OrbitExport struct {
	ID       string `json:"id"`
	Parent   string `json:"parent,omitempty"`
	Motion   string `json:"motion"`
	Segments int    `json:"segments"`
	Points   []Vec  `json:"points"`
}

// ExportOrbit samples body id's orbit.
func (s *Session) ExportOrbit(id string, segments int) (*OrbitExport, error) {
	pts, err := s.tree.SamplePoints(id, segments)
	if err != nil {
		return nil, err
	}

	h, _ := s.tree.Lookup(id)
	n := s.tree.Node(h)
	out := &OrbitExport{
		ID:       id,
		Motion:   n.Motion().String(),
		Segments: len(pts) - 1,
		Points:   make([]Vec, len(pts)),
	}
	if len(pts) == 0 {
		out.Segments = 0
	}
	if p, ok := s.tree.Parent(h); ok {
		out.Parent = s.tree.Node(p).ID
	}
	for i, p := range pts {
		out.Points[i] = vec(p)
	}
	return out, nil
}

// WriteJSON writes the orbit as indented JSON.
func (o *OrbitExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(o)
}

// SummaryRow represents one row in the summary table.
type SummaryRow struct {
	ID       string
	Kind     string
	Parent   string
	FromRoot string
	FromPar  string
	Lon      string
	Lat      string
	Light    string
}

// GenerateSummaryRows creates summary rows from a frame.
func GenerateSummaryRows(f *Frame) []SummaryRow {
	rows := make([]SummaryRow, 0, len(f.Bodies))
	for _, b := range f.Bodies {
		r := SummaryRow{
			ID:     strings.Repeat(" ", b.Depth) + b.ID,
			Kind:   b.Kind,
			Parent: b.Parent,
		}
		if b.Parent != "" {
			r.FromRoot = fmt.Sprintf("%.4f", b.DistanceFromRoot)
			r.FromPar = formatDistance(b.DistanceFromParent)
			r.Lon = fmt.Sprintf("%.2f", b.EclipticLonDeg)
			r.Lat = fmt.Sprintf("%+.2f", b.EclipticLatDeg)
			r.Light = astro.FormatLightTime(b.LightTimeSec)
		} else {
			r.FromRoot, r.FromPar, r.Lon, r.Lat, r.Light = "-", "-", "-", "-", "-"
		}
		rows = append(rows, r)
	}
	return rows
}

// formatDistance shows satellite-scale distances (under 0.01 AU) in km.
func formatDistance(au float64) string {
	if au < 0.01 {
		return fmt.Sprintf("%.0f km", astro.AUToKm(au))
	}
	return fmt.Sprintf("%.4f", au)
}

// WriteSummaryTable writes a text table to the given writer.
func WriteSummaryTable(w io.Writer, f *Frame) {
	fmt.Fprintf(w, "Orrery @ %s  (JD %.5f, %s%s)\n",
		f.Instant.UTC().Format(time.RFC3339), f.JulianDay, clock.FormatScale(f.Scale), pausedSuffix(f.Paused))
	fmt.Fprintln(w, strings.Repeat("─", 92))

	fmt.Fprintf(w, "%-14s %-11s %-9s %10s %12s %8s %7s %9s\n",
		"Body", "Kind", "Parent", "From root", "From parent", "Lon", "Lat", "Light")
	fmt.Fprintln(w, strings.Repeat("─", 92))

	for _, r := range GenerateSummaryRows(f) {
		fmt.Fprintf(w, "%-14s %-11s %-9s %10s %12s %8s %7s %9s\n",
			truncateStr(r.ID, 14), r.Kind, truncateStr(r.Parent, 9),
			r.FromRoot, r.FromPar, r.Lon, r.Lat, r.Light)
	}

	if p := f.Phase; p != nil {
		fmt.Fprintf(w, "\nPhase of %s from %s: %s, %.1f%% lit\n", p.Observed, p.Reference, p.Name, p.Fraction*100)
	}
	fmt.Fprintf(w, "\nTotal: %d bodies\n", len(f.Bodies))
}

func pausedSuffix(paused bool) string {
	if paused {
		return ", paused"
	}
	return ""
}

func truncateStr(s string, n int) string {
	if len([]rune(s)) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-1]) + "…"
}
