// Package visualize renders probability timelines and the current snapshot
// as PNG charts. It consumes the stores read-only.
package visualize

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/example/sentinel/internal/models"
)

var (
	lineColor = color.NRGBA{R: 0x2E, G: 0x86, B: 0xAB, A: 0xFF}

	// Shaded probability zones, bottom to top, matching the descriptor
	// buckets of the forecast engine.
	zones = []struct {
		low, high float64
		fill      color.NRGBA
	}{
		{0, 10, color.NRGBA{R: 0x2E, G: 0xCC, B: 0x71, A: 0x20}},
		{10, 30, color.NRGBA{R: 0xF3, G: 0x9C, B: 0x12, A: 0x20}},
		{30, 70, color.NRGBA{R: 0xE6, G: 0x7E, B: 0x22, A: 0x20}},
		{70, 90, color.NRGBA{R: 0xE7, G: 0x4C, B: 0x3C, A: 0x20}},
		{90, 100, color.NRGBA{R: 0xC0, G: 0x39, B: 0x2B, A: 0x20}},
	}
)

// Renderer writes chart files into an output directory.
type Renderer struct {
	outputDir string
}

// NewRenderer creates a renderer for outputDir, created on first use.
func NewRenderer(outputDir string) *Renderer {
	return &Renderer{outputDir: outputDir}
}

// Timeline renders the probability history of one topic and returns the
// written file path.
func (r *Renderer) Timeline(key, title string, history []models.HistoryEntry) (string, error) {
	if len(history) == 0 {
		return "", fmt.Errorf("no history data for %s", key)
	}
	if err := os.MkdirAll(r.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	pts := make(plotter.XYs, 0, len(history))
	minX, maxX := 0.0, 0.0
	for _, entry := range history {
		date, err := time.Parse(models.DateFormat, entry.Date)
		if err != nil {
			continue
		}
		x := float64(date.Unix())
		if len(pts) == 0 || x < minX {
			minX = x
		}
		if len(pts) == 0 || x > maxX {
			maxX = x
		}
		pts = append(pts, plotter.XY{X: x, Y: float64(entry.Probability)})
	}
	if len(pts) == 0 {
		return "", fmt.Errorf("no parseable history dates for %s", key)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Probability Assessment Timeline: %s", title)
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Probability (%)"
	p.X.Tick.Marker = plot.TimeTicks{Format: models.DateFormat}
	p.Y.Min = 0
	p.Y.Max = 100

	// Widen a single-point timeline so the zones still render.
	if minX == maxX {
		minX -= 1
		maxX += 1
	}
	if err := addZones(p, minX, maxX); err != nil {
		return "", err
	}

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return "", fmt.Errorf("failed to build timeline series: %w", err)
	}
	line.Color = lineColor
	line.Width = vg.Points(2)
	points.Color = lineColor
	points.Radius = vg.Points(3)
	p.Add(line, points)

	path := filepath.Join(r.outputDir, fmt.Sprintf("%s_timeline.png", key))
	if err := p.Save(12*vg.Inch, 6*vg.Inch, path); err != nil {
		return "", fmt.Errorf("failed to save timeline chart: %w", err)
	}
	return path, nil
}

// Snapshot renders a horizontal bar chart of current probabilities, colored
// by risk level, and returns the written file path.
func (r *Renderer) Snapshot(state *models.State) (string, error) {
	keys := []string{}
	for _, key := range state.TopicKeys() {
		if assessment, ok := state.Assessments[key]; ok && assessment.Assessed() {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return "", fmt.Errorf("no current assessments available")
	}
	if err := os.MkdirAll(r.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	p := plot.New()
	p.Title.Text = "Current Probability Assessments"
	p.X.Label.Text = "Probability (%)"
	p.X.Min = 0
	p.X.Max = 105

	titles := make([]string, len(keys))
	for i, key := range keys {
		assessment := state.Assessments[key]
		titles[i] = assessment.Title
		probability := float64(*assessment.CurrentProbability)

		// One single-bar series per topic so each bar gets its risk color.
		values := make(plotter.Values, len(keys))
		values[i] = probability
		bar, err := plotter.NewBarChart(values, vg.Points(18))
		if err != nil {
			return "", fmt.Errorf("failed to build snapshot series: %w", err)
		}
		bar.Horizontal = true
		bar.Color = barColor(*assessment.CurrentProbability)
		bar.LineStyle.Width = vg.Points(0.5)
		p.Add(bar)
	}
	p.NominalY(titles...)

	path := filepath.Join(r.outputDir, "current_snapshot.png")
	if err := p.Save(12*vg.Inch, vg.Inch*vg.Length(maxFloat(6, float64(len(keys)))), path); err != nil {
		return "", fmt.Errorf("failed to save snapshot chart: %w", err)
	}
	return path, nil
}

// RenderAll writes the snapshot plus a timeline per topic with history and
// returns all written paths.
func (r *Renderer) RenderAll(state *models.State) ([]string, error) {
	paths := []string{}

	if snapshot, err := r.Snapshot(state); err == nil {
		paths = append(paths, snapshot)
	}

	for _, key := range state.TopicKeys() {
		history := state.History[key]
		if len(history) == 0 {
			continue
		}
		title := key
		if assessment, ok := state.Assessments[key]; ok {
			title = assessment.Title
		}
		path, err := r.Timeline(key, title, history)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("nothing to visualize: no assessments recorded yet")
	}
	return paths, nil
}

func addZones(p *plot.Plot, minX, maxX float64) error {
	for _, z := range zones {
		poly, err := plotter.NewPolygon(plotter.XYs{
			{X: minX, Y: z.low},
			{X: maxX, Y: z.low},
			{X: maxX, Y: z.high},
			{X: minX, Y: z.high},
		})
		if err != nil {
			return fmt.Errorf("failed to build probability zone: %w", err)
		}
		poly.Color = z.fill
		poly.LineStyle.Width = 0
		p.Add(poly)
	}
	return nil
}

func barColor(probability int) color.NRGBA {
	switch {
	case probability < 10:
		return color.NRGBA{R: 0x2E, G: 0xCC, B: 0x71, A: 0xB3}
	case probability < 30:
		return color.NRGBA{R: 0xF3, G: 0x9C, B: 0x12, A: 0xB3}
	case probability < 70:
		return color.NRGBA{R: 0xE6, G: 0x7E, B: 0x22, A: 0xB3}
	case probability < 90:
		return color.NRGBA{R: 0xE7, G: 0x4C, B: 0x3C, A: 0xB3}
	}
	return color.NRGBA{R: 0xC0, G: 0x39, B: 0x2B, A: 0xB3}
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
