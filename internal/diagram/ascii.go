package diagram

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"
)

// Series is one named line of a curve plot.
type Series struct {
	Name string
	X    []float64
	Y    []float64
}

// Marker labels a single point, such as peak power or a target pressure.
type Marker struct {
	X, Y  float64
	Label string
}

// CurveData holds the series of one plot. All series share the X axis
// quantity named by XLabel.
type CurveData struct {
	Title   string
	XLabel  string
	YLabel  string
	Series  []Series
	Markers []Marker
}

var errNoData = errors.New("diagram: no data to plot")

func (d CurveData) validate() error {
	if len(d.Series) == 0 {
		return errNoData
	}
	for _, s := range d.Series {
		if len(s.X) != len(s.Y) {
			return fmt.Errorf("diagram: series %q has %d x and %d y values", s.Name, len(s.X), len(s.Y))
		}
		if len(s.Y) < 2 {
			return fmt.Errorf("diagram: series %q needs at least 2 points", s.Name)
		}
	}
	return nil
}

// DrawASCIICurve renders the curves for a terminal. asciigraph spaces
// samples evenly, so the caption carries the X range.
func DrawASCIICurve(data CurveData, width, height int) (string, error) {
	if err := data.validate(); err != nil {
		return "", err
	}

	ys := make([][]float64, len(data.Series))
	for i, s := range data.Series {
		ys[i] = s.Y
	}
	first := data.Series[0].X
	caption := fmt.Sprintf("%s vs %s, %.4g to %.4g", data.YLabel, data.XLabel, first[0], first[len(first)-1])
	graph := asciigraph.PlotMany(ys,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Precision(2),
		asciigraph.Caption(caption),
	)

	var sb strings.Builder
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "  %s\n", strings.ToUpper(data.Title))
	fmt.Fprintf(&sb, "  %s\n\n", strings.Repeat("─", utf8.RuneCountInString(data.Title)))
	sb.WriteString(graph)
	sb.WriteString("\n")

	if len(data.Series) > 1 {
		sb.WriteString("\n  Series:\n")
		for i, s := range data.Series {
			fmt.Fprintf(&sb, "  %d. %s\n", i+1, s.Name)
		}
	}
	if len(data.Markers) > 0 {
		sb.WriteString("\n")
		for _, m := range data.Markers {
			fmt.Fprintf(&sb, "  ◆ %s at %s = %.4g, %s = %.4g\n", m.Label, data.XLabel, m.X, data.YLabel, m.Y)
		}
	}
	return sb.String(), nil
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	fmt.Fprintf(&sb, "  ╔%s╗\n", border)
	fmt.Fprintf(&sb, "  ║  %-*s  ║\n", maxLen-4, title)
	fmt.Fprintf(&sb, "  ╠%s╣\n", border)
	for _, line := range lines {
		fmt.Fprintf(&sb, "  ║  %-*s  ║\n", maxLen-4, line)
	}
	fmt.Fprintf(&sb, "  ╚%s╝\n", border)

	return sb.String()
}
