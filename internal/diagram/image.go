package diagram

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportCurve writes the curves to filename. The extension selects png,
// svg or pdf; any other name gets ".png" appended. It returns the path
// written.
func ExportCurve(data CurveData, filename string) (string, error) {
	if err := data.validate(); err != nil {
		return "", err
	}

	p := plot.New()
	p.Title.Text = data.Title
	p.X.Label.Text = data.XLabel
	p.Y.Label.Text = data.YLabel
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	for i, s := range data.Series {
		pts := make(plotter.XYs, len(s.X))
		for j := range s.X {
			pts[j] = plotter.XY{X: s.X[j], Y: s.Y[j]}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return "", err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = plotutil.Color(i)
		p.Add(line)
		if s.Name != "" {
			p.Legend.Add(s.Name, line)
		}
	}

	if len(data.Markers) > 0 {
		pts := make(plotter.XYs, len(data.Markers))
		labels := make([]string, len(data.Markers))
		for i, m := range data.Markers {
			pts[i] = plotter.XY{X: m.X, Y: m.Y}
			labels[i] = m.Label
		}
		marks, err := plotter.NewScatter(pts)
		if err != nil {
			return "", err
		}
		marks.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
		marks.GlyphStyle.Radius = vg.Points(4)
		marks.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(marks)

		l, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: labels})
		if err != nil {
			return "", err
		}
		p.Add(l)
	}

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}
	if err := p.Save(width, height, filename); err != nil {
		return "", err
	}
	return filename, nil
}
