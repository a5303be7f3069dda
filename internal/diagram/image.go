package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportCurve exports the factor of safety curve to an image file. The
// format follows the extension (png, svg, pdf); anything else gets .png.
func ExportCurve(data CurveData, filename string) error {
	if len(data.Diameters) == 0 || len(data.Diameters) != len(data.FactorOfSafety) {
		return fmt.Errorf("curve needs matching diameters and factors of safety, got %d and %d",
			len(data.Diameters), len(data.FactorOfSafety))
	}

	p := plot.New()
	p.Title.Text = "Factor of Safety vs Shaft Diameter"
	if data.Material != "" {
		p.Title.Text += " (" + data.Material + ")"
	}
	p.X.Label.Text = "Diameter (mm)"
	p.Y.Label.Text = "Factor of safety"

	pts := make(plotter.XYs, len(data.Diameters))
	for i := range data.Diameters {
		pts[i] = plotter.XY{X: data.Diameters[i], Y: data.FactorOfSafety[i]}
	}
	curve, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	curve.LineStyle.Width = vg.Points(2)
	curve.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(curve)

	minX, maxX := data.Diameters[0], data.Diameters[len(data.Diameters)-1]
	targetLine, err := plotter.NewLine(plotter.XYs{
		{X: minX, Y: data.Target},
		{X: maxX, Y: data.Target},
	})
	if err != nil {
		return err
	}
	targetLine.LineStyle.Width = vg.Points(1.5)
	targetLine.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	targetLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(targetLine)

	labels := []struct {
		x, y float64
		text string
	}{
		{maxX, data.Target, fmt.Sprintf("FoS=%.2f", data.Target)},
	}

	if data.Selected > 0 {
		marker, err := plotter.NewScatter(plotter.XYs{{X: data.Selected, Y: data.Target}})
		if err != nil {
			return err
		}
		marker.GlyphStyle.Color = color.RGBA{R: 139, G: 69, B: 19, A: 255}
		marker.GlyphStyle.Radius = vg.Points(5)
		marker.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(marker)

		labels = append(labels, struct {
			x, y float64
			text string
		}{data.Selected, data.Target, fmt.Sprintf("d=%.2fmm", data.Selected)})
	}

	for _, lbl := range labels {
		l, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: lbl.x, Y: lbl.y}},
			Labels: []string{lbl.text},
		})
		if err != nil {
			return err
		}
		p.Add(l)
	}

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
