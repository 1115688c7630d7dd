package reporting

import (
	"bytes"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgsvg"

	"cytb_buddy_go/dataset"
)

const histBins = 10

// PairPlot draws a grid comparing every numeric column with every other:
// histograms on the diagonal and scatter plots elsewhere.
func PairPlot(ds *dataset.Dataset) (string, error) {
	columns := dataset.NumericColumns
	n := len(columns)

	plotted := 0
	plots := make([][]*plot.Plot, n)
	for row := 0; row < n; row++ {
		plots[row] = make([]*plot.Plot, n)
		for col := 0; col < n; col++ {
			p := plot.New()
			if row == n-1 {
				p.X.Label.Text = columns[col]
			}
			if col == 0 {
				p.Y.Label.Text = columns[row]
			}

			var ok bool
			var err error
			if row == col {
				ok, err = addHistogram(p, ds, columns[col])
			} else {
				ok, err = addScatter(p, ds, columns[col], columns[row])
			}
			if err != nil {
				return "", err
			}
			if ok {
				plotted++
			}
			plots[row][col] = p
		}
	}
	if plotted == 0 {
		return "", fmt.Errorf("pair plot: %w", ErrNoData)
	}

	size := 2.5 * vg.Inch * vg.Length(n)
	canvas := vgsvg.New(size, size)
	dc := draw.New(canvas)
	tiles := draw.Tiles{
		Rows:      n,
		Cols:      n,
		PadX:      vg.Millimeter,
		PadY:      vg.Millimeter,
		PadTop:    vg.Points(4),
		PadBottom: vg.Points(4),
		PadLeft:   vg.Points(4),
		PadRight:  vg.Points(4),
	}

	canvases := plot.Align(plots, tiles, dc)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			plots[row][col].Draw(canvases[row][col])
		}
	}

	var buf bytes.Buffer
	if _, err := canvas.WriteTo(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func addHistogram(p *plot.Plot, ds *dataset.Dataset, column string) (bool, error) {
	col, err := ds.Column(column)
	if err != nil {
		return false, err
	}
	var values plotter.Values
	for _, v := range col {
		if x, ok := v.Get(); ok {
			values = append(values, x)
		}
	}
	// a histogram needs a non-empty range to bin over
	if len(values) < 2 || floats.Min(values) == floats.Max(values) {
		return false, nil
	}

	h, err := plotter.NewHist(values, histBins)
	if err != nil {
		return false, err
	}
	h.FillColor = barColor
	p.Add(h)
	return true, nil
}

func addScatter(p *plot.Plot, ds *dataset.Dataset, xCol, yCol string) (bool, error) {
	pts, _, err := pairedPoints(ds, xCol, yCol)
	if err != nil {
		return false, err
	}
	if len(pts) == 0 {
		return false, nil
	}

	s, err := plotter.NewScatter(pts)
	if err != nil {
		return false, err
	}
	s.GlyphStyle.Color = pointColor
	s.GlyphStyle.Radius = vg.Points(2)
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(s)
	return true, nil
}
