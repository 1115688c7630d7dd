// Package reporting renders the merged species table as SVG charts and an HTML report.
package reporting

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"cytb_buddy_go/dataset"
)

// ErrNoData is returned when a chart has nothing to plot.
var ErrNoData = errors.New("no data to plot")

// Chart is one rendered figure.
type Chart struct {
	Name  string
	Title string
	SVG   string
	Err   error
}

var (
	barColor     = color.RGBA{R: 50, G: 100, B: 200, A: 255}
	pointColor   = color.RGBA{R: 200, G: 100, B: 100, A: 255}
	defaultWidth = 10 * vg.Inch
)

// RenderAll draws every report chart. A failed chart keeps its error and the
// rest are still rendered.
func RenderAll(ds *dataset.Dataset) []Chart {
	charts := []Chart{
		{Name: "mass", Title: "Body Mass per Species"},
		{Name: "mw_vs_gc", Title: "Molecular Weight vs GC Content"},
		{Name: "correlation", Title: "Correlation Heatmap"},
		{Name: "pairplot", Title: "Pairwise Relationships"},
		{Name: "sequence_length", Title: "Sequence Length per Species"},
	}
	render := []func(*dataset.Dataset) (string, error){
		MassBarChart,
		MolecularWeightVsGCScatter,
		CorrelationHeatmap,
		PairPlot,
		SequenceLengthBarChart,
	}
	for i := range charts {
		charts[i].SVG, charts[i].Err = render[i](ds)
	}
	return charts
}

// MassBarChart plots the observed mass of each species that has one.
func MassBarChart(ds *dataset.Dataset) (string, error) {
	return columnBarChart(ds, dataset.MassColumn, "Body Mass per Species", "Mass")
}

// SequenceLengthBarChart plots the cytochrome-b length of each matched species.
func SequenceLengthBarChart(ds *dataset.Dataset) (string, error) {
	return columnBarChart(ds, dataset.SequenceLengthColumn, "Sequence Length per Species", "Sequence Length (bp)")
}

func columnBarChart(ds *dataset.Dataset, column, title, yLabel string) (string, error) {
	col, err := ds.Column(column)
	if err != nil {
		return "", err
	}

	var names []string
	var values plotter.Values
	for i, v := range col {
		if x, ok := v.Get(); ok {
			names = append(names, ds.Records[i].Species)
			values = append(values, x)
		}
	}
	if len(values) == 0 {
		return "", fmt.Errorf("%s: %w", title, ErrNoData)
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel
	p.Y.Min = 0

	bars, err := plotter.NewBarChart(values, vg.Points(12))
	if err != nil {
		return "", err
	}
	bars.Color = barColor
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(names...)
	rotateXLabels(p)

	return renderSVG(p, defaultWidth, 5*vg.Inch)
}

// MolecularWeightVsGCScatter plots protein molecular weight against GC content,
// one labelled point per matched species.
func MolecularWeightVsGCScatter(ds *dataset.Dataset) (string, error) {
	pts, names, err := pairedPoints(ds, dataset.GCContentColumn, dataset.MolecularWeightColumn)
	if err != nil {
		return "", err
	}
	if len(pts) == 0 {
		return "", fmt.Errorf("molecular weight vs GC content: %w", ErrNoData)
	}

	p := plot.New()
	p.Title.Text = "Molecular Weight vs GC Content"
	p.X.Label.Text = "GC Content (%)"
	p.Y.Label.Text = "Molecular Weight (Da)"
	p.Add(plotter.NewGrid())

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return "", err
	}
	scatter.GlyphStyle.Color = pointColor
	scatter.GlyphStyle.Radius = vg.Points(3)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(scatter)

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: names})
	if err != nil {
		return "", err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Font.Size = vg.Points(7)
		labels.TextStyle[i].XAlign = draw.XLeft
	}
	labels.Offset = vg.Point{X: vg.Points(4)}
	p.Add(labels)

	return renderSVG(p, defaultWidth, 6*vg.Inch)
}

// pairedPoints collects rows where both columns are set.
func pairedPoints(ds *dataset.Dataset, xCol, yCol string) (plotter.XYs, []string, error) {
	xs, err := ds.Column(xCol)
	if err != nil {
		return nil, nil, err
	}
	ys, err := ds.Column(yCol)
	if err != nil {
		return nil, nil, err
	}

	var pts plotter.XYs
	var names []string
	for i := range xs {
		x, okX := xs[i].Get()
		y, okY := ys[i].Get()
		if okX && okY {
			pts = append(pts, plotter.XY{X: x, Y: y})
			names = append(names, ds.Records[i].Species)
		}
	}
	return pts, names, nil
}

func rotateXLabels(p *plot.Plot) {
	p.X.Tick.Label.Rotation = math.Pi / 3
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
}

func renderSVG(p *plot.Plot, w, h vg.Length) (string, error) {
	var buf bytes.Buffer
	writer, err := p.WriterTo(w, h, "svg")
	if err != nil {
		return "", err
	}
	if _, err := writer.WriteTo(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
