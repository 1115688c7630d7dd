package reporting

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"cytb_buddy_go/dataset"
)

// CorrelationMatrix returns the Pearson correlation between every pair of
// columns, using only rows where both values are set. Pairs with fewer than
// two such rows, or no variance, are NaN.
func CorrelationMatrix(ds *dataset.Dataset, columns []string) (*mat.SymDense, error) {
	cols := make([][]dataset.Optional[float64], len(columns))
	for i, name := range columns {
		c, err := ds.Column(name)
		if err != nil {
			return nil, err
		}
		cols[i] = c
	}

	corr := mat.NewSymDense(len(columns), nil)
	for i := range cols {
		for j := i; j < len(cols); j++ {
			var x, y []float64
			for k := range cols[i] {
				a, okA := cols[i][k].Get()
				b, okB := cols[j][k].Get()
				if okA && okB {
					x = append(x, a)
					y = append(y, b)
				}
			}
			r := math.NaN()
			if len(x) >= 2 {
				r = stat.Correlation(x, y, nil)
			}
			corr.SetSym(i, j, r)
		}
	}
	return corr, nil
}

// corrGrid adapts a correlation matrix to plotter.GridXYZ with the first
// column drawn in the top row.
type corrGrid struct {
	m *mat.SymDense
}

func (g corrGrid) Dims() (c, r int) {
	n := g.m.SymmetricDim()
	return n, n
}

func (g corrGrid) Z(c, r int) float64 {
	n := g.m.SymmetricDim()
	return g.m.At(n-1-r, c)
}

func (g corrGrid) X(c int) float64 { return float64(c) }
func (g corrGrid) Y(r int) float64 { return float64(r) }

// CorrelationHeatmap draws the correlation matrix of the numeric columns with
// each cell annotated by its coefficient.
func CorrelationHeatmap(ds *dataset.Dataset) (string, error) {
	columns := dataset.NumericColumns
	corr, err := CorrelationMatrix(ds, columns)
	if err != nil {
		return "", err
	}

	n := len(columns)
	grid := corrGrid{m: corr}
	valid := 0
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if !math.IsNaN(grid.Z(c, r)) {
				valid++
			}
		}
	}
	if valid == 0 {
		return "", fmt.Errorf("correlation heatmap: %w", ErrNoData)
	}

	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)

	hm := plotter.NewHeatMap(grid, cm.Palette(255))
	hm.Min, hm.Max = -1, 1
	hm.NaN = color.Gray{Y: 200}

	p := plot.New()
	p.Title.Text = "Correlation Heatmap"
	p.Add(hm)

	var cells plotter.XYLabels
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cells.XYs = append(cells.XYs, plotter.XY{X: float64(c), Y: float64(r)})
			cells.Labels = append(cells.Labels, formatCoefficient(grid.Z(c, r)))
		}
	}
	labels, err := plotter.NewLabels(cells)
	if err != nil {
		return "", err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YCenter
	}
	p.Add(labels)

	xTicks := make([]plot.Tick, n)
	yTicks := make([]plot.Tick, n)
	for i, name := range columns {
		xTicks[i] = plot.Tick{Value: float64(i), Label: name}
		yTicks[i] = plot.Tick{Value: float64(n - 1 - i), Label: name}
	}
	p.X.Tick.Marker = plot.ConstantTicks(xTicks)
	p.Y.Tick.Marker = plot.ConstantTicks(yTicks)
	p.X.Min, p.X.Max = -0.5, float64(n)-0.5
	p.Y.Min, p.Y.Max = -0.5, float64(n)-0.5

	return renderSVG(p, 7*vg.Inch, 6*vg.Inch)
}

func formatCoefficient(r float64) string {
	if math.IsNaN(r) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", r)
}
