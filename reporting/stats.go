package reporting

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"cytb_buddy_go/dataset"
)

// ColumnStats summarises the set values of one numeric column.
type ColumnStats struct {
	Name   string
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Describe returns ColumnStats for every numeric column. Statistics of a
// column with no values are NaN; StdDev needs at least two values.
func Describe(ds *dataset.Dataset) ([]ColumnStats, error) {
	out := make([]ColumnStats, 0, len(dataset.NumericColumns))
	for _, name := range dataset.NumericColumns {
		col, err := ds.Column(name)
		if err != nil {
			return nil, err
		}
		var values []float64
		for _, v := range col {
			if x, ok := v.Get(); ok {
				values = append(values, x)
			}
		}

		cs := ColumnStats{
			Name:   name,
			Count:  len(values),
			Mean:   math.NaN(),
			StdDev: math.NaN(),
			Min:    math.NaN(),
			Max:    math.NaN(),
		}
		if len(values) > 0 {
			cs.Mean = stat.Mean(values, nil)
			cs.Min = floats.Min(values)
			cs.Max = floats.Max(values)
		}
		if len(values) > 1 {
			cs.StdDev = stat.StdDev(values, nil)
		}
		out = append(out, cs)
	}
	return out, nil
}
