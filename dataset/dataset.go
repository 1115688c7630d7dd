// Package dataset loads the per-species mass table, carries the derived
// sequence metrics alongside it and writes the merged table back out.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	common "cytb_buddy_go/utils"
)

// Column names of the merged table.
const (
	SpeciesColumn         = "species"
	MassColumn            = "mass"
	MolecularWeightColumn = "molecular_weight"
	GCContentColumn       = "GC_content"
	SequenceLengthColumn  = "sequence_length"
)

// NumericColumns are the columns compared against each other in reports.
var NumericColumns = []string{MassColumn, MolecularWeightColumn, GCContentColumn, SequenceLengthColumn}

var derivedColumns = []string{MolecularWeightColumn, GCContentColumn, SequenceLengthColumn}

// ErrMissingColumn is returned when a required column is absent from the header.
var ErrMissingColumn = errors.New("required column missing")

// Record is one row of the mass table with its derived metrics.
type Record struct {
	Species         string
	Mass            Optional[float64]
	MolecularWeight Optional[float64]
	GCContent       Optional[float64]
	SequenceLength  Optional[int]

	// raw input cells, in header order
	cells []string
}

// ClearDerived unsets the three sequence-derived fields.
func (r *Record) ClearDerived() {
	r.MolecularWeight = None[float64]()
	r.GCContent = None[float64]()
	r.SequenceLength = None[int]()
}

// Dataset is the mass table plus derived columns.
type Dataset struct {
	Header  []string
	Records []Record

	speciesIdx, massIdx int
}

// New returns an empty dataset with only the species and mass columns.
func New() *Dataset {
	return &Dataset{
		Header:     []string{SpeciesColumn, MassColumn},
		speciesIdx: 0,
		massIdx:    1,
	}
}

// Add appends a row for species. Extra input columns are left empty.
func (ds *Dataset) Add(species string, mass Optional[float64]) {
	cells := make([]string, len(ds.Header))
	cells[ds.speciesIdx] = species
	cells[ds.massIdx] = formatFloat(mass)
	ds.Records = append(ds.Records, Record{Species: species, Mass: mass, cells: cells})
}

// Load reads a CSV mass table from path.
func Load(path string) (*Dataset, error) {
	f, err := common.OpenInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ds, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Read parses a CSV mass table. The header must contain species and mass;
// other columns are kept as-is. Derived columns already present in the input
// are dropped and recomputed.
func Read(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty table", ErrMissingColumn)
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	keep := make([]int, 0, len(header))
	ds := &Dataset{speciesIdx: -1, massIdx: -1}
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if isDerived(name) {
			continue
		}
		switch name {
		case SpeciesColumn:
			ds.speciesIdx = len(ds.Header)
		case MassColumn:
			ds.massIdx = len(ds.Header)
		}
		ds.Header = append(ds.Header, name)
		keep = append(keep, i)
	}
	if ds.speciesIdx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, SpeciesColumn)
	}
	if ds.massIdx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, MassColumn)
	}

	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		cells := make([]string, len(keep))
		for j, i := range keep {
			cells[j] = row[i]
		}

		mass, err := parseMass(cells[ds.massIdx])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		ds.Records = append(ds.Records, Record{
			Species: strings.TrimSpace(cells[ds.speciesIdx]),
			Mass:    mass,
			cells:   cells,
		})
	}
	return ds, nil
}

func isDerived(name string) bool {
	for _, d := range derivedColumns {
		if name == d {
			return true
		}
	}
	return false
}

func parseMass(s string) (Optional[float64], error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "nan", "na", "n/a":
		return None[float64](), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return None[float64](), fmt.Errorf("invalid mass %q: %w", s, err)
	}
	if math.IsNaN(v) {
		return None[float64](), nil
	}
	return Some(v), nil
}

// OutputHeader is the input header followed by the derived columns.
func (ds *Dataset) OutputHeader() []string {
	out := make([]string, 0, len(ds.Header)+len(derivedColumns))
	out = append(out, ds.Header...)
	return append(out, derivedColumns...)
}

// Write serialises the merged table as CSV. Unset values are written as empty cells.
func (ds *Dataset) Write(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ds.OutputHeader()); err != nil {
		return err
	}
	for _, r := range ds.Records {
		row := make([]string, 0, len(ds.Header)+len(derivedColumns))
		row = append(row, r.cells...)
		row = append(row,
			formatFloat(r.MolecularWeight),
			formatFloat(r.GCContent),
			formatInt(r.SequenceLength),
		)
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the merged table to path.
func (ds *Dataset) WriteFile(path string) error {
	f, err := common.CreateOutput(path)
	if err != nil {
		return err
	}
	if err := ds.Write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// Column returns one numeric column, aligned with Records.
func (ds *Dataset) Column(name string) ([]Optional[float64], error) {
	out := make([]Optional[float64], len(ds.Records))
	for i, r := range ds.Records {
		switch name {
		case MassColumn:
			out[i] = r.Mass
		case MolecularWeightColumn:
			out[i] = r.MolecularWeight
		case GCContentColumn:
			out[i] = r.GCContent
		case SequenceLengthColumn:
			if v, ok := r.SequenceLength.Get(); ok {
				out[i] = Some(float64(v))
			}
		default:
			return nil, fmt.Errorf("no numeric column %q", name)
		}
	}
	return out, nil
}

// Species returns the species names in row order.
func (ds *Dataset) Species() []string {
	out := make([]string, len(ds.Records))
	for i, r := range ds.Records {
		out[i] = r.Species
	}
	return out
}
