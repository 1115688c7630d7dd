// Package species_metrics fills the derived sequence metrics of a mass table.
package species_metrics

import (
	"fmt"
	"strings"

	"cytb_buddy_go/codon_table"
	"cytb_buddy_go/dataset"
	"cytb_buddy_go/seq_metrics"
	"cytb_buddy_go/translator"
)

// Metrics are the values derived from one nucleotide sequence.
type Metrics struct {
	Protein         string
	MolecularWeight float64
	GCContent       float64
	SequenceLength  int
}

// Compute derives the metrics of a raw nucleotide sequence. Translation runs on
// the uppercased sequence; GC content and length use the raw sequence.
func Compute(seq string, table codon_table.CodonTable, masses seq_metrics.ResidueMasses) (Metrics, error) {
	protein := translator.Translate(strings.ToUpper(seq), table)
	mw, err := seq_metrics.MolecularWeight(protein, masses)
	if err != nil {
		return Metrics{}, err
	}
	return Metrics{
		Protein:         protein,
		MolecularWeight: mw,
		GCContent:       seq_metrics.GCContent(seq),
		SequenceLength:  len(seq),
	}, nil
}

// Summary counts what Annotate did.
type Summary struct {
	Records   int
	WithMass  int
	Matched   int
	Unmatched []string
}

// Annotate fills molecular weight, GC content and sequence length on every
// record that has an observed mass and a sequence for its species.
// Records without a sequence, or without a mass, are left unset. Running it
// again on the same inputs gives the same result.
func Annotate(ds *dataset.Dataset, seqs map[string]string, table codon_table.CodonTable, masses seq_metrics.ResidueMasses) (Summary, error) {
	sum := Summary{Records: len(ds.Records)}

	for i := range ds.Records {
		r := &ds.Records[i]
		r.ClearDerived()
		if !r.Mass.Valid() {
			continue
		}
		sum.WithMass++

		seq, ok := seqs[r.Species]
		if !ok {
			sum.Unmatched = append(sum.Unmatched, r.Species)
			continue
		}

		m, err := Compute(seq, table, masses)
		if err != nil {
			return sum, fmt.Errorf("%s: %w", r.Species, err)
		}
		r.MolecularWeight = dataset.Some(m.MolecularWeight)
		r.GCContent = dataset.Some(m.GCContent)
		r.SequenceLength = dataset.Some(m.SequenceLength)
		sum.Matched++
	}
	return sum, nil
}
