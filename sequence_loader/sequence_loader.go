// Package sequence_loader reads cytochrome-b FASTA files into a species-keyed collection.
//
// Headers are expected in the GenBank style:
//
//	>AB123456.1 Genus species cytochrome b (cytb) gene, complete cds; mitochondrial
//
// The species key is the second and third whitespace-separated header tokens.
package sequence_loader

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	common "cytb_buddy_go/utils"
)

// ErrMalformedHeader is returned when a header has fewer than three tokens.
var ErrMalformedHeader = errors.New("header does not name a species")

// Record is one loaded FASTA entry.
type Record struct {
	ID       string
	Species  string
	Sequence string
}

// Collection maps species names to raw nucleotide sequences.
// When a species appears twice, the later record wins; Order keeps first-seen order.
type Collection struct {
	bySpecies map[string]Record
	Order     []string
}

// Lookup returns the record for species, if one was loaded.
func (c Collection) Lookup(species string) (Record, bool) {
	r, ok := c.bySpecies[species]
	return r, ok
}

// Len returns the number of distinct species.
func (c Collection) Len() int {
	return len(c.bySpecies)
}

// Records returns the loaded records in first-seen species order.
func (c Collection) Records() []Record {
	out := make([]Record, 0, len(c.Order))
	for _, sp := range c.Order {
		out = append(out, c.bySpecies[sp])
	}
	return out
}

// Sequences returns the species -> raw sequence mapping.
func (c Collection) Sequences() map[string]string {
	out := make(map[string]string, len(c.bySpecies))
	for sp, r := range c.bySpecies {
		out[sp] = r.Sequence
	}
	return out
}

// SpeciesName builds the species key from a FASTA identifier and description.
func SpeciesName(id, desc string) (string, error) {
	fields := strings.Fields(desc)
	if len(fields) < 2 {
		return "", fmt.Errorf("%w: %q", ErrMalformedHeader, strings.TrimSpace(id+" "+desc))
	}
	return fields[0] + " " + fields[1], nil
}

// Load reads a plain or gzipped FASTA file into a species-keyed collection.
func Load(path string) (Collection, error) {
	records, err := LoadRecords(path)
	if err != nil {
		return Collection{}, err
	}
	return collect(records), nil
}

// LoadRecords reads every record of a plain or gzipped FASTA file, in file order.
func LoadRecords(path string) ([]Record, error) {
	f, err := common.OpenInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := ReadRecords(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Read parses FASTA records from r into a species-keyed collection.
func Read(r io.Reader) (Collection, error) {
	records, err := ReadRecords(r)
	if err != nil {
		return Collection{}, err
	}
	return collect(records), nil
}

func collect(records []Record) Collection {
	c := Collection{bySpecies: make(map[string]Record, len(records))}
	for _, rec := range records {
		if _, seen := c.bySpecies[rec.Species]; !seen {
			c.Order = append(c.Order, rec.Species)
		}
		c.bySpecies[rec.Species] = rec
	}
	return c
}

// ReadRecords parses every FASTA record from r, in input order.
func ReadRecords(r io.Reader) ([]Record, error) {
	var records []Record

	template := linear.NewSeq("", nil, alphabet.DNA)
	sc := seqio.NewScanner(fasta.NewReader(r, template))
	for sc.Next() {
		s, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return nil, fmt.Errorf("unexpected sequence type %T", sc.Seq())
		}

		species, err := SpeciesName(s.Name(), s.Description())
		if err != nil {
			return nil, err
		}
		records = append(records, Record{
			ID:       s.Name(),
			Species:  species,
			Sequence: string(alphabet.LettersToBytes(s.Seq)),
		})
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("failed during read: %w", err)
	}
	return records, nil
}
