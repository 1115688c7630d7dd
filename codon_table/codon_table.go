// Package codon_table holds the genetic code used to translate cytochrome-b sequences.
//
// Relevant documentation:
//
//	https://www.ncbi.nlm.nih.gov/Taxonomy/Utils/wprintgc.cgi?chapter=tgencodes#SG2
package codon_table

import (
	"fmt"
	"sort"
	"strings"
)

// CodonTable maps uppercase DNA codons to single-letter amino acids.
// Stop codons are kept apart from the forward mapping and never appear in it.
type CodonTable struct {
	Name    string
	Forward map[string]byte
	Stops   map[string]bool
}

var standard = map[string]byte{
	// Phenylalanine
	"TTT": 'F', "TTC": 'F',
	// Leucine
	"TTA": 'L', "TTG": 'L', "CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	// Isoleucine
	"ATT": 'I', "ATC": 'I', "ATA": 'I',
	// Methionine (Start)
	"ATG": 'M',
	// Valine
	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	// Serine
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S', "AGT": 'S', "AGC": 'S',
	// Proline
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	// Threonine
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	// Alanine
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	// Tyrosine
	"TAT": 'Y', "TAC": 'Y',
	// Histidine
	"CAT": 'H', "CAC": 'H',
	// Glutamine
	"CAA": 'Q', "CAG": 'Q',
	// Asparagine
	"AAT": 'N', "AAC": 'N',
	// Lysine
	"AAA": 'K', "AAG": 'K',
	// Aspartic Acid
	"GAT": 'D', "GAC": 'D',
	// Glutamic Acid
	"GAA": 'E', "GAG": 'E',
	// Cysteine
	"TGT": 'C', "TGC": 'C',
	// Tryptophan
	"TGG": 'W',
	// Arginine
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R', "AGA": 'R', "AGG": 'R',
	// Glycine
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
	// Stop codons
	"TAA": stop, "TAG": stop, "TGA": stop,
}

// Differences from the standard code, written in RNA letters as NCBI publishes them.
var vertebrateMitochondrialDiff = map[string]byte{
	"AGA": stop,
	"AGG": stop,
	"AUA": 'M',
	"UGA": 'W',
}

const stop = '*'

// VertebrateMitochondrial returns NCBI translation table 2.
// Each call builds a fresh table so callers never share mutable maps.
func VertebrateMitochondrial() CodonTable {
	return build("Vertebrate Mitochondrial", vertebrateMitochondrialDiff)
}

func build(name string, diff map[string]byte) CodonTable {
	merged := make(map[string]byte, len(standard))
	for codon, aa := range standard {
		merged[codon] = aa
	}
	for codon, aa := range diff {
		merged[strings.ReplaceAll(codon, "U", "T")] = aa
	}

	table := CodonTable{
		Name:    name,
		Forward: make(map[string]byte, len(merged)),
		Stops:   make(map[string]bool),
	}
	for codon, aa := range merged {
		if aa == stop {
			table.Stops[codon] = true
			continue
		}
		table.Forward[codon] = aa
	}
	return table
}

// IsStop reports whether codon terminates translation.
func (t CodonTable) IsStop(codon string) bool {
	return t.Stops[codon]
}

// Lookup returns the amino acid for codon and whether it is in the forward mapping.
func (t CodonTable) Lookup(codon string) (byte, bool) {
	aa, ok := t.Forward[codon]
	return aa, ok
}

// Validate checks that all 64 unambiguous codons are covered exactly once.
func (t CodonTable) Validate() error {
	const bases = "ACGT"
	for _, a := range bases {
		for _, b := range bases {
			for _, c := range bases {
				codon := string([]rune{a, b, c})
				_, fwd := t.Forward[codon]
				isStop := t.Stops[codon]
				switch {
				case fwd && isStop:
					return fmt.Errorf("codon %s is both a stop and maps to %q", codon, t.Forward[codon])
				case !fwd && !isStop:
					return fmt.Errorf("codon %s is missing from %s table", codon, t.Name)
				}
			}
		}
	}
	for codon, aa := range t.Forward {
		if aa == stop {
			return fmt.Errorf("codon %s maps to the stop symbol in the forward table", codon)
		}
	}
	return nil
}

// StopCodons returns the stop codons in a stable order.
func (t CodonTable) StopCodons() []string {
	out := make([]string, 0, len(t.Stops))
	for codon := range t.Stops {
		out = append(out, codon)
	}
	sort.Strings(out)
	return out
}
