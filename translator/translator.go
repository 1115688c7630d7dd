// Package translator turns nucleotide sequences into amino acid sequences.
package translator

import (
	"strings"

	"cytb_buddy_go/codon_table"
)

// Unknown is emitted for any codon that is neither a stop nor in the forward table.
const Unknown = 'X'

// Translate reads seq in frame 1, three bases at a time, and stops at the first
// stop codon. Trailing bases that do not fill a codon are ignored.
// Lookups are case-sensitive, so callers pass uppercase sequence.
func Translate(seq string, table codon_table.CodonTable) string {
	var protein strings.Builder
	protein.Grow(len(seq) / 3)

	for i := 0; i+3 <= len(seq); i += 3 {
		codon := seq[i : i+3]
		if table.IsStop(codon) {
			break
		}
		aa, ok := table.Lookup(codon)
		if !ok {
			aa = Unknown
		}
		protein.WriteByte(aa)
	}
	return protein.String()
}
