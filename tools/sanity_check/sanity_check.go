package sanity_check

import (
	"fmt"
	"io"

	"cytb_buddy_go/codon_table" // Genetic code
	"cytb_buddy_go/config"      // Version control file
	"cytb_buddy_go/seq_metrics"
	"cytb_buddy_go/translator"
)

// Control sequence: Met-Lys-Trp-Met, then the mitochondrial AGA stop.
const (
	controlSeq     = "ATGAAATGAATAAGAGGG"
	controlProtein = "MKWM"
)

// Check validates the genetic code and translates a control sequence,
// writing a short diagnostic to w.
func Check(w io.Writer) error {
	fmt.Fprintf(w, "Successfully running cytb_buddy! (%s)\n", config.Main_version)

	table := codon_table.VertebrateMitochondrial()
	if err := table.Validate(); err != nil {
		return fmt.Errorf("codon table check failed: %w", err)
	}
	fmt.Fprintf(w, "Codon table: %s, %d sense codons, stops %v\n", table.Name, len(table.Forward), table.StopCodons())

	protein := translator.Translate(controlSeq, table)
	if protein != controlProtein {
		return fmt.Errorf("control translation: expected %s but got %s", controlProtein, protein)
	}
	mw, err := seq_metrics.MolecularWeight(protein, seq_metrics.StandardMasses(seq_metrics.Fail))
	if err != nil {
		return fmt.Errorf("control molecular weight: %w", err)
	}
	fmt.Fprintf(w, "Control: %s -> %s (%.2f Da, GC %.2f%%)\n", controlSeq, protein, mw, seq_metrics.GCContent(controlSeq))
	return nil
}
