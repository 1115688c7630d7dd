// Package translate writes the protein of every cytochrome-b record as FASTA.
package translate

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"cytb_buddy_go/codon_table"
	"cytb_buddy_go/config"
	"cytb_buddy_go/sequence_loader"
	"cytb_buddy_go/translator"
	common "cytb_buddy_go/utils"
)

var logger = log.New(os.Stderr, "[translate] ", log.LstdFlags)

// Run parses args and writes the translated proteins.
func Run(args []string) error {
	var opts config.TranslateOptions
	help, err := config.ParseArgs("translate", &opts, args)
	if err != nil || help {
		return err
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	records, err := sequence_loader.LoadRecords(opts.Sequences)
	if err != nil {
		return err
	}

	table := codon_table.VertebrateMitochondrial()
	if opts.Out == "" {
		return writeBuffered(os.Stdout, records, table, opts.Width)
	}

	if err := WriteProteinFile(opts.Out, records, table, opts.Width); err != nil {
		return err
	}
	logger.Printf("Wrote %d proteins to %s", len(records), opts.Out)
	return nil
}

// WriteProteinFile writes the protein FASTA to path.
func WriteProteinFile(path string, records []sequence_loader.Record, table codon_table.CodonTable, width int) error {
	f, err := common.CreateOutput(path)
	if err != nil {
		return err
	}
	if err := writeBuffered(f, records, table, width); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

func writeBuffered(w io.Writer, records []sequence_loader.Record, table codon_table.CodonTable, width int) error {
	bw := bufio.NewWriter(w)
	if err := WriteProteins(bw, records, table, width); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteProteins translates each uppercased record and writes it as a protein
// FASTA entry headed ">id Genus species", wrapped at width residues per line.
func WriteProteins(w io.Writer, records []sequence_loader.Record, table codon_table.CodonTable, width int) error {
	fw := fasta.NewWriter(w, width)
	for _, rec := range records {
		protein := translator.Translate(strings.ToUpper(rec.Sequence), table)
		s := linear.NewSeq(rec.ID, alphabet.BytesToLetters([]byte(protein)), alphabet.Protein)
		s.Desc = rec.Species
		if _, err := fw.Write(s); err != nil {
			return fmt.Errorf("failed to write %s: %w", rec.ID, err)
		}
	}
	return nil
}
