// Package cytb_metrics is the full pipeline: load cytochrome-b sequences and the
// species mass table, derive protein and composition metrics, then write the
// merged table and its charts.
package cytb_metrics

import (
	"log"
	"os"

	"cytb_buddy_go/codon_table"
	"cytb_buddy_go/config"
	"cytb_buddy_go/dataset"
	"cytb_buddy_go/reporting"
	"cytb_buddy_go/seq_metrics"
	"cytb_buddy_go/sequence_loader"
	"cytb_buddy_go/species_metrics"
)

var logger = log.New(os.Stderr, "[cytb_metrics] ", log.LstdFlags)

// Result lists what a run produced.
type Result struct {
	Summary species_metrics.Summary
	Table   string
	Charts  []string
	Report  string
}

// Run parses args and runs the pipeline.
func Run(args []string) error {
	var opts config.MetricsOptions
	help, err := config.ParseArgs("cytb_metrics", &opts, args)
	if err != nil || help {
		return err
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	_, err = Execute(opts)
	return err
}

// Execute runs the pipeline with already parsed options.
func Execute(opts config.MetricsOptions) (Result, error) {
	policy, err := opts.Policy()
	if err != nil {
		return Result{}, err
	}
	table := codon_table.VertebrateMitochondrial()
	masses := seq_metrics.StandardMasses(policy)

	seqs, err := sequence_loader.Load(opts.Sequences)
	if err != nil {
		return Result{}, err
	}
	logger.Printf("Loaded %d species from %s", seqs.Len(), opts.Sequences)

	ds, err := dataset.Load(opts.Masses)
	if err != nil {
		return Result{}, err
	}
	logger.Printf("Loaded %d rows from %s", len(ds.Records), opts.Masses)

	sum, err := species_metrics.Annotate(ds, seqs.Sequences(), table, masses)
	if err != nil {
		return Result{}, err
	}
	logger.Printf("Matched %d of %d species with a mass (%s table, unknown residues: %s)",
		sum.Matched, sum.WithMass, table.Name, policy)
	for _, sp := range sum.Unmatched {
		logger.Printf("No sequence for %q, metrics left empty", sp)
	}

	res := Result{Summary: sum, Table: opts.OutPrefix + ".csv"}
	if err := ds.WriteFile(res.Table); err != nil {
		return res, err
	}
	logger.Printf("Wrote merged table: %s", res.Table)

	if opts.NoPlots {
		return res, nil
	}

	charts := reporting.RenderAll(ds)
	for _, c := range charts {
		if c.Err != nil {
			logger.Printf("Failed to generate %s plot: %v", c.Title, c.Err)
		}
	}
	res.Charts, err = reporting.WriteSVGFiles(opts.OutPrefix, charts)
	if err != nil {
		return res, err
	}
	logger.Printf("Wrote %d charts", len(res.Charts))

	if opts.HTML {
		res.Report = opts.OutPrefix + ".html"
		if err := reporting.WriteHTMLReport(res.Report, ds, charts); err != nil {
			return res, err
		}
		logger.Printf("Wrote HTML file: %s", res.Report)
	}
	return res, nil
}
