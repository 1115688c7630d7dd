package config // CLI configuration

import (
	"errors"
	"fmt"

	"github.com/jessevdk/go-flags"

	"cytb_buddy_go/seq_metrics"
)

// Input files shared by the tools
type Input struct {
	Sequences string `short:"s" long:"sequences" value-name:"<filename>" description:"Cytochrome b nucleotide FASTA file (plain or gzipped)"`
}

// Mass table options
type MassTable struct {
	Masses string `short:"m" long:"masses" value-name:"<filename>" description:"CSV table with species and mass columns"`
}

// Molecular weight options
type Weight struct {
	UnknownResidue string `long:"unknown_residue" value-name:"zero|average|fail" default:"zero" description:"Mass given to residues without a defined mass (e.g. X)"`
}

// Output options for cytb_metrics
type Output struct {
	OutPrefix string `short:"o" long:"out_prefix" value-name:"<prefix>" default:"cytb_merged" description:"Prefix for the merged table, charts and report"`
	NoPlots   bool   `long:"no_plots" description:"Only write the merged table"`
	HTML      bool   `long:"html" description:"Also write an HTML report embedding every chart"`
}

// MetricsOptions are the cytb_metrics flags.
type MetricsOptions struct {
	Input     `group:"input"`
	MassTable `group:"masses"`
	Weight    `group:"molecular weight"`
	Output    `group:"output"`
}

// Validate checks required flags.
func (o MetricsOptions) Validate() error {
	if o.Sequences == "" {
		return fmt.Errorf("missing required parameter -s | --sequences")
	}
	if o.Masses == "" {
		return fmt.Errorf("missing required parameter -m | --masses")
	}
	_, err := o.Policy()
	return err
}

// Policy returns the parsed unknown residue policy.
func (o Weight) Policy() (seq_metrics.UnknownPolicy, error) {
	return seq_metrics.ParseUnknownPolicy(o.UnknownResidue)
}

// TranslateOptions are the translate flags.
type TranslateOptions struct {
	Input `group:"input"`
	Out   string `short:"o" long:"out_file" value-name:"<filename>" description:"Protein FASTA output (default: stdout)"`
	Width int    `long:"width" default:"60" description:"Residues per output line"`
}

// Validate checks required flags.
func (o TranslateOptions) Validate() error {
	if o.Sequences == "" {
		return fmt.Errorf("missing required parameter -s | --sequences")
	}
	if o.Width <= 0 {
		return fmt.Errorf("--width must be positive, got %d", o.Width)
	}
	return nil
}

// ParseArgs parses tool arguments into opts. The returned bool is true when
// help was requested and printed.
func ParseArgs(name string, opts interface{}, args []string) (bool, error) {
	p := flags.NewNamedParser(name, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := p.AddGroup("options", "", opts); err != nil {
		return false, err
	}
	rest, err := p.ParseArgs(args)
	if err != nil {
		var fe *flags.Error
		if errors.As(err, &fe) && fe.Type == flags.ErrHelp {
			fmt.Println(fe.Message)
			return true, nil
		}
		return false, err
	}
	if len(rest) > 0 {
		return false, fmt.Errorf("unrecognized arguments: %v", rest)
	}
	return false, nil
}
