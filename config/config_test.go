package config

import (
	"testing"

	"cytb_buddy_go/seq_metrics"
)

func TestParseMetricsOptions(t *testing.T) {
	var opts MetricsOptions
	help, err := ParseArgs("cytb_metrics", &opts, []string{"-s", "cytb.fasta", "--masses", "masses.csv", "--unknown_residue", "average", "--html"})
	if err != nil || help {
		t.Fatalf("unexpected result help=%v err=%v", help, err)
	}
	if opts.Sequences != "cytb.fasta" || opts.Masses != "masses.csv" || !opts.HTML {
		t.Errorf("unexpected options %+v", opts)
	}
	if want, got := "cytb_merged", opts.OutPrefix; want != got {
		t.Errorf("expected default prefix %q but got %q", want, got)
	}
	if err := opts.Validate(); err != nil {
		t.Fatal(err)
	}
	if p, _ := opts.Policy(); p != seq_metrics.Average {
		t.Errorf("expected average policy but got %v", p)
	}
}

func TestMetricsOptionsValidate(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing sequences", []string{"-m", "masses.csv"}},
		{"missing masses", []string{"-s", "cytb.fasta"}},
		{"bad policy", []string{"-s", "cytb.fasta", "-m", "masses.csv", "--unknown_residue", "guess"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts MetricsOptions
			if _, err := ParseArgs("cytb_metrics", &opts, tt.args); err != nil {
				t.Fatal(err)
			}
			if err := opts.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestParseArgsRejectsLeftovers(t *testing.T) {
	var opts TranslateOptions
	if _, err := ParseArgs("translate", &opts, []string{"-s", "a.fasta", "extra"}); err == nil {
		t.Error("expected an error for unparsed arguments")
	}
}

func TestTranslateOptionsDefaults(t *testing.T) {
	var opts TranslateOptions
	if _, err := ParseArgs("translate", &opts, []string{"-s", "a.fasta"}); err != nil {
		t.Fatal(err)
	}
	if opts.Width != 60 || opts.Out != "" {
		t.Errorf("unexpected defaults %+v", opts)
	}
	if err := opts.Validate(); err != nil {
		t.Error(err)
	}
}
