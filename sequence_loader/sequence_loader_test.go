package sequence_loader

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	c, err := Load("testdata/cytb.fasta")
	if err != nil {
		t.Fatal(err)
	}

	if want, got := []string{"Mus musculus", "Rattus norvegicus", "Homo sapiens"}, c.Order; !reflect.DeepEqual(want, got) {
		t.Errorf("expected order %v but got %v", want, got)
	}
	if want, got := 3, c.Len(); want != got {
		t.Errorf("expected %d species but got %d", want, got)
	}

	tests := []struct {
		species string
		id      string
		seq     string
	}{
		// the second Mus musculus record replaces the first
		{"Mus musculus", "AB000004.1", "ATGACAAACATGCGAAAAAGG"},
		{"Rattus norvegicus", "AB000002.1", "atgacaaacatccgaaaatcacacccactaata"},
		{"Homo sapiens", "AB000003.1", "ATGACCCCAATACGCAAAACTAACCCCAGA"},
	}
	for _, tt := range tests {
		t.Run(tt.species, func(t *testing.T) {
			r, ok := c.Lookup(tt.species)
			if !ok {
				t.Fatalf("species %q not loaded", tt.species)
			}
			if r.ID != tt.id || r.Sequence != tt.seq {
				t.Errorf("expected %s/%s but got %s/%s", tt.id, tt.seq, r.ID, r.Sequence)
			}
		})
	}

	if _, ok := c.Lookup("Canis lupus"); ok {
		t.Error("unexpected record for an absent species")
	}
}

func TestReadJoinsWrappedLines(t *testing.T) {
	c, err := Read(strings.NewReader(">x1 Bos taurus\nATG\nAAA\nTAG\n"))
	if err != nil {
		t.Fatal(err)
	}
	if want, got := map[string]string{"Bos taurus": "ATGAAATAG"}, c.Sequences(); !reflect.DeepEqual(want, got) {
		t.Errorf("expected %v but got %v", want, got)
	}
}

func TestReadMalformedHeader(t *testing.T) {
	_, err := Read(strings.NewReader(">x1 Bos\nATG\n"))
	if !errors.Is(err, ErrMalformedHeader) {
		t.Errorf("expected ErrMalformedHeader but got %v", err)
	}
}

func TestSpeciesName(t *testing.T) {
	got, err := SpeciesName("id", "Genus   species  extra words")
	if err != nil {
		t.Fatal(err)
	}
	if want := "Genus species"; got != want {
		t.Errorf("expected %q but got %q", want, got)
	}
}

func TestLoadRecordsKeepsDuplicates(t *testing.T) {
	records, err := LoadRecords("testdata/cytb.fasta")
	if err != nil {
		t.Fatal(err)
	}
	var ids []string
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	if want := []string{"AB000001.1", "AB000002.1", "AB000003.1", "AB000004.1"}; !reflect.DeepEqual(want, ids) {
		t.Errorf("expected %v but got %v", want, ids)
	}
	if want, got := "ATGACAAACATACGAAAAACCCACCCA", records[0].Sequence; want != got {
		t.Errorf("expected wrapped lines joined to %q but got %q", want, got)
	}
}
