package dataset

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	ds, err := Load("testdata/masses.csv")
	if err != nil {
		t.Fatal(err)
	}

	if want, got := []string{"species", "mass", "order"}, ds.Header; !reflect.DeepEqual(want, got) {
		t.Errorf("expected header %v but got %v", want, got)
	}
	if want, got := 5, len(ds.Records); want != got {
		t.Fatalf("expected %d records but got %d", want, got)
	}

	if m, ok := ds.Records[2].Mass.Get(); !ok || m != 62 {
		t.Errorf("expected Homo sapiens mass 62 but got %v", ds.Records[2].Mass)
	}
	if ds.Records[3].Mass.Valid() {
		t.Errorf("expected Canis lupus mass to be unset, got %v", ds.Records[3].Mass)
	}
	for _, r := range ds.Records {
		if r.MolecularWeight.Valid() || r.GCContent.Valid() || r.SequenceLength.Valid() {
			t.Errorf("%s: derived fields must start unset", r.Species)
		}
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		isErr error
	}{
		{"no species column", "name,mass\nx,1\n", ErrMissingColumn},
		{"no mass column", "species,weight\nx,1\n", ErrMissingColumn},
		{"empty input", "", ErrMissingColumn},
		{"bad mass", "species,mass\nx,heavy\n", nil},
		{"ragged row", "species,mass\nx,1,2\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.isErr != nil && !errors.Is(err, tt.isErr) {
				t.Errorf("expected %v but got %v", tt.isErr, err)
			}
		})
	}
}

func TestReadDropsStaleDerivedColumns(t *testing.T) {
	ds, err := Read(strings.NewReader("species,mass,GC_content\nBos taurus,700,12.5\n"))
	if err != nil {
		t.Fatal(err)
	}
	if want, got := []string{"species", "mass"}, ds.Header; !reflect.DeepEqual(want, got) {
		t.Errorf("expected header %v but got %v", want, got)
	}
	if ds.Records[0].GCContent.Valid() {
		t.Error("derived values from the input must not be trusted")
	}
}

func TestWrite(t *testing.T) {
	ds, err := Read(strings.NewReader("species,mass,order\nBos taurus,700,Artiodactyla\nOvis aries,,Artiodactyla\n"))
	if err != nil {
		t.Fatal(err)
	}
	ds.Records[0].MolecularWeight = Some(42000.5)
	ds.Records[0].GCContent = Some(41.25)
	ds.Records[0].SequenceLength = Some(1140)

	var buf bytes.Buffer
	if err := ds.Write(&buf); err != nil {
		t.Fatal(err)
	}

	want := "species,mass,order,molecular_weight,GC_content,sequence_length\n" +
		"Bos taurus,700,Artiodactyla,42000.5,41.25,1140\n" +
		"Ovis aries,,Artiodactyla,,,\n"
	if got := buf.String(); want != got {
		t.Errorf("expected\n%s\nbut got\n%s", want, got)
	}
}

func TestAddAndColumn(t *testing.T) {
	ds := New()
	ds.Add("Bos taurus", Some(700.0))
	ds.Add("Ovis aries", None[float64]())
	ds.Records[0].SequenceLength = Some(1140)

	col, err := ds.Column(SequenceLengthColumn)
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := col[0].Get(); !ok || v != 1140 {
		t.Errorf("expected 1140 but got %v", col[0])
	}
	if col[1].Valid() {
		t.Errorf("expected unset value but got %v", col[1])
	}

	if _, err := ds.Column("order"); err == nil {
		t.Error("expected an error for a non numeric column")
	}

	var buf bytes.Buffer
	if err := ds.Write(&buf); err != nil {
		t.Fatal(err)
	}
	want := "species,mass,molecular_weight,GC_content,sequence_length\n" +
		"Bos taurus,700,,,1140\n" +
		"Ovis aries,,,,\n"
	if got := buf.String(); want != got {
		t.Errorf("expected\n%s\nbut got\n%s", want, got)
	}
}
