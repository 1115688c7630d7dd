package seq_metrics

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-9

func TestMolecularWeight(t *testing.T) {
	masses := StandardMasses(Zero)

	tests := []struct {
		name    string
		protein string
		want    float64
	}{
		{"empty", "", 0},
		{"single residue has no bond", "G", 75.0666},
		{"dipeptide", "MK", 149.2113 + 146.1876 - WaterMass},
		{"tripeptide", "AAA", 3*89.0932 - 2*WaterMass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MolecularWeight(tt.protein, masses)
			if err != nil {
				t.Fatal(err)
			}
			if !scalar.EqualWithinAbs(got, tt.want, tol) {
				t.Errorf("MolecularWeight(%q): expected %v but got %v", tt.protein, tt.want, got)
			}
		})
	}
}

func TestMolecularWeightUnknownPolicies(t *testing.T) {
	zero, err := MolecularWeight("MXK", StandardMasses(Zero))
	if err != nil {
		t.Fatal(err)
	}
	if want := 149.2113 + 146.1876 - 2*WaterMass; !scalar.EqualWithinAbs(zero, want, tol) {
		t.Errorf("zero policy: expected %v but got %v", want, zero)
	}

	masses := StandardMasses(Average)
	avg, err := MolecularWeight("MXK", masses)
	if err != nil {
		t.Fatal(err)
	}
	if want := zero + masses.averageResidue(); !scalar.EqualWithinAbs(avg, want, tol) {
		t.Errorf("average policy: expected %v but got %v", want, avg)
	}

	_, err = MolecularWeight("MXK", StandardMasses(Fail))
	if !errors.Is(err, ErrUnknownResidue) {
		t.Errorf("fail policy: expected ErrUnknownResidue but got %v", err)
	}
}

func TestParseUnknownPolicy(t *testing.T) {
	for name, want := range map[string]UnknownPolicy{"zero": Zero, "AVERAGE": Average, "fail": Fail} {
		got, err := ParseUnknownPolicy(name)
		if err != nil || got != want {
			t.Errorf("ParseUnknownPolicy(%q): expected %v but got %v (%v)", name, want, got, err)
		}
	}
	if _, err := ParseUnknownPolicy("guess"); err == nil {
		t.Error("expected an error for an unknown policy name")
	}
}

func TestMolecularWeightWaterOverride(t *testing.T) {
	if !scalar.EqualWithinAbs(WaterMass, 18.0153, 1e-4) {
		t.Errorf("expected water mass near 18.0153 but got %v", WaterMass)
	}

	masses := StandardMasses(Zero)
	masses.Water = 18.0153
	got, err := MolecularWeight("AAA", masses)
	if err != nil {
		t.Fatal(err)
	}
	if want := 3*89.0932 - 2*18.0153; !scalar.EqualWithinAbs(got, want, tol) {
		t.Errorf("expected %v but got %v", want, got)
	}
}
