package seq_metrics

import (
	"errors"
	"fmt"
	"strings"
)

// WaterMass is the average mass of the water lost per peptide bond.
const WaterMass = 18.01528

// ErrUnknownResidue is returned under the Fail policy when a residue has no mass.
var ErrUnknownResidue = errors.New("residue has no defined mass")

// UnknownPolicy decides what a residue missing from the mass table contributes.
type UnknownPolicy int

const (
	// Zero adds nothing for the residue; it still counts toward the peptide bonds.
	Zero UnknownPolicy = iota
	// Average substitutes the mean mass of the standard residues.
	Average
	// Fail rejects the sequence.
	Fail
)

var policyNames = map[string]UnknownPolicy{
	"zero":    Zero,
	"average": Average,
	"fail":    Fail,
}

// ParseUnknownPolicy maps a command-line value onto an UnknownPolicy.
func ParseUnknownPolicy(name string) (UnknownPolicy, error) {
	p, ok := policyNames[strings.ToLower(name)]
	if !ok {
		return Zero, fmt.Errorf("invalid unknown residue policy %q (want zero, average or fail)", name)
	}
	return p, nil
}

func (p UnknownPolicy) String() string {
	for name, v := range policyNames {
		if v == p {
			return name
		}
	}
	return fmt.Sprintf("UnknownPolicy(%d)", int(p))
}

// Average masses of the free amino acids in Daltons.
var averageMasses = map[byte]float64{
	'A': 89.0932, 'C': 121.1582, 'D': 133.1027, 'E': 147.1293,
	'F': 165.1891, 'G': 75.0666, 'H': 155.1546, 'I': 131.1729,
	'K': 146.1876, 'L': 131.1729, 'M': 149.2113, 'N': 132.1179,
	'P': 115.1305, 'Q': 146.1445, 'R': 174.201, 'S': 105.0926,
	'T': 119.1192, 'V': 117.1463, 'W': 204.2252, 'Y': 181.1885,
	'O': 255.3134, 'U': 168.0532,
}

// ResidueMasses is the per-residue mass table handed to MolecularWeight.
type ResidueMasses struct {
	Masses  map[byte]float64
	Water   float64
	Unknown UnknownPolicy
}

// StandardMasses returns a fresh copy of the average mass table.
func StandardMasses(policy UnknownPolicy) ResidueMasses {
	m := make(map[byte]float64, len(averageMasses))
	for aa, w := range averageMasses {
		m[aa] = w
	}
	return ResidueMasses{Masses: m, Water: WaterMass, Unknown: policy}
}

func (r ResidueMasses) averageResidue() float64 {
	const standard = "ACDEFGHIKLMNPQRSTVWY"
	sum := 0.0
	for i := 0; i < len(standard); i++ {
		sum += r.Masses[standard[i]]
	}
	return sum / float64(len(standard))
}

// MolecularWeight returns the mass of protein as a linear peptide:
// the residue masses minus one water per peptide bond. An empty sequence weighs 0.
func MolecularWeight(protein string, r ResidueMasses) (float64, error) {
	if len(protein) == 0 {
		return 0, nil
	}

	var avg float64
	if r.Unknown == Average {
		avg = r.averageResidue()
	}

	weight := 0.0
	for i := 0; i < len(protein); i++ {
		w, ok := r.Masses[protein[i]]
		if !ok {
			switch r.Unknown {
			case Fail:
				return 0, fmt.Errorf("%w: %q at position %d", ErrUnknownResidue, protein[i], i+1)
			case Average:
				w = avg
			default:
				w = 0
			}
		}
		weight += w
	}
	return weight - float64(len(protein)-1)*r.Water, nil
}
