// Package seq_metrics computes sequence composition and protein mass metrics.
package seq_metrics

import "strings"

// GCContent returns the percentage of G and C letters in seq, ignoring case.
// Ambiguity codes count toward the length but never toward G or C.
// An empty sequence has a GC content of 0.
func GCContent(seq string) float64 {
	if len(seq) == 0 {
		return 0
	}
	seq = strings.ToUpper(seq)
	gc := strings.Count(seq, "G") + strings.Count(seq, "C")
	return float64(gc) / float64(len(seq)) * 100
}
