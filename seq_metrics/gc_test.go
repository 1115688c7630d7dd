package seq_metrics

import "testing"

func TestGCContent(t *testing.T) {
	tests := []struct {
		seq  string
		want float64
	}{
		{"", 0},
		{"GGCC", 100},
		{"AATT", 0},
		{"atgc", 50},
		{"ATGCNNNN", 25},
		{"GCGA", 75},
	}

	for _, tt := range tests {
		t.Run(tt.seq, func(t *testing.T) {
			if got := GCContent(tt.seq); got != tt.want {
				t.Errorf("GCContent(%q): expected %v but got %v", tt.seq, tt.want, got)
			}
		})
	}
}
