package benchmark

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestMeasure(t *testing.T) {
	boom := errors.New("boom")
	called := false
	r := Measure("translate -s x.fasta", func() error {
		called = true
		return boom
	})
	if !called {
		t.Fatal("wrapped function was not run")
	}
	if !errors.Is(r.Err, boom) {
		t.Errorf("expected the wrapped error but got %v", r.Err)
	}
	if r.CPUs < 1 {
		t.Errorf("expected at least one CPU, got %d", r.CPUs)
	}

	var buf bytes.Buffer
	r.Print(&buf)
	for _, want := range []string{"[Benchmark] Running: translate -s x.fasta", "Run failed: boom", "Time Elapsed"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("report is missing %q:\n%s", want, buf.String())
		}
	}
}
