// benchmark.go
// Resource reporting for any cytb_buddy tool run.
// Measures execution time and memory usage for a wrapped function.

package benchmark

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"
)

// Report is the resource usage of one wrapped run.
type Report struct {
	Label          string
	Started        time.Time
	Elapsed        time.Duration
	AllocDeltaMB   float64
	TotalAllocMB   float64
	HeapMB         float64
	GCCycles       uint32
	SysMB          float64
	CPUs           int
	GoroutineStart int
	GoroutineEnd   int
	Err            error
}

func toMB(b uint64) float64 {
	return float64(b) / 1024.0 / 1024.0
}

// Measure runs f and records its runtime and memory usage.
func Measure(label string, f func() error) Report {
	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)

	r := Report{
		Label:          label,
		Started:        time.Now(),
		CPUs:           runtime.NumCPU(),
		GoroutineStart: runtime.NumGoroutine(),
	}

	r.Err = f()

	r.Elapsed = time.Since(r.Started)
	runtime.ReadMemStats(&memEnd)
	r.GoroutineEnd = runtime.NumGoroutine()
	r.AllocDeltaMB = toMB(memEnd.Alloc) - toMB(memStart.Alloc)
	r.TotalAllocMB = toMB(memEnd.TotalAlloc - memStart.TotalAlloc)
	r.HeapMB = toMB(memEnd.HeapAlloc)
	r.GCCycles = memEnd.NumGC - memStart.NumGC
	r.SysMB = toMB(memEnd.Sys)
	return r
}

// Print writes the report with host details for repeatability.
func (r Report) Print(w io.Writer) {
	fmt.Fprintf(w, "[Benchmark] Running: %s\n", r.Label)
	fmt.Fprintln(w, "[Benchmark] Timestamp:", r.Started.Format(time.RFC1123))
	if host, err := os.Hostname(); err == nil {
		fmt.Fprintln(w, "[Benchmark] Hostname:", host)
	}
	fmt.Fprintln(w, "[Benchmark] Go Version:", runtime.Version())
	fmt.Fprintf(w, "[Benchmark] OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(w, "[Benchmark] Time Elapsed: %v\n", r.Elapsed)
	fmt.Fprintf(w, "[Benchmark] Memory Used: %.2f MB\n", r.AllocDeltaMB)
	fmt.Fprintf(w, "[Benchmark] Total Allocated: %.2f MB\n", r.TotalAllocMB)
	fmt.Fprintf(w, "[Benchmark] Peak Heap: %.2f MB\n", r.HeapMB)
	fmt.Fprintf(w, "[Benchmark] GC Cycles: %d\n", r.GCCycles)
	fmt.Fprintf(w, "[Benchmark] Total System Memory Allocated: %.2f MB\n", r.SysMB)
	fmt.Fprintf(w, "[Benchmark] CPU Cores: %d\n", r.CPUs)
	fmt.Fprintf(w, "[Benchmark] Goroutines Started: %d → %d\n", r.GoroutineStart, r.GoroutineEnd)
	if r.Err != nil {
		fmt.Fprintf(w, "[Benchmark] Run failed: %v\n", r.Err)
	}
	fmt.Fprintln(w, "[Benchmark] ----------------------------------------")
}

// Run wraps f, prints its report to stderr and returns f's error.
func Run(label string, f func() error) error {
	r := Measure(label, f)
	r.Print(os.Stderr)
	return r.Err
}
