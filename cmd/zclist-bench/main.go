// zclist-bench is a benchmark and stress test for the zclist library.
// It builds a large list and compares zero-copy views against copying
// slices for common window operations.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/todesschaf/zclist"
)

const (
	listSize    = 16 * 1024 * 1024
	windowSize  = 1024 * 1024
	writeOps    = 1_000_000
	sliceDepth  = 1024
	scanRepeats = 16
)

type BenchResult struct {
	Name     string
	Duration time.Duration
	Ops      int
	Extra    string
}

func (r BenchResult) String() string {
	if r.Ops > 0 {
		opsPerSec := float64(r.Ops) / r.Duration.Seconds()
		if r.Extra != "" {
			return fmt.Sprintf("%-40s %12v  (%d ops, %.2f ops/sec) %s", r.Name, r.Duration.Round(time.Millisecond), r.Ops, opsPerSec, r.Extra)
		}
		return fmt.Sprintf("%-40s %12v  (%d ops, %.2f ops/sec)", r.Name, r.Duration.Round(time.Millisecond), r.Ops, opsPerSec)
	}
	if r.Extra != "" {
		return fmt.Sprintf("%-40s %12v  %s", r.Name, r.Duration.Round(time.Millisecond), r.Extra)
	}
	return fmt.Sprintf("%-40s %12v", r.Name, r.Duration.Round(time.Millisecond))
}

func main() {
	fmt.Println("zclist Benchmark and Stress Test")
	fmt.Println("================================")
	fmt.Printf("List size: %d elements\n", listSize)
	fmt.Printf("Window size: %d elements\n", windowSize)
	fmt.Printf("Go version: %s\n", runtime.Version())
	fmt.Printf("GOMAXPROCS: %d\n", runtime.GOMAXPROCS(0))
	fmt.Println()

	var results []BenchResult

	// Helper to run and print each benchmark
	runBench := func(name string, fn func() BenchResult) {
		fmt.Printf("  %-40s ", name+"...")
		result := fn()
		fmt.Printf("%v\n", result.Duration.Round(time.Millisecond))
		results = append(results, result)
	}

	fmt.Println("Building list...")
	start := time.Now()
	elems := make([]int, listSize)
	for i := range elems {
		elems[i] = i & 0xffff
	}
	list := zclist.NewListFrom(elems)
	results = append(results, BenchResult{Name: "Build list", Duration: time.Since(start)})
	fmt.Println(results[0])
	fmt.Println()

	fmt.Println("Running benchmarks...")
	fmt.Println()

	fmt.Println("Window scans:")
	runBench("Copying slice + scan", func() BenchResult { return benchCopyScan(list) })
	runBench("Zero-copy view scan", func() BenchResult { return benchViewScan(list) })

	fmt.Println("\nWrites:")
	runBench("Write through view", func() BenchResult { return benchViewWrites(list) })

	fmt.Println("\nNested views:")
	runBench("Nested view creation", func() BenchResult { return benchNestedViews(list) })

	fmt.Println("\nShrink tolerance:")
	runBench("Access across shrink/grow", func() BenchResult { return benchShrinkGrow() })

	// Print summary
	fmt.Println()
	fmt.Println("SUMMARY")
	fmt.Println("-------")
	for _, r := range results {
		fmt.Println(r)
	}

	// Memory stats
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	fmt.Println()
	fmt.Printf("Peak heap allocation: %d MB\n", m.HeapSys/(1024*1024))
	fmt.Printf("Total allocations: %d MB\n", m.TotalAlloc/(1024*1024))
}

func fatal(err error) {
	fmt.Printf("Benchmark failed: %v\n", err)
	os.Exit(1)
}

// benchCopyScan copies each window out of the list before scanning it,
// the way an ordinary subrange operation would.
func benchCopyScan(list *zclist.List[int]) BenchResult {
	start := time.Now()
	total := 0

	for rep := 0; rep < scanRepeats; rep++ {
		offset := rep * windowSize
		window := make([]int, windowSize)
		copy(window, list.Elems()[offset:offset+windowSize])
		for _, e := range window {
			if e == 42 {
				total++
			}
		}
	}

	return BenchResult{
		Name:     "Copying slice + scan",
		Duration: time.Since(start),
		Ops:      scanRepeats,
		Extra:    fmt.Sprintf("(%d matches)", total),
	}
}

// benchViewScan scans the same windows through zero-copy views.
func benchViewScan(list *zclist.List[int]) BenchResult {
	start := time.Now()
	total := 0

	for rep := 0; rep < scanRepeats; rep++ {
		offset := rep * windowSize
		v, err := list.Slice(offset, offset+windowSize)
		if err != nil {
			fatal(err)
		}
		total += v.Count(42)
	}

	return BenchResult{
		Name:     "Zero-copy view scan",
		Duration: time.Since(start),
		Ops:      scanRepeats,
		Extra:    fmt.Sprintf("(%d matches)", total),
	}
}

func benchViewWrites(list *zclist.List[int]) BenchResult {
	v, err := list.Slice(0, windowSize)
	if err != nil {
		fatal(err)
	}

	start := time.Now()
	for i := 0; i < writeOps; i++ {
		if err := v.Set(i%windowSize, i); err != nil {
			fatal(err)
		}
	}

	return BenchResult{
		Name:     "Write through view",
		Duration: time.Since(start),
		Ops:      writeOps,
	}
}

// benchNestedViews repeatedly slices a view out of a view. Every level
// references the original list directly, so depth stays free.
func benchNestedViews(list *zclist.List[int]) BenchResult {
	v, err := list.Slice(0, sliceDepth*2+2)
	if err != nil {
		fatal(err)
	}

	start := time.Now()
	for i := 0; i < sliceDepth; i++ {
		v, err = v.Slice(1, v.Len()-1)
		if err != nil {
			fatal(err)
		}
	}

	return BenchResult{
		Name:     "Nested view creation",
		Duration: time.Since(start),
		Ops:      sliceDepth,
		Extra:    fmt.Sprintf("(final len %d)", v.Len()),
	}
}

// benchShrinkGrow hammers the re-adjustment path: every access happens
// after the backing list changed size.
func benchShrinkGrow() BenchResult {
	list := zclist.NewListFrom(make([]int, 1024))
	v, err := list.Slice(256, 768)
	if err != nil {
		fatal(err)
	}

	const cycles = 100_000
	start := time.Now()
	for i := 0; i < cycles; i++ {
		if _, err := list.Pop(); err != nil {
			fatal(err)
		}
		_ = v.Len()
		list.Append(i)
		_ = v.Len()
	}

	return BenchResult{
		Name:     "Access across shrink/grow",
		Duration: time.Since(start),
		Ops:      cycles * 2,
	}
}
