package metrics

import (
	"fmt"
	"io"
	"runtime"
	"time"
)

const (
	BYTES_PER_MB = 1024 * 1024
)

// Measurement. wall-clock time and live heap growth of one top-level invocation.
type Measurement struct {
	elapsed    time.Duration
	heapBefore uint64
	heapAfter  uint64
}

func (m Measurement) Elapsed() time.Duration {
	return m.elapsed
}

func (m Measurement) ElapsedMillis() int64 {
	return m.elapsed.Milliseconds()
}

// MemoryUsedMB. heap in use after minus heap in use before, truncated to whole MB.
// negative when the collector freed more than the call allocated.
func (m Measurement) MemoryUsedMB() int64 {
	return (int64(m.heapAfter) - int64(m.heapBefore)) / BYTES_PER_MB
}

// Write. the two lines the planner cli prints after a run.
func (m Measurement) Write(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Execution Time: %d milliseconds\nMemory Used: %d MB\n",
		m.ElapsedMillis(), m.MemoryUsedMB())
	return err
}

// Measure. run fn once and record its duration and heap delta. fn's error is returned unchanged
// and the measurement is still filled in.
func Measure(fn func() error) (Measurement, error) {
	var ms runtime.MemStats

	runtime.ReadMemStats(&ms)
	before := ms.HeapAlloc
	start := time.Now()

	err := fn()

	elapsed := time.Since(start)
	runtime.ReadMemStats(&ms)

	return Measurement{
		elapsed:    elapsed,
		heapBefore: before,
		heapAfter:  ms.HeapAlloc,
	}, err
}
