package debug

import (
	"fmt"
	"math"
	"strings"
	"sync/atomic"
	"time"
)

// BlockProfiler measures how long each render call takes against the
// real-time deadline of one block. Begin/End only touch atomics, so they can
// wrap a render call without locking or allocating.
type BlockProfiler struct {
	sampleRate float64
	blockSize  int
	deadline   time.Duration

	count    atomic.Uint64
	total    atomic.Int64 // nanoseconds
	min      atomic.Int64
	max      atomic.Int64
	last     atomic.Int64
	overruns atomic.Uint64
}

// BlockStats is a point-in-time copy of the profiler counters.
type BlockStats struct {
	Blocks   uint64
	Total    time.Duration
	Min      time.Duration
	Max      time.Duration
	Last     time.Duration
	Overruns uint64
	Deadline time.Duration
}

// NewBlockProfiler creates a profiler for blocks of blockSize samples.
func NewBlockProfiler(sampleRate float64, blockSize int) *BlockProfiler {
	p := &BlockProfiler{
		sampleRate: sampleRate,
		blockSize:  blockSize,
	}
	if sampleRate > 0 {
		p.deadline = time.Duration(float64(blockSize) / sampleRate * float64(time.Second))
	}
	p.min.Store(math.MaxInt64)
	return p
}

// Deadline returns the wall-clock duration of one block.
func (p *BlockProfiler) Deadline() time.Duration {
	return p.deadline
}

// Begin marks the start of a render call.
func (p *BlockProfiler) Begin() time.Time {
	return time.Now()
}

// End records the render call started at start.
func (p *BlockProfiler) End(start time.Time) {
	p.Record(time.Since(start))
}

// Record adds one block timing.
func (p *BlockProfiler) Record(elapsed time.Duration) {
	ns := int64(elapsed)
	p.count.Add(1)
	p.total.Add(ns)
	p.last.Store(ns)

	for {
		cur := p.min.Load()
		if ns >= cur || p.min.CompareAndSwap(cur, ns) {
			break
		}
	}
	for {
		cur := p.max.Load()
		if ns <= cur || p.max.CompareAndSwap(cur, ns) {
			break
		}
	}

	if p.deadline > 0 && elapsed > p.deadline {
		p.overruns.Add(1)
	}
}

// Stats returns the current counters. Fields are read individually, so a
// snapshot taken during rendering may mix adjacent blocks.
func (p *BlockProfiler) Stats() BlockStats {
	s := BlockStats{
		Blocks:   p.count.Load(),
		Total:    time.Duration(p.total.Load()),
		Max:      time.Duration(p.max.Load()),
		Last:     time.Duration(p.last.Load()),
		Overruns: p.overruns.Load(),
		Deadline: p.deadline,
	}
	if s.Blocks > 0 {
		s.Min = time.Duration(p.min.Load())
	}
	return s
}

// Average returns the mean render time per block.
func (s BlockStats) Average() time.Duration {
	if s.Blocks == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Blocks)
}

// Load returns the average render time as a percentage of the deadline.
func (s BlockStats) Load() float64 {
	if s.Deadline <= 0 {
		return 0
	}
	return float64(s.Average()) / float64(s.Deadline) * 100
}

// Reset clears all counters.
func (p *BlockProfiler) Reset() {
	p.count.Store(0)
	p.total.Store(0)
	p.min.Store(math.MaxInt64)
	p.max.Store(0)
	p.last.Store(0)
	p.overruns.Store(0)
}

// Report renders the counters for humans.
func (p *BlockProfiler) Report() string {
	s := p.Stats()
	if s.Blocks == 0 {
		return "No blocks recorded"
	}

	var sb strings.Builder
	sb.WriteString("Block Processing:\n")
	fmt.Fprintf(&sb, "  Sample Rate: %.0f Hz\n", p.sampleRate)
	fmt.Fprintf(&sb, "  Block Size:  %d samples\n", p.blockSize)
	fmt.Fprintf(&sb, "  Deadline:    %v\n", s.Deadline)
	fmt.Fprintf(&sb, "  Blocks:      %d\n", s.Blocks)
	fmt.Fprintf(&sb, "  Average:     %v\n", s.Average())
	fmt.Fprintf(&sb, "  Min/Max:     %v / %v\n", s.Min, s.Max)
	fmt.Fprintf(&sb, "  Load:        %.2f%%\n", s.Load())
	fmt.Fprintf(&sb, "  Overruns:    %d\n", s.Overruns)
	return sb.String()
}
