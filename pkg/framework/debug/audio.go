package debug

import (
	"fmt"
	"math"
)

// BlockReport summarizes one audio buffer.
type BlockReport struct {
	Samples        int
	Peak           float32
	RMS            float32
	DC             float32
	NonFinite      int // NaN or ±Inf samples
	ClippedSamples int // |x| >= clip threshold
}

// Finite reports whether every sample was a finite number.
func (r BlockReport) Finite() bool {
	return r.NonFinite == 0
}

// Inspector checks rendered buffers for values a host would not want to
// play. It is meant for tests and offline hosts.
type Inspector struct {
	ClipThreshold float32
	DCThreshold   float32
}

// NewInspector creates an inspector with a full-scale clip threshold.
func NewInspector() *Inspector {
	return &Inspector{
		ClipThreshold: 1.0,
		DCThreshold:   0.01,
	}
}

// Inspect analyzes buffer. Non-finite samples are counted and excluded from
// the level statistics.
func (in *Inspector) Inspect(buffer []float32) BlockReport {
	report := BlockReport{Samples: len(buffer)}
	if len(buffer) == 0 {
		return report
	}

	var sum, sumSquares float64
	finite := 0
	for _, sample := range buffer {
		x := float64(sample)
		if math.IsNaN(x) || math.IsInf(x, 0) {
			report.NonFinite++
			continue
		}
		finite++

		abs := float32(math.Abs(x))
		if abs > report.Peak {
			report.Peak = abs
		}
		if abs >= in.ClipThreshold {
			report.ClippedSamples++
		}
		sum += x
		sumSquares += x * x
	}

	if finite > 0 {
		report.RMS = float32(math.Sqrt(sumSquares / float64(finite)))
		report.DC = float32(sum / float64(finite))
	}
	return report
}

// Issues lists human-readable problems found in buffer.
func (in *Inspector) Issues(buffer []float32, name string) []string {
	var issues []string
	r := in.Inspect(buffer)

	if r.NonFinite > 0 {
		issues = append(issues, fmt.Sprintf("%s: %d non-finite samples", name, r.NonFinite))
	}
	if r.ClippedSamples > 0 {
		issues = append(issues, fmt.Sprintf("%s: clipping detected (%d samples, peak %.3f)", name, r.ClippedSamples, r.Peak))
	}
	if math.Abs(float64(r.DC)) > float64(in.DCThreshold) {
		issues = append(issues, fmt.Sprintf("%s: DC offset detected (%.3f)", name, r.DC))
	}
	return issues
}
