package analysis

import (
	"math"
	"sync/atomic"

	"github.com/cwbudde/algo-vecmath"

	"github.com/MusicDevLife/Visual-Plugin/pkg/dsp/gain"
)

// Levels is the linear peak and RMS of a stretch of audio.
type Levels struct {
	Peak float64
	RMS  float64
}

// PeakDb returns the peak in dBFS.
func (l Levels) PeakDb() float64 {
	return gain.LinearToDb(l.Peak)
}

// RMSDb returns the RMS level in dBFS.
func (l Levels) RMSDb() float64 {
	return gain.LinearToDb(l.RMS)
}

// BlockMeter measures float32 blocks using the vecmath kernels.
// It keeps a float64 scratch buffer and is not safe for concurrent use.
type BlockMeter struct {
	scratch []float64
}

// NewBlockMeter creates a meter whose scratch buffer fits maxBlockSize
// samples, so Measure does not allocate for blocks up to that size.
func NewBlockMeter(maxBlockSize int) *BlockMeter {
	return &BlockMeter{scratch: make([]float64, max(maxBlockSize, 0))}
}

func (m *BlockMeter) widen(block []float32) []float64 {
	if cap(m.scratch) < len(block) {
		m.scratch = make([]float64, len(block))
	}
	x := m.scratch[:len(block)]
	for i, v := range block {
		x[i] = float64(v)
	}
	return x
}

// Measure returns the levels of one channel.
func (m *BlockMeter) Measure(block []float32) Levels {
	if len(block) == 0 {
		return Levels{}
	}
	x := m.widen(block)
	return Levels{
		Peak: vecmath.MaxAbs(x),
		RMS:  math.Sqrt(vecmath.DotProduct(x, x) / float64(len(x))),
	}
}

// MeasureChannels returns the highest peak over all channels and the RMS
// of all samples pooled together.
func (m *BlockMeter) MeasureChannels(channels [][]float32) Levels {
	var peak, energy float64
	samples := 0
	for _, ch := range channels {
		if len(ch) == 0 {
			continue
		}
		x := m.widen(ch)
		peak = math.Max(peak, vecmath.MaxAbs(x))
		energy += vecmath.DotProduct(x, x)
		samples += len(x)
	}
	if samples == 0 {
		return Levels{}
	}
	return Levels{Peak: peak, RMS: math.Sqrt(energy / float64(samples))}
}

// PeakMeter is a falling peak display with a max hold. One goroutine feeds
// it with Update while any number of others read it; both sides are lock-free.
type PeakMeter struct {
	sampleRate float64
	decayRate  float64 // dB per second
	peak       atomic.Uint64
	rms        atomic.Uint64
	hold       atomic.Uint64
}

// NewPeakMeter creates a new peak meter
func NewPeakMeter(sampleRate float64) *PeakMeter {
	return &PeakMeter{
		sampleRate: sampleRate,
		decayRate:  20.0, // 20 dB/second
	}
}

// SetDecayRate sets the peak fall rate in dB/second. Call it before the
// meter is shared.
func (pm *PeakMeter) SetDecayRate(dbPerSecond float64) {
	pm.decayRate = math.Max(0, dbPerSecond)
}

// Update folds in the levels of a block that was samples long.
func (pm *PeakMeter) Update(levels Levels, samples int) {
	decay := gain.DbToLinear(-pm.decayRate * float64(samples) / pm.sampleRate)
	fallen := math.Float64frombits(pm.peak.Load()) * decay

	pm.peak.Store(math.Float64bits(math.Max(levels.Peak, fallen)))
	pm.rms.Store(math.Float64bits(levels.RMS))
	if levels.Peak > math.Float64frombits(pm.hold.Load()) {
		pm.hold.Store(math.Float64bits(levels.Peak))
	}
}

// Levels returns the current falling peak and the last block's RMS.
func (pm *PeakMeter) Levels() Levels {
	return Levels{
		Peak: math.Float64frombits(pm.peak.Load()),
		RMS:  math.Float64frombits(pm.rms.Load()),
	}
}

// Hold returns the highest peak seen since the last Reset.
func (pm *PeakMeter) Hold() float64 {
	return math.Float64frombits(pm.hold.Load())
}

// Reset clears the peak and hold values
func (pm *PeakMeter) Reset() {
	pm.peak.Store(0)
	pm.rms.Store(0)
	pm.hold.Store(0)
}
