// Package oscillator provides test tones for driving the effect.
package oscillator

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// Waveform selects the signal an Oscillator produces.
type Waveform int

const (
	// Sine is a pure tone; every harmonic in the output comes from the effect.
	Sine Waveform = iota
	// Triangle has odd harmonics falling at 12 dB/octave
	Triangle
	// Saw has every harmonic falling at 6 dB/octave
	Saw
	// Noise is uniform white noise
	Noise
)

var waveformNames = [...]string{"sine", "triangle", "saw", "noise"}

func (w Waveform) String() string {
	if w < 0 || int(w) >= len(waveformNames) {
		return fmt.Sprintf("Waveform(%d)", int(w))
	}
	return waveformNames[w]
}

// ParseWaveform maps a name such as "sine" to its Waveform.
func ParseWaveform(name string) (Waveform, error) {
	for i, n := range waveformNames {
		if strings.EqualFold(name, n) {
			return Waveform(i), nil
		}
	}
	return 0, fmt.Errorf("oscillator: unknown waveform %q (want one of %s)",
		name, strings.Join(waveformNames[:], ", "))
}

// Oscillator generates periodic waveforms
type Oscillator struct {
	sampleRate float64
	frequency  float64
	amplitude  float64
	phase      float64
	phaseInc   float64
	waveform   Waveform
	rand       *rand.Rand
}

// New creates a new oscillator
func New(sampleRate float64) *Oscillator {
	return &Oscillator{
		sampleRate: sampleRate,
		frequency:  440.0,
		amplitude:  1.0,
		phaseInc:   440.0 / sampleRate,
		rand:       rand.New(rand.NewSource(1)),
	}
}

// SetFrequency sets the oscillator frequency
func (o *Oscillator) SetFrequency(freq float64) {
	o.frequency = freq
	o.phaseInc = freq / o.sampleRate
}

// Frequency returns the oscillator frequency in Hz.
func (o *Oscillator) Frequency() float64 {
	return o.frequency
}

// SetAmplitude sets the peak level of the output.
func (o *Oscillator) SetAmplitude(amplitude float64) {
	o.amplitude = amplitude
}

// SetWaveform selects the waveform used by Next and Process.
func (o *Oscillator) SetWaveform(w Waveform) {
	o.waveform = w
}

// SetSeed makes the noise sequence repeatable.
func (o *Oscillator) SetSeed(seed int64) {
	o.rand.Seed(seed)
}

// Reset resets the oscillator phase to 0
func (o *Oscillator) Reset() {
	o.phase = 0.0
}

// updatePhase advances the phase and wraps it
func (o *Oscillator) updatePhase() {
	o.phase += o.phaseInc
	if o.phase >= 1.0 {
		o.phase -= math.Floor(o.phase)
	}
}

// Next returns the next sample.
func (o *Oscillator) Next() float32 {
	var v float64
	switch o.waveform {
	case Triangle:
		if o.phase < 0.5 {
			v = 4.0*o.phase - 1.0
		} else {
			v = 3.0 - 4.0*o.phase
		}
	case Saw:
		v = 2.0*o.phase - 1.0
	case Noise:
		v = 2.0*o.rand.Float64() - 1.0
	default:
		v = math.Sin(2.0 * math.Pi * o.phase)
	}
	o.updatePhase()
	return float32(o.amplitude * v)
}

// Process fills buffer with the selected waveform - no allocations
func (o *Oscillator) Process(buffer []float32) {
	for i := range buffer {
		buffer[i] = o.Next()
	}
}
