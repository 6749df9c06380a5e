package analysis

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-vecmath/cpu"
)

var (
	// ErrFrameSize is returned for analysis sizes that are not a power of two.
	ErrFrameSize = errors.New("analysis: frame size must be a power of two >= 64")
	// ErrFundamental is returned when the fundamental is outside the
	// analysable band or carries no energy.
	ErrFundamental = errors.New("analysis: fundamental not measurable")
)

// captureBins is the half-width of the Hann main lobe in bins.
const captureBins = 2

// HarmonicReport describes the harmonic content of one analysis frame.
type HarmonicReport struct {
	Fundamental float64   // Hz, snapped to the analysis bin
	Amplitude   float64   // linear peak amplitude of the fundamental
	Harmonics   []float64 // level of H2, H3, ... relative to the fundamental
	THD         float64   // sqrt of the summed squared harmonic levels
	Odd         float64   // THD over H3, H5, ...
	Even        float64   // THD over H2, H4, ...
}

// THDPercent returns THD in percent.
func (r HarmonicReport) THDPercent() float64 {
	return r.THD * 100
}

// THDDb returns THD in dB relative to the fundamental.
func (r HarmonicReport) THDDb() float64 {
	if r.THD <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(r.THD)
}

// HarmonicAnalyzer measures total harmonic distortion of a steady tone.
// A frame is Hann windowed and transformed with algo-fft; the power of each
// harmonic is gathered over the window's main lobe.
//
// Buffers are preallocated, so an analyzer must not be shared between
// goroutines.
type HarmonicAnalyzer struct {
	sampleRate  float64
	size        int
	maxHarmonic int

	plan   *algofft.Plan[complex128]
	window []float64
	frame  []float64
	in     []complex128
	out    []complex128
	re     []float64
	im     []float64
	mag    []float64
}

// NewHarmonicAnalyzer creates an analyzer for frames of size samples.
func NewHarmonicAnalyzer(sampleRate float64, size int) (*HarmonicAnalyzer, error) {
	if size < 64 || size&(size-1) != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrFrameSize, size)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("analysis: invalid sample rate %g", sampleRate)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("analysis: fft plan: %w", err)
	}

	bins := size/2 + 1
	a := &HarmonicAnalyzer{
		sampleRate:  sampleRate,
		size:        size,
		maxHarmonic: 10,
		plan:        plan,
		window:      make([]float64, size),
		frame:       make([]float64, size),
		in:          make([]complex128, size),
		out:         make([]complex128, size),
		re:          make([]float64, bins),
		im:          make([]float64, bins),
		mag:         make([]float64, bins),
	}

	// Periodic Hann: a bin-centred tone leaks into exactly one bin per side
	for i := range a.window {
		a.window[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(size)))
	}

	return a, nil
}

// Size returns the frame size in samples.
func (a *HarmonicAnalyzer) Size() int {
	return a.size
}

// BinFrequency returns the centre frequency of bin k.
func (a *HarmonicAnalyzer) BinFrequency(k int) float64 {
	return float64(k) * a.sampleRate / float64(a.size)
}

// SetMaxHarmonic sets the highest harmonic included in the report.
func (a *HarmonicAnalyzer) SetMaxHarmonic(k int) {
	a.maxHarmonic = max(k, 2)
}

// Analyze measures the first Size samples of signal (zero padded when
// shorter) against the given fundamental frequency.
func (a *HarmonicAnalyzer) Analyze(signal []float32, fundamental float64) (HarmonicReport, error) {
	bins := len(a.mag)
	f0 := int(math.Round(fundamental * float64(a.size) / a.sampleRate))
	if f0 <= 2*captureBins || f0+captureBins >= bins {
		return HarmonicReport{}, fmt.Errorf("%w: %g Hz at %d-point frame", ErrFundamental, fundamental, a.size)
	}

	clear(a.frame)
	for i := 0; i < len(signal) && i < a.size; i++ {
		a.frame[i] = float64(signal[i])
	}
	vecmath.MulBlockInPlace(a.frame, a.window)
	for i, v := range a.frame {
		a.in[i] = complex(v, 0)
	}

	if err := a.plan.Forward(a.out, a.in); err != nil {
		return HarmonicReport{}, fmt.Errorf("analysis: forward fft: %w", err)
	}
	for k := 0; k < bins; k++ {
		a.re[k] = real(a.out[k])
		a.im[k] = imag(a.out[k])
	}
	vecmath.Magnitude(a.mag, a.re, a.im)

	fund := a.lobe(f0)
	if fund == 0 {
		return HarmonicReport{}, fmt.Errorf("%w: no energy at %g Hz", ErrFundamental, fundamental)
	}

	report := HarmonicReport{
		Fundamental: a.BinFrequency(f0),
		// Hann coherent gain is 1/2, and a real tone splits over two sides
		Amplitude: 4 * a.mag[f0] / float64(a.size),
		Harmonics: make([]float64, 0, a.maxHarmonic-1),
	}

	var total, odd, even float64
	for k := 2; k <= a.maxHarmonic; k++ {
		center := k * f0
		if center+captureBins >= bins {
			break
		}
		level := a.lobe(center) / fund
		report.Harmonics = append(report.Harmonics, level)

		total += level * level
		if k%2 == 0 {
			even += level * level
		} else {
			odd += level * level
		}
	}

	report.THD = math.Sqrt(total)
	report.Odd = math.Sqrt(odd)
	report.Even = math.Sqrt(even)
	return report, nil
}

// lobe returns the root of the power summed across the main lobe at center.
func (a *HarmonicAnalyzer) lobe(center int) float64 {
	lo := max(center-captureBins, 0)
	hi := min(center+captureBins, len(a.mag)-1)
	power := 0.0
	for k := lo; k <= hi; k++ {
		power += a.mag[k] * a.mag[k]
	}
	return math.Sqrt(power)
}

// Backend names the SIMD path the vecmath kernels run on.
func Backend() string {
	f := cpu.DetectFeatures()
	var path string
	switch {
	case f.ForceGeneric:
		path = "generic"
	case f.HasAVX2:
		path = "avx2"
	case f.HasSSE2:
		path = "sse2"
	case f.HasNEON:
		path = "neon"
	default:
		path = "generic"
	}
	return f.Architecture + "/" + path
}
