// Package analysis measures what the effect does to a signal.
//
// Level metering:
//   - BlockMeter: peak and RMS of float32 blocks via algo-vecmath kernels
//   - PeakMeter: falling peak with max hold, written by the audio goroutine
//     and read lock-free by displays
//
// Harmonic analysis:
//   - HarmonicAnalyzer: Hann-windowed algo-fft frame, per-harmonic levels,
//     THD and its odd/even split
//
// Example usage:
//
//	a, err := analysis.NewHarmonicAnalyzer(48000, 4096)
//	if err != nil {
//	    return err
//	}
//	report, err := a.Analyze(rendered, 375)
//	fmt.Printf("THD %.2f%% (odd %.3f, even %.3f)\n", report.THDPercent(), report.Odd, report.Even)
package analysis
