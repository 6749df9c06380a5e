package distortion

import (
	"fmt"
	"math"

	"github.com/MusicDevLife/Visual-Plugin/pkg/dsp/mix"
)

// Saturator drives the input into ArctanShape, blends the shaped signal
// with the clean one, halves the blend and applies the output volume:
//
//	out = (ArctanShape(x·drive·distortion)·mix + x·(1−mix)) / 2 · volume
//
// Values are used as given; range limits belong to the parameter layer.
// A Saturator has no memory between samples. It is not safe to change
// settings from another goroutine while a block is being processed.
type Saturator struct {
	drive      float64
	distortion float64
	mix        float64
	volume     float64
}

// NewSaturator creates a saturator with DefaultSettings.
func NewSaturator() *Saturator {
	s := &Saturator{}
	s.Set(DefaultSettings())
	return s
}

// Set replaces all four values at once.
func (s *Saturator) Set(settings Settings) {
	s.drive = settings.Drive
	s.distortion = settings.Distortion
	s.mix = settings.Mix
	s.volume = settings.Volume
}

// Settings returns the values currently in use.
func (s *Saturator) Settings() Settings {
	return Settings{
		Drive:      s.drive,
		Distortion: s.distortion,
		Mix:        s.mix,
		Volume:     s.volume,
	}
}

// SetDrive sets the input gain into the shaper
func (s *Saturator) SetDrive(drive float64) {
	s.drive = drive
}

// SetDistortion sets the second gain stage into the shaper
func (s *Saturator) SetDistortion(distortion float64) {
	s.distortion = distortion
}

// SetMix sets the shaped/clean blend (0.0 = clean, 1.0 = shaped)
func (s *Saturator) SetMix(amount float64) {
	s.mix = amount
}

// SetVolume sets the output gain applied after the halving stage
func (s *Saturator) SetVolume(volume float64) {
	s.volume = volume
}

// Process transforms a single sample.
func (s *Saturator) Process(input float32) float32 {
	return narrow(s.transform(float64(input)))
}

func (s *Saturator) transform(clean float64) float64 {
	shaped := ArctanShape(clean * s.drive * s.distortion)
	blended := mix.DryWet(clean, shaped, s.mix)
	return blended / 2 * s.volume
}

// narrow rounds to float32, pinning results past the float32 range to its
// largest finite value. The dry path gains up to 1.49 at full volume, so
// inputs near math.MaxFloat32 would otherwise become infinite.
func narrow(v float64) float32 {
	if v > math.MaxFloat32 {
		return math.MaxFloat32
	}
	if v < -math.MaxFloat32 {
		return -math.MaxFloat32
	}
	return float32(v)
}

// ProcessBuffer transforms buffer in place.
func (s *Saturator) ProcessBuffer(buffer []float32) {
	for i, x := range buffer {
		buffer[i] = narrow(s.transform(float64(x)))
	}
}

// ProcessChannels transforms every channel in place with the same settings.
// All channels must have the same length; a mismatch is a programming error
// and panics before any sample is touched.
func (s *Saturator) ProcessChannels(channels [][]float32) {
	if len(channels) == 0 {
		return
	}
	n := len(channels[0])
	for ch := 1; ch < len(channels); ch++ {
		if len(channels[ch]) != n {
			panic(fmt.Sprintf("distortion: channel %d has %d samples, channel 0 has %d",
				ch, len(channels[ch]), n))
		}
	}

	for _, channel := range channels {
		s.ProcessBuffer(channel)
	}
}
