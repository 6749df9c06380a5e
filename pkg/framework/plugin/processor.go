// Package plugin provides base processor functionality to reduce boilerplate in effects.
package plugin

import (
	"fmt"

	"github.com/MusicDevLife/Visual-Plugin/pkg/framework/bus"
	"github.com/MusicDevLife/Visual-Plugin/pkg/framework/param"
	"github.com/MusicDevLife/Visual-Plugin/pkg/framework/process"
)

// Processor is what a host drives.
type Processor interface {
	Initialize(sampleRate float64, maxBlockSize int) error
	SetChannelLayout(inputs, outputs int) error
	// ProcessAudio renders one block in place - zero allocations allowed!
	ProcessAudio(ctx *process.Context)
	Parameters() *param.Registry
	SaveState() ([]byte, error)
	LoadState(data []byte) error
}

// BaseProcessor provides common functionality for audio processors
type BaseProcessor struct {
	*Base
	buses        *bus.Configuration
	sampleRate   float64
	maxBlockSize int

	// Optional callback for customization
	onInitialize func(sampleRate float64, maxBlockSize int) error
}

// NewBaseProcessor creates a new base processor with the given bus configuration
func NewBaseProcessor(info Info, buses *bus.Configuration) *BaseProcessor {
	if buses == nil {
		buses = bus.NewStereoConfiguration() // Default to stereo
	}

	return &BaseProcessor{
		Base:  NewBase(info),
		buses: buses,
	}
}

// Initialize records the playback configuration. It runs outside the render
// path, before the first block.
func (b *BaseProcessor) Initialize(sampleRate float64, maxBlockSize int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("plugin: invalid sample rate %g", sampleRate)
	}
	if maxBlockSize <= 0 {
		return fmt.Errorf("plugin: invalid max block size %d", maxBlockSize)
	}

	b.sampleRate = sampleRate
	b.maxBlockSize = maxBlockSize
	b.log.Info("initialized at %.0f Hz, max block %d", sampleRate, maxBlockSize)

	if b.onInitialize != nil {
		return b.onInitialize(sampleRate, maxBlockSize)
	}

	return nil
}

// SetChannelLayout accepts matching mono or stereo layouts.
func (b *BaseProcessor) SetChannelLayout(inputs, outputs int) error {
	buses, err := bus.NewConfiguration(inputs, outputs)
	if err != nil {
		b.log.Warn("rejected layout: %v", err)
		return err
	}
	b.buses = buses
	return nil
}

// Buses returns the active bus configuration
func (b *BaseProcessor) Buses() *bus.Configuration {
	return b.buses
}

// SampleRate returns the current sample rate
func (b *BaseProcessor) SampleRate() float64 {
	return b.sampleRate
}

// MaxBlockSize returns the largest block the host promised to send.
func (b *BaseProcessor) MaxBlockSize() int {
	return b.maxBlockSize
}

// OnInitialize sets a callback for initialization
func (b *BaseProcessor) OnInitialize(fn func(sampleRate float64, maxBlockSize int) error) {
	b.onInitialize = fn
}
