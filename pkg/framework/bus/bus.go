// Package bus describes the channel layouts an effect accepts.
package bus

import (
	"errors"
	"fmt"
)

// Direction represents the bus direction
type Direction int32

const (
	// DirectionInput represents input bus
	DirectionInput Direction = 0
	// DirectionOutput represents output bus
	DirectionOutput Direction = 1
)

// ErrUnsupportedLayout is returned for layouts other than matching mono or
// stereo.
var ErrUnsupportedLayout = errors.New("bus: unsupported channel layout")

// Info contains bus configuration
type Info struct {
	Direction    Direction
	ChannelCount int
	Name         string
}

// Configuration is a main input bus paired with a main output bus.
type Configuration struct {
	input  Info
	output Info
}

// NewStereoConfiguration creates a standard stereo I/O configuration
func NewStereoConfiguration() *Configuration {
	return &Configuration{
		input:  Info{Direction: DirectionInput, ChannelCount: 2, Name: "Stereo In"},
		output: Info{Direction: DirectionOutput, ChannelCount: 2, Name: "Stereo Out"},
	}
}

// NewMonoConfiguration creates a mono I/O configuration
func NewMonoConfiguration() *Configuration {
	return &Configuration{
		input:  Info{Direction: DirectionInput, ChannelCount: 1, Name: "Mono In"},
		output: Info{Direction: DirectionOutput, ChannelCount: 1, Name: "Mono Out"},
	}
}

// NewConfiguration returns the configuration for an input/output channel
// pair, or ErrUnsupportedLayout.
func NewConfiguration(inputs, outputs int) (*Configuration, error) {
	if !SupportsLayout(inputs, outputs) {
		return nil, fmt.Errorf("%w: %d in / %d out", ErrUnsupportedLayout, inputs, outputs)
	}
	if outputs == 1 {
		return NewMonoConfiguration(), nil
	}
	return NewStereoConfiguration(), nil
}

// SupportsLayout reports whether the output is mono or stereo and the input
// matches it.
func SupportsLayout(inputs, outputs int) bool {
	if outputs != 1 && outputs != 2 {
		return false
	}
	return inputs == outputs
}

// Bus returns the main bus for a direction.
func (c *Configuration) Bus(direction Direction) Info {
	if direction == DirectionInput {
		return c.input
	}
	return c.output
}

// ChannelCount returns the channel count of the main bus in a direction.
func (c *Configuration) ChannelCount(direction Direction) int {
	return c.Bus(direction).ChannelCount
}
