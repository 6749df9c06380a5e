// Package process provides the audio block handed to a processor on every
// render call.
package process

import (
	"errors"
	"fmt"
)

var (
	// ErrChannelLengthMismatch reports buffers of differing lengths in one block.
	ErrChannelLengthMismatch = errors.New("process: channel buffers differ in length")
	// ErrInputCount reports NumInputs outside [0, len(Buffers)].
	ErrInputCount = errors.New("process: input count exceeds channel count")
	// ErrLayoutMismatch reports a block whose channels do not fit the
	// negotiated bus layout.
	ErrLayoutMismatch = errors.New("process: block does not match channel layout")
)

// Context is one audio block. Buffers are owned by the host for the duration
// of the call and are processed in place. Only the first NumInputs buffers
// carry input; the remaining ones are outputs without a source.
type Context struct {
	Buffers    [][]float32
	NumInputs  int
	SampleRate float64
}

// NewContext wraps in-place buffers where every buffer carries input.
func NewContext(buffers [][]float32, sampleRate float64) *Context {
	return &Context{
		Buffers:    buffers,
		NumInputs:  len(buffers),
		SampleRate: sampleRate,
	}
}

// NumSamples returns the number of samples to process
func (c *Context) NumSamples() int {
	if len(c.Buffers) == 0 {
		return 0
	}
	return len(c.Buffers[0])
}

// NumChannels returns the number of buffers in the block.
func (c *Context) NumChannels() int {
	return len(c.Buffers)
}

// Validate checks the caller contract: a sane input count and one block
// length shared by all buffers.
func (c *Context) Validate() error {
	if c.NumInputs < 0 || c.NumInputs > len(c.Buffers) {
		return ErrInputCount
	}
	n := c.NumSamples()
	for _, buf := range c.Buffers {
		if len(buf) != n {
			return ErrChannelLengthMismatch
		}
	}
	return nil
}

// CheckLayout reports whether the block fits a layout of inputs/outputs
// channels: one buffer per output and no more inputs than the input bus
// carries. A block without buffers renders nothing and always fits.
func (c *Context) CheckLayout(inputs, outputs int) error {
	if len(c.Buffers) == 0 {
		return nil
	}
	if len(c.Buffers) != outputs || c.NumInputs > inputs {
		return fmt.Errorf("%w: %d buffers / %d inputs for %d in / %d out",
			ErrLayoutMismatch, len(c.Buffers), c.NumInputs, inputs, outputs)
	}
	return nil
}

// Inputs returns the buffers that carry input.
func (c *Context) Inputs() [][]float32 {
	return c.Buffers[:c.NumInputs]
}

// ClearUnusedOutputs zeroes the buffers that have no input, so stale host
// memory never reaches the output.
func (c *Context) ClearUnusedOutputs() {
	for ch := c.NumInputs; ch < len(c.Buffers); ch++ {
		clear(c.Buffers[ch])
	}
}
