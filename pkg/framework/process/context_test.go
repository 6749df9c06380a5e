package process

import (
	"errors"
	"testing"
)

func TestContextValidate(t *testing.T) {
	tests := []struct {
		name    string
		ctx     Context
		wantErr error
	}{
		{"Stereo", Context{Buffers: [][]float32{make([]float32, 64), make([]float32, 64)}, NumInputs: 2}, nil},
		{"Empty", Context{}, nil},
		{"Mismatch", Context{Buffers: [][]float32{make([]float32, 64), make([]float32, 32)}, NumInputs: 2}, ErrChannelLengthMismatch},
		{"TooManyInputs", Context{Buffers: [][]float32{make([]float32, 64)}, NumInputs: 2}, ErrInputCount},
		{"NegativeInputs", Context{Buffers: [][]float32{make([]float32, 64)}, NumInputs: -1}, ErrInputCount},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.ctx.Validate()
			if !errors.Is(err, test.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, test.wantErr)
			}
		})
	}
}

func TestContextCheckLayout(t *testing.T) {
	stereo := [][]float32{make([]float32, 8), make([]float32, 8)}
	mono := [][]float32{make([]float32, 8)}

	tests := []struct {
		name            string
		ctx             Context
		inputs, outputs int
		wantErr         error
	}{
		{"StereoFits", Context{Buffers: stereo, NumInputs: 2}, 2, 2, nil},
		{"MonoFits", Context{Buffers: mono, NumInputs: 1}, 1, 1, nil},
		{"FewerInputs", Context{Buffers: stereo, NumInputs: 1}, 2, 2, nil},
		{"NoBuffers", Context{}, 2, 2, nil},
		{"MonoBlockOnStereo", Context{Buffers: mono, NumInputs: 1}, 2, 2, ErrLayoutMismatch},
		{"StereoBlockOnMono", Context{Buffers: stereo, NumInputs: 2}, 1, 1, ErrLayoutMismatch},
		{"TooManyInputs", Context{Buffers: stereo, NumInputs: 2}, 1, 2, ErrLayoutMismatch},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.ctx.CheckLayout(test.inputs, test.outputs)
			if !errors.Is(err, test.wantErr) {
				t.Errorf("CheckLayout(%d, %d) = %v, want %v", test.inputs, test.outputs, err, test.wantErr)
			}
		})
	}
}

func TestContextClearUnusedOutputs(t *testing.T) {
	left := []float32{0.1, 0.2, 0.3}
	right := []float32{0.4, 0.5, 0.6}
	ctx := &Context{Buffers: [][]float32{left, right}, NumInputs: 1}

	ctx.ClearUnusedOutputs()

	for i, v := range right {
		if v != 0 {
			t.Errorf("right[%d] = %f, want 0", i, v)
		}
	}
	if left[0] != 0.1 {
		t.Error("input buffer must not be cleared")
	}
	if len(ctx.Inputs()) != 1 {
		t.Errorf("Inputs() has %d buffers, want 1", len(ctx.Inputs()))
	}
}

func TestNewContext(t *testing.T) {
	ctx := NewContext([][]float32{make([]float32, 128), make([]float32, 128)}, 48000)
	if ctx.NumInputs != 2 || ctx.NumChannels() != 2 || ctx.NumSamples() != 128 {
		t.Errorf("NewContext: inputs=%d channels=%d samples=%d", ctx.NumInputs, ctx.NumChannels(), ctx.NumSamples())
	}
	if ctx.SampleRate != 48000 {
		t.Errorf("SampleRate = %g", ctx.SampleRate)
	}
}
