// Package visual is the Visual saturation effect: four host-automatable
// parameters in front of the arctan saturator.
package visual

import (
	"fmt"

	"github.com/MusicDevLife/Visual-Plugin/pkg/dsp/distortion"
	"github.com/MusicDevLife/Visual-Plugin/pkg/framework/bus"
	"github.com/MusicDevLife/Visual-Plugin/pkg/framework/param"
	"github.com/MusicDevLife/Visual-Plugin/pkg/framework/plugin"
	"github.com/MusicDevLife/Visual-Plugin/pkg/framework/process"
)

// Parameter names, also used as keys in saved state.
const (
	ParamDrive      = "Drive"
	ParamDistortion = "Distortion"
	ParamMix        = "Mix"
	ParamVolume     = "Volume"
)

// PluginInfo identifies the effect to hosts.
var PluginInfo = plugin.Info{
	ID:       "com.musicdevlife.visual",
	Name:     "Visual",
	Version:  "1.0.0",
	Vendor:   "MusicDevLife",
	Category: "Fx|Distortion",
}

var _ plugin.Processor = (*Processor)(nil)

// Processor applies the saturator to every input channel in place.
//
// Parameter writes may come from any goroutine at any time. ProcessAudio
// reads each parameter once at the top of the block, so a block never mixes
// two values of the same control.
type Processor struct {
	*plugin.BaseProcessor

	drive      *param.Parameter
	distortion *param.Parameter
	mix        *param.Parameter
	volume     *param.Parameter

	saturator *distortion.Saturator
}

// NewProcessor creates the effect with every parameter at its default.
func NewProcessor() (*Processor, error) {
	p := &Processor{
		BaseProcessor: plugin.NewBaseProcessor(PluginInfo, nil),
		saturator:     distortion.NewSaturator(),
	}

	if err := p.setupParameters(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Processor) setupParameters() error {
	p.drive = param.New(ParamDrive).
		ShortName("Drv").
		Range(0.01, 1).
		Resolution(0.0001).
		Default(1).
		Formatter(param.RatioPercentFormatter).
		Build()

	p.distortion = param.New(ParamDistortion).
		ShortName("Dist").
		Range(0.01, 25).
		Resolution(0.00001).
		Default(1).
		Formatter(param.MultiplierFormatter).
		Build()

	p.mix = param.New(ParamMix).
		Range(0.01, 1).
		Resolution(0.0001).
		Default(1).
		Formatter(param.RatioPercentFormatter).
		Build()

	p.volume = param.New(ParamVolume).
		ShortName("Vol").
		Range(0.01, 3).
		Resolution(0.0001).
		Default(1).
		Formatter(param.LinearGainFormatter).
		Build()

	if err := p.Parameters().Add(p.drive, p.distortion, p.mix, p.volume); err != nil {
		return fmt.Errorf("visual: declare parameters: %w", err)
	}
	return nil
}

// Snapshot reads every parameter once, in declaration order.
func (p *Processor) Snapshot() distortion.Settings {
	var values [4]float64
	p.Parameters().ValuesInto(values[:])
	return distortion.Settings{
		Drive:      values[0],
		Distortion: values[1],
		Mix:        values[2],
		Volume:     values[3],
	}
}

// ProcessAudio renders one block in place. Buffers past ctx.NumInputs are
// silenced. A block whose buffers differ in length, or that does not match
// the layout accepted by SetChannelLayout, violates the host contract and
// panics.
func (p *Processor) ProcessAudio(ctx *process.Context) {
	if err := ctx.Validate(); err != nil {
		panic(fmt.Sprintf("visual: invalid block: %v", err))
	}
	buses := p.Buses()
	err := ctx.CheckLayout(buses.ChannelCount(bus.DirectionInput), buses.ChannelCount(bus.DirectionOutput))
	if err != nil {
		panic(fmt.Sprintf("visual: invalid block: %v", err))
	}

	ctx.ClearUnusedOutputs()
	p.saturator.Set(p.Snapshot())
	p.saturator.ProcessChannels(ctx.Inputs())
}

// Parameter returns the named parameter, or nil.
func (p *Processor) Parameter(name string) *param.Parameter {
	return p.Parameters().Get(name)
}

// SetParameter stores a plain value, clamped to the parameter's range.
func (p *Processor) SetParameter(name string, value float64) error {
	return p.Parameters().Set(name, value)
}

// GetParameter returns the current plain value.
func (p *Processor) GetParameter(name string) (float64, error) {
	return p.Parameters().Value(name)
}
