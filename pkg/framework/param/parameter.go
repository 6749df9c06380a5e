// Package param provides the lock-free parameter store shared by the control
// surface and the audio thread.
package param

import (
	"fmt"
	"math"
	"strconv"
	"sync"
	"sync/atomic"
)

// Parameter is a named, ranged control value. Range metadata is plain data;
// the current value is stored as float64 bits so that reads and writes are
// single atomic operations.
type Parameter struct {
	Name         string
	ShortName    string
	Unit         string
	Min          float64
	Max          float64
	Resolution   float64 // display/step granularity, 0 means continuous
	DefaultValue float64

	// Atomic value for lock-free access in audio thread
	value atomic.Uint64

	listeners  atomic.Pointer[[]func(float64)]
	listenerMu sync.Mutex // serializes OnChange registrations only

	formatFunc func(float64) string
}

// Attachment is the capability a control surface binds to: read the initial
// value, write user changes, and observe changes made elsewhere.
type Attachment interface {
	GetValue() float64
	SetValue(value float64)
	OnChange(fn func(value float64))
}

var _ Attachment = (*Parameter)(nil)

// GetValue returns the current plain value. Safe on the audio thread.
func (p *Parameter) GetValue() float64 {
	return math.Float64frombits(p.value.Load())
}

// SetValue clamps value into [Min, Max] and stores it. NaN resets to the
// default. Never blocks and never allocates.
func (p *Parameter) SetValue(value float64) {
	value = p.Clamp(value)
	p.value.Store(math.Float64bits(value))

	if fns := p.listeners.Load(); fns != nil {
		for _, fn := range *fns {
			fn(value)
		}
	}
}

// Clamp limits value to the parameter range.
func (p *Parameter) Clamp(value float64) float64 {
	if math.IsNaN(value) {
		return p.DefaultValue
	}
	if value < p.Min {
		return p.Min
	}
	if value > p.Max {
		return p.Max
	}
	return value
}

// Reset restores the default value.
func (p *Parameter) Reset() {
	p.SetValue(p.DefaultValue)
}

// GetNormalized returns the current value mapped to 0-1.
func (p *Parameter) GetNormalized() float64 {
	return p.Normalize(p.GetValue())
}

// SetNormalized sets the value from a 0-1 knob position.
func (p *Parameter) SetNormalized(normalized float64) {
	p.SetValue(p.Denormalize(normalized))
}

// OnChange registers a callback invoked on the writer's goroutine after each
// store. Callbacks run synchronously, so they must be cheap.
func (p *Parameter) OnChange(fn func(value float64)) {
	if fn == nil {
		return
	}

	p.listenerMu.Lock()
	defer p.listenerMu.Unlock()

	var next []func(float64)
	if cur := p.listeners.Load(); cur != nil {
		next = make([]func(float64), len(*cur), len(*cur)+1)
		copy(next, *cur)
	}
	next = append(next, fn)
	p.listeners.Store(&next)
}

// SetFormatter sets custom value formatting
func (p *Parameter) SetFormatter(format func(float64) string) {
	p.formatFunc = format
}

// FormatValue returns the current value as display text.
func (p *Parameter) FormatValue() string {
	return p.Format(p.GetValue())
}

// Format renders a plain value as display text.
func (p *Parameter) Format(plain float64) string {
	if p.formatFunc != nil {
		return p.formatFunc(plain)
	}
	text := strconv.FormatFloat(plain, 'f', p.precision(), 64)
	if p.Unit != "" {
		return fmt.Sprintf("%s %s", text, p.Unit)
	}
	return text
}

// precision derives the number of decimals from the resolution, capped so
// the fine-grained ranges stay readable.
func (p *Parameter) precision() int {
	if p.Resolution <= 0 {
		return 2
	}
	digits := int(math.Ceil(-math.Log10(p.Resolution) - 1e-9))
	if digits < 0 {
		return 0
	}
	if digits > 4 {
		return 4
	}
	return digits
}

// Normalize converts plain value to normalized (0-1)
func (p *Parameter) Normalize(plain float64) float64 {
	if p.Max <= p.Min {
		return 0
	}
	normalized := (plain - p.Min) / (p.Max - p.Min)
	if normalized < 0 {
		return 0
	}
	if normalized > 1 {
		return 1
	}
	return normalized
}

// Denormalize converts normalized (0-1) to plain value
func (p *Parameter) Denormalize(normalized float64) float64 {
	return p.Min + normalized*(p.Max-p.Min)
}

// validate reports configuration errors for a parameter about to be registered.
func (p *Parameter) validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: empty parameter name", ErrInvalidRange)
	}
	if math.IsNaN(p.Min) || math.IsNaN(p.Max) || math.IsInf(p.Min, 0) || math.IsInf(p.Max, 0) {
		return fmt.Errorf("%w: %q has non-finite bounds [%g, %g]", ErrInvalidRange, p.Name, p.Min, p.Max)
	}
	if p.Min >= p.Max {
		return fmt.Errorf("%w: %q min %g >= max %g", ErrInvalidRange, p.Name, p.Min, p.Max)
	}
	if p.Resolution < 0 || math.IsNaN(p.Resolution) {
		return fmt.Errorf("%w: %q resolution %g", ErrInvalidRange, p.Name, p.Resolution)
	}
	if !(p.DefaultValue >= p.Min && p.DefaultValue <= p.Max) {
		return fmt.Errorf("%w: %q default %g outside [%g, %g]", ErrInvalidRange, p.Name, p.DefaultValue, p.Min, p.Max)
	}
	return nil
}
