package param

import "math"

// Builder provides a fluent API for creating parameters
type Builder struct {
	param *Parameter
}

// New creates a new parameter builder with a 0-1 range.
func New(name string) *Builder {
	return &Builder{
		param: &Parameter{
			Name:      name,
			ShortName: name,
			Min:       0,
			Max:       1,
		},
	}
}

// ShortName sets the short name
func (b *Builder) ShortName(name string) *Builder {
	b.param.ShortName = name
	return b
}

// Range sets the min and max values
func (b *Builder) Range(min, max float64) *Builder {
	b.param.Min = min
	b.param.Max = max
	return b
}

// Resolution sets the step granularity.
func (b *Builder) Resolution(step float64) *Builder {
	b.param.Resolution = step
	return b
}

// Default sets the default value (plain, not normalized)
func (b *Builder) Default(value float64) *Builder {
	b.param.DefaultValue = value
	return b
}

// Unit sets the unit string
func (b *Builder) Unit(unit string) *Builder {
	b.param.Unit = unit
	return b
}

// Formatter sets custom value formatting
func (b *Builder) Formatter(format func(float64) string) *Builder {
	b.param.formatFunc = format
	return b
}

// Build returns the configured parameter holding its default value.
// Range problems surface when the parameter is added to a Registry.
func (b *Builder) Build() *Parameter {
	b.param.value.Store(math.Float64bits(b.param.DefaultValue))
	return b.param
}
