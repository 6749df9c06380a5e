package plugin

import (
	"github.com/MusicDevLife/Visual-Plugin/pkg/framework/debug"
	"github.com/MusicDevLife/Visual-Plugin/pkg/framework/param"
	"github.com/MusicDevLife/Visual-Plugin/pkg/framework/state"
)

// Base provides core functionality for all plugins
type Base struct {
	Info   Info
	params *param.Registry
	state  *state.Manager
	log    *debug.Logger
}

// NewBase creates a new plugin base
func NewBase(info Info) *Base {
	b := &Base{
		Info:   info,
		params: param.NewRegistry(),
		log:    debug.Default().With(info.Name),
	}

	// Initialize state manager with parameter registry
	b.state = state.NewManager(b.params)

	return b
}

// Parameters returns the parameter registry for configuration
func (b *Base) Parameters() *param.Registry {
	return b.params
}

// Logger returns the plugin's logger.
func (b *Base) Logger() *debug.Logger {
	return b.log
}

// SetLogger replaces the plugin's logger.
func (b *Base) SetLogger(l *debug.Logger) {
	if l != nil {
		b.log = l
	}
}

// SaveState serializes all parameter values.
func (b *Base) SaveState() ([]byte, error) {
	data, err := b.state.Serialize()
	if err != nil {
		b.log.Error("state save failed: %v", err)
		return nil, err
	}
	b.log.Debug("saved state (%d bytes, %d parameters)", len(data), b.params.Count())
	return data, nil
}

// LoadState restores parameter values. On a malformed payload the current
// values are kept and the error is returned to the host.
func (b *Base) LoadState(data []byte) error {
	if err := b.state.Deserialize(data); err != nil {
		b.log.Warn("state load rejected, keeping current values: %v", err)
		return err
	}
	b.log.Debug("loaded state (%d bytes)", len(data))
	return nil
}
