// Package state saves and restores parameter values across host sessions.
package state

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/MusicDevLife/Visual-Plugin/pkg/framework/param"
)

const (
	magic = "VISUAL"

	// Version is the state format written by Save.
	Version uint32 = 1

	// MaxEntries bounds the entry count accepted by Load.
	MaxEntries = 1024

	maxNameLen = 255
)

// ErrMalformedState is wrapped by every Load failure caused by the payload.
var ErrMalformedState = errors.New("state: malformed state")

// Manager handles plugin state saving and loading
type Manager struct {
	version  uint32
	registry *param.Registry
}

// NewManager creates a new state manager
func NewManager(registry *param.Registry) *Manager {
	return &Manager{
		version:  Version,
		registry: registry,
	}
}

type entry struct {
	name  string
	value float64
}

// Save writes the plugin state to a writer
func (m *Manager) Save(w io.Writer) error {
	params := m.registry.All()

	bw := bufio.NewWriter(w)

	// Write magic header
	if _, err := bw.WriteString(magic); err != nil {
		return err
	}

	// Write version
	if err := binary.Write(bw, binary.LittleEndian, m.version); err != nil {
		return err
	}

	// Write parameter count
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(params))); err != nil {
		return err
	}

	for _, p := range params {
		if len(p.Name) > maxNameLen {
			return fmt.Errorf("state: parameter name %q too long", p.Name)
		}
		if err := binary.Write(bw, binary.LittleEndian, uint16(len(p.Name))); err != nil {
			return err
		}
		if _, err := bw.WriteString(p.Name); err != nil {
			return err
		}
		if err := binary.Write(bw, binary.LittleEndian, p.GetValue()); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Serialize returns the current state as bytes.
func (m *Manager) Serialize() ([]byte, error) {
	var buf bytes.Buffer
	if err := m.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Load reads a state previously written by Save. The whole payload is
// decoded before any parameter is touched, so a malformed state leaves the
// current values unchanged. Unknown parameter names are skipped.
func (m *Manager) Load(r io.Reader) error {
	entries, err := m.decode(r)
	if err != nil {
		return err
	}

	for _, e := range entries {
		if p := m.registry.Get(e.name); p != nil {
			p.SetValue(e.value)
		}
	}
	return nil
}

// Deserialize restores state from bytes produced by Serialize.
func (m *Manager) Deserialize(data []byte) error {
	return m.Load(bytes.NewReader(data))
}

func (m *Manager) decode(r io.Reader) ([]entry, error) {
	// Read and verify magic header
	header := make([]byte, len(magic))
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, malformed("header: %v", err)
	}
	if string(header) != magic {
		return nil, malformed("bad magic %q", header)
	}

	var version uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, malformed("version: %v", err)
	}
	if version == 0 || version > m.version {
		return nil, malformed("state version %d is not supported (max %d)", version, m.version)
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, malformed("count: %v", err)
	}
	if count > MaxEntries {
		return nil, malformed("entry count %d exceeds %d", count, MaxEntries)
	}

	entries := make([]entry, 0, count)
	seen := make(map[string]struct{}, count)
	name := make([]byte, maxNameLen)

	for i := uint32(0); i < count; i++ {
		var nameLen uint16
		if err := binary.Read(r, binary.LittleEndian, &nameLen); err != nil {
			return nil, malformed("entry %d name length: %v", i, err)
		}
		if nameLen == 0 || nameLen > maxNameLen {
			return nil, malformed("entry %d name length %d", i, nameLen)
		}
		if _, err := io.ReadFull(r, name[:nameLen]); err != nil {
			return nil, malformed("entry %d name: %v", i, err)
		}
		key := string(name[:nameLen])
		if _, dup := seen[key]; dup {
			return nil, malformed("duplicate entry %q", key)
		}
		seen[key] = struct{}{}

		var value float64
		if err := binary.Read(r, binary.LittleEndian, &value); err != nil {
			return nil, malformed("entry %q value: %v", key, err)
		}
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return nil, malformed("entry %q has non-finite value", key)
		}
		entries = append(entries, entry{name: key, value: value})
	}

	var trailing [1]byte
	if _, err := io.ReadFull(r, trailing[:]); err == nil {
		return nil, malformed("trailing data after %d entries", count)
	}

	return entries, nil
}

func malformed(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrMalformedState, fmt.Sprintf(format, args...))
}
