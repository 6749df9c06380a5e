package param

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

var (
	// ErrDuplicateParameter is returned when a name is declared twice.
	ErrDuplicateParameter = errors.New("param: duplicate parameter")
	// ErrInvalidRange is returned for empty names, min >= max, non-finite
	// bounds or a default outside the range.
	ErrInvalidRange = errors.New("param: invalid range")
	// ErrUnknownParameter is returned by name lookups that miss.
	ErrUnknownParameter = errors.New("param: unknown parameter")
)

// table is an immutable view of the registered parameters. Readers load it
// atomically; writers replace it.
type table struct {
	byName map[string]*Parameter
	order  []*Parameter
}

var emptyTable = &table{byName: map[string]*Parameter{}}

// Registry manages plugin parameters. Declarations happen during
// construction; every lookup afterwards is lock-free.
type Registry struct {
	current atomic.Pointer[table]
	mu      sync.Mutex // serializes Add
}

// NewRegistry creates a new parameter registry
func NewRegistry() *Registry {
	r := &Registry{}
	r.current.Store(emptyTable)
	return r
}

// Add registers parameters in order. Either all of them are added or, on a
// configuration error, none are.
func (r *Registry) Add(params ...*Parameter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur := r.current.Load()
	next := &table{
		byName: make(map[string]*Parameter, len(cur.order)+len(params)),
		order:  make([]*Parameter, 0, len(cur.order)+len(params)),
	}
	for _, p := range cur.order {
		next.byName[p.Name] = p
		next.order = append(next.order, p)
	}

	for _, p := range params {
		if err := p.validate(); err != nil {
			return err
		}
		if _, exists := next.byName[p.Name]; exists {
			return fmt.Errorf("%w: %q", ErrDuplicateParameter, p.Name)
		}
		next.byName[p.Name] = p
		next.order = append(next.order, p)
	}

	r.current.Store(next)
	return nil
}

// Declare builds and registers a parameter from plain range data.
func (r *Registry) Declare(name string, min, max, resolution, def float64) (*Parameter, error) {
	p := New(name).Range(min, max).Resolution(resolution).Default(def).Build()
	if err := r.Add(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Get retrieves a parameter by name, or nil.
func (r *Registry) Get(name string) *Parameter {
	return r.current.Load().byName[name]
}

// Value returns the current plain value of a parameter.
func (r *Registry) Value(name string) (float64, error) {
	p := r.Get(name)
	if p == nil {
		return 0, ErrUnknownParameter
	}
	return p.GetValue(), nil
}

// Set clamps and stores a plain value.
func (r *Registry) Set(name string, value float64) error {
	p := r.Get(name)
	if p == nil {
		return ErrUnknownParameter
	}
	p.SetValue(value)
	return nil
}

// Count returns the number of parameters
func (r *Registry) Count() int {
	return len(r.current.Load().order)
}

// All returns all parameters in declaration order
func (r *Registry) All() []*Parameter {
	order := r.current.Load().order
	result := make([]*Parameter, len(order))
	copy(result, order)
	return result
}

// SnapshotAll reads every parameter once. Each read is atomic; the map as a
// whole is not a single transaction.
func (r *Registry) SnapshotAll() map[string]float64 {
	order := r.current.Load().order
	values := make(map[string]float64, len(order))
	for _, p := range order {
		values[p.Name] = p.GetValue()
	}
	return values
}

// ValuesInto writes current values in declaration order into dst without
// allocating and returns the number written.
func (r *Registry) ValuesInto(dst []float64) int {
	order := r.current.Load().order
	n := len(order)
	if len(dst) < n {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		dst[i] = order[i].GetValue()
	}
	return n
}

// ResetAll restores every parameter to its default.
func (r *Registry) ResetAll() {
	for _, p := range r.current.Load().order {
		p.Reset()
	}
}
