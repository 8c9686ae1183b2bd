package controls

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/goliatone/go-formfield/pkg/node"
)

// Names of the built-in controls.
const (
	NameInput    = "input"
	NameTextArea = "textarea"
	NameSelect   = "select"
	NameSwitch   = "switch"
	NameCheckbox = "checkbox"
)

// Constructor builds a control element from options.
type Constructor func(opts ...Option) *node.Element

// Registry tracks control constructors keyed by name. Callers can register new
// controls or override defaults.
type Registry struct {
	mu           sync.RWMutex
	constructors map[string]Constructor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{constructors: make(map[string]Constructor)}
}

// NewDefaultRegistry creates a registry holding the built-in controls.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(NameInput, Input)
	r.MustRegister(NameTextArea, TextArea)
	r.MustRegister(NameSelect, Select)
	r.MustRegister(NameSwitch, Switch)
	r.MustRegister(NameCheckbox, Checkbox)
	return r
}

// Clone returns a copy to allow isolated mutations.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := NewRegistry()
	for name, fn := range r.constructors {
		cloned.constructors[name] = fn
	}
	return cloned
}

// Register associates a constructor with name, replacing existing entries.
func (r *Registry) Register(name string, fn Constructor) error {
	if name = normalize(name); name == "" {
		return fmt.Errorf("controls: control name is required")
	}
	if fn == nil {
		return fmt.Errorf("controls: constructor for %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.constructors[name] = fn
	return nil
}

// MustRegister mirrors Register but panics on error, simplifying default
// registry setup.
func (r *Registry) MustRegister(name string, fn Constructor) {
	if err := r.Register(name, fn); err != nil {
		panic(err)
	}
}

// Lookup fetches a constructor by name.
func (r *Registry) Lookup(name string) (Constructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.constructors[normalize(name)]
	return fn, ok
}

// Build looks up name and constructs the control.
func (r *Registry) Build(name string, opts ...Option) (*node.Element, error) {
	fn, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("controls: control %q not registered", normalize(name))
	}
	return fn(opts...), nil
}

// Names returns a sorted slice of registered control names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.constructors))
	for name := range r.constructors {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
