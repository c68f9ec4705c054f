package transform

import (
	"errors"
	"fmt"
	"sort"
)

// Func derives a cell value from its resolved source values.
type Func func(args ...string) (string, error)

// Def describes a registered transform.
type Def struct {
	// Name is the identifier used by mapping columns.
	Name string
	// Arity is the exact number of source values the function takes.
	Arity int
	// Description is an optional human-readable description.
	Description string
	// Func is the implementation.
	Func Func
}

// ArityError reports a call with the wrong number of source values.
type ArityError struct {
	Name string
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("transform %q takes %d argument(s), got %d", e.Name, e.Want, e.Got)
}

// ErrUnknownTransform is returned when applying a name that was never registered.
var ErrUnknownTransform = errors.New("unknown transform")

// Registry holds transforms by name and provides lookup.
type Registry struct {
	defs map[string]*Def
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		defs: make(map[string]*Def),
	}
}

// Register adds a transform. Names must be unique and non-empty.
func (r *Registry) Register(def Def) error {
	if def.Name == "" {
		return errors.New("transform name is empty")
	}

	if def.Func == nil {
		return fmt.Errorf("transform %q has no function", def.Name)
	}

	if def.Arity < 0 {
		return fmt.Errorf("transform %q has negative arity %d", def.Name, def.Arity)
	}

	if _, exists := r.defs[def.Name]; exists {
		return fmt.Errorf("transform %q already registered", def.Name)
	}

	r.defs[def.Name] = &def

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(def Def) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// Get returns a transform by name, or nil if not found.
func (r *Registry) Get(name string) *Def {
	return r.defs[name]
}

// Has returns true if a transform with the given name exists.
func (r *Registry) Has(name string) bool {
	_, exists := r.defs[name]
	return exists
}

// Names returns all transform names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Apply runs the named transform after checking its arity.
func (r *Registry) Apply(name string, args ...string) (string, error) {
	def := r.Get(name)
	if def == nil {
		return "", fmt.Errorf("%w %q", ErrUnknownTransform, name)
	}

	if len(args) != def.Arity {
		return "", &ArityError{Name: name, Want: def.Arity, Got: len(args)}
	}

	return def.Func(args...)
}
