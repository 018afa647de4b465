package registry

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/specialistvlad/metaprop/internal/meta"
	"github.com/specialistvlad/metaprop/internal/object"
)

// ErrClassNotFound is returned by Lookup for unregistered class names.
var ErrClassNotFound = errors.New("class not found")

// Module is the interface that all compiled class packages implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Class holds everything needed to describe and instantiate one class.
type Class struct {
	Meta *meta.MetaObject
	New  func() meta.Instance

	// Manifest optionally holds HCL source the compiled class must match.
	Manifest     []byte
	ManifestName string
}

// Registry holds all registered classes for a single application instance.
type Registry struct {
	classes map[string]*Class
	order   []string
}

// New creates a registry that already knows the root Object class.
func New() *Registry {
	r := &Registry{classes: make(map[string]*Class)}
	r.RegisterClass(&Class{
		Meta: object.Meta(),
		New:  func() meta.Instance { return object.New("") },
	})
	return r
}

// RegisterClass adds a class. Registering the same name twice is a
// programmer error and panics.
func (r *Registry) RegisterClass(c *Class) {
	if c == nil || c.Meta == nil || c.New == nil {
		panic("registry: class must have a meta object and a constructor")
	}
	name := c.Meta.ClassName()
	if _, exists := r.classes[name]; exists {
		panic(fmt.Sprintf("class with name '%s' already registered", name))
	}
	slog.Debug("Registering class.", "class", name, "properties", c.Meta.PropertyCount())
	r.classes[name] = c
	r.order = append(r.order, name)
}

// Lookup returns the class registered under name.
func (r *Registry) Lookup(name string) (*Class, error) {
	c, ok := r.classes[name]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrClassNotFound, name)
	}
	return c, nil
}

// MetaObject resolves a class name to its property table.
func (r *Registry) MetaObject(name string) (*meta.MetaObject, bool) {
	c, ok := r.classes[name]
	if !ok {
		return nil, false
	}
	return c.Meta, true
}

// ClassNames returns the registered names in registration order.
func (r *Registry) ClassNames() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
