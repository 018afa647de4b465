// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package meta

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/zclconf/go-cty/cty"
)

// Builder accumulates property descriptors for one class. It is not safe for
// concurrent use; a class is described by a single goroutine before anyone
// reads it.
type Builder struct {
	className string
	super     *MetaObject
	props     []Property
	index     map[string]int
	errs      []error
	built     bool
}

// NewBuilder starts describing className. super may be nil for a root class.
func NewBuilder(className string, super *MetaObject) *Builder {
	return &Builder{
		className: className,
		super:     super,
		index:     make(map[string]int),
	}
}

// Register adds a property described by its parts.
func (b *Builder) Register(name string, typ cty.Type, get GetterFunc, set SetterFunc) error {
	return b.Add(Property{Name: name, Type: typ, Get: get, Set: set})
}

// Add registers p. Registration order defines enumeration order.
func (b *Builder) Add(p Property) error {
	err := b.add(p)
	if err != nil {
		b.errs = append(b.errs, err)
	}
	return err
}

func (b *Builder) add(p Property) error {
	if b.built {
		return fmt.Errorf("%s: builder already used", b.className)
	}
	if err := p.validate(); err != nil {
		return fmt.Errorf("%s: %w", b.className, err)
	}
	if _, exists := b.index[p.Name]; exists {
		return fmt.Errorf("%s.%s: %w", b.className, p.Name, ErrDuplicateProperty)
	}
	if b.super != nil {
		if i := b.super.IndexOfProperty(p.Name); i >= 0 {
			return fmt.Errorf("%s.%s: %w (inherited from %s)", b.className, p.Name, ErrDuplicateProperty, b.super.ClassName())
		}
	}

	slog.Debug("Registering property.", "class", b.className, "property", p.Name, "type", p.Type.FriendlyName())
	b.index[p.Name] = len(b.props)
	b.props = append(b.props, p)
	return nil
}

// Build freezes the table. It fails if the class name is empty or any
// earlier registration failed.
func (b *Builder) Build() (*MetaObject, error) {
	if b.className == "" {
		return nil, fmt.Errorf("%w: class name must not be empty", ErrInvalidProperty)
	}
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}
	if b.built {
		return nil, fmt.Errorf("%s: builder already used", b.className)
	}
	b.built = true

	offset := 0
	if b.super != nil {
		offset = b.super.PropertyCount()
	}

	props := make([]Property, len(b.props))
	copy(props, b.props)
	index := make(map[string]int, len(b.index))
	for k, v := range b.index {
		index[k] = v
	}

	return &MetaObject{
		className: b.className,
		super:     b.super,
		offset:    offset,
		props:     props,
		index:     index,
	}, nil
}

// MustBuild is Build for package-level class descriptions, where a failure
// is a programming error.
func (b *Builder) MustBuild() *MetaObject {
	mo, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("meta: cannot describe class '%s': %v", b.className, err))
	}
	return mo
}
