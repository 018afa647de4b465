// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package meta

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Instance is anything that can describe its own class.
type Instance interface {
	MetaObject() *MetaObject
}

// GetterFunc reads a property value from an instance.
type GetterFunc func(inst any) (cty.Value, error)

// SetterFunc writes a property value to an instance. The value has already
// been converted to the property's declared type.
type SetterFunc func(inst any, val cty.Value) error

// Property describes one registered property. Descriptors are handed out by
// value, so callers cannot alter the registry through them.
type Property struct {
	Name string
	Type cty.Type
	Get  GetterFunc
	Set  SetterFunc // nil for read-only properties
}

// Writable reports whether the property has a setter.
func (p Property) Writable() bool {
	return p.Set != nil
}

// Read invokes the getter.
func (p Property) Read(inst any) (cty.Value, error) {
	val, err := p.Get(inst)
	if err != nil {
		return cty.NilVal, fmt.Errorf("read %q: %w", p.Name, err)
	}
	return val, nil
}

// Write converts val to the declared type and invokes the setter.
func (p Property) Write(inst any, val cty.Value) error {
	if p.Set == nil {
		return fmt.Errorf("write %q: %w", p.Name, ErrReadOnly)
	}
	if val == cty.NilVal || !val.IsKnown() {
		return fmt.Errorf("write %q: %w: value is not known", p.Name, ErrTypeMismatch)
	}

	converted, err := convert.Convert(val, p.Type)
	if err != nil {
		return fmt.Errorf("write %q: %w: cannot convert %s to %s: %v",
			p.Name, ErrTypeMismatch, val.Type().FriendlyName(), p.Type.FriendlyName(), err)
	}

	if err := p.Set(inst, converted); err != nil {
		return fmt.Errorf("write %q: %w", p.Name, err)
	}
	return nil
}

func (p Property) validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidProperty)
	}
	if p.Get == nil {
		return fmt.Errorf("%w: property %q has no getter", ErrInvalidProperty, p.Name)
	}
	if p.Type == cty.NilType {
		return fmt.Errorf("%w: property %q has no type", ErrInvalidProperty, p.Name)
	}
	return nil
}
