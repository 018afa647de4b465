// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package introspect

import (
	"fmt"
	"iter"

	"github.com/specialistvlad/metaprop/internal/meta"
	"github.com/zclconf/go-cty/cty"
)

// PropertyNames yields every property name of obj's class in index order,
// inherited properties first.
func PropertyNames(obj meta.Instance) iter.Seq[string] {
	return namesFrom(obj, 0)
}

// DeclaredPropertyNames yields only the names obj's class declares itself.
func DeclaredPropertyNames(obj meta.Instance) iter.Seq[string] {
	return namesFrom(obj, obj.MetaObject().PropertyOffset())
}

func namesFrom(obj meta.Instance, start int) iter.Seq[string] {
	mo := obj.MetaObject()
	return func(yield func(string) bool) {
		for i := start; i < mo.PropertyCount(); i++ {
			p, err := mo.Property(i)
			if err != nil {
				return
			}
			if !yield(p.Name) {
				return
			}
		}
	}
}

// Properties yields name/value pairs in index order. Values are in display
// form; a property whose getter fails yields its error text instead.
func Properties(obj meta.Instance) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for name := range PropertyNames(obj) {
			val, err := Value(obj, name)
			if err != nil {
				val = err.Error()
			}
			if !yield(name, val) {
				return
			}
		}
	}
}

// Get reads the property called name.
func Get(obj meta.Instance, name string) (cty.Value, error) {
	p, err := obj.MetaObject().Lookup(name)
	if err != nil {
		return cty.NilVal, err
	}
	return p.Read(obj)
}

// Value reads the property called name and renders it with Display.
func Value(obj meta.Instance, name string) (string, error) {
	val, err := Get(obj, name)
	if err != nil {
		return "", err
	}
	return Display(val), nil
}

// Set writes val to the property called name, converting it to the
// property's type first.
func Set(obj meta.Instance, name string, val cty.Value) error {
	p, err := obj.MetaObject().Lookup(name)
	if err != nil {
		return err
	}
	return p.Write(obj, val)
}

// SetString writes text to the property called name. The text is converted
// to the property's type, so "42" can be assigned to a number property.
func SetString(obj meta.Instance, name, text string) error {
	p, err := obj.MetaObject().Lookup(name)
	if err != nil {
		return err
	}
	if p.Type.IsCollectionType() {
		return fmt.Errorf("write %q: %w: cannot assign text to %s", name, meta.ErrTypeMismatch, p.Type.FriendlyName())
	}
	return p.Write(obj, cty.StringVal(text))
}
