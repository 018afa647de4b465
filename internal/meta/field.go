// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package meta

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Field builds a read/write property whose value lives in a Go field of
// type V on instances of type T. T is usually a pointer or an interface
// implemented by every class that inherits the property.
//
// The cty type is derived from V, so V must be something gocty understands
// (string, numeric types, bool, slices, maps, structs with cty tags).
func Field[T any, V any](name string, get func(T) V, set func(T, V)) Property {
	p := ReadOnly(name, get)
	if set == nil {
		return p
	}
	p.Set = func(inst any, val cty.Value) error {
		target, err := cast[T](name, inst)
		if err != nil {
			return err
		}
		var v V
		if err := gocty.FromCtyValue(val, &v); err != nil {
			return fmt.Errorf("%w: %v", ErrTypeMismatch, err)
		}
		set(target, v)
		return nil
	}
	return p
}

// ReadOnly builds a property with a getter only.
func ReadOnly[T any, V any](name string, get func(T) V) Property {
	var zero V
	typ, err := gocty.ImpliedType(zero)
	if err != nil {
		// Unsupported Go types leave the descriptor without a type, which the
		// Builder rejects as ErrInvalidProperty.
		typ = cty.NilType
	}

	p := Property{Name: name, Type: typ}
	if get == nil {
		return p
	}
	p.Get = func(inst any) (cty.Value, error) {
		target, err := cast[T](name, inst)
		if err != nil {
			return cty.NilVal, err
		}
		val, err := gocty.ToCtyValue(get(target), typ)
		if err != nil {
			return cty.NilVal, fmt.Errorf("%w: %v", ErrTypeMismatch, err)
		}
		return val, nil
	}
	return p
}

func cast[T any](name string, inst any) (T, error) {
	target, ok := inst.(T)
	if !ok {
		var zero T
		want := fmt.Sprintf("%T", (*T)(nil))[1:]
		return zero, fmt.Errorf("%w: property %q expects %s, got %T", ErrWrongInstance, name, want, inst)
	}
	return target, nil
}
