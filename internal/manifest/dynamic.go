// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package manifest

import (
	"context"
	"fmt"
	"maps"

	"github.com/specialistvlad/metaprop/internal/ctxlog"
	"github.com/specialistvlad/metaprop/internal/meta"
	"github.com/specialistvlad/metaprop/internal/object"
	"github.com/zclconf/go-cty/cty"
)

// Instance is an object of a class declared only in a manifest. Property
// values live in a map keyed by property name; names are unique across the
// class chain, so one map serves every level.
type Instance struct {
	object.Object

	meta   *meta.MetaObject
	values map[string]cty.Value
}

// MetaObject implements meta.Instance.
func (i *Instance) MetaObject() *meta.MetaObject {
	return i.meta
}

// DynamicClass is a manifest class turned into a property table.
type DynamicClass struct {
	Meta     *meta.MetaObject
	Manifest *Class

	defaults map[string]cty.Value // whole chain
}

// New returns an instance holding the declared defaults.
func (c *DynamicClass) New() meta.Instance {
	return &Instance{meta: c.Meta, values: maps.Clone(c.defaults)}
}

// Lookup resolves a superclass name that is not declared in the manifests
// being built.
type Lookup func(className string) (*meta.MetaObject, bool)

// BuildClasses turns manifest classes into property tables, parents first.
// A manifest class may extend the root Object class or another manifest
// class; compiled classes cannot back map-based instances.
func BuildClasses(ctx context.Context, classes []*Class, lookup Lookup) ([]*DynamicClass, error) {
	logger := ctxlog.FromContext(ctx)

	byName := make(map[string]*Class, len(classes))
	for _, cls := range classes {
		if prev, exists := byName[cls.Name]; exists {
			return nil, fmt.Errorf("class '%s' is declared in both %s and %s", cls.Name, prev.FilePath, cls.FilePath)
		}
		if _, exists := lookup(cls.Name); exists {
			return nil, fmt.Errorf("class '%s' in %s is already registered", cls.Name, cls.FilePath)
		}
		byName[cls.Name] = cls
	}

	b := &classBuilder{
		byName:   byName,
		lookup:   lookup,
		built:    make(map[string]*DynamicClass, len(classes)),
		visiting: make(map[string]bool),
	}

	out := make([]*DynamicClass, 0, len(classes))
	for _, cls := range classes {
		dc, err := b.build(cls.Name)
		if err != nil {
			return nil, err
		}
		out = append(out, dc)
	}
	logger.Debug("Built manifest classes.", "count", len(out))
	return out, nil
}

type classBuilder struct {
	byName   map[string]*Class
	lookup   Lookup
	built    map[string]*DynamicClass
	visiting map[string]bool
}

func (b *classBuilder) build(name string) (*DynamicClass, error) {
	if dc, ok := b.built[name]; ok {
		return dc, nil
	}
	if b.visiting[name] {
		return nil, fmt.Errorf("class '%s': inheritance cycle", name)
	}
	b.visiting[name] = true
	defer delete(b.visiting, name)

	cls := b.byName[name]
	superName := cls.SuperClass()

	var super *meta.MetaObject
	defaults := make(map[string]cty.Value)
	if _, declared := b.byName[superName]; declared {
		parent, err := b.build(superName)
		if err != nil {
			return nil, err
		}
		super = parent.Meta
		maps.Copy(defaults, parent.defaults)
	} else {
		mo, ok := b.lookup(superName)
		if !ok {
			return nil, fmt.Errorf("class '%s' in %s extends unknown class '%s'", cls.Name, cls.FilePath, superName)
		}
		if mo.ClassName() != object.ClassName {
			return nil, fmt.Errorf("class '%s' in %s extends compiled class '%s'; manifest classes may only extend '%s' or other manifest classes",
				cls.Name, cls.FilePath, superName, object.ClassName)
		}
		super = mo
	}

	builder := meta.NewBuilder(cls.Name, super)
	for _, def := range cls.Properties {
		var set meta.SetterFunc
		if !def.ReadOnly {
			set = setValue(def.Name)
		}
		// Errors are collected by the builder and reported by Build.
		_ = builder.Register(def.Name, def.Type, getValue(def.Name), set)
		defaults[def.Name] = def.Default
	}
	mo, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("class '%s' in %s: %w", cls.Name, cls.FilePath, err)
	}

	dc := &DynamicClass{Meta: mo, Manifest: cls, defaults: defaults}
	b.built[name] = dc
	return dc, nil
}

func getValue(name string) meta.GetterFunc {
	return func(inst any) (cty.Value, error) {
		i, ok := inst.(*Instance)
		if !ok {
			return cty.NilVal, fmt.Errorf("%w: property %q expects *manifest.Instance, got %T", meta.ErrWrongInstance, name, inst)
		}
		return i.values[name], nil
	}
}

func setValue(name string) meta.SetterFunc {
	return func(inst any, val cty.Value) error {
		i, ok := inst.(*Instance)
		if !ok {
			return fmt.Errorf("%w: property %q expects *manifest.Instance, got %T", meta.ErrWrongInstance, name, inst)
		}
		i.values[name] = val
		return nil
	}
}
