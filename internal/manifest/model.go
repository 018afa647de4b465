// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package manifest

import "github.com/zclconf/go-cty/cty"

// RootClass is the superclass assumed when a manifest omits `extends`.
const RootClass = "Object"

// Class is the parsed form of a `class` block.
type Class struct {
	Name        string
	Extends     string
	Description string
	Properties  []*PropertyDef // declaration order
	FilePath    string
}

// PropertyDef is the parsed form of a `property` block.
type PropertyDef struct {
	Name        string
	Type        cty.Type
	Description string

	// Default is already converted to Type. It is a typed null when the
	// manifest gives no default.
	Default  cty.Value
	ReadOnly bool
}

// Property returns the declaration named name, or nil.
func (c *Class) Property(name string) *PropertyDef {
	for _, p := range c.Properties {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// SuperClass returns Extends, or RootClass when it is empty.
func (c *Class) SuperClass() string {
	if c.Extends == "" {
		return RootClass
	}
	return c.Extends
}
