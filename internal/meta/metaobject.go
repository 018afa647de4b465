// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package meta

import "fmt"

// MetaObject is the immutable property table of a single class.
type MetaObject struct {
	className string
	super     *MetaObject
	offset    int
	props     []Property
	index     map[string]int // local position in props
}

// ClassName returns the name the class was built with.
func (m *MetaObject) ClassName() string {
	return m.className
}

// SuperClass returns the parent table, or nil for a root class.
func (m *MetaObject) SuperClass() *MetaObject {
	return m.super
}

// Inherits reports whether the class is className or derives from it.
func (m *MetaObject) Inherits(className string) bool {
	for mo := m; mo != nil; mo = mo.super {
		if mo.className == className {
			return true
		}
	}
	return false
}

// PropertyOffset is the number of properties inherited from superclasses,
// which is also the index of the first property the class declares itself.
func (m *MetaObject) PropertyOffset() int {
	return m.offset
}

// PropertyCount returns the number of properties, inherited ones included.
func (m *MetaObject) PropertyCount() int {
	return m.offset + len(m.props)
}

// Property returns the descriptor at index. Indexes below PropertyOffset
// resolve to inherited properties.
func (m *MetaObject) Property(index int) (Property, error) {
	if index < 0 || index >= m.PropertyCount() {
		return Property{}, fmt.Errorf("%s: index %d of %d: %w", m.className, index, m.PropertyCount(), ErrIndexOutOfRange)
	}
	mo := m
	for index < mo.offset {
		mo = mo.super
	}
	return mo.props[index-mo.offset], nil
}

// IndexOfProperty returns the absolute index of name, or -1.
func (m *MetaObject) IndexOfProperty(name string) int {
	for mo := m; mo != nil; mo = mo.super {
		if i, ok := mo.index[name]; ok {
			return mo.offset + i
		}
	}
	return -1
}

// Lookup returns the descriptor registered under name.
func (m *MetaObject) Lookup(name string) (Property, error) {
	i := m.IndexOfProperty(name)
	if i < 0 {
		return Property{}, fmt.Errorf("%s.%s: %w", m.className, name, ErrPropertyNotFound)
	}
	return m.Property(i)
}

// String implements fmt.Stringer.
func (m *MetaObject) String() string {
	return m.className
}
