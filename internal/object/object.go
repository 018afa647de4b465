// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package object provides the root reflected class. Every introspectable
// class embeds Object, inherits its "objectName" property, and takes part in
// explicit parent/child ownership: a parent owns its children, and destroying
// the parent destroys them in insertion order.
//
// Objects are owned by a single goroutine. Only the meta tables are shared.
package object

import (
	"errors"
	"fmt"
	"sync"

	"github.com/eapache/queue"
	"github.com/specialistvlad/metaprop/internal/meta"
)

// ClassName is the name of the root class.
const ClassName = "Object"

var (
	// ErrOwnershipCycle is returned when adopting a child would make an
	// object its own ancestor.
	ErrOwnershipCycle = errors.New("ownership cycle")

	// ErrDestroyed is returned when a destroyed object takes part in an
	// ownership change.
	ErrDestroyed = errors.New("object destroyed")
)

// Holder is implemented by every class that embeds Object. Accessors of
// inherited properties are registered against Holder, so they work on any
// subclass instance.
type Holder interface {
	Base() *Object
}

// noCopy may be embedded into structs which must not be copied after first
// use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Object is the base of all reflected classes. Its zero value is ready to use.
type Object struct {
	noCopy noCopy

	name      string
	parent    *Object
	children  []Holder
	onDestroy []func()
	destroyed bool
}

var metaObject = sync.OnceValue(func() *meta.MetaObject {
	b := meta.NewBuilder(ClassName, nil)
	b.Add(meta.Field("objectName",
		func(h Holder) string { return h.Base().ObjectName() },
		func(h Holder, v string) { h.Base().SetObjectName(v) },
	))
	return b.MustBuild()
})

// Meta returns the property table of the root class.
func Meta() *meta.MetaObject {
	return metaObject()
}

// New returns a named root object.
func New(name string) *Object {
	return &Object{name: name}
}

// MetaObject implements meta.Instance. Subclasses shadow it.
func (o *Object) MetaObject() *meta.MetaObject {
	return Meta()
}

// Base implements Holder.
func (o *Object) Base() *Object {
	return o
}

// ObjectName returns the objectName property.
func (o *Object) ObjectName() string {
	return o.name
}

// SetObjectName sets the objectName property.
func (o *Object) SetObjectName(name string) {
	o.name = name
}

// Parent returns the owner, or nil.
func (o *Object) Parent() *Object {
	return o.parent
}

// Children returns the owned objects in insertion order.
func (o *Object) Children() []Holder {
	out := make([]Holder, len(o.children))
	copy(out, o.children)
	return out
}

// AddChild transfers ownership of child to o, detaching it from any
// previous parent first.
func (o *Object) AddChild(child Holder) error {
	if child == nil || child.Base() == nil {
		return errors.New("add child: child is nil")
	}
	c := child.Base()
	if o.destroyed || c.destroyed {
		return fmt.Errorf("add child %q to %q: %w", c.name, o.name, ErrDestroyed)
	}
	for anc := o; anc != nil; anc = anc.parent {
		if anc == c {
			return fmt.Errorf("add child %q to %q: %w", c.name, o.name, ErrOwnershipCycle)
		}
	}
	if c.parent == o {
		return nil
	}
	if c.parent != nil {
		c.parent.detach(c)
	}
	c.parent = o
	o.children = append(o.children, child)
	return nil
}

// RemoveChild releases ownership of child without destroying it. It reports
// whether child was owned by o.
func (o *Object) RemoveChild(child Holder) bool {
	if child == nil || child.Base().parent != o {
		return false
	}
	o.detach(child.Base())
	child.Base().parent = nil
	return true
}

func (o *Object) detach(c *Object) {
	for i, h := range o.children {
		if h.Base() == c {
			o.children = append(o.children[:i], o.children[i+1:]...)
			return
		}
	}
}

// FindChild searches the ownership tree below o, breadth first, for an
// object named name. Nearer descendants win over deeper ones; siblings are
// visited in insertion order.
func (o *Object) FindChild(name string) (Holder, bool) {
	pending := queue.New()
	for _, h := range o.children {
		pending.Add(h)
	}
	for pending.Length() > 0 {
		h := pending.Remove().(Holder)
		b := h.Base()
		if b.name == name {
			return h, true
		}
		for _, c := range b.children {
			pending.Add(c)
		}
	}
	return nil, false
}

// OnDestroy registers fn to run when o is destroyed.
func (o *Object) OnDestroy(fn func()) {
	o.onDestroy = append(o.onDestroy, fn)
}

// Destroyed reports whether Destroy has run.
func (o *Object) Destroyed() bool {
	return o.destroyed
}

// Destroy destroys all children in insertion order, then runs o's destroy
// hooks and detaches o from its parent. Calling it twice is a no-op.
func (o *Object) Destroy() {
	if o.destroyed {
		return
	}
	o.destroyed = true

	children := o.children
	o.children = nil
	for _, h := range children {
		c := h.Base()
		c.parent = nil
		c.Destroy()
	}

	for _, fn := range o.onDestroy {
		fn()
	}
	o.onDestroy = nil

	if o.parent != nil {
		o.parent.detach(o)
		o.parent = nil
	}
}
