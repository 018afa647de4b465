// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package timemachine provides the demonstration class: an Object with two
// string properties, "name" and "creator", each with a default value.
package timemachine

import (
	_ "embed"
	"sync"

	"github.com/specialistvlad/metaprop/internal/meta"
	"github.com/specialistvlad/metaprop/internal/object"
	"github.com/specialistvlad/metaprop/internal/registry"
)

// ClassName is the registered class name.
const ClassName = "TimeMachine"

// Defaults of a freshly constructed TimeMachine.
const (
	DefaultName    = "DeLorean"
	DefaultCreator = "Dr. Emmett Brown"
)

//go:embed timemachine.hcl
var manifestHCL []byte

// TimeMachine must not be copied after first use; it embeds object.Object,
// which carries a noCopy marker checked by go vet.
type TimeMachine struct {
	object.Object

	name    string
	creator string
}

var metaObject = sync.OnceValue(func() *meta.MetaObject {
	b := meta.NewBuilder(ClassName, object.Meta())
	b.Add(meta.Field("name", (*TimeMachine).Name, (*TimeMachine).SetName))
	b.Add(meta.Field("creator", (*TimeMachine).Creator, (*TimeMachine).SetCreator))
	return b.MustBuild()
})

// Meta returns the property table of TimeMachine.
func Meta() *meta.MetaObject {
	return metaObject()
}

// New returns a TimeMachine holding the default values.
func New() *TimeMachine {
	return &TimeMachine{
		name:    DefaultName,
		creator: DefaultCreator,
	}
}

// MetaObject implements meta.Instance.
func (t *TimeMachine) MetaObject() *meta.MetaObject {
	return Meta()
}

func (t *TimeMachine) Name() string { return t.name }

func (t *TimeMachine) SetName(name string) { t.name = name }

func (t *TimeMachine) Creator() string { return t.creator }

func (t *TimeMachine) SetCreator(creator string) { t.creator = creator }

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the TimeMachine class together with its manifest.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterClass(&registry.Class{
		Meta:         Meta(),
		New:          func() meta.Instance { return New() },
		Manifest:     manifestHCL,
		ManifestName: "timemachine.hcl",
	})
}
