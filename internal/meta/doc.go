// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package meta provides the per-class property registry used for run-time
// introspection.
//
// # Core Concepts
//
//   - Property: a named, typed attribute of a class, described by a getter and
//     an optional setter. Accessors are closures that capture typed field
//     access, so reading a property by name never needs the reflect package.
//
//   - MetaObject: the ordered, immutable table of properties declared by one
//     class, plus a link to its superclass table. Indexes run over the whole
//     chain, inherited properties first.
//
//   - Builder: the only way to create a MetaObject. It rejects empty names,
//     missing getters and names that already exist anywhere in the chain.
//
// A MetaObject is built once, when its class is first described, and is
// read-only for the rest of the process. It holds no per-instance data, so any
// number of goroutines may read it without locking.
package meta
