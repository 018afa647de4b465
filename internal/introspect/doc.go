// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package introspect enumerates and accesses the properties of an instance
// by name at run time, using only the instance's meta.MetaObject.
//
// Every function here is a synchronous lookup followed by a call through the
// registered accessor. Nothing is cached, so a sequence returned by
// PropertyNames can be ranged over any number of times.
package introspect
