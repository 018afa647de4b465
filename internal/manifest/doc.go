// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package manifest reads class declarations written in HCL.
//
// A manifest declares a class, the class it extends and its properties in
// registration order:
//
//	class "TimeMachine" {
//	  extends = "Object"
//
//	  property "name" {
//	    type    = string
//	    default = "DeLorean"
//	  }
//	}
//
// Manifests serve two purposes. A Go class can ship a manifest as its public
// contract, and Validate checks that the compiled property table and the
// defaults of a fresh instance match it. A manifest can also declare a class
// that has no Go code at all; BuildClasses turns such declarations into real
// property tables backed by map-based instances.
package manifest
