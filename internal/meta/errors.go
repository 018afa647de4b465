// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package meta

import "errors"

var (
	// ErrDuplicateProperty is returned when a class registers a name that is
	// already declared by the class or one of its superclasses.
	ErrDuplicateProperty = errors.New("duplicate property")

	// ErrIndexOutOfRange is returned by MetaObject.Property for an index
	// outside [0, PropertyCount()).
	ErrIndexOutOfRange = errors.New("property index out of range")

	// ErrPropertyNotFound is returned when a name is not registered for a class.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrInvalidProperty is returned for malformed descriptors.
	ErrInvalidProperty = errors.New("invalid property")

	// ErrReadOnly is returned when writing a property that has no setter.
	ErrReadOnly = errors.New("property is read-only")

	// ErrTypeMismatch is returned when a value cannot be converted to the
	// property's declared type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrWrongInstance is returned when an accessor is invoked with an
	// instance of a type it was not registered for.
	ErrWrongInstance = errors.New("wrong instance type")
)
