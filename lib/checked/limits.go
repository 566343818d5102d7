// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

package checked

import "unsafe"

// Signed is the constraint satisfied by the built-in signed integer
// types and types derived from them.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the constraint satisfied by the built-in unsigned
// integer types and types derived from them.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is the constraint satisfied by any built-in integer type.
type Integer interface {
	Signed | Unsigned
}

// limitsOf returns the smallest and largest values representable in T.
func limitsOf[T Integer]() (minValue, maxValue T) {
	var zero T
	allOnes := ^zero
	if allOnes > zero {
		// Unsigned: all ones is the maximum.
		return zero, allOnes
	}
	// Signed: the minimum is the sign bit alone.
	width := uint(unsafe.Sizeof(zero) * 8)
	minValue = allOnes << (width - 1)
	maxValue = ^minValue
	return minValue, maxValue
}
