// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

package span

import "github.com/bulwark-project/bulwark/lib/fault"

// ReadAt returns array[index] after validating the reference and the
// bound. The result accompanying an error is the element type's zero
// value.
func ReadAt[T any](array []T, index int) (T, error) {
	var zero T
	if array == nil {
		return zero, fault.New(fault.CodeNilPointer, "span.read_at", "array is nil")
	}
	if index < 0 || index >= len(array) {
		return zero, fault.Newf(fault.CodeOutOfBounds, "span.read_at", "index %d outside array of length %d", index, len(array))
	}
	return array[index], nil
}

// WriteAt stores value at array[index] after validating the reference
// and the bound. On failure the array is untouched; the check precedes
// the single store, so no partial effect is possible.
func WriteAt[T any](array []T, index int, value T) error {
	if array == nil {
		return fault.New(fault.CodeNilPointer, "span.write_at", "array is nil")
	}
	if index < 0 || index >= len(array) {
		return fault.Newf(fault.CodeOutOfBounds, "span.write_at", "index %d outside array of length %d", index, len(array))
	}
	array[index] = value
	return nil
}

// Offset derives the sub-window of base starting delta elements in.
// The base window's length is the authoritative bound for any derived
// window: a delta outside [0, len(base)] reports overflow. A delta of
// exactly len(base) yields a valid empty window one past the last
// element.
func Offset[T any](base []T, delta int) ([]T, error) {
	if base == nil {
		return nil, fault.New(fault.CodeNilPointer, "span.offset", "base is nil")
	}
	if delta < 0 || delta > len(base) {
		return nil, fault.Newf(fault.CodeOverflow, "span.offset", "delta %d outside window of length %d", delta, len(base))
	}
	return base[delta:], nil
}
