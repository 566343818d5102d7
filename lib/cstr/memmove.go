// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

package cstr

import (
	"unsafe"

	"github.com/bulwark-project/bulwark/lib/fault"
)

// MemMove copies all of src to the start of dst's window. The source
// must fit: len(src) > len(dst) reports out_of_bounds with dst
// untouched. The copy has move semantics and is correct regardless of
// how the windows overlap; overlap itself is surfaced through the
// logger hook as an informational overlap report, never a failure.
func MemMove(dst, src []byte) error {
	if dst == nil {
		return fault.New(fault.CodeNilPointer, "cstr.memmove", "destination is nil")
	}
	if src == nil {
		return fault.New(fault.CodeNilPointer, "cstr.memmove", "source is nil")
	}
	if len(src) > len(dst) {
		return fault.Newf(fault.CodeOutOfBounds, "cstr.memmove", "source size %d exceeds destination capacity %d", len(src), len(dst))
	}
	if anyOverlap(dst[:len(src)], src) {
		fault.Note(fault.CodeOverlap, "cstr.memmove", "source and destination windows overlap")
	}
	copy(dst, src)
	return nil
}

// anyOverlap reports whether the memory ranges of x and y intersect.
// Same interval test the standard library uses for its crypto alias
// checks; the pointers are compared, never dereferenced.
func anyOverlap(x, y []byte) bool {
	return len(x) > 0 && len(y) > 0 &&
		uintptr(unsafe.Pointer(&x[0])) <= uintptr(unsafe.Pointer(&y[len(y)-1])) &&
		uintptr(unsafe.Pointer(&y[0])) <= uintptr(unsafe.Pointer(&x[len(x)-1]))
}
