// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

package fault

import (
	"errors"
	"fmt"
)

// Code classifies why a primitive failed. The zero value is [CodeOK].
// Codes are stable: they are written to audit trails and compared by
// callers, so existing values never change meaning.
type Code uint8

const (
	// CodeOK reports success. No error ever carries it.
	CodeOK Code = iota

	// CodeNilPointer reports a required reference that was absent:
	// a nil destination, source, or handle.
	CodeNilPointer

	// CodeOutOfBounds reports an access or write that would leave the
	// destination's capacity: oversized copies, bad indices, results
	// that cannot fit.
	CodeOutOfBounds

	// CodeOverflow reports integer or size arithmetic that would wrap:
	// checked addition past the type limit, narrowing a value that does
	// not fit, offsetting a reference past its window.
	CodeOverflow

	// CodeInvalidParam reports an argument that is malformed on its
	// own terms: a zero allocation size, an empty search pattern, a
	// division by zero, an empty path.
	CodeInvalidParam

	// CodeAllocFailed reports that the system refused a memory
	// request.
	CodeAllocFailed

	// CodeFileAccess reports a filesystem acquisition failure: refused
	// symlink, non-regular file, or a failing open/stat/close.
	CodeFileAccess

	// CodeOverlap reports overlapping source and destination windows.
	// It is informational: the operation still succeeds, the condition
	// is surfaced only through the logger hook, and no error or
	// recorder ever carries it.
	CodeOverlap

	// CodeUnknown classifies errors that did not originate in this
	// module.
	CodeUnknown
)

var codeNames = [...]string{
	CodeOK:           "ok",
	CodeNilPointer:   "nil_pointer",
	CodeOutOfBounds:  "out_of_bounds",
	CodeOverflow:     "overflow",
	CodeInvalidParam: "invalid_param",
	CodeAllocFailed:  "alloc_failed",
	CodeFileAccess:   "file_access",
	CodeOverlap:      "overlap",
	CodeUnknown:      "unknown",
}

// String returns the stable snake_case name of the code.
func (c Code) String() string {
	if int(c) < len(codeNames) {
		return codeNames[c]
	}
	return fmt.Sprintf("code(%d)", uint8(c))
}

// CodeOf reports the classification of err. It returns [CodeOK] for a
// nil error, the carried code for any [Fault] in the chain, and
// [CodeUnknown] for errors that did not come from this module.
func CodeOf(err error) Code {
	if err == nil {
		return CodeOK
	}
	var f *Fault
	if errors.As(err, &f) {
		return f.Code
	}
	return CodeUnknown
}
