// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

package cstr

import "github.com/bulwark-project/bulwark/lib/fault"

// Element is the constraint satisfied by the two character widths the
// package operates on: bytes for C-string content, runes for wide
// content. The zero value of either is the terminator.
type Element interface {
	~byte | ~rune
}

// Length returns the index of the first terminator in s, scanning at
// most limit elements and never past the window. A sequence with no
// terminator within the bound is treated as hostile input and reports
// out_of_bounds, not a silently truncated length.
func Length[E Element](s []E, limit int) (int, error) {
	if s == nil {
		return 0, fault.New(fault.CodeNilPointer, "cstr.length", "sequence is nil")
	}
	if limit < 0 {
		return 0, fault.Newf(fault.CodeInvalidParam, "cstr.length", "negative scan limit %d", limit)
	}
	length, ok := contentLength(s, limit)
	if !ok {
		return 0, fault.Newf(fault.CodeOutOfBounds, "cstr.length", "no terminator within %d elements", min(limit, len(s)))
	}
	return length, nil
}

// contentLength scans s for a terminator, stopping at limit or the
// window end, whichever comes first. It reports nothing; callers that
// treat a missing terminator as a failure construct their own fault.
func contentLength[E Element](s []E, limit int) (int, bool) {
	bound := min(limit, len(s))
	for index := 0; index < bound; index++ {
		if s[index] == 0 {
			return index, true
		}
	}
	return bound, false
}

// sourceLength is contentLength with the window end as the scan
// limit and an unterminated source used in full: the slice end is the
// hard bound a source scan can never escape.
func sourceLength[E Element](s []E) int {
	length, _ := contentLength(s, len(s))
	return length
}
