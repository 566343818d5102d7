// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

package cstr

import "github.com/bulwark-project/bulwark/lib/fault"

// Copy copies src's content into dst and terminates it. Content is
// src up to its first terminator; a source with no terminator is used
// in full. The copy requires room for the content plus the terminator
// inside dst's window; otherwise it reports out_of_bounds and dst is
// untouched.
func Copy[E Element](dst, src []E) error {
	if dst == nil {
		return fault.New(fault.CodeNilPointer, "cstr.copy", "destination is nil")
	}
	if src == nil {
		return fault.New(fault.CodeNilPointer, "cstr.copy", "source is nil")
	}
	srcLen := sourceLength(src)
	if srcLen >= len(dst) {
		return fault.Newf(fault.CodeOutOfBounds, "cstr.copy", "source length %d does not fit in destination capacity %d", srcLen, len(dst))
	}
	copy(dst, src[:srcLen])
	dst[srcLen] = 0
	return nil
}

// Concat appends src's content after dst's existing content and
// terminates the result. dst must already hold terminated content
// within its window. The combined length must leave room for the
// terminator; otherwise it reports out_of_bounds and dst is untouched.
func Concat[E Element](dst, src []E) error {
	if dst == nil {
		return fault.New(fault.CodeNilPointer, "cstr.concat", "destination is nil")
	}
	if src == nil {
		return fault.New(fault.CodeNilPointer, "cstr.concat", "source is nil")
	}
	dstLen, ok := contentLength(dst, len(dst))
	if !ok {
		return fault.New(fault.CodeOutOfBounds, "cstr.concat", "destination is not terminated within its window")
	}
	srcLen := sourceLength(src)
	if dstLen+srcLen >= len(dst) {
		return fault.Newf(fault.CodeOutOfBounds, "cstr.concat", "combined length %d does not fit in destination capacity %d", dstLen+srcLen, len(dst))
	}
	copy(dst[dstLen:], src[:srcLen])
	dst[dstLen+srcLen] = 0
	return nil
}

// CopyN is [Copy] taking at most n source elements: the effective
// content is src up to its first terminator or n elements, whichever
// is shorter. Truncation at n is the caller's explicit request, not a
// failure; the capacity guarantee is unchanged.
func CopyN[E Element](dst, src []E, n int) error {
	if dst == nil {
		return fault.New(fault.CodeNilPointer, "cstr.copy_n", "destination is nil")
	}
	if src == nil {
		return fault.New(fault.CodeNilPointer, "cstr.copy_n", "source is nil")
	}
	if n < 0 {
		return fault.Newf(fault.CodeInvalidParam, "cstr.copy_n", "negative element count %d", n)
	}
	srcLen := min(sourceLength(src), n)
	if srcLen >= len(dst) {
		return fault.Newf(fault.CodeOutOfBounds, "cstr.copy_n", "source length %d does not fit in destination capacity %d", srcLen, len(dst))
	}
	copy(dst, src[:srcLen])
	dst[srcLen] = 0
	return nil
}

// ConcatN is [Concat] taking at most n source elements.
func ConcatN[E Element](dst, src []E, n int) error {
	if dst == nil {
		return fault.New(fault.CodeNilPointer, "cstr.concat_n", "destination is nil")
	}
	if src == nil {
		return fault.New(fault.CodeNilPointer, "cstr.concat_n", "source is nil")
	}
	if n < 0 {
		return fault.Newf(fault.CodeInvalidParam, "cstr.concat_n", "negative element count %d", n)
	}
	dstLen, ok := contentLength(dst, len(dst))
	if !ok {
		return fault.New(fault.CodeOutOfBounds, "cstr.concat_n", "destination is not terminated within its window")
	}
	srcLen := min(sourceLength(src), n)
	if dstLen+srcLen >= len(dst) {
		return fault.Newf(fault.CodeOutOfBounds, "cstr.concat_n", "combined length %d does not fit in destination capacity %d", dstLen+srcLen, len(dst))
	}
	copy(dst[dstLen:], src[:srcLen])
	dst[dstLen+srcLen] = 0
	return nil
}
