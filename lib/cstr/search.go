// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

package cstr

import (
	"bytes"
	"fmt"

	"github.com/bulwark-project/bulwark/lib/checked"
	"github.com/bulwark-project/bulwark/lib/fault"
	"github.com/bulwark-project/bulwark/lib/region"
)

// Find returns the zero-based offset of the first occurrence of
// needle in haystack's content (the window up to its first
// terminator, or the whole window when unterminated). Not finding the
// needle is not a failure: the sentinel result is the window length,
// a position no real match can have. An empty needle or one longer
// than the window reports invalid_param.
func Find(haystack, needle []byte) (int, error) {
	if haystack == nil {
		return 0, fault.New(fault.CodeNilPointer, "cstr.find", "haystack is nil")
	}
	if needle == nil {
		return 0, fault.New(fault.CodeNilPointer, "cstr.find", "needle is nil")
	}
	if len(needle) == 0 {
		return 0, fault.New(fault.CodeInvalidParam, "cstr.find", "needle is empty")
	}
	if len(needle) > len(haystack) {
		return 0, fault.Newf(fault.CodeInvalidParam, "cstr.find", "needle length %d exceeds window length %d", len(needle), len(haystack))
	}
	content := haystack[:sourceLength(haystack)]
	position := bytes.Index(content, needle)
	if position < 0 {
		return len(haystack), nil
	}
	return position, nil
}

// ReplaceAll rewrites buf's content in place, replacing every
// non-overlapping occurrence of oldSub with newSub, and returns the
// new content length. buf must hold terminated content within its
// window. An empty newSub deletes occurrences; an empty oldSub
// reports invalid_param, since a zero-width pattern matches
// everywhere.
//
// The rewrite is two-pass: occurrences are counted first and the
// final length validated against the window before a single byte
// moves, so a result that cannot fit reports out_of_bounds with buf
// untouched. The result is staged in a scratch region sized to the
// window — unequal-length rewrites shifted in place would overlap
// their own reads — then committed back in one pass. The scratch is
// released on every path.
func ReplaceAll(buf, oldSub, newSub []byte) (int, error) {
	if buf == nil {
		return 0, fault.New(fault.CodeNilPointer, "cstr.replace_all", "buffer is nil")
	}
	if oldSub == nil {
		return 0, fault.New(fault.CodeNilPointer, "cstr.replace_all", "old substring is nil")
	}
	if newSub == nil {
		return 0, fault.New(fault.CodeNilPointer, "cstr.replace_all", "new substring is nil")
	}
	if len(oldSub) == 0 {
		return 0, fault.New(fault.CodeInvalidParam, "cstr.replace_all", "old substring is empty")
	}
	contentLen, ok := contentLength(buf, len(buf))
	if !ok {
		return 0, fault.New(fault.CodeOutOfBounds, "cstr.replace_all", "buffer is not terminated within its window")
	}
	content := buf[:contentLen]

	// First pass: count non-overlapping occurrences.
	count := 0
	for searchFrom := 0; ; {
		relative := bytes.Index(content[searchFrom:], oldSub)
		if relative < 0 {
			break
		}
		count++
		searchFrom += relative + len(oldSub)
	}

	growth, err := checked.Mul(count, len(newSub)-len(oldSub))
	if err != nil {
		return 0, fmt.Errorf("cstr.replace_all: sizing: %w", err)
	}
	finalLen, err := checked.Add(contentLen, growth)
	if err != nil {
		return 0, fmt.Errorf("cstr.replace_all: sizing: %w", err)
	}
	if finalLen >= len(buf) {
		return 0, fault.Newf(fault.CodeOutOfBounds, "cstr.replace_all", "result length %d does not fit in window of length %d", finalLen, len(buf))
	}
	if count == 0 {
		return contentLen, nil
	}

	scratch, err := region.NewUninitialized(len(buf))
	if err != nil {
		return 0, fmt.Errorf("cstr.replace_all: scratch allocation: %w", err)
	}
	defer scratch.Release()

	// Second pass: stage literal runs and replacements in the scratch,
	// then commit the complete result in one pass.
	staged := scratch.Bytes()
	stagedLen := 0
	searchFrom := 0
	for {
		relative := bytes.Index(content[searchFrom:], oldSub)
		if relative < 0 {
			break
		}
		match := searchFrom + relative
		stagedLen += copy(staged[stagedLen:], content[searchFrom:match])
		stagedLen += copy(staged[stagedLen:], newSub)
		searchFrom = match + len(oldSub)
	}
	stagedLen += copy(staged[stagedLen:], content[searchFrom:])

	copy(buf, staged[:stagedLen])
	buf[stagedLen] = 0
	return stagedLen, nil
}
