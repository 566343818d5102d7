// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

// Package cstr provides bounded operations over NUL-terminated
// content held in fixed-capacity windows.
//
// Every destination is a slice whose length IS the capacity: the
// window the caller passes is the authoritative bound, never a
// separate size parameter that could drift from the allocation and
// never a terminator found by unbounded scanning. Operations validate
// the full required size before writing anything, so on any failure
// the destination is byte-for-byte unchanged — there are no partial
// writes and no unterminated results.
//
// [Length], [Copy], [Concat], [CopyN], and [ConcatN] are generic over
// the two character widths ([Element]): instantiated at []byte they
// are the classic C-string operations, at []rune the wide-character
// operations with the same guarantees counted per element. [Find] and
// [ReplaceAll] search byte content; ReplaceAll stages its result in a
// scratch region so unequal-length rewrites never overlap their own
// reads. [MemMove] copies raw bytes with move semantics, surfacing
// overlapping windows as an informational report rather than a
// failure.
//
// Failures carry lib/fault codes. Absent references report
// nil_pointer, capacity violations report out_of_bounds, malformed
// arguments (an empty search pattern, a negative count) report
// invalid_param.
package cstr
