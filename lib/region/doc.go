// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

// Package region provides fixed-capacity byte buffers allocated
// outside the Go heap via mmap(MAP_ANONYMOUS).
//
// A [Region] pairs the memory with its capacity for its whole
// lifetime, so bounded operations never depend on a caller-supplied
// size that could drift from the truth. The garbage collector never
// sees the backing pages and cannot copy or relocate them, which is
// what makes end-of-life zeroing meaningful: after [Region.ReleaseSecure]
// no copy of the contents survives anywhere in the address space.
//
// Constructors:
//
//   - [NewZeroed] -- contents guaranteed all-zero
//   - [NewUninitialized] -- contents unspecified; write before reading
//   - [NewSensitive] -- additionally locked against swap (mlock) and
//     excluded from core dumps (MADV_DONTDUMP); always wiped on release
//
// Release is terminal: a released region's [Region.Bytes] returns nil
// and its capacity reads as zero, so stale handles observe an empty
// region rather than recycled memory. [Region.Release] is idempotent;
// [Region.ReleaseSecure] on an already-released region is an error,
// because the caller asking for a wipe deserves to learn the wipe had
// no buffer to act on.
//
// Failures carry lib/fault codes: invalid sizes report invalid_param,
// sizes that would wrap page rounding report overflow, and refusals
// from the kernel report alloc_failed.
package region
