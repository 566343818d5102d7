// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

// Package span provides bounds-checked element access and window
// derivation over slices of any element type.
//
// A slice already carries its own capacity, so these helpers treat the
// slice length as the authoritative bound and turn every violation
// into a coded error instead of a runtime panic: [ReadAt] and
// [WriteAt] guard single-element access, [Offset] derives a
// sub-window. A derived window can never reference past the end of
// the window it came from — the pointer-arithmetic wrap that raw
// base-plus-delta code must check for cannot be expressed here, so
// the check collapses to the capacity bound.
//
// Failures carry lib/fault codes: absent references report
// nil_pointer, bad indices report out_of_bounds, and out-of-window
// deltas report overflow. Failed writes leave the array untouched.
package span
