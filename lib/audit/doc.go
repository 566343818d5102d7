// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

// Package audit persists fault reports as a tamper-evident trail.
//
// A trail is an append-only file of CBOR-encoded records, each
// length-prefixed and chained to its predecessor by a BLAKE3 digest:
// record N carries the digest of record N-1's encoded bytes, and the
// first record carries the all-zero genesis digest. Rewriting,
// removing, or reordering any record breaks every link after it, so
// [Verify] can prove that a trail grew only by appending.
//
// [Sink] appends records. [Sink.Hook] adapts a sink into a
// [fault.Logger], which is how a process turns every primitive failure
// into a durable record:
//
//	sink, err := audit.OpenSink(path, nil)
//	...
//	fault.SetLogger(sink.Hook())
//
// The hook runs synchronously inside the failing call. It must not
// report faults of its own (the logger contract forbids re-entering
// the reporting path), so append failures are counted on
// [Sink.Dropped] instead of surfacing as errors.
//
// [Reader] iterates a trail record by record; [Verify] checks the
// digest chain and sequence numbering; [Dump] renders records for
// humans. The bulwark-audit command wraps these for the command line.
package audit
