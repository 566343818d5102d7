// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

// Package fault is the shared diagnostics layer for the defensive
// primitives. Every fallible primitive in this module reports failures
// through this package: a stable [Code] classifying the failure, an
// error value ([Fault]) carrying the code plus the call site, and an
// optional process-wide [Logger] hook that observes every report the
// instant it happens.
//
// Error construction and reporting are one act: [New], [Newf], and
// [Wrap] build the error, capture the reporting call site, and invoke
// the installed hook before returning. A call that succeeds reports
// nothing. [Note] reports an informational condition (such as an
// overlapping copy) without producing an error.
//
// Callers that want the classic "what failed last?" query hold a
// [Recorder] and funnel results through [Recorder.Observe]. A Recorder
// is owned by a single goroutine; concurrent callers each own their
// own, so one goroutine's failures are never visible in another's
// recorder. For one-off inspection, [CodeOf] extracts the code from
// any error chain.
//
// No exported function in this package panics. Misuse of a primitive
// is answered with a coded error, never with unwinding.
package fault
