// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

// Bulwark-audit inspects fault trail files written by lib/audit. It is
// a pipeline building block: scripts can verify a trail's digest chain
// as a guard step, or dump its records for analysis, without decoding
// CBOR themselves.
//
// Exit codes:
//
//	0  trail intact (verify) / records dumped (dump)
//	1  trail broken: a record does not fit the chain
//	2  error (trail unreadable, bad arguments)
//
// Trail files are acquired under a named fileguard policy ("default"
// unless --policy says otherwise), so a symlinked trail path is
// refused unless the policy permits it.
package main
