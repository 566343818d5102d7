// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

// Package checked provides integer arithmetic that refuses to wrap.
//
// Every operation validates its operands against the type's range
// before computing, so a result is either exact or absent — no
// saturation, no truncation-by-masking, and no inspection of wrapped
// results after the fact. [Add], [Sub], [Mul], and [Div] work over any
// built-in integer type through the [Integer] constraint; [Cast]
// converts between integer types only when the value is exactly
// representable in the destination.
//
// Failures carry lib/fault codes: range violations report overflow,
// division by zero reports invalid_param. The result accompanying an
// error is always the type's zero value.
package checked
