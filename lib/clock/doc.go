// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source for testability.
//
// Production code accepts a Clock instead of calling time.Now
// directly. In production, [Real] provides the standard library
// behavior. In tests, [Fake] provides a deterministic clock that
// moves only when told to.
//
// # Wiring Pattern
//
// Add a Clock field to structs that stamp times:
//
//	type Sink struct {
//	    clock clock.Clock
//	    // ...
//	}
//
// In production:
//
//	s := &Sink{clock: clock.Real()}
//
// In tests:
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	s.clock = c
//	c.Advance(5 * time.Second)
package clock
