// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Clock abstracts the time source for testability. Production code
// injects [Real]; tests inject [Fake] with deterministic control.
//
// Every production function that stamps a time should read it from a
// Clock parameter (or a struct field holding one) instead of calling
// time.Now directly.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}
