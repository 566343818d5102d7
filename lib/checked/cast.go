// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

package checked

import "github.com/bulwark-project/bulwark/lib/fault"

// Cast converts value to the destination integer type, or reports
// overflow if the exact value is not representable there. The value is
// never truncated, masked, or saturated: the boundary value converts,
// one past it fails.
func Cast[To Integer, From Integer](value From) (To, error) {
	var fromZero From
	var toZero To
	converted := To(value)
	if From(converted) != value || (converted < toZero) != (value < fromZero) {
		return toZero, fault.Newf(fault.CodeOverflow, "checked.cast", "value %d does not fit in the destination type", value)
	}
	return converted, nil
}
