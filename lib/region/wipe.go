// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

package region

import "github.com/awnumar/memguard"

// Wipe zeroes every byte of b in place. The write is performed through
// memguard, which guarantees the compiler cannot elide the stores the
// way it may with a plain loop ahead of a release.
func Wipe(b []byte) {
	memguard.WipeBytes(b)
}
