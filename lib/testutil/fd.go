// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"os"
	"testing"
)

// OpenDescriptors returns the number of file descriptors currently open
// in this process, read from /proc/self/fd. The descriptor opened for
// the read itself is excluded, so two calls with no opens or closes in
// between return the same count.
func OpenDescriptors(t *testing.T) int {
	t.Helper()
	entries, err := os.ReadDir("/proc/self/fd")
	if err != nil {
		t.Fatalf("reading /proc/self/fd: %v", err)
	}
	return len(entries) - 1
}
