// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile creates a file named name under dir with the given content
// and mode 0600, failing the test on error. Returns the file's path.
func WriteFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("writing fixture %s: %v", path, err)
	}
	return path
}

// Symlink creates a symbolic link at dir/name pointing to target,
// failing the test on error. Returns the link's path.
func Symlink(t *testing.T, dir, name, target string) string {
	t.Helper()
	link := filepath.Join(dir, name)
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("creating symlink %s -> %s: %v", link, target, err)
	}
	return link
}
