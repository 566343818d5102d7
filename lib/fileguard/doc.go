// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

// Package fileguard acquires files without a window between checking
// and using them.
//
// The classic unsafe sequence is stat-then-open: the path is checked,
// the checker looks away, and the path is swapped for a symlink or a
// device node before the open. [Open] closes that window by never
// validating a path it has not already opened: the open itself
// refuses symlinks (O_NOFOLLOW, unless the options allow following),
// the identity check runs on the already-open descriptor (fstat),
// and a descriptor that fails validation is closed before the error
// returns. No failure path leaks a descriptor; no success path
// returns a handle to a non-regular file when the options require
// regularity.
//
// [Options] is the per-open contract: symlink policy, regularity
// requirement, creation mode, and whether [File.Remove] overwrites
// contents before unlinking. Named option profiles can be loaded from
// YAML through [PolicyLoader], including a built-in set; policy files
// are themselves acquired with this package's own discipline.
//
// Acquisition failures carry lib/fault codes (file_access for
// anything the filesystem refuses, invalid_param for misuse such as
// an empty path or a closed handle). The one blocking operation is
// the open call itself, which may wait on filesystem I/O.
package fileguard
