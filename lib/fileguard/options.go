// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

package fileguard

import "os"

// Options configures a single [Open] call. The value is consulted at
// acquisition time and by [File.Remove]; it does not persist anywhere
// else.
type Options struct {
	// FollowSymlinks permits the final path component to be a
	// symbolic link. When false, the open itself refuses the link
	// with the platform's no-follow semantics.
	FollowSymlinks bool

	// RequireRegularFile refuses handles to anything but regular
	// files: no directories, devices, sockets, or FIFOs.
	RequireRegularFile bool

	// CreateMode is the permission mode applied when the open
	// creates the file.
	CreateMode os.FileMode

	// SecureDelete makes [File.Remove] overwrite the file's contents
	// through the open descriptor before unlinking. Requires a
	// writable handle.
	SecureDelete bool
}

// DefaultOptions returns the default acquisition contract: symlinks
// refused, regular files required, creation mode 0644, plain removal.
func DefaultOptions() Options {
	return Options{
		FollowSymlinks:     false,
		RequireRegularFile: true,
		CreateMode:         0o644,
		SecureDelete:       false,
	}
}
