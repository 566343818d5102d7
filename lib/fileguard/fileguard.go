// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

package fileguard

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/bulwark-project/bulwark/lib/fault"
)

// File is an acquired file handle. Its descriptor passed the identity
// checks the [Options] demanded at open time. Close is idempotent;
// every other method on a closed handle reports invalid_param.
type File struct {
	mu      sync.Mutex
	file    *os.File
	options Options
	closed  bool
}

// Open acquires path in a single transition with no intermediate
// observable state:
//
//  1. The path is opened directly; when the options refuse symlinks,
//     the no-follow flag makes a symbolic link final component fail
//     here, inside the open itself.
//  2. The filesystem identity is queried on the already-open
//     descriptor, never by re-stating the path.
//  3. A non-regular file is refused when the options require
//     regularity, and its descriptor closed.
//
// flag takes the standard os.O_* values; opts nil means
// [DefaultOptions]. Every failure after the descriptor exists closes
// it before returning.
func Open(path string, flag int, opts *Options) (*File, error) {
	if path == "" {
		return nil, fault.New(fault.CodeInvalidParam, "fileguard.open", "path is empty")
	}
	options := DefaultOptions()
	if opts != nil {
		options = *opts
	}

	openFlags := flag | unix.O_CLOEXEC
	if !options.FollowSymlinks {
		openFlags |= unix.O_NOFOLLOW
	}

	fd, err := unix.Open(path, openFlags, uint32(options.CreateMode.Perm()))
	if err != nil {
		return nil, fault.Wrap(fault.CodeFileAccess, "fileguard.open", fmt.Sprintf("open %s", path), err)
	}

	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		unix.Close(fd)
		return nil, fault.Wrap(fault.CodeFileAccess, "fileguard.open", fmt.Sprintf("fstat %s", path), err)
	}

	if options.RequireRegularFile && stat.Mode&unix.S_IFMT != unix.S_IFREG {
		unix.Close(fd)
		return nil, fault.Newf(fault.CodeFileAccess, "fileguard.open", "%s is not a regular file (type %#o)", path, stat.Mode&unix.S_IFMT)
	}

	return &File{
		file:    os.NewFile(uintptr(fd), path),
		options: options,
	}, nil
}

// Name returns the path the handle was opened with.
func (f *File) Name() string {
	return f.file.Name()
}

// Read reads from the handle.
func (f *File) Read(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return 0, fault.New(fault.CodeInvalidParam, "fileguard.read", "file already closed")
	}
	return f.file.Read(p)
}

// Write writes to the handle.
func (f *File) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return 0, fault.New(fault.CodeInvalidParam, "fileguard.write", "file already closed")
	}
	return f.file.Write(p)
}

// Sync flushes the handle to stable storage.
func (f *File) Sync() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return fault.New(fault.CodeInvalidParam, "fileguard.sync", "file already closed")
	}
	return f.file.Sync()
}

// Stat queries the handle's identity through the descriptor.
func (f *File) Stat() (os.FileInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil, fault.New(fault.CodeInvalidParam, "fileguard.stat", "file already closed")
	}
	return f.file.Stat()
}

// Close releases the descriptor. Closing an already-closed handle is
// a safe no-op returning nil, so cleanup paths can close
// unconditionally.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}
	f.closed = true

	if err := f.file.Close(); err != nil {
		return fault.Wrap(fault.CodeFileAccess, "fileguard.close", "close "+f.file.Name(), err)
	}
	return nil
}

// Remove unlinks the file and closes the handle. When the open-time
// options set SecureDelete, the contents are first overwritten in
// place through the descriptor (see shred passes); overwriting needs
// a writable handle. On overwrite failure the handle is closed and
// the file is left in place: a file that could not be scrubbed is not
// silently unlinked.
func (f *File) Remove() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return fault.New(fault.CodeInvalidParam, "fileguard.remove", "file already closed")
	}
	name := f.file.Name()

	if f.options.SecureDelete {
		if err := overwrite(f.file, shredPasses); err != nil {
			f.closed = true
			f.file.Close()
			return fault.Wrap(fault.CodeFileAccess, "fileguard.remove", "overwrite "+name, err)
		}
	}

	f.closed = true
	if err := f.file.Close(); err != nil {
		return fault.Wrap(fault.CodeFileAccess, "fileguard.remove", "close "+name, err)
	}
	if err := os.Remove(name); err != nil {
		return fault.Wrap(fault.CodeFileAccess, "fileguard.remove", "unlink "+name, err)
	}
	return nil
}
