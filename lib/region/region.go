// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

package region

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/bulwark-project/bulwark/lib/fault"
)

// Region is a fixed-capacity byte buffer backed by an anonymous
// private mmap. The capacity is set at construction and travels with
// the value; it never changes.
//
// A Region must not be copied after creation. Methods are safe for
// concurrent use, but the byte slice returned by Bytes is a direct
// view of the mapping and carries no locking of its own.
type Region struct {
	mu        sync.Mutex
	data      []byte
	sensitive bool
	released  bool
}

// NewZeroed allocates a region of the given size with every byte
// guaranteed zero.
func NewZeroed(size int) (*Region, error) {
	return newRegion("region.new_zeroed", size, false)
}

// NewUninitialized allocates a region of the given size with
// unspecified contents. Callers must write a range before reading it.
// A fresh anonymous mapping happens to deliver zero pages today, but
// that is not part of the contract.
func NewUninitialized(size int) (*Region, error) {
	return newRegion("region.new_uninitialized", size, false)
}

// NewSensitive allocates a region for material that must not reach
// disk: the pages are locked into physical RAM (mlock) and excluded
// from core dumps (MADV_DONTDUMP). Every release path wipes the
// contents, whether the caller uses Release or ReleaseSecure.
func NewSensitive(size int) (*Region, error) {
	return newRegion("region.new_sensitive", size, true)
}

func newRegion(op string, size int, sensitive bool) (*Region, error) {
	if size <= 0 {
		return nil, fault.Newf(fault.CodeInvalidParam, op, "size must be positive, got %d", size)
	}
	if size > math.MaxInt-unix.Getpagesize() {
		return nil, fault.Newf(fault.CodeOverflow, op, "size %d leaves no room for page rounding", size)
	}

	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fault.Wrap(fault.CodeAllocFailed, op, fmt.Sprintf("mmap %d bytes", size), err)
	}

	if sensitive {
		// Lock the memory so the contents cannot be swapped to disk.
		if err := unix.Mlock(data); err != nil {
			unix.Munmap(data)
			return nil, fault.Wrap(fault.CodeAllocFailed, op, fmt.Sprintf("mlock %d bytes", size), err)
		}
		// Exclude from core dumps. Not supported on every kernel, and
		// a sensitive region without the exclusion is not acceptable.
		if err := unix.Madvise(data, unix.MADV_DONTDUMP); err != nil {
			unix.Munlock(data)
			unix.Munmap(data)
			return nil, fault.Wrap(fault.CodeAllocFailed, op, "madvise(MADV_DONTDUMP)", err)
		}
	}

	return &Region{data: data, sensitive: sensitive}, nil
}

// Bytes returns the full-capacity window into the region. The slice
// points directly at the mapping; do not hold it past release. Once
// the region is released, Bytes returns nil.
func (r *Region) Bytes() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.released {
		return nil
	}
	return r.data
}

// Cap returns the region's capacity in bytes, or zero once released.
func (r *Region) Cap() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.data)
}

// Released reports whether the region has been released.
func (r *Region) Released() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.released
}

// Release unmaps the region. Releasing an already-released region is
// a safe no-op returning nil, so cleanup paths can release
// unconditionally. Sensitive regions are wiped first.
func (r *Region) Release() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.released {
		return nil
	}
	return r.release(r.sensitive)
}

// ReleaseSecure wipes the full capacity and then unmaps the region.
// Unlike Release, calling it on an already-released region reports
// invalid_param: the caller asked for a wipe that had nothing to act
// on.
func (r *Region) ReleaseSecure() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.released {
		return fault.New(fault.CodeInvalidParam, "region.release_secure", "region already released")
	}
	return r.release(true)
}

// release tears down the mapping. Callers hold r.mu and have checked
// r.released.
func (r *Region) release(wipe bool) error {
	r.released = true

	if wipe {
		Wipe(r.data)
	}

	// Unlock and unmap. The first failure is reported, but teardown
	// continues: the mapping disappears with the process regardless.
	var firstError error
	if r.sensitive {
		if err := unix.Munlock(r.data); err != nil && firstError == nil {
			firstError = fmt.Errorf("region: munlock: %w", err)
		}
	}
	if err := unix.Munmap(r.data); err != nil && firstError == nil {
		firstError = fmt.Errorf("region: munmap: %w", err)
	}

	r.data = nil
	return firstError
}
