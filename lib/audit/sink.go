// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

package audit

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/bulwark-project/bulwark/lib/clock"
	"github.com/bulwark-project/bulwark/lib/fault"
	"github.com/bulwark-project/bulwark/lib/fileguard"
)

// Sink appends records to a trail file. Appends are serialized by an
// internal mutex, so one sink may be shared across goroutines; the
// chain digest and sequence number advance atomically with each write.
type Sink struct {
	mu      sync.Mutex
	file    *fileguard.File
	clock   clock.Clock
	seq     uint64
	prev    Digest
	closed  bool
	dropped atomic.Uint64
}

// OpenSink opens (or creates) the trail at path and positions the
// chain after the last existing record. The file is acquired through
// fileguard, so a symlinked trail path is refused under the default
// options; opts nil means [fileguard.DefaultOptions].
//
// Opening scans the whole trail to recover the tail digest and
// sequence number. A malformed tail fails the open rather than
// appending onto damage; digest linkage is deliberately not checked
// here, that is [Verify]'s job.
func OpenSink(path string, opts *fileguard.Options) (*Sink, error) {
	file, err := fileguard.Open(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, opts)
	if err != nil {
		return nil, fmt.Errorf("audit.open_sink: %w", err)
	}

	// The handle reads from offset zero; O_APPEND only pins writes to
	// the end. One pass over the existing records recovers the tail.
	reader := NewReader(file)
	var seq uint64
	var prev Digest
	for {
		record, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			file.Close()
			return nil, fault.Wrap(fault.CodeFileAccess, "audit.open_sink", "trail tail scan "+path, err)
		}
		seq = record.Seq
		prev = digestOf(reader.Frame())
	}

	return &Sink{file: file, clock: clock.Real(), seq: seq, prev: prev}, nil
}

// Append writes one record carrying the given classification, call
// site, and message. The record is framed and written in a single
// write so concurrent appenders never interleave partial frames.
//
// Errors from this method are plain errors, never fault reports: a
// sink is commonly installed as the process fault hook, and reporting
// a fault from inside the append path would re-enter the hook.
func (s *Sink) Append(code fault.Code, site, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errors.New("audit: sink is closed")
	}

	record := Record{
		Seq:     s.seq + 1,
		Time:    s.clock.Now().UnixNano(),
		Code:    code,
		Site:    site,
		Message: message,
		Prev:    s.prev[:],
	}
	frame, err := encodeFrame(&record)
	if err != nil {
		return fmt.Errorf("audit.append: %w", err)
	}
	if _, err := s.file.Write(frame); err != nil {
		return fmt.Errorf("audit.append: write: %w", err)
	}

	s.seq = record.Seq
	s.prev = digestOf(frame[frameHeaderSize:])
	return nil
}

// Hook adapts the sink into a [fault.Logger]. The logger contract
// forbids reporting from inside the hook, so append failures are
// counted on [Sink.Dropped] and otherwise swallowed.
func (s *Sink) Hook() fault.Logger {
	return func(code fault.Code, site, message string) {
		if err := s.Append(code, site, message); err != nil {
			s.dropped.Add(1)
		}
	}
}

// Dropped reports how many hook deliveries failed to append.
func (s *Sink) Dropped() uint64 {
	return s.dropped.Load()
}

// Seq returns the sequence number of the last record written, zero
// for an empty trail.
func (s *Sink) Seq() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq
}

// Tip returns the digest of the last record written, the genesis
// digest for an empty trail.
func (s *Sink) Tip() Digest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prev
}

// Close flushes nothing (every append is already written through) and
// releases the trail handle. Close is idempotent. A process that
// installed [Sink.Hook] must remove the hook before closing, or
// subsequent reports count as dropped.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.file.Close(); err != nil {
		return fmt.Errorf("audit.close: %w", err)
	}
	return nil
}
