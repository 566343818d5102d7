// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

package cstr

import (
	"bytes"
	"testing"

	"github.com/bulwark-project/bulwark/lib/fault"
)

func TestMemMove(t *testing.T) {
	t.Parallel()
	dst := make([]byte, 8)
	if err := MemMove(dst, []byte{1, 2, 3}); err != nil {
		t.Fatalf("MemMove failed: %v", err)
	}
	if !bytes.Equal(dst[:3], []byte{1, 2, 3}) {
		t.Errorf("destination = %v", dst)
	}
}

func TestMemMove_CapacityEnforced(t *testing.T) {
	t.Parallel()
	dst := filled(4)
	before := bytes.Clone(dst)

	err := MemMove(dst, []byte("12345"))
	if fault.CodeOf(err) != fault.CodeOutOfBounds {
		t.Fatalf("MemMove = %v, want out_of_bounds", err)
	}
	if !bytes.Equal(dst, before) {
		t.Errorf("failed MemMove modified the destination: %v", dst)
	}
}

func TestMemMove_OverlapIsReportedNotFailed(t *testing.T) {
	var reported []fault.Code
	fault.SetLogger(func(code fault.Code, site, message string) {
		reported = append(reported, code)
	})
	t.Cleanup(func() { fault.SetLogger(nil) })

	var recorder fault.Recorder
	buffer := []byte("abcdefgh")
	// Shift the first five bytes right by two: windows overlap.
	if err := recorder.Observe(MemMove(buffer[2:7], buffer[0:5])); err != nil {
		t.Fatalf("overlapping MemMove failed: %v", err)
	}
	if string(buffer) != "ababcdeh" {
		t.Errorf("buffer = %q, want \"ababcdeh\"", buffer)
	}

	if len(reported) != 1 || reported[0] != fault.CodeOverlap {
		t.Errorf("reports = %v, want a single overlap report", reported)
	}
	// The note goes to the hook only: the operation succeeded, so a
	// recorder watching it has nothing to record.
	if recorder.Last() != fault.CodeOK {
		t.Errorf("recorder = %v after an overlap note, want ok", recorder.Last())
	}
}

func TestMemMove_DisjointWindowsNotReported(t *testing.T) {
	var reported []fault.Code
	fault.SetLogger(func(code fault.Code, site, message string) {
		reported = append(reported, code)
	})
	t.Cleanup(func() { fault.SetLogger(nil) })

	buffer := []byte("abcdefgh")
	if err := MemMove(buffer[4:], buffer[:4]); err != nil {
		t.Fatalf("MemMove failed: %v", err)
	}
	if string(buffer) != "abcdabcd" {
		t.Errorf("buffer = %q, want \"abcdabcd\"", buffer)
	}
	if len(reported) != 0 {
		t.Errorf("disjoint copy produced reports: %v", reported)
	}
}

func TestMemMove_NilArguments(t *testing.T) {
	t.Parallel()
	if err := MemMove(nil, []byte{1}); fault.CodeOf(err) != fault.CodeNilPointer {
		t.Errorf("nil destination = %v, want nil_pointer", err)
	}
	if err := MemMove(make([]byte, 4), nil); fault.CodeOf(err) != fault.CodeNilPointer {
		t.Errorf("nil source = %v, want nil_pointer", err)
	}
}
