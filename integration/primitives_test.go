// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

package integration_test

import (
	"bytes"
	"testing"

	"github.com/bulwark-project/bulwark/lib/checked"
	"github.com/bulwark-project/bulwark/lib/cstr"
	"github.com/bulwark-project/bulwark/lib/fault"
	"github.com/bulwark-project/bulwark/lib/region"
	"github.com/bulwark-project/bulwark/lib/span"
)

// TestGreetingPipeline exercises the primitive layers together the way
// a caller builds up a message: allocate a region, copy a greeting into
// it, append, search, and rewrite in place — observing every failure
// classification through a recorder along the way.
func TestGreetingPipeline(t *testing.T) {
	var recorder fault.Recorder

	buffer, err := region.NewZeroed(50)
	if err != nil {
		t.Fatalf("allocating working region: %v", err)
	}
	defer buffer.Release()
	window := buffer.Bytes()

	if err := recorder.Observe(cstr.Copy(window, []byte("Hello, World!"))); err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
	length, err := cstr.Length(window, len(window))
	if err != nil {
		t.Fatalf("Length failed: %v", err)
	}
	if length != 13 {
		t.Errorf("content length = %d, want 13", length)
	}

	if err := recorder.Observe(cstr.Concat(window, []byte(" How are you?"))); err != nil {
		t.Fatalf("Concat failed: %v", err)
	}
	length, err = cstr.Length(window, len(window))
	if err != nil {
		t.Fatalf("Length after Concat failed: %v", err)
	}
	if length != 26 {
		t.Errorf("content length after Concat = %d, want 26", length)
	}

	position, err := cstr.Find(window[:length], []byte("World"))
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if position != 7 {
		t.Errorf("Find(World) = %d, want 7", position)
	}

	newLength, err := cstr.ReplaceAll(window, []byte("World"), []byte("Everyone"))
	if err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}
	if newLength != 29 {
		t.Errorf("ReplaceAll length = %d, want 29", newLength)
	}
	if got := string(window[:newLength]); got != "Hello, Everyone! How are you?" {
		t.Errorf("final content = %q", got)
	}
	if window[newLength] != 0 {
		t.Error("rewritten content is not terminated")
	}

	// Nothing so far should have touched the recorder.
	if recorder.Last() != fault.CodeOK {
		t.Errorf("recorder saw %v during the happy path", recorder.Last())
	}

	// Indexed access over the final content.
	first, err := span.ReadAt(window, 0)
	if err != nil {
		t.Fatalf("ReadAt failed: %v", err)
	}
	if first != 'H' {
		t.Errorf("ReadAt(0) = %q, want 'H'", first)
	}

	// A failing read classifies and lands in the recorder; the bytes
	// stay as they were.
	snapshot := bytes.Clone(window)
	_, readErr := span.ReadAt(window, len(window))
	if recorder.Observe(readErr) == nil {
		t.Fatal("expected out-of-window read to fail")
	}
	if recorder.Last() != fault.CodeOutOfBounds {
		t.Errorf("recorder = %v after failed read, want %v", recorder.Last(), fault.CodeOutOfBounds)
	}
	if !bytes.Equal(window, snapshot) {
		t.Error("failed read disturbed the buffer")
	}
}

// TestWidePipeline runs the same shape over rune windows: the string
// operations are generic, so wide strings go through identical code
// with per-element (not per-byte) accounting.
func TestWidePipeline(t *testing.T) {
	window := make([]rune, 50)

	if err := cstr.Copy(window, []rune("Hello, Wide World!")); err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
	if err := cstr.Concat(window, []rune(" How are you?")); err != nil {
		t.Fatalf("Concat failed: %v", err)
	}

	length, err := cstr.Length(window, len(window))
	if err != nil {
		t.Fatalf("Length failed: %v", err)
	}
	want := len([]rune("Hello, Wide World! How are you?"))
	if length != want {
		t.Errorf("content length = %d, want %d", length, want)
	}
	if got := string(window[:length]); got != "Hello, Wide World! How are you?" {
		t.Errorf("content = %q", got)
	}
}

// TestArithmeticGuardsSizing mirrors the way the string layer sizes
// rewrites: grown lengths go through checked arithmetic, and a sizing
// overflow surfaces as a classified failure instead of a wrapped
// result.
func TestArithmeticGuardsSizing(t *testing.T) {
	var recorder fault.Recorder

	elements, err := checked.Mul(int64(1)<<40, int64(1)<<20)
	if err != nil {
		t.Fatalf("Mul within range failed: %v", err)
	}
	if elements != int64(1)<<60 {
		t.Errorf("Mul = %d, want %d", elements, int64(1)<<60)
	}

	_, mulErr := checked.Mul(elements, 1<<20)
	if recorder.Observe(mulErr) == nil {
		t.Fatal("expected sizing overflow")
	}
	if recorder.Last() != fault.CodeOverflow {
		t.Errorf("recorder = %v, want %v", recorder.Last(), fault.CodeOverflow)
	}

	// A cast that narrows the overflowing dimension fails the same
	// way; the value never silently truncates.
	if _, err := checked.Cast[int32](elements); err == nil {
		t.Fatal("expected narrowing cast to fail")
	}
}
