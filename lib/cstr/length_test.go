// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

package cstr

import (
	"testing"

	"github.com/bulwark-project/bulwark/lib/fault"
)

func TestLength(t *testing.T) {
	t.Parallel()
	terminated := []byte("hello\x00trailing")

	if got, err := Length(terminated, len(terminated)); err != nil || got != 5 {
		t.Errorf("Length = %d, %v; want 5", got, err)
	}
	// The limit cuts the scan before the window end.
	if got, err := Length(terminated, 6); err != nil || got != 5 {
		t.Errorf("Length with limit 6 = %d, %v; want 5", got, err)
	}
	// A limit landing before the terminator treats the input as
	// unterminated.
	if _, err := Length(terminated, 5); fault.CodeOf(err) != fault.CodeOutOfBounds {
		t.Errorf("Length with limit 5 = %v, want out_of_bounds", err)
	}
}

func TestLength_Unterminated(t *testing.T) {
	t.Parallel()
	if _, err := Length([]byte("no terminator"), 64); fault.CodeOf(err) != fault.CodeOutOfBounds {
		t.Errorf("unterminated sequence = %v, want out_of_bounds", err)
	}
	if _, err := Length([]byte{}, 8); fault.CodeOf(err) != fault.CodeOutOfBounds {
		t.Errorf("empty window = %v, want out_of_bounds", err)
	}
}

func TestLength_BadArguments(t *testing.T) {
	t.Parallel()
	if _, err := Length[byte](nil, 8); fault.CodeOf(err) != fault.CodeNilPointer {
		t.Errorf("nil sequence = %v, want nil_pointer", err)
	}
	if _, err := Length([]byte("x\x00"), -1); fault.CodeOf(err) != fault.CodeInvalidParam {
		t.Errorf("negative limit = %v, want invalid_param", err)
	}
}

func TestLength_Wide(t *testing.T) {
	t.Parallel()
	// Length counts elements, not bytes: four runes of content even
	// though the UTF-8 spelling would be longer.
	wide := []rune{'世', '界', 'よ', 'う', 0, 'x'}
	if got, err := Length(wide, len(wide)); err != nil || got != 4 {
		t.Errorf("Length(wide) = %d, %v; want 4", got, err)
	}
}
