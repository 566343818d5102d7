// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

package checked

import (
	"math"
	"testing"

	"github.com/bulwark-project/bulwark/lib/fault"
)

func TestAdd_Int32(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		a, b     int32
		want     int32
		overflow bool
	}{
		{"small sum", 5, 3, 8, false},
		{"negative operands", -5, -3, -8, false},
		{"maximum is representable", math.MaxInt32 - 1, 1, math.MaxInt32, false},
		{"one past maximum", math.MaxInt32, 1, 0, true},
		{"minimum is representable", math.MinInt32 + 1, -1, math.MinInt32, false},
		{"one past minimum", math.MinInt32, -1, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Add(tt.a, tt.b)
			if tt.overflow {
				if err == nil {
					t.Fatalf("Add(%d, %d) = %d, want overflow", tt.a, tt.b, got)
				}
				if code := fault.CodeOf(err); code != fault.CodeOverflow {
					t.Errorf("code = %v, want overflow", code)
				}
				if got != 0 {
					t.Errorf("failed Add returned %d, want zero value", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Add(%d, %d) failed: %v", tt.a, tt.b, err)
			}
			if got != tt.want {
				t.Errorf("Add(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestAdd_Unsigned(t *testing.T) {
	t.Parallel()
	if got, err := Add(uint8(250), uint8(5)); err != nil || got != 255 {
		t.Errorf("Add(250, 5) = %d, %v; want 255", got, err)
	}
	if _, err := Add(uint8(250), uint8(10)); fault.CodeOf(err) != fault.CodeOverflow {
		t.Errorf("Add(250, 10) = %v, want overflow", err)
	}
	if _, err := Add(uint64(math.MaxUint64), uint64(1)); fault.CodeOf(err) != fault.CodeOverflow {
		t.Errorf("Add(MaxUint64, 1) = %v, want overflow", err)
	}
}

func TestSub(t *testing.T) {
	t.Parallel()
	if got, err := Sub(int32(5), int32(3)); err != nil || got != 2 {
		t.Errorf("Sub(5, 3) = %d, %v; want 2", got, err)
	}
	if _, err := Sub(int32(math.MinInt32), int32(1)); fault.CodeOf(err) != fault.CodeOverflow {
		t.Errorf("Sub(MinInt32, 1) = %v, want overflow", err)
	}
	if _, err := Sub(int32(math.MaxInt32), int32(-1)); fault.CodeOf(err) != fault.CodeOverflow {
		t.Errorf("Sub(MaxInt32, -1) = %v, want overflow", err)
	}
	// Unsigned subtraction overflows on any borrow.
	if _, err := Sub(uint16(3), uint16(5)); fault.CodeOf(err) != fault.CodeOverflow {
		t.Errorf("Sub(3, 5) = %v, want overflow", err)
	}
	if got, err := Sub(uint16(5), uint16(5)); err != nil || got != 0 {
		t.Errorf("Sub(5, 5) = %d, %v; want 0", got, err)
	}
}

func TestMul(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		a, b     int64
		want     int64
		overflow bool
	}{
		{"small product", 6, 7, 42, false},
		{"zero operand", 0, math.MaxInt64, 0, false},
		{"negative times positive", -4, 5, -20, false},
		{"negative times negative", -4, -5, 20, false},
		{"positive overflow", math.MaxInt64/2 + 1, 2, 0, true},
		{"negative overflow", math.MinInt64 / 2, 3, 0, true},
		{"minimum times minus one", math.MinInt64, -1, 0, true},
		{"minus one times minimum", -1, math.MinInt64, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Mul(tt.a, tt.b)
			if tt.overflow {
				if fault.CodeOf(err) != fault.CodeOverflow {
					t.Fatalf("Mul(%d, %d) = %d, %v; want overflow", tt.a, tt.b, got, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("Mul(%d, %d) = %d, %v; want %d", tt.a, tt.b, got, err, tt.want)
			}
		})
	}

	if got, err := Mul(uint8(15), uint8(16)); err != nil || got != 240 {
		t.Errorf("Mul(15, 16) = %d, %v; want 240", got, err)
	}
	if _, err := Mul(uint8(16), uint8(16)); fault.CodeOf(err) != fault.CodeOverflow {
		t.Errorf("Mul(16, 16) = %v, want overflow", err)
	}
}

func TestDiv(t *testing.T) {
	t.Parallel()
	if got, err := Div(int32(10), int32(2)); err != nil || got != 5 {
		t.Errorf("Div(10, 2) = %d, %v; want 5", got, err)
	}
	if got, err := Div(int32(7), int32(-1)); err != nil || got != -7 {
		t.Errorf("Div(7, -1) = %d, %v; want -7", got, err)
	}
	if _, err := Div(int32(10), int32(0)); fault.CodeOf(err) != fault.CodeInvalidParam {
		t.Errorf("Div(10, 0) = %v, want invalid_param", err)
	}
	if _, err := Div(uint32(10), uint32(0)); fault.CodeOf(err) != fault.CodeInvalidParam {
		t.Errorf("Div(10, 0) unsigned = %v, want invalid_param", err)
	}
	// The one signed quotient that does not fit.
	if _, err := Div(int32(math.MinInt32), int32(-1)); fault.CodeOf(err) != fault.CodeOverflow {
		t.Errorf("Div(MinInt32, -1) = %v, want overflow", err)
	}
	if _, err := Div(int64(math.MinInt64), int64(-1)); fault.CodeOf(err) != fault.CodeOverflow {
		t.Errorf("Div(MinInt64, -1) = %v, want overflow", err)
	}
	// The unsigned all-ones divisor is an ordinary divisor.
	if got, err := Div(uint8(255), uint8(255)); err != nil || got != 1 {
		t.Errorf("Div(255, 255) = %d, %v; want 1", got, err)
	}
}

func TestCast_Narrowing(t *testing.T) {
	t.Parallel()
	// The exact boundary converts; one past it fails.
	if got, err := Cast[int32](int64(math.MaxInt32)); err != nil || got != math.MaxInt32 {
		t.Errorf("Cast(MaxInt32) = %d, %v", got, err)
	}
	if _, err := Cast[int32](int64(math.MaxInt32) + 1); fault.CodeOf(err) != fault.CodeOverflow {
		t.Errorf("Cast(MaxInt32+1) = %v, want overflow", err)
	}
	if got, err := Cast[int32](int64(math.MinInt32)); err != nil || got != math.MinInt32 {
		t.Errorf("Cast(MinInt32) = %d, %v", got, err)
	}
	if _, err := Cast[int32](int64(math.MinInt32) - 1); fault.CodeOf(err) != fault.CodeOverflow {
		t.Errorf("Cast(MinInt32-1) = %v, want overflow", err)
	}
}

func TestCast_SignChanges(t *testing.T) {
	t.Parallel()
	// Negative values never fit in unsigned destinations, even when
	// the bit pattern would round-trip.
	if _, err := Cast[uint32](int32(-1)); fault.CodeOf(err) != fault.CodeOverflow {
		t.Errorf("Cast[uint32](-1) = %v, want overflow", err)
	}
	// Large unsigned values never fit in same-width signed types.
	if _, err := Cast[int32](uint32(math.MaxUint32)); fault.CodeOf(err) != fault.CodeOverflow {
		t.Errorf("Cast[int32](MaxUint32) = %v, want overflow", err)
	}
	// In-range cross-sign conversions are exact.
	if got, err := Cast[int16](uint8(255)); err != nil || got != 255 {
		t.Errorf("Cast[int16](255) = %d, %v", got, err)
	}
	if got, err := Cast[uint8](int64(255)); err != nil || got != 255 {
		t.Errorf("Cast[uint8](255) = %d, %v", got, err)
	}
	if _, err := Cast[uint8](int64(256)); fault.CodeOf(err) != fault.CodeOverflow {
		t.Errorf("Cast[uint8](256) = %v, want overflow", err)
	}
}

func TestCast_Widening(t *testing.T) {
	t.Parallel()
	if got, err := Cast[int64](int8(-128)); err != nil || got != -128 {
		t.Errorf("Cast[int64](-128) = %d, %v", got, err)
	}
	if got, err := Cast[uint64](uint8(200)); err != nil || got != 200 {
		t.Errorf("Cast[uint64](200) = %d, %v", got, err)
	}
}
