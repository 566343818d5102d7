// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

package checked

import "github.com/bulwark-project/bulwark/lib/fault"

// Add returns a + b, or overflow if the exact sum is not representable
// in T. The operands are range-checked before the addition; the sum is
// never computed and then inspected for wrapping.
func Add[T Integer](a, b T) (T, error) {
	var zero T
	minValue, maxValue := limitsOf[T]()
	if b > zero && a > maxValue-b {
		return zero, fault.Newf(fault.CodeOverflow, "checked.add", "%d + %d exceeds the type maximum", a, b)
	}
	if b < zero && a < minValue-b {
		return zero, fault.Newf(fault.CodeOverflow, "checked.add", "%d + %d exceeds the type minimum", a, b)
	}
	return a + b, nil
}

// Sub returns a - b, or overflow if the exact difference is not
// representable in T. For unsigned types any borrow is overflow.
func Sub[T Integer](a, b T) (T, error) {
	var zero T
	minValue, maxValue := limitsOf[T]()
	if b > zero && a < minValue+b {
		return zero, fault.Newf(fault.CodeOverflow, "checked.sub", "%d - %d exceeds the type minimum", a, b)
	}
	if b < zero && a > maxValue+b {
		return zero, fault.Newf(fault.CodeOverflow, "checked.sub", "%d - %d exceeds the type maximum", a, b)
	}
	return a - b, nil
}

// Mul returns a * b, or overflow if the exact product is not
// representable in T. Each operand-sign combination is checked against
// the corresponding range limit by division before multiplying.
func Mul[T Integer](a, b T) (T, error) {
	var zero T
	if a == zero || b == zero {
		return zero, nil
	}
	minValue, maxValue := limitsOf[T]()
	var overflow bool
	switch {
	case a > zero && b > zero:
		overflow = a > maxValue/b
	case a > zero && b < zero:
		overflow = b < minValue/a
	case a < zero && b > zero:
		overflow = a < minValue/b
	default:
		overflow = b < maxValue/a
	}
	if overflow {
		return zero, fault.Newf(fault.CodeOverflow, "checked.mul", "%d * %d exceeds the type range", a, b)
	}
	return a * b, nil
}

// Div returns a / b. Division by zero reports invalid_param. For
// signed types, dividing the minimum value by -1 reports overflow:
// the true quotient is one past the type maximum.
func Div[T Integer](a, b T) (T, error) {
	var zero T
	if b == zero {
		return zero, fault.New(fault.CodeInvalidParam, "checked.div", "division by zero")
	}
	minValue, _ := limitsOf[T]()
	negativeOne := ^zero
	if negativeOne < zero && a == minValue && b == negativeOne {
		return zero, fault.Newf(fault.CodeOverflow, "checked.div", "%d / -1 exceeds the type maximum", a)
	}
	return a / b, nil
}
