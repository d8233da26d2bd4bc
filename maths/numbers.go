// Package maths provides generic integer helpers used when mapping logical indexes onto fixed size blocks.
package maths

import "golang.org/x/exp/constraints"

// Max returns the largest of the two values given as input.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}

	return b
}

// CeilDiv returns numerator / denominator rounded up, for example the number of blocks of size denominator which are
// required to hold numerator items.
//
// NOTE: Both arguments must be non-negative and the denominator must not be zero.
func CeilDiv[T constraints.Integer](numerator, denominator T) T {
	return (numerator + denominator - 1) / denominator
}

// FloorDiv returns numerator / denominator rounded towards negative infinity.
//
// In Go integer division truncates towards zero which means -1 / 32 is 0, for our purposes (stepping backwards across
// block boundaries) we need -1 / 32 to be -1.
func FloorDiv[T constraints.Signed](numerator, denominator T) T {
	q := numerator / denominator
	if (numerator%denominator != 0) && ((numerator < 0) != (denominator < 0)) {
		q--
	}

	return q
}

// Mod returns numerator % denominator but defined in the Python way.
//
// In Go modulo is defined for negative numbers such that the result is negative. As an example -5 % 3 is -2. For our
// purposes (manipulating indexes) the definition where the result is always non-negative is more useful (i.e. -5 % 3 is
// 1).
func Mod[T constraints.Signed](numerator, denominator T) T {
	m := numerator % denominator
	if m < 0 {
		m += denominator
	}

	return m
}
