// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package scale implements the quadrupling function behind the double_input
// C export, split into pure arithmetic and an evaluator that reports each
// call through a diagnostic sink.
package scale

import "math"

// Factor is the multiplier applied by Quadruple.
const Factor = 4

// Quadruple returns x*4 using two's-complement wrapping: values outside
// [MinInt32/4, MaxInt32/4] wrap, e.g. Quadruple(math.MaxInt32) == -4.
func Quadruple(x int32) int32 {
	return x * Factor
}

// Overflows reports whether Quadruple(x) wrapped.
func Overflows(x int32) bool {
	return x > math.MaxInt32/Factor || x < math.MinInt32/Factor
}
