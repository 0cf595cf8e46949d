// Copyright 2026 The Stride Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ops provides the standard scalar functions applied elementwise by
// the compute kernels. All functions are pure; the kernels require that of
// any function they are handed.
package ops

import (
	"math"

	"github.com/strideml/stride/tensor"
)

// Id returns x unchanged.
func Id[T tensor.Float](x T) T { return x }

// Neg returns -x.
func Neg[T tensor.Float](x T) T { return -x }

// Inv returns 1/x.
func Inv[T tensor.Float](x T) T { return 1 / x }

// Add returns a + b.
func Add[T tensor.Float](a, b T) T { return a + b }

// Sub returns a - b.
func Sub[T tensor.Float](a, b T) T { return a - b }

// Mul returns a * b.
func Mul[T tensor.Float](a, b T) T { return a * b }

// Div returns a / b.
func Div[T tensor.Float](a, b T) T { return a / b }

// Maximum returns the larger of a and b.
func Maximum[T tensor.Float](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// LT returns 1 if a < b, else 0.
func LT[T tensor.Float](a, b T) T {
	if a < b {
		return 1
	}
	return 0
}

// EQ returns 1 if a == b, else 0.
func EQ[T tensor.Float](a, b T) T {
	if a == b {
		return 1
	}
	return 0
}

// IsClose returns 1 if a and b are within 1e-2 of each other, else 0.
func IsClose[T tensor.Float](a, b T) T {
	d := a - b
	if d < 0 {
		d = -d
	}
	if d < 1e-2 {
		return 1
	}
	return 0
}

// ReLU returns max(x, 0).
func ReLU[T tensor.Float](x T) T {
	if x > 0 {
		return x
	}
	return 0
}

// Sigmoid returns 1/(1+exp(-x)), computed in the numerically stable form
// exp(x)/(1+exp(x)) for negative x.
func Sigmoid[T tensor.Float](x T) T {
	if x >= 0 {
		return T(1.0 / (1.0 + math.Exp(-float64(x))))
	}
	e := math.Exp(float64(x))
	return T(e / (1.0 + e))
}

// Exp returns e**x.
func Exp[T tensor.Float](x T) T {
	return T(math.Exp(float64(x)))
}

// Log returns the natural logarithm of x.
func Log[T tensor.Float](x T) T {
	return T(math.Log(float64(x)))
}
