// Copyright 2026 The Stride Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	"math"

	"github.com/strideml/stride/ops"
	"github.com/strideml/stride/tensor"
)

// Add performs elementwise addition with broadcasting.
func (b *Backend[T]) Add(x, y tensor.TensorData[T]) (tensor.TensorData[T], error) {
	return b.Zip(ops.Add[T], x, y)
}

// Sub performs elementwise subtraction with broadcasting.
func (b *Backend[T]) Sub(x, y tensor.TensorData[T]) (tensor.TensorData[T], error) {
	return b.Zip(ops.Sub[T], x, y)
}

// Mul performs elementwise multiplication with broadcasting.
func (b *Backend[T]) Mul(x, y tensor.TensorData[T]) (tensor.TensorData[T], error) {
	return b.Zip(ops.Mul[T], x, y)
}

// Div performs elementwise division with broadcasting.
func (b *Backend[T]) Div(x, y tensor.TensorData[T]) (tensor.TensorData[T], error) {
	return b.Zip(ops.Div[T], x, y)
}

// Neg computes elementwise negation: -x.
func (b *Backend[T]) Neg(x tensor.TensorData[T]) (tensor.TensorData[T], error) {
	return b.Map(ops.Neg[T], x)
}

// Exp computes elementwise exponential: exp(x).
func (b *Backend[T]) Exp(x tensor.TensorData[T]) (tensor.TensorData[T], error) {
	return b.Map(ops.Exp[T], x)
}

// Log computes elementwise natural logarithm: ln(x).
func (b *Backend[T]) Log(x tensor.TensorData[T]) (tensor.TensorData[T], error) {
	return b.Map(ops.Log[T], x)
}

// ReLU computes elementwise max(x, 0).
func (b *Backend[T]) ReLU(x tensor.TensorData[T]) (tensor.TensorData[T], error) {
	return b.Map(ops.ReLU[T], x)
}

// Sigmoid computes elementwise 1/(1+exp(-x)).
func (b *Backend[T]) Sigmoid(x tensor.TensorData[T]) (tensor.TensorData[T], error) {
	return b.Map(ops.Sigmoid[T], x)
}

// Sum adds x's elements along dim, which may be negative to count from the
// last dimension. The result keeps dim with size 1.
func (b *Backend[T]) Sum(x tensor.TensorData[T], dim int) (tensor.TensorData[T], error) {
	return b.Reduce(ops.Add[T], 0, x, dim)
}

// Max takes the largest element along dim, seeded with -Inf.
func (b *Backend[T]) Max(x tensor.TensorData[T], dim int) (tensor.TensorData[T], error) {
	return b.Reduce(ops.Maximum[T], T(math.Inf(-1)), x, dim)
}

// Mean averages x's elements along dim: Sum scaled by 1/extent.
func (b *Backend[T]) Mean(x tensor.TensorData[T], dim int) (tensor.TensorData[T], error) {
	sum, err := b.Sum(x, dim)
	if err != nil {
		return tensor.TensorData[T]{}, err
	}
	if dim < 0 {
		dim = len(x.Shape) + dim
	}
	inv := 1 / T(x.Shape[dim])
	if err := b.MapInto(func(v T) T { return v * inv }, sum, sum); err != nil {
		return tensor.TensorData[T]{}, err
	}
	return sum, nil
}
