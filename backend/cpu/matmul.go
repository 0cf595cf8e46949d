// Copyright 2026 The Stride Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	"fmt"

	"github.com/strideml/stride/internal/parallel"
	"github.com/strideml/stride/tensor"
)

// MatMulInto computes the batched matrix product of two rank-3 tensors,
// writing into out:
//
//	out[n, i, j] = Σ_k a[n, i, k] * b[n, k, j]
//
// The batch dimension broadcasts without copying: an operand whose batch
// dimension is 1 gets an effective batch stride of 0, so its single slice
// is reused for every n. Returns tensor.ErrDimensionMismatch if the inner
// dimensions disagree and tensor.ErrShapeMismatch if the batch dimensions
// cannot broadcast.
//
// The (n, i) loop is parallel; each (n, i, j) cell sums its k products in
// a private accumulator (innermost loop sequential, stepping both operands
// by their k strides) and stores once after the full sweep.
func (b *Backend[T]) MatMulInto(out, ta, tb tensor.TensorData[T]) error {
	if err := validateOperands(out, ta, tb); err != nil {
		return err
	}
	if len(ta.Shape) != 3 || len(tb.Shape) != 3 || len(out.Shape) != 3 {
		return fmt.Errorf("matmul: operands must be rank-3, got %dD x %dD -> %dD",
			len(ta.Shape), len(tb.Shape), len(out.Shape))
	}
	if ta.Shape[2] != tb.Shape[1] {
		return fmt.Errorf("%w: %v x %v (%d vs %d)",
			tensor.ErrDimensionMismatch, ta.Shape, tb.Shape, ta.Shape[2], tb.Shape[1])
	}
	if ta.Shape[0] != tb.Shape[0] && ta.Shape[0] != 1 && tb.Shape[0] != 1 {
		return fmt.Errorf("%w: batch dimensions %d vs %d",
			tensor.ErrShapeMismatch, ta.Shape[0], tb.Shape[0])
	}
	batch := max(ta.Shape[0], tb.Shape[0])
	if out.Shape[0] != batch || out.Shape[1] != ta.Shape[1] || out.Shape[2] != tb.Shape[2] {
		return fmt.Errorf("matmul: output shape %v does not match %v x %v",
			out.Shape, ta.Shape, tb.Shape)
	}

	aBatchStride := ta.Strides[0]
	if ta.Shape[0] == 1 {
		aBatchStride = 0
	}
	bBatchStride := tb.Strides[0]
	if tb.Shape[0] == 1 {
		bBatchStride = 0
	}

	rows := out.Shape[1]
	cols := out.Shape[2]
	inner := ta.Shape[2]

	parallel.ForBatch(batch, rows, func(n, i int) {
		for j := 0; j < cols; j++ {
			aPos := n*aBatchStride + i*ta.Strides[1]
			bPos := n*bBatchStride + j*tb.Strides[2]

			var sum T
			for k := 0; k < inner; k++ {
				sum += ta.Storage[aPos] * tb.Storage[bPos]
				aPos += ta.Strides[2]
				bPos += tb.Strides[1]
			}

			out.Storage[n*out.Strides[0]+i*out.Strides[1]+j*out.Strides[2]] = sum
		}
	}, b.cfg)
	return nil
}

// MatMul computes the batched matrix product of a and b and returns a
// newly allocated result. Rank-2 operands are promoted to rank-3 with a
// synthetic batch dimension of size 1 (a zero-copy view); when both inputs
// were rank-2 the result is squeezed back to rank-2.
func (b *Backend[T]) MatMul(ta, tb tensor.TensorData[T]) (tensor.TensorData[T], error) {
	both2D := len(ta.Shape) == 2 && len(tb.Shape) == 2

	var err error
	if ta, err = promoteToBatched(ta); err != nil {
		return tensor.TensorData[T]{}, err
	}
	if tb, err = promoteToBatched(tb); err != nil {
		return tensor.TensorData[T]{}, err
	}

	if ta.Shape[2] != tb.Shape[1] {
		return tensor.TensorData[T]{}, fmt.Errorf("%w: %v x %v (%d vs %d)",
			tensor.ErrDimensionMismatch, ta.Shape, tb.Shape, ta.Shape[2], tb.Shape[1])
	}
	batchShape, _, err := tensor.BroadcastShapes(ta.Shape[:1], tb.Shape[:1])
	if err != nil {
		return tensor.TensorData[T]{}, err
	}

	out, err := tensor.New[T](tensor.Shape{batchShape[0], ta.Shape[1], tb.Shape[2]})
	if err != nil {
		return tensor.TensorData[T]{}, err
	}
	if err := b.MatMulInto(out, ta, tb); err != nil {
		return tensor.TensorData[T]{}, err
	}

	if both2D {
		// Drop the synthetic batch dimension again.
		out = tensor.TensorData[T]{
			Storage: out.Storage,
			Shape:   tensor.Shape{out.Shape[1], out.Shape[2]},
			Strides: tensor.Strides{out.Strides[1], out.Strides[2]},
		}
	}
	return out, nil
}

// promoteToBatched views a rank-2 tensor as rank-3 with batch size 1.
// The batch stride is 0, which is valid for a size-1 dimension and lets
// the kernel broadcast the slice across any batch size.
func promoteToBatched[T tensor.Float](t tensor.TensorData[T]) (tensor.TensorData[T], error) {
	switch len(t.Shape) {
	case 3:
		return t, nil
	case 2:
		return tensor.TensorData[T]{
			Storage: t.Storage,
			Shape:   tensor.Shape{1, t.Shape[0], t.Shape[1]},
			Strides: tensor.Strides{0, t.Strides[0], t.Strides[1]},
		}, nil
	default:
		return tensor.TensorData[T]{}, fmt.Errorf("%w: matmul operand must be rank-2 or rank-3, got %v",
			tensor.ErrDimensionMismatch, t.Shape)
	}
}
