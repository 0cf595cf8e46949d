// Copyright 2026 The Stride Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	"fmt"

	"github.com/strideml/stride/internal/parallel"
	"github.com/strideml/stride/tensor"
)

// ReduceInto folds fn along dim of a, writing into out. out's shape equals
// a's shape with dim collapsed to 1, and the caller must pre-fill every
// entry of out's storage with the fold's starting value.
//
// For each output cell the fold visits a's elements along dim in strictly
// ascending order, seeded by the value already present in the cell, so the
// first combination is fn(start, a[..., 0, ...]). fn need not be
// commutative; the ascending order is part of the contract. The outer loop
// over output cells is parallel (each cell is written by one worker); the
// inner fold carries the accumulator and must stay sequential.
//
// dim's extent must be >= 1: with an empty axis no fold step runs and out
// silently retains its starting values.
func (b *Backend[T]) ReduceInto(fn func(T, T) T, out, a tensor.TensorData[T], dim int) error {
	if err := validateOperands(out, a); err != nil {
		return err
	}
	if dim < 0 || dim >= len(a.Shape) {
		return fmt.Errorf("reduce: dimension %d out of range for %dD tensor", dim, len(a.Shape))
	}
	if len(out.Shape) != len(a.Shape) || out.Shape[dim] != 1 {
		return fmt.Errorf("reduce: output shape %v does not collapse dimension %d of %v",
			out.Shape, dim, a.Shape)
	}

	n := out.Shape.NumElements()
	reduceSize := a.Shape[dim]
	reduceStride := a.Strides[dim]

	parallel.ForRange(n, func(start, end int) {
		var buf [tensor.MaxDims]int
		outIndex := buf[:len(out.Shape)]

		for i := start; i < end; i++ {
			tensor.ToIndex(i, out.Shape, outIndex)
			o := tensor.IndexToPosition(outIndex, out.Strides)

			// outIndex[dim] is 0, so this is the position of
			// a[..., 0, ...]; the fold then steps by dim's stride.
			p := tensor.IndexToPosition(outIndex, a.Strides)
			acc := out.Storage[o]
			for j := 0; j < reduceSize; j++ {
				acc = fn(acc, a.Storage[p])
				p += reduceStride
			}
			out.Storage[o] = acc
		}
	}, b.cfg)
	return nil
}

// Reduce folds fn along dim of a, starting from start, and returns a newly
// allocated result with dim collapsed to size 1. dim may be negative to
// count from the last dimension.
func (b *Backend[T]) Reduce(fn func(T, T) T, start T, a tensor.TensorData[T], dim int) (tensor.TensorData[T], error) {
	if dim < 0 {
		dim = len(a.Shape) + dim
	}
	if dim < 0 || dim >= len(a.Shape) {
		return tensor.TensorData[T]{}, fmt.Errorf("reduce: dimension %d out of range for %dD tensor",
			dim, len(a.Shape))
	}

	outShape := a.Shape.Clone()
	outShape[dim] = 1
	out, err := tensor.Full(outShape, start)
	if err != nil {
		return tensor.TensorData[T]{}, err
	}
	if err := b.ReduceInto(fn, out, a, dim); err != nil {
		return tensor.TensorData[T]{}, err
	}
	return out, nil
}
