// Copyright 2026 The Stride Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	"github.com/strideml/stride/internal/parallel"
	"github.com/strideml/stride/tensor"
)

// ZipInto applies fn elementwise across a and b, writing into out. The
// caller guarantees out's shape is the broadcast of a's and b's shapes and
// supplies out's storage.
//
// Fast path: when both operands' strides equal out's strides and the two
// operand shapes are equal, no broadcasting is actually occurring and all
// three tensors are walked at the same flat positions.
func (b *Backend[T]) ZipInto(fn func(T, T) T, out, ta, tb tensor.TensorData[T]) error {
	if err := validateOperands(out, ta, tb); err != nil {
		return err
	}

	n := out.Shape.NumElements()

	if ta.Strides.Equal(out.Strides) && tb.Strides.Equal(out.Strides) && ta.Shape.Equal(tb.Shape) {
		parallel.ForRange(n, func(start, end int) {
			for i := start; i < end; i++ {
				out.Storage[i] = fn(ta.Storage[i], tb.Storage[i])
			}
		}, b.cfg)
		return nil
	}

	parallel.ForRange(n, func(start, end int) {
		var outBuf, aBuf, bBuf [tensor.MaxDims]int
		outIndex := outBuf[:len(out.Shape)]
		aIndex := aBuf[:len(ta.Shape)]
		bIndex := bBuf[:len(tb.Shape)]

		for i := start; i < end; i++ {
			tensor.ToIndex(i, out.Shape, outIndex)
			o := tensor.IndexToPosition(outIndex, out.Strides)
			tensor.BroadcastIndex(outIndex, out.Shape, ta.Shape, aIndex)
			j := tensor.IndexToPosition(aIndex, ta.Strides)
			tensor.BroadcastIndex(outIndex, out.Shape, tb.Shape, bIndex)
			k := tensor.IndexToPosition(bIndex, tb.Strides)
			out.Storage[o] = fn(ta.Storage[j], tb.Storage[k])
		}
	}, b.cfg)
	return nil
}

// Zip applies fn elementwise across a and b with NumPy-style broadcasting
// and returns a newly allocated contiguous result in the broadcast shape.
// Returns tensor.ErrShapeMismatch if the shapes cannot broadcast.
func (b *Backend[T]) Zip(fn func(T, T) T, ta, tb tensor.TensorData[T]) (tensor.TensorData[T], error) {
	outShape, _, err := tensor.BroadcastShapes(ta.Shape, tb.Shape)
	if err != nil {
		return tensor.TensorData[T]{}, err
	}
	out, err := tensor.New[T](outShape)
	if err != nil {
		return tensor.TensorData[T]{}, err
	}
	if err := b.ZipInto(fn, out, ta, tb); err != nil {
		return tensor.TensorData[T]{}, err
	}
	return out, nil
}
