// Copyright 2026 The Stride Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	"github.com/strideml/stride/internal/parallel"
	"github.com/strideml/stride/tensor"
)

// MapInto applies fn to every element of in, writing into out. The caller
// establishes shape compatibility (out's shape is in's shape, or broadcasts
// over it) and supplies out's storage; no allocation happens here.
//
// Fast path: when the shapes are equal and in's strides equal out's
// strides element-for-element (including rank), elements are read and
// written at the same flat positions and coordinate decomposition is
// skipped entirely. A broadcast input never qualifies: its size-1
// dimensions give it fewer reachable positions than the output, so it
// always takes the general path.
//
// Every output position is written by exactly one iteration, so the loop
// runs over disjoint worker ranges with no synchronization.
func (b *Backend[T]) MapInto(fn func(T) T, out, in tensor.TensorData[T]) error {
	if err := validateOperands(out, in); err != nil {
		return err
	}

	n := out.Shape.NumElements()

	if in.Shape.Equal(out.Shape) && in.Strides.Equal(out.Strides) {
		parallel.ForRange(n, func(start, end int) {
			for i := start; i < end; i++ {
				out.Storage[i] = fn(in.Storage[i])
			}
		}, b.cfg)
		return nil
	}

	parallel.ForRange(n, func(start, end int) {
		var outBuf, inBuf [tensor.MaxDims]int
		outIndex := outBuf[:len(out.Shape)]
		inIndex := inBuf[:len(in.Shape)]

		for i := start; i < end; i++ {
			tensor.ToIndex(i, out.Shape, outIndex)
			tensor.BroadcastIndex(outIndex, out.Shape, in.Shape, inIndex)
			o := tensor.IndexToPosition(outIndex, out.Strides)
			j := tensor.IndexToPosition(inIndex, in.Strides)
			out.Storage[o] = fn(in.Storage[j])
		}
	}, b.cfg)
	return nil
}

// Map applies fn elementwise and returns a newly allocated contiguous
// result with in's logical shape.
func (b *Backend[T]) Map(fn func(T) T, in tensor.TensorData[T]) (tensor.TensorData[T], error) {
	out, err := tensor.New[T](in.Shape)
	if err != nil {
		return tensor.TensorData[T]{}, err
	}
	if err := b.MapInto(fn, out, in); err != nil {
		return tensor.TensorData[T]{}, err
	}
	return out, nil
}
