// Copyright 2026 The Stride Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor defines the data model shared by all Stride compute
// kernels: shapes, strides, coordinates and the strided TensorData view
// over a flat storage buffer.
//
// # Shapes and strides
//
// A tensor is described by a Shape (per-dimension sizes) and Strides
// (per-dimension multipliers into flat storage). The flat position of a
// coordinate idx is the dot product of idx and the strides. Strides are
// independent of the shape: a transposed or otherwise non-contiguous view
// carries the same storage with permuted strides, so kernels must never
// infer strides from a shape.
//
// # Broadcasting
//
// BroadcastShapes implements NumPy-style broadcasting: shapes are
// right-aligned, size-1 dimensions stretch to match, and missing leading
// dimensions are treated as 1. BroadcastIndex projects a coordinate in the
// broadcast result shape back into an operand's own coordinate space, which
// lets kernels read a broadcast operand in place instead of expanding it.
//
// # Index conversion
//
//	ordinal --ToIndex--> coordinate --IndexToPosition--> storage offset
//
// ToIndex depends only on the shape (last dimension fastest);
// IndexToPosition depends only on the strides. Rank is bounded by MaxDims
// so kernels can keep coordinates in fixed-size stack buffers.
package tensor
