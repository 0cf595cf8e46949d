// Copyright 2026 The Stride Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu implements the Stride compute kernels on the CPU: strided,
// broadcasting-aware elementwise map and zip, axis reduction, and batched
// matrix multiply.
//
// # Two surfaces
//
// The *Into kernels (MapInto, ZipInto, ReduceInto, MatMulInto) write into
// caller-supplied output storage and never allocate; they are the layer a
// higher-level tensor abstraction drives directly. The remaining methods
// (Map, Zip, Reduce, MatMul and the named ops Add, Exp, Sum, ...) are
// allocating conveniences over them.
//
// # Fast paths
//
// Map and Zip skip coordinate decomposition entirely when operand strides
// already align with the output's, walking all buffers at the same flat
// positions. Otherwise each output ordinal is decomposed into a coordinate,
// projected into each operand's coordinate space via broadcasting, and
// converted to a flat position per operand.
//
// # Parallelism and determinism
//
// Elementwise loops, reduce's per-output-cell loop and matmul's
// (batch, row) loop run over disjoint worker ranges; every parallel
// iteration writes a distinct output cell, so no locks are needed. The
// order-dependent loops (reduce's fold along the reduced axis and
// matmul's inner product) are strictly sequential, so results do not
// depend on scheduling.
//
// # Basic usage
//
//	backend := cpu.New[float32]()
//
//	a, _ := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	b, _ := tensor.Full[float32](tensor.Shape{3}, 2)
//
//	sum, _ := backend.Add(a, b)       // broadcast to [2, 3]
//	total, _ := backend.Sum(sum, 1)   // shape [2, 1]
package cpu
