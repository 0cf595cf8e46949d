// Copyright 2026 The Stride Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "fmt"

// Float constrains the element types the kernels operate on.
type Float interface {
	~float32 | ~float64
}

// TensorData is a strided view over a flat storage buffer: the triple of
// storage, shape and strides every kernel consumes. Views may share storage
// (e.g. a Permute of a tensor addresses the same buffer), so the kernels
// treat shape and strides as independent, caller-supplied facts.
//
// The kernel layer never allocates storage and holds no state between
// calls; a TensorData is constructed by the caller, handed to a kernel,
// and discarded or reused afterward.
type TensorData[T Float] struct {
	Storage []T
	Shape   Shape
	Strides Strides
}

// New creates a zero-filled, row-major contiguous TensorData for shape.
func New[T Float](shape Shape) (TensorData[T], error) {
	if err := shape.Validate(); err != nil {
		return TensorData[T]{}, fmt.Errorf("invalid shape: %w", err)
	}
	return TensorData[T]{
		Storage: make([]T, shape.NumElements()),
		Shape:   shape.Clone(),
		Strides: shape.ComputeStrides(),
	}, nil
}

// FromSlice creates a row-major contiguous TensorData backed by data.
// The slice is used directly, not copied.
func FromSlice[T Float](data []T, shape Shape) (TensorData[T], error) {
	if err := shape.Validate(); err != nil {
		return TensorData[T]{}, fmt.Errorf("invalid shape: %w", err)
	}
	if shape.NumElements() != len(data) {
		return TensorData[T]{}, fmt.Errorf("shape %v requires %d elements, but got %d",
			shape, shape.NumElements(), len(data))
	}
	return TensorData[T]{
		Storage: data,
		Shape:   shape.Clone(),
		Strides: shape.ComputeStrides(),
	}, nil
}

// Full creates a contiguous TensorData for shape with every element set to v.
func Full[T Float](shape Shape, v T) (TensorData[T], error) {
	t, err := New[T](shape)
	if err != nil {
		return TensorData[T]{}, err
	}
	for i := range t.Storage {
		t.Storage[i] = v
	}
	return t, nil
}

// Rank returns the number of dimensions.
func (t TensorData[T]) Rank() int {
	return len(t.Shape)
}

// Size returns the total number of elements addressed by the view.
func (t TensorData[T]) Size() int {
	return t.Shape.NumElements()
}

// Position converts a coordinate into this view's flat storage offset.
func (t TensorData[T]) Position(index []int) int {
	return IndexToPosition(index, t.Strides)
}

// Get returns the element at the given coordinate.
func (t TensorData[T]) Get(index ...int) T {
	return t.Storage[IndexToPosition(index, t.Strides)]
}

// Set stores v at the given coordinate.
func (t TensorData[T]) Set(v T, index ...int) {
	t.Storage[IndexToPosition(index, t.Strides)] = v
}

// IsContiguous reports whether the view is laid out row-major with no gaps,
// i.e. its strides equal the canonical strides of its shape.
func (t TensorData[T]) IsContiguous() bool {
	return t.Strides.Equal(t.Shape.ComputeStrides())
}

// Permute returns a view with dimensions reordered according to order,
// which must be a permutation of [0, rank). The view shares storage with
// the receiver; no data moves. Permute(1, 0) of a matrix is its transpose.
func (t TensorData[T]) Permute(order ...int) (TensorData[T], error) {
	if len(order) != len(t.Shape) {
		return TensorData[T]{}, fmt.Errorf("permute: order has %d entries for rank-%d tensor",
			len(order), len(t.Shape))
	}
	seen := make([]bool, len(order))
	for _, d := range order {
		if d < 0 || d >= len(order) || seen[d] {
			return TensorData[T]{}, fmt.Errorf("permute: %v is not a permutation of [0, %d)",
				order, len(order))
		}
		seen[d] = true
	}

	shape := make(Shape, len(order))
	strides := make(Strides, len(order))
	for i, d := range order {
		shape[i] = t.Shape[d]
		strides[i] = t.Strides[d]
	}
	return TensorData[T]{Storage: t.Storage, Shape: shape, Strides: strides}, nil
}

// Validate checks the structural invariants a kernel relies on: matching
// shape/stride rank, rank <= MaxDims, and positive dimensions.
func (t TensorData[T]) Validate() error {
	if len(t.Shape) != len(t.Strides) {
		return fmt.Errorf("shape rank %d does not match strides rank %d",
			len(t.Shape), len(t.Strides))
	}
	return t.Shape.Validate()
}
