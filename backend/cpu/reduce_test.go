// Copyright 2026 The Stride Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strideml/stride/ops"
	"github.com/strideml/stride/tensor"
)

// Sum along axis 1 of [[1, 2, 3], [4, 5, 6]] collapses to [2, 1].
func TestReduce_SumRows(t *testing.T) {
	backend := New[float64]()

	a, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	require.NoError(t, err)

	out, err := backend.Reduce(ops.Add[float64], 0, a, 1)
	require.NoError(t, err)

	require.True(t, out.Shape.Equal(tensor.Shape{2, 1}))
	assert.Equal(t, []float64{6, 15}, out.Storage)
}

func TestReduce_SumColumns(t *testing.T) {
	backend := New[float64]()

	a, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	require.NoError(t, err)

	out, err := backend.Reduce(ops.Add[float64], 0, a, 0)
	require.NoError(t, err)

	require.True(t, out.Shape.Equal(tensor.Shape{1, 3}))
	assert.Equal(t, []float64{5, 7, 9}, out.Storage)
}

func TestReduce_NegativeDim(t *testing.T) {
	backend := New[float64]()

	a, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	require.NoError(t, err)

	out, err := backend.Reduce(ops.Add[float64], 0, a, -1)
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 15}, out.Storage)
}

// The start value seeds the fold: summing with start 10 adds 10 per cell.
func TestReduce_StartValue(t *testing.T) {
	backend := New[float64]()

	a, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	require.NoError(t, err)

	out, err := backend.Reduce(ops.Add[float64], 10, a, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{16, 25}, out.Storage)
}

func TestReduce_Max(t *testing.T) {
	backend := New[float64]()

	a, err := tensor.FromSlice([]float64{3, -1, 2, -7, -5, -6}, tensor.Shape{2, 3})
	require.NoError(t, err)

	out, err := backend.Max(a, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, -5}, out.Storage)
}

// The fold combines left-to-right in ascending index order, seeded by
// start. fn(acc, x) = 2*acc + x is not commutative in its arguments'
// order of arrival, so folding the axis backwards gives a different
// number; the kernel must match the ascending fold exactly.
func TestReduce_FoldOrder(t *testing.T) {
	backend := New[float64]()

	fn := func(acc, x float64) float64 { return 2*acc + x }
	data := []float64{1, 2, 3}

	a, err := tensor.FromSlice(data, tensor.Shape{1, 3})
	require.NoError(t, err)

	out, err := backend.Reduce(fn, 0, a, 1)
	require.NoError(t, err)

	// ((0*2+1)*2+2)*2+3 = 11
	assert.Equal(t, []float64{11}, out.Storage)

	// The descending fold ((0*2+3)*2+2)*2+1 = 17 differs, proving the
	// ordering contract is observable.
	descending := 0.0
	for j := len(data) - 1; j >= 0; j-- {
		descending = fn(descending, data[j])
	}
	assert.Equal(t, 17.0, descending)
	assert.NotEqual(t, descending, out.Storage[0])
}

// Reducing a 3D tensor along its middle axis.
func TestReduce_MiddleAxis(t *testing.T) {
	backend := New[float64]()

	// a[i][j][k] = 100*i + 10*j + k over shape [2, 2, 2].
	data := []float64{0, 1, 10, 11, 100, 101, 110, 111}
	a, err := tensor.FromSlice(data, tensor.Shape{2, 2, 2})
	require.NoError(t, err)

	out, err := backend.Sum(a, 1)
	require.NoError(t, err)

	require.True(t, out.Shape.Equal(tensor.Shape{2, 1, 2}))
	assert.Equal(t, []float64{10, 12, 210, 212}, out.Storage)
}

// Reducing over a transposed view folds the view's axis, not storage order.
func TestReduce_TransposedView(t *testing.T) {
	backend := New[float64]()

	base, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	require.NoError(t, err)
	tr, err := base.Permute(1, 0) // [3, 2]
	require.NoError(t, err)

	out, err := backend.Sum(tr, 1)
	require.NoError(t, err)

	// Rows of the transpose are the columns of base.
	require.True(t, out.Shape.Equal(tensor.Shape{3, 1}))
	assert.Equal(t, []float64{5, 7, 9}, out.Storage)
}

func TestReduceInto_InvalidDim(t *testing.T) {
	backend := New[float64]()

	a, err := tensor.New[float64](tensor.Shape{2, 3})
	require.NoError(t, err)
	out, err := tensor.New[float64](tensor.Shape{2, 1})
	require.NoError(t, err)

	assert.Error(t, backend.ReduceInto(ops.Add[float64], out, a, 2))
	assert.Error(t, backend.ReduceInto(ops.Add[float64], out, a, -1))
}

func TestReduceInto_BadOutputShape(t *testing.T) {
	backend := New[float64]()

	a, err := tensor.New[float64](tensor.Shape{2, 3})
	require.NoError(t, err)
	out, err := tensor.New[float64](tensor.Shape{2, 3})
	require.NoError(t, err)

	assert.Error(t, backend.ReduceInto(ops.Add[float64], out, a, 1))
}
