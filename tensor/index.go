// Copyright 2026 The Stride Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

// MaxDims is the maximum supported tensor rank. Keeping it fixed lets the
// kernels use stack-allocated coordinate buffers in their inner loops.
const MaxDims = 32

// Strides holds the per-dimension multipliers that convert a coordinate
// into a flat storage offset. Strides are caller-supplied facts independent
// of the shape: a transposed view has the same shape strides cannot be
// recomputed from.
type Strides []int

// Equal checks if two stride sequences are equal, including rank.
func (s Strides) Equal(other Strides) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the strides.
func (s Strides) Clone() Strides {
	clone := make(Strides, len(s))
	copy(clone, s)
	return clone
}

// ToIndex decomposes a flat ordinal in [0, shape.NumElements()) into a
// per-dimension coordinate, written into out (len(out) == len(shape)).
// The last dimension varies fastest. The decomposition depends only on
// the shape, never on strides.
func ToIndex(ordinal int, shape Shape, out []int) {
	cur := ordinal
	for d := len(shape) - 1; d >= 0; d-- {
		out[d] = cur % shape[d]
		cur /= shape[d]
	}
}

// IndexToPosition converts a coordinate into a flat storage offset:
// the dot product of the coordinate and the strides.
func IndexToPosition(index []int, strides Strides) int {
	pos := 0
	for d, s := range strides {
		pos += index[d] * s
	}
	return pos
}

// BroadcastIndex projects a coordinate computed in a (larger) broadcast
// shape down into the coordinate space of a smaller operand, written into
// small (len(small) == len(smallShape)). smallShape is right-aligned under
// bigShape: size-1 dimensions map to coordinate 0, dimensions missing from
// smallShape are dropped. This is how an operand is broadcast without ever
// materializing an expanded copy.
func BroadcastIndex(big []int, bigShape, smallShape Shape, small []int) {
	offset := len(bigShape) - len(smallShape)
	for d := range smallShape {
		if smallShape[d] == 1 {
			small[d] = 0
		} else {
			small[d] = big[d+offset]
		}
	}
}
