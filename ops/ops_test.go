// Copyright 2026 The Stride Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"math"
	"testing"
)

func TestArith(t *testing.T) {
	if got := Add(2.0, 3.0); got != 5.0 {
		t.Errorf("Add(2, 3) = %v, want 5", got)
	}
	if got := Sub(2.0, 3.0); got != -1.0 {
		t.Errorf("Sub(2, 3) = %v, want -1", got)
	}
	if got := Mul[float32](2, 3); got != 6 {
		t.Errorf("Mul(2, 3) = %v, want 6", got)
	}
	if got := Div(3.0, 2.0); got != 1.5 {
		t.Errorf("Div(3, 2) = %v, want 1.5", got)
	}
	if got := Neg(2.0); got != -2.0 {
		t.Errorf("Neg(2) = %v, want -2", got)
	}
	if got := Inv(4.0); got != 0.25 {
		t.Errorf("Inv(4) = %v, want 0.25", got)
	}
	if got := Id(7.0); got != 7.0 {
		t.Errorf("Id(7) = %v, want 7", got)
	}
}

func TestComparisons(t *testing.T) {
	if Maximum(2.0, 3.0) != 3.0 || Maximum(3.0, 2.0) != 3.0 {
		t.Error("Maximum is wrong")
	}
	if LT(2.0, 3.0) != 1.0 || LT(3.0, 2.0) != 0.0 || LT(2.0, 2.0) != 0.0 {
		t.Error("LT is wrong")
	}
	if EQ(2.0, 2.0) != 1.0 || EQ(2.0, 3.0) != 0.0 {
		t.Error("EQ is wrong")
	}
	if IsClose(1.0, 1.001) != 1.0 || IsClose(1.0, 2.0) != 0.0 {
		t.Error("IsClose is wrong")
	}
	if IsClose(1.001, 1.0) != 1.0 {
		t.Error("IsClose should be symmetric")
	}
}

func TestReLU(t *testing.T) {
	if ReLU(-2.0) != 0.0 || ReLU(0.0) != 0.0 || ReLU(2.0) != 2.0 {
		t.Error("ReLU is wrong")
	}
}

func TestSigmoid(t *testing.T) {
	if got := Sigmoid(0.0); got != 0.5 {
		t.Errorf("Sigmoid(0) = %v, want 0.5", got)
	}

	// Complement identity, exercised across the stable/unstable branches.
	for _, x := range []float64{-50, -2, -0.5, 0.5, 2, 50} {
		s := Sigmoid(x) + Sigmoid(-x)
		if math.Abs(s-1.0) > 1e-12 {
			t.Errorf("Sigmoid(%v) + Sigmoid(-%v) = %v, want 1", x, x, s)
		}
	}

	// Large negative inputs must not overflow to NaN.
	if got := Sigmoid(-1000.0); math.IsNaN(got) || got != 0 {
		t.Errorf("Sigmoid(-1000) = %v, want 0", got)
	}
}

func TestExpLog(t *testing.T) {
	if got := Exp(0.0); got != 1.0 {
		t.Errorf("Exp(0) = %v, want 1", got)
	}
	if got := Log(1.0); got != 0.0 {
		t.Errorf("Log(1) = %v, want 0", got)
	}
	for _, x := range []float64{0.1, 1, 10} {
		if got := Log(Exp(x)); math.Abs(got-x) > 1e-12 {
			t.Errorf("Log(Exp(%v)) = %v", x, got)
		}
	}
}
