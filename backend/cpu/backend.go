// Copyright 2026 The Stride Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	"fmt"

	"github.com/strideml/stride/internal/parallel"
	"github.com/strideml/stride/tensor"
)

// Backend executes tensor kernels on the CPU for element type T. It holds
// only the parallel loop configuration; kernels keep no state between
// calls, so a Backend is safe for concurrent use.
type Backend[T tensor.Float] struct {
	cfg parallel.Config
}

// Config tunes how kernel loops are spread across worker goroutines.
// The zero value of a field means "use the default".
type Config struct {
	Workers      int // Worker goroutines; 1 runs every loop sequentially.
	MinChunkSize int // Minimum elements per worker before splitting pays off.
}

// New creates a CPU backend with parallelism sized to the machine.
func New[T tensor.Float]() *Backend[T] {
	return &Backend[T]{cfg: parallel.DefaultConfig()}
}

// NewWithConfig creates a CPU backend with explicit parallelism settings.
func NewWithConfig[T tensor.Float](cfg Config) *Backend[T] {
	pcfg := parallel.DefaultConfig()
	if cfg.Workers > 0 {
		pcfg.Enabled = cfg.Workers > 1
		pcfg.NumWorkers = cfg.Workers
	}
	if cfg.MinChunkSize > 0 {
		pcfg.MinChunkSize = cfg.MinChunkSize
	}
	return &Backend[T]{cfg: pcfg}
}

// NewSequential creates a CPU backend that runs every kernel loop on the
// calling goroutine. Results are identical to the parallel backend;
// scheduling never affects kernel output.
func NewSequential[T tensor.Float]() *Backend[T] {
	return &Backend[T]{cfg: parallel.Sequential()}
}

// validateOperands checks the structural invariants of every operand
// before any kernel loop body runs, so a failing call makes zero partial
// writes. The first operand is conventionally the output.
func validateOperands[T tensor.Float](operands ...tensor.TensorData[T]) error {
	for i, t := range operands {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("operand %d: %w", i, err)
		}
	}
	return nil
}
