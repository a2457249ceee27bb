// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p).
//
// Canonical model:
//   - Erdős–Rényi G(n, p): include each unordered pair {i, j}, i < j,
//     independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Stable trial order: i asc, then j asc with j > i. One Float64 draw per
//     trial, then (on success) whatever the weight function draws.

package builder

import "fmt"

const minRandomSparseVertices = 1

// RandomSparse returns a Constructor that samples G(n, p) into a fresh block.
// The result may itself be disconnected.
func RandomSparse(n int, p float64) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				MethodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		base := g.addBlock(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == MinProbability:
					continue
				case p == MaxProbability:
				case cfg.rng.Float64() >= p:
					continue
				}
				g.connect(cfg, base+i, base+j)
			}
		}

		return nil
	}
}
