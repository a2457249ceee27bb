// Package builder generates deterministic edge-list graphs for tests,
// examples and benchmarks of the spantree packages.
//
// A Graph is a vertex count plus an []edge.Edge[int64] over [0, Vertices).
// BuildGraph applies Constructors in order; every constructor appends its
// own fresh block of vertices, so composing constructors yields one graph
// with one connected component per constructor (Isolated adds one per vertex).
//
// The package offers:
//
//   - Topology constructors:
//     – Isolated(n):        n vertices, no edges.
//     – Path(n):            P_n, n-1 edges.
//     – Cycle(n):           C_n, n edges.
//     – Star(n):            hub plus n-1 spokes.
//     – Complete(n):        K_n, n(n-1)/2 edges.
//     – Grid(rows, cols):   4-neighborhood lattice.
//     – RandomSparse(n, p): Erdős–Rényi G(n, p).
//   - Configuration primitives:
//     – BuilderOption:      a function that mutates builderConfig before use.
//     – WithSeed / WithRand for reproducible randomness.
//     – WithWeightFn / WithConstantWeight / WithUniformWeight for weights.
//
// Guarantees:
//
//   - Determinism: same constructors, options and seed ⇒ identical edge lists.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel runtime errors (ErrTooFewVertices, ErrInvalidProbability, ...)
//     wrapped with the constructor name.
package builder
