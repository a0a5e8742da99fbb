// SPDX-License-Identifier: MIT

// Package floydwarshall maintains all-pairs shortest-path (APSP) distances
// for a weighted directed graph on a fixed vertex set, with support for
// incremental single-edge relaxation in O(n²) time.
//
// Overview:
//
//   - Vertices are integer indices 0..n-1, fixed at construction.
//   - The engine owns a dense n×n distance matrix: diagonal 0, off-diagonal
//     an "inf" sentinel meaning "no known path".
//   - AddEdge performs relaxations only: inserting an edge, or decreasing the
//     weight of an existing one. Weight increases and deletions are not
//     supported (convert decremental problems into incremental ones by
//     replaying deletions in reverse as insertions; see the offline package).
//   - Solve runs the classic Floyd–Warshall closure in O(n³) and is a no-op
//     when the matrix is already up to date.
//   - AddEdge(..., WithPropagation()) propagates one relaxation to all pairs
//     in O(n²) instead of re-running the full O(n³) solve.
//
// Typical workflow:
//
//  1. New(n, inf) — allocate the engine.
//  2. AddEdge(u, v, w) for every edge — O(1) each, matrix becomes stale.
//  3. Solve() — O(n³), matrix becomes valid.
//  4. Dist() / HasNegativeCycle() — query freely.
//  5. AddEdge(u, v, w, WithPropagation()) — O(n²) incremental maintenance;
//     only legal while the matrix is valid.
//
// Matrix state:
//
//	The matrix is either valid (reflects APSP for the edges inserted so far)
//	or stale (one or more relaxations were added without propagation). While
//	stale, Dist, HasNegativeCycle and AddEdge(WithPropagation()) fail with
//	ErrStaleMatrix; Solve restores validity. The engine starts valid because
//	the initial matrix already is the APSP of the empty graph.
//
// Negative cycles:
//
//	HasNegativeCycle reports whether some dist[v][v] < 0 after a solve.
//	When it returns true, distance values are no longer meaningful as
//	shortest-path lengths; the engine detects this condition but does not
//	attempt to recover valid distances.
//
// Complexity:
//
//	– Memory:                          O(n²)
//	– New:                             O(n²)
//	– AddEdge (lazy):                  O(1)
//	– AddEdge (WithPropagation):       O(n²)
//	– Solve:                           O(n³) time, O(1) extra space
//	– Dist:                            O(1)
//	– HasNegativeCycle:                O(n)
//
// Error handling (sentinel errors, match via errors.Is):
//
//   - ErrStaleMatrix:      a state-dependent operation was called while the
//     matrix is stale. Recoverable: call Solve and retry.
//   - ErrNegativeOrder:    New was given a negative vertex count.
//   - ErrNonPositiveInf:   the inf sentinel is not strictly positive.
//   - ErrVertexOutOfRange: a vertex index is outside [0, n).
//   - ErrInvalidWeight:    an edge weight is not strictly below inf.
//
// ErrStaleMatrix signals an operation-ordering mistake and is deliberately
// distinct from the input-contract sentinels, which indicate caller bugs.
package floydwarshall
