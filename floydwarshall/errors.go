// SPDX-License-Identifier: MIT
// Package floydwarshall: sentinel error set.
// This file defines ONLY package-level sentinel errors. All operations MUST
// return these sentinels (wrapped with call-site context where useful) and
// tests MUST check them via errors.Is. No operation panics on user-triggered
// error conditions.

package floydwarshall

import (
	"errors"
	"fmt"
)

var (
	// ErrStaleMatrix is returned when Dist, HasNegativeCycle or
	// AddEdge(WithPropagation()) is called while the distance matrix is stale,
	// i.e. at least one relaxation was added without propagation since the
	// last Solve. Recoverable: call Solve and retry.
	ErrStaleMatrix = errors.New("floydwarshall: distance matrix is stale; call Solve() first")

	// ErrNegativeOrder indicates that New was given a negative vertex count.
	ErrNegativeOrder = errors.New("floydwarshall: vertex count must be non-negative")

	// ErrNonPositiveInf indicates that the inf sentinel is not strictly
	// positive. The sentinel must exceed every attainable shortest-path
	// distance, so zero or negative values cannot represent "no path".
	ErrNonPositiveInf = errors.New("floydwarshall: inf sentinel must be positive")

	// ErrVertexOutOfRange indicates a vertex index outside [0, n).
	ErrVertexOutOfRange = errors.New("floydwarshall: vertex index out of range")

	// ErrInvalidWeight indicates an edge weight that is not strictly below the
	// inf sentinel (NaN weights fail this check as well). Such a weight cannot
	// represent a finite direct cost.
	ErrInvalidWeight = errors.New("floydwarshall: edge weight must be strictly less than inf")

	// ErrNilMatrix indicates that a zero-value Matrix view (not produced by
	// Solve or Dist) was queried.
	ErrNilMatrix = errors.New("floydwarshall: nil matrix view")
)

// opErrorf wraps a sentinel with the operation name for log-friendly context.
// Callers still match the underlying sentinel via errors.Is.
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
