// SPDX-License-Identifier: MIT
// Package: floydwarshall
//
// Matrix is the read-only query surface over the engine's distance buffer.
// It exposes no mutators: all matrix mutation is funneled through AddEdge and
// Solve, which keeps the valid/stale invariant enforceable by the engine.

package floydwarshall

import (
	"fmt"
	"strings"
)

// Matrix is a read-only view of an engine's distance matrix.
//
// The view is a window onto the live buffer, not a copy: values observed
// through it reflect subsequent AddEdge/Solve mutations. Use Dense for a
// snapshot. The zero value is not usable; obtain views from Solve or Dist.
type Matrix[W Weight] struct {
	fw *FloydWarshall[W]
}

// Order returns the number of vertices (the matrix is Order×Order).
func (m Matrix[W]) Order() int {
	if m.fw == nil {
		return 0
	}

	return m.fw.n
}

// At returns the current best known cost from i to j. A value equal to the
// engine's inf sentinel means "no known path".
//
// Errors: ErrNilMatrix on a zero-value view, ErrVertexOutOfRange for indices
// outside [0, n).
func (m Matrix[W]) At(i, j int) (W, error) {
	if m.fw == nil {
		return 0, opErrorf("Matrix.At", ErrNilMatrix)
	}
	if i < 0 || i >= m.fw.n || j < 0 || j >= m.fw.n {
		return 0, fmt.Errorf("Matrix.At(%d,%d): %w", i, j, ErrVertexOutOfRange)
	}

	return m.fw.data[i*m.fw.n+j], nil
}

// Row returns a copy of row i: the distances from vertex i to every vertex.
func (m Matrix[W]) Row(i int) ([]W, error) {
	if m.fw == nil {
		return nil, opErrorf("Matrix.Row", ErrNilMatrix)
	}
	if i < 0 || i >= m.fw.n {
		return nil, fmt.Errorf("Matrix.Row(%d): %w", i, ErrVertexOutOfRange)
	}

	row := make([]W, m.fw.n)
	copy(row, m.fw.data[i*m.fw.n:(i+1)*m.fw.n])

	return row, nil
}

// Dense returns a deep copy of the matrix as [][]W. The copy is detached from
// the engine: later AddEdge/Solve calls do not affect it.
// Complexity: O(n²) time and memory.
func (m Matrix[W]) Dense() [][]W {
	if m.fw == nil {
		return nil
	}

	n := m.fw.n
	out := make([][]W, n)
	for i := 0; i < n; i++ {
		out[i] = make([]W, n)
		copy(out[i], m.fw.data[i*n:(i+1)*n])
	}

	return out
}

// String implements fmt.Stringer for easy debugging. Inf cells render as "∞".
func (m Matrix[W]) String() string {
	if m.fw == nil {
		return "[]"
	}

	var sb strings.Builder
	n := m.fw.n
	var i, j int
	for i = 0; i < n; i++ {
		sb.WriteByte('[')
		for j = 0; j < n; j++ {
			if v := m.fw.data[i*n+j]; v == m.fw.inf {
				sb.WriteString("∞")
			} else {
				fmt.Fprintf(&sb, "%v", v)
			}
			if j < n-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
