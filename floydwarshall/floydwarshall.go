// SPDX-License-Identifier: MIT
// Package: floydwarshall
//
// Purpose:
//   - Dense APSP engine (Floyd–Warshall) with deterministic loop order.
//   - In-place O(n³) full solve plus O(n²) single-edge incremental propagation.
//
// Contract:
//   - Flat row-major buffer; inf means "no path"; diagonal starts at 0.
//   - State-dependent operations are gated on the valid/stale flag.

package floydwarshall

import (
	"golang.org/x/exp/constraints"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNew              = "New"
	opAddEdge          = "AddEdge"
	opDist             = "Dist"
	opHasNegativeCycle = "HasNegativeCycle"
)

// Weight is the set of edge-weight types the engine accepts: signed integers
// or floats. Negative weights are legal (negative cycles are detected, not
// recovered from); unsigned integers are excluded because relaxation needs
// them.
type Weight interface {
	constraints.Signed | constraints.Float
}

// FloydWarshall is the APSP engine: an n×n distance matrix together with a
// staleness flag. The zero value is not usable; construct via New.
//
// The engine exclusively owns its matrix. All mutation goes through AddEdge
// and Solve; queries hand out read-only Matrix views, never a mutable alias.
type FloydWarshall[W Weight] struct {
	n     int // number of vertices, fixed at construction
	inf   W   // sentinel for "no known path"; strictly positive
	data  []W // flat row-major distance buffer, length n*n
	stale bool
}

// addOptions collects AddEdge behavior flags gathered from AddOption values.
type addOptions struct {
	propagate bool
}

// AddOption is a functional option for AddEdge.
type AddOption func(*addOptions)

// WithPropagation makes AddEdge propagate the relaxation to all pairs in
// O(n²) time instead of marking the matrix stale. Requires a valid matrix;
// AddEdge fails with ErrStaleMatrix otherwise.
func WithPropagation() AddOption {
	return func(o *addOptions) {
		o.propagate = true
	}
}

// New creates an engine for numVertices vertices with an empty edge set.
//
// The matrix is initialized with 0 on the diagonal and inf elsewhere, which
// already is the APSP of the empty graph, so the engine starts valid.
//
// inf must be strictly positive and strictly larger than any reachable
// shortest-path distance. For fixed-width integer weights pick inf well below
// the type's maximum divided by a small factor, so that sums of the form
// dist[i][u]+w+dist[v][j] cannot overflow (n×10⁹ on int64 is a safe choice
// for typical contest-scale inputs). For floats, +Inf works naturally.
//
// Complexity: O(n²) time and memory.
func New[W Weight](numVertices int, inf W) (*FloydWarshall[W], error) {
	if numVertices < 0 {
		return nil, opErrorf(opNew, ErrNegativeOrder)
	}
	if !(inf > 0) {
		return nil, opErrorf(opNew, ErrNonPositiveInf)
	}

	fw := &FloydWarshall[W]{
		n:    numVertices,
		inf:  inf,
		data: make([]W, numVertices*numVertices),
	}

	// Fill row-by-row in a fixed order: diag = 0, off-diagonal = inf.
	var i, j, base int
	for i = 0; i < numVertices; i++ {
		base = i * numVertices
		for j = 0; j < numVertices; j++ {
			if i != j {
				fw.data[base+j] = inf
			}
		}
	}

	return fw, nil
}

// Order returns the number of vertices, fixed at construction.
func (fw *FloydWarshall[W]) Order() int {
	return fw.n
}

// Inf returns the "no known path" sentinel chosen at construction.
func (fw *FloydWarshall[W]) Inf() W {
	return fw.inf
}

// Stale reports whether at least one relaxation was added without propagation
// since the last Solve. While true, Dist, HasNegativeCycle and
// AddEdge(WithPropagation()) fail with ErrStaleMatrix.
func (fw *FloydWarshall[W]) Stale() bool {
	return fw.stale
}

// AddEdge relaxes the directed edge u→v with the given weight.
//
// This is a relaxation only: the direct cost is updated just when weight is
// strictly below the current dist[u][v]; a non-improving weight is a no-op,
// not an error. By default the call is O(1) and marks the matrix stale; with
// WithPropagation() it instead propagates the relaxation to all pairs in
// O(n²) and the matrix stays valid.
//
// Validation happens before any mutation, so a failed call never changes
// engine state.
//
// Errors:
//   - ErrVertexOutOfRange if u or v is outside [0, n).
//   - ErrInvalidWeight if weight is not strictly below inf.
//   - ErrStaleMatrix if WithPropagation() is requested on a stale matrix —
//     propagation on top of unpropagated relaxations would silently compute
//     incorrect distances.
func (fw *FloydWarshall[W]) AddEdge(u, v int, weight W, opts ...AddOption) error {
	if u < 0 || u >= fw.n {
		return opErrorf(opAddEdge, ErrVertexOutOfRange)
	}
	if v < 0 || v >= fw.n {
		return opErrorf(opAddEdge, ErrVertexOutOfRange)
	}
	// Written as !(w < inf) so NaN float weights are rejected too.
	if !(weight < fw.inf) {
		return opErrorf(opAddEdge, ErrInvalidWeight)
	}

	var o addOptions
	for _, opt := range opts {
		opt(&o)
	}

	if o.propagate && fw.stale {
		return opErrorf(opAddEdge, ErrStaleMatrix)
	}

	if weight >= fw.data[u*fw.n+v] {
		return nil // non-improving relaxation: no-op, state unchanged
	}

	// Relax the direct edge cost.
	fw.data[u*fw.n+v] = weight

	if !o.propagate {
		fw.stale = true

		return nil
	}

	fw.propagate(u, v, weight)

	return nil
}

// propagate applies a single relaxed edge u→v (new weight w) to all pairs.
//
// Any shortest path newly routing through u→v decomposes as
// (shortest i→u) + (u→v) + (shortest v→j); both sub-paths are already correct
// because the matrix is valid on entry, so one pass over (i, j) suffices.
// Not correct for multiple unpropagated relaxations at once — the AddEdge
// stale gate enforces that.
//
// Time: O(n²); extra space: O(1). No allocations inside the loops.
func (fw *FloydWarshall[W]) propagate(u, v int, w W) {
	n := fw.n
	inf := fw.inf

	// Predeclare loop counters and temporaries to keep the hot loop tight.
	var (
		i, j         int // loop indices
		baseI, baseV int // row base offsets in the flat buffer
		iu, vj       W   // distances dist[i,u], dist[v,j]
		viaU, cand   W   // dist[i,u]+w, and the full candidate through u→v
	)

	data := fw.data
	baseV = v * n // row of v, computed once

	for i = 0; i < n; i++ { // every source with a known path to u
		iu = data[i*n+u]
		if iu == inf {
			continue // u unreachable from i: nothing routes through the edge
		}
		baseI = i * n
		viaU = iu + w

		for j = 0; j < n; j++ { // every destination known from v
			vj = data[baseV+j]
			if vj == inf {
				continue
			}
			cand = viaU + vj
			if cand < data[baseI+j] { // strict improvement only
				data[baseI+j] = cand
			}
		}
	}
}

// Solve computes all-pairs shortest-path distances with the Floyd–Warshall
// algorithm and returns a read-only view of the matrix.
//
// If the matrix is already valid the call returns immediately, so Solve is
// idempotent and safe to call defensively before queries.
//
// Loop order is fixed (k → i → j) for deterministic accumulation. The
// inf-equality skips are both a correctness guard (no arithmetic on sentinel
// values, hence no overflow for finite integer sentinels) and a pruning for
// sparse graphs.
//
// Complexity: O(n³) time, O(1) extra space.
func (fw *FloydWarshall[W]) Solve() Matrix[W] {
	if !fw.stale {
		return Matrix[W]{fw: fw}
	}

	n := fw.n
	inf := fw.inf

	var (
		k, i, j      int // loop indices
		baseK, baseI int // row base offsets for k and i
		ik, kj, cand W   // dist[i,k], dist[k,j], candidate via k
	)

	data := fw.data

	for k = 0; k < n; k++ { // outer: intermediate vertex
		baseK = k * n

		for i = 0; i < n; i++ { // middle: source vertex
			ik = data[i*n+k]
			if ik == inf { // i cannot reach k: no path via k improves row i
				continue
			}
			baseI = i * n

			for j = 0; j < n; j++ { // inner: destination vertex
				kj = data[baseK+j]
				if kj == inf {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] { // strict improvement only
					data[baseI+j] = cand
				}
			}
		}
	}

	fw.stale = false

	return Matrix[W]{fw: fw}
}

// Dist returns a read-only view of the distance matrix.
//
// Fails with ErrStaleMatrix while the matrix is stale; call Solve first.
func (fw *FloydWarshall[W]) Dist() (Matrix[W], error) {
	if fw.stale {
		return Matrix[W]{}, opErrorf(opDist, ErrStaleMatrix)
	}

	return Matrix[W]{fw: fw}, nil
}

// HasNegativeCycle reports whether the graph contains a negative cycle:
// true iff some dist[v][v] < 0.
//
// When true, distance values are not meaningful as shortest-path lengths
// (they can keep decreasing under repeated relaxation around the cycle);
// the engine detects the condition and nothing more.
//
// Fails with ErrStaleMatrix while the matrix is stale.
// Complexity: O(n).
func (fw *FloydWarshall[W]) HasNegativeCycle() (bool, error) {
	if fw.stale {
		return false, opErrorf(opHasNegativeCycle, ErrStaleMatrix)
	}

	for v := 0; v < fw.n; v++ {
		if fw.data[v*fw.n+v] < 0 {
			return true, nil
		}
	}

	return false, nil
}
