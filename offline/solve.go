package offline

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/apsp/floydwarshall"
)

// Unreachable is the answer reported for a vertex pair with no open route.
const Unreachable int64 = -1

// weightScale sizes the engine's inf sentinel: inf = vertices × weightScale.
// Any simple path visits at most `vertices` edges, so as long as individual
// weights stay below weightScale every finite distance stays below inf, and
// int64 sums of the form dist+w+dist cannot overflow.
const weightScale int64 = 1_000_000_000

// Run answers every distance query in the scenario, in query order.
//
// Strategy (decremental → incremental conversion):
//
//  1. Build the engine from the edges no query ever closes; solve once (O(n³)).
//  2. Walk the query list backwards. A closure, seen in reverse, is the
//     moment the edge (re)appears: insert it with propagation (O(n²) each).
//     A distance query reads the matrix as it was at that point in time.
//  3. Reverse the collected answers back into query order.
//
// Unreachable pairs map to Unreachable (-1). The scenario is validated first;
// a validation error means no engine work was done.
func Run(s *Scenario) ([]int64, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	inf := int64(s.Vertices) * weightScale
	fw, err := floydwarshall.New[int64](s.Vertices, inf)
	if err != nil {
		return nil, fmt.Errorf("offline: %w", err)
	}

	// Mark the edges that some query closes; they join the graph only during
	// the reverse replay.
	closed := make([]bool, len(s.Edges))
	for _, q := range s.Queries {
		if q.Close > 0 {
			closed[q.Close-1] = true
		}
	}

	for i, e := range s.Edges {
		if closed[i] {
			continue
		}
		if err = addRoad(fw, s.Directed, e); err != nil {
			return nil, err
		}
	}
	fw.Solve()

	answers := make([]int64, 0, len(s.Queries))
	for qi := len(s.Queries) - 1; qi >= 0; qi-- {
		q := s.Queries[qi]

		if q.Close > 0 {
			// Reversed closure: the edge exists before this point in time.
			if err = addRoad(fw, s.Directed, s.Edges[q.Close-1], floydwarshall.WithPropagation()); err != nil {
				return nil, err
			}

			continue
		}

		m, distErr := fw.Dist()
		if distErr != nil {
			return nil, fmt.Errorf("offline: %w", distErr)
		}
		d, atErr := m.At(q.Distance.From-1, q.Distance.To-1)
		if atErr != nil {
			return nil, fmt.Errorf("offline: %w", atErr)
		}
		if d == inf {
			d = Unreachable
		}
		answers = append(answers, d)
	}

	slices.Reverse(answers)

	return answers, nil
}

// addRoad inserts one scenario edge into the engine, mirroring it for
// undirected networks. Vertex references are converted from 1-based here.
func addRoad(fw *floydwarshall.FloydWarshall[int64], directed bool, e Edge, opts ...floydwarshall.AddOption) error {
	if err := fw.AddEdge(e.From-1, e.To-1, e.Weight, opts...); err != nil {
		return fmt.Errorf("offline: edge %d->%d: %w", e.From, e.To, err)
	}
	if directed {
		return nil
	}
	if err := fw.AddEdge(e.To-1, e.From-1, e.Weight, opts...); err != nil {
		return fmt.Errorf("offline: edge %d->%d: %w", e.To, e.From, err)
	}

	return nil
}
