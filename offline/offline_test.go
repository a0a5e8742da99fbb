// Package offline_test contains unit tests for the offline road-closure
// solver: scenario validation, YAML loading, and the reverse-replay answers.
package offline_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/apsp/offline"
)

// buildRoadScenario constructs the canonical fixture used across tests:
//
//	vertices 1,2,3 with two-way roads 1—2 (5), 2—3 (7), 1—3 (100),
//	then an interleaved sequence of distance queries and closures.
func buildRoadScenario() *offline.Scenario {
	return &offline.Scenario{
		Vertices: 3,
		Edges: []offline.Edge{
			{From: 1, To: 2, Weight: 5},
			{From: 2, To: 3, Weight: 7},
			{From: 1, To: 3, Weight: 100},
		},
		Queries: []offline.Query{
			{Distance: &offline.Endpoint{From: 1, To: 3}}, // open: 5+7 beats 100
			{Close: 2}, // road 2—3 closes
			{Distance: &offline.Endpoint{From: 1, To: 3}}, // only the direct road remains
			{Close: 3}, // road 1—3 closes
			{Distance: &offline.Endpoint{From: 1, To: 3}}, // vertex 3 is cut off
			{Distance: &offline.Endpoint{From: 1, To: 2}}, // unaffected by closures
		},
	}
}

// ------------------------------------------------------------------------
// 1. Replay correctness.
// ------------------------------------------------------------------------

func TestRun_RoadClosures(t *testing.T) {
	answers, err := offline.Run(buildRoadScenario())
	require.NoError(t, err)

	// Answers are in query order, one per distance query.
	assert.Equal(t, []int64{12, 100, offline.Unreachable, 5}, answers)
}

func TestRun_DirectedEdgesAreOneWay(t *testing.T) {
	s := &offline.Scenario{
		Vertices: 2,
		Directed: true,
		Edges:    []offline.Edge{{From: 1, To: 2, Weight: 3}},
		Queries: []offline.Query{
			{Distance: &offline.Endpoint{From: 1, To: 2}},
			{Distance: &offline.Endpoint{From: 2, To: 1}},
		},
	}

	answers, err := offline.Run(s)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, offline.Unreachable}, answers)
}

func TestRun_NoQueries(t *testing.T) {
	s := &offline.Scenario{
		Vertices: 2,
		Edges:    []offline.Edge{{From: 1, To: 2, Weight: 1}},
	}

	answers, err := offline.Run(s)
	require.NoError(t, err)
	assert.Empty(t, answers)
}

func TestRun_ClosureBeforeAnyQuery(t *testing.T) {
	// The road closes before anyone asks: it must never count.
	s := &offline.Scenario{
		Vertices: 2,
		Edges:    []offline.Edge{{From: 1, To: 2, Weight: 4}},
		Queries: []offline.Query{
			{Close: 1},
			{Distance: &offline.Endpoint{From: 1, To: 2}},
		},
	}

	answers, err := offline.Run(s)
	require.NoError(t, err)
	assert.Equal(t, []int64{offline.Unreachable}, answers)
}

func TestRun_SelfDistanceIsZero(t *testing.T) {
	s := &offline.Scenario{
		Vertices: 1,
		Queries:  []offline.Query{{Distance: &offline.Endpoint{From: 1, To: 1}}},
	}

	answers, err := offline.Run(s)
	require.NoError(t, err)
	assert.Equal(t, []int64{0}, answers)
}

// ------------------------------------------------------------------------
// 2. Validation.
// ------------------------------------------------------------------------

func TestValidate_Errors(t *testing.T) {
	dist := func(u, v int) *offline.Endpoint { return &offline.Endpoint{From: u, To: v} }

	cases := []struct {
		name    string
		mutate  func(*offline.Scenario)
		wantErr error
	}{
		{
			name:    "no vertices",
			mutate:  func(s *offline.Scenario) { s.Vertices = 0 },
			wantErr: offline.ErrNoVertices,
		},
		{
			name:    "edge endpoint out of range",
			mutate:  func(s *offline.Scenario) { s.Edges[0].To = 4 },
			wantErr: offline.ErrVertexOutOfRange,
		},
		{
			name:    "edge endpoint zero",
			mutate:  func(s *offline.Scenario) { s.Edges[0].From = 0 },
			wantErr: offline.ErrVertexOutOfRange,
		},
		{
			name:    "negative weight",
			mutate:  func(s *offline.Scenario) { s.Edges[1].Weight = -2 },
			wantErr: offline.ErrBadWeight,
		},
		{
			name:    "close references missing edge",
			mutate:  func(s *offline.Scenario) { s.Queries[1].Close = 9 },
			wantErr: offline.ErrEdgeOutOfRange,
		},
		{
			name:    "edge closed twice",
			mutate:  func(s *offline.Scenario) { s.Queries[3].Close = 2 },
			wantErr: offline.ErrEdgeReclosed,
		},
		{
			name:    "distance endpoint out of range",
			mutate:  func(s *offline.Scenario) { s.Queries[0].Distance = dist(1, 7) },
			wantErr: offline.ErrVertexOutOfRange,
		},
		{
			name:    "empty query",
			mutate:  func(s *offline.Scenario) { s.Queries[0] = offline.Query{} },
			wantErr: offline.ErrBadQuery,
		},
		{
			name: "query sets both kinds",
			mutate: func(s *offline.Scenario) {
				s.Queries[0] = offline.Query{Close: 1, Distance: dist(1, 2)}
			},
			wantErr: offline.ErrBadQuery,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := buildRoadScenario()
			tc.mutate(s)

			err := s.Validate()
			require.ErrorIs(t, err, tc.wantErr)

			// Run must refuse the same scenario with the same sentinel.
			_, err = offline.Run(s)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// ------------------------------------------------------------------------
// 3. YAML loading.
// ------------------------------------------------------------------------

const roadYAML = `
vertices: 3
edges:
  - {from: 1, to: 2, weight: 5}
  - {from: 2, to: 3, weight: 7}
  - {from: 1, to: 3, weight: 100}
queries:
  - distance: {from: 1, to: 3}
  - close: 2
  - distance: {from: 1, to: 3}
  - close: 3
  - distance: {from: 1, to: 3}
  - distance: {from: 1, to: 2}
`

func TestParse_RoundTripsFixture(t *testing.T) {
	s, err := offline.Parse([]byte(roadYAML))
	require.NoError(t, err)
	assert.Equal(t, buildRoadScenario(), s)
}

func TestParse_RejectsMalformedYAML(t *testing.T) {
	_, err := offline.Parse([]byte("vertices: [not a number"))
	require.Error(t, err)
}

func TestParse_RejectsInvalidScenario(t *testing.T) {
	_, err := offline.Parse([]byte("vertices: 0"))
	require.ErrorIs(t, err, offline.ErrNoVertices)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roads.yaml")
	require.NoError(t, os.WriteFile(path, []byte(roadYAML), 0o600))

	s, err := offline.Load(path)
	require.NoError(t, err)

	answers, err := offline.Run(s)
	require.NoError(t, err)
	assert.Equal(t, []int64{12, 100, offline.Unreachable, 5}, answers)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := offline.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
