package offline

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Sentinel errors returned by scenario loading and validation.
var (
	// ErrNoVertices indicates a scenario with a non-positive vertex count.
	ErrNoVertices = errors.New("offline: scenario needs at least one vertex")

	// ErrVertexOutOfRange indicates a 1-based vertex reference outside [1, vertices].
	ErrVertexOutOfRange = errors.New("offline: vertex reference out of range")

	// ErrEdgeOutOfRange indicates a close query referencing a 1-based edge
	// index outside [1, len(edges)].
	ErrEdgeOutOfRange = errors.New("offline: edge reference out of range")

	// ErrEdgeReclosed indicates that the same edge is closed by more than one
	// query; a road cannot be closed twice.
	ErrEdgeReclosed = errors.New("offline: edge closed more than once")

	// ErrBadWeight indicates a negative edge weight. Travel costs must be
	// non-negative (negative cycles would make replay answers meaningless).
	ErrBadWeight = errors.New("offline: edge weight must be non-negative")

	// ErrBadQuery indicates a query that sets neither or both of close/distance.
	ErrBadQuery = errors.New("offline: query must set exactly one of close or distance")
)

// Edge is a road between two vertices. Vertex references are 1-based, as in
// the source problem format.
type Edge struct {
	From   int   `yaml:"from"`
	To     int   `yaml:"to"`
	Weight int64 `yaml:"weight"`
}

// Endpoint names the two vertices of a distance query (1-based).
type Endpoint struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// Query is either a road closure or a distance question. Exactly one of the
// two fields must be set: Close > 0 references an edge (1-based index into
// the scenario's edge list), or Distance names a vertex pair.
type Query struct {
	Close    int       `yaml:"close,omitempty"`
	Distance *Endpoint `yaml:"distance,omitempty"`
}

// Scenario is a complete offline problem: the network plus the ordered query
// list. Load or Parse followed by Run answers every distance query.
type Scenario struct {
	Vertices int     `yaml:"vertices"`
	Directed bool    `yaml:"directed"` // default false: two-way roads
	Edges    []Edge  `yaml:"edges"`
	Queries  []Query `yaml:"queries"`
}

// Load reads and parses a YAML scenario file, then validates it.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("offline: read scenario %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a YAML scenario document and validates it.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("offline: parse scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks every reference in the scenario before any engine work:
// vertex ids in range, edge weights non-negative, query shapes well-formed,
// and each edge closed at most once. Run calls this itself; callers only
// need it to surface problems early.
func (s *Scenario) Validate() error {
	if s.Vertices < 1 {
		return ErrNoVertices
	}

	for i, e := range s.Edges {
		if e.From < 1 || e.From > s.Vertices || e.To < 1 || e.To > s.Vertices {
			return fmt.Errorf("edge %d (%d->%d): %w", i+1, e.From, e.To, ErrVertexOutOfRange)
		}
		if e.Weight < 0 {
			return fmt.Errorf("edge %d: weight %d: %w", i+1, e.Weight, ErrBadWeight)
		}
	}

	closed := make(map[int]bool, len(s.Queries))
	for i, q := range s.Queries {
		switch {
		case q.Close > 0 && q.Distance == nil:
			if q.Close > len(s.Edges) {
				return fmt.Errorf("query %d: close %d: %w", i+1, q.Close, ErrEdgeOutOfRange)
			}
			if closed[q.Close] {
				return fmt.Errorf("query %d: close %d: %w", i+1, q.Close, ErrEdgeReclosed)
			}
			closed[q.Close] = true
		case q.Close == 0 && q.Distance != nil:
			d := q.Distance
			if d.From < 1 || d.From > s.Vertices || d.To < 1 || d.To > s.Vertices {
				return fmt.Errorf("query %d (%d->%d): %w", i+1, d.From, d.To, ErrVertexOutOfRange)
			}
		default:
			return fmt.Errorf("query %d: %w", i+1, ErrBadQuery)
		}
	}

	return nil
}
