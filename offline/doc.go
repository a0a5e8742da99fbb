// Package offline answers road-closure distance queries over a weighted
// network, given the full query list up front.
//
// Overview:
//
//	A scenario describes a network (vertices, weighted edges) and an ordered
//	query list mixing two kinds of queries:
//
//	  – close: road i becomes impassable from this point on;
//	  – distance: the shortest travel cost between two vertices, as of this
//	    point in the sequence (closed roads excluded).
//
//	Edge deletion is not something an APSP structure supports cheaply, but
//	because the whole query list is known in advance the problem converts to
//	an incremental one: build the network from the edges that are never
//	closed, solve once, then replay the queries in reverse — each closure,
//	seen backwards, is an edge insertion, which the engine propagates in
//	O(n²) via floydwarshall.WithPropagation.
//
// Complexity: one O(n³) solve plus O(n²) per closure and O(1) per distance
// query, instead of O(n³) per closure.
//
// Scenario files are YAML with 1-based vertex and edge references:
//
//	vertices: 3
//	edges:
//	  - {from: 1, to: 2, weight: 5}
//	  - {from: 2, to: 3, weight: 7}
//	queries:
//	  - distance: {from: 1, to: 3}
//	  - close: 2
//	  - distance: {from: 1, to: 3}
//
// Edges are undirected (two-way roads) unless the scenario sets
// "directed: true". Unreachable pairs answer Unreachable (-1).
package offline
