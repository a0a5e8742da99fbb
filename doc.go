// Package apsp maintains all-pairs shortest-path distances for weighted
// directed graphs, with incremental single-edge relaxation.
//
// 🚀 What is apsp?
//
//	A small, focused library around one data structure:
//		• floydwarshall/ — the APSP engine: O(n³) Floyd–Warshall full solve,
//		  O(1) lazy edge insertion, O(n²) incremental relaxation of a single
//		  edge, negative-cycle detection, and an explicit valid/stale state
//		  machine guarding every query.
//		• offline/      — a ready-made application of the engine: answering
//		  road-closure distance queries by replaying the query list in
//		  reverse, turning deletions into incremental insertions.
//		• cmd/apsp      — a CLI that runs YAML scenario files.
//
// ✨ Why choose apsp?
//
//   - Relax-and-go – insert edges in O(1), solve once, then keep the matrix
//     current with O(n²) propagations instead of O(n³) re-solves
//   - Honest state – stale matrices refuse queries instead of returning
//     silently wrong distances
//   - Generic weights – any signed integer or float type, finite sentinels
//     for contest-style integer graphs, +Inf for float graphs
//
// Quick taste:
//
//	fw, _ := floydwarshall.New[int64](3, 1_000_000_000)
//	fw.AddEdge(0, 1, 3)
//	fw.AddEdge(1, 2, 4)
//	m := fw.Solve()                                      // dist[0][2] == 7
//	fw.AddEdge(0, 2, 1, floydwarshall.WithPropagation()) // dist[0][2] == 1
//
// Dive into the package docs of floydwarshall and offline for the full
// contracts, complexity tables, and sentinel error sets.
package apsp
