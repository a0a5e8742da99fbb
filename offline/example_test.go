// Package offline_test provides a runnable example for the offline solver.
package offline_test

import (
	"fmt"

	"github.com/katalvlaran/apsp/offline"
)

// ExampleRun answers distance queries interleaved with road closures.
// The third query runs after both alternative roads to vertex 3 are closed,
// so vertex 3 is unreachable and the answer is -1.
func ExampleRun() {
	scenario := &offline.Scenario{
		Vertices: 3,
		Edges: []offline.Edge{
			{From: 1, To: 2, Weight: 5},
			{From: 2, To: 3, Weight: 7},
			{From: 1, To: 3, Weight: 100},
		},
		Queries: []offline.Query{
			{Distance: &offline.Endpoint{From: 1, To: 3}},
			{Close: 2},
			{Distance: &offline.Endpoint{From: 1, To: 3}},
			{Close: 3},
			{Distance: &offline.Endpoint{From: 1, To: 3}},
		},
	}

	answers, err := offline.Run(scenario)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, a := range answers {
		fmt.Println(a)
	}
	// Output:
	// 12
	// 100
	// -1
}
