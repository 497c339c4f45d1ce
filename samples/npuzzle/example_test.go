package npuzzle_test

import (
	"fmt"

	"github.com/pathwalk/pathwalk/astar"
	"github.com/pathwalk/pathwalk/samples/npuzzle"
)

func ExampleGraph_OutgoingEdges() {
	start, err := npuzzle.New(1, 2, 3, 4, 5, 6, 7, 0, 8)
	if err != nil {
		panic(err)
	}

	s, err := astar.New[npuzzle.State](npuzzle.Instance, npuzzle.Manhattan)
	if err != nil {
		panic(err)
	}

	path, err := s.Run(start, nil)
	if err != nil {
		panic(err)
	}
	fmt.Println(len(path))
	// Output: 1
}
