package parallel_test

import (
	"fmt"

	"github.com/pathwalk/pathwalk/core"
	"github.com/pathwalk/pathwalk/parallel"
)

func ExampleSearch_Run() {
	g := mapGraph{
		"s": {edge("a", 1), edge("b", 1)},
		"a": {edge("t", 1)},
		"b": {edge("t", 5)},
		"t": {},
	}

	s, err := parallel.New[string](g, func(string) float64 { return 0 },
		parallel.WithWorkers[string](4),
		parallel.WithTargetPredicate[string](func(n string) bool { return n == "t" }))
	if err != nil {
		panic(err)
	}

	path, err := s.Run("s", nil)
	if err != nil {
		panic(err)
	}
	var total float64
	for _, e := range path {
		total += e.Weight
	}
	fmt.Println(total)
	// Output: 2
}

var _ core.Graph[string] = mapGraph{}
