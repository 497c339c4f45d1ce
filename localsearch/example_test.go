package localsearch_test

import (
	"fmt"

	"github.com/pathwalk/pathwalk/localsearch"
)

func ExampleSearch_Run() {
	g := mapGraph{
		"a": {edge("b", 1)},
		"b": {edge("c", 1)},
		"c": {},
	}
	h := map[string]float64{"a": 2, "b": 1, "c": 0}

	s, err := localsearch.New[string](g, func(n string) float64 { return h[n] })
	if err != nil {
		panic(err)
	}

	fmt.Println(s.Run("a", nil))
	// Output: c
}
