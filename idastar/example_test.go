package idastar_test

import (
	"fmt"

	"github.com/pathwalk/pathwalk/idastar"
)

func ExampleSearch_Run() {
	g := mapGraph{
		"s": {edge("a", 1), edge("b", 1)},
		"a": {edge("t", 1)},
		"b": {edge("t", 5)},
		"t": {},
	}
	h := func(n string) float64 {
		if n == "t" {
			return 0
		}
		return 1
	}
	s, _ := idastar.New[string](g, h)

	path, _ := s.Run("s", nil)
	for _, e := range path {
		fmt.Println(e.Destination)
	}
	// Output:
	// a
	// t
}
