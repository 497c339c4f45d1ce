package nqueens_test

import (
	"fmt"

	"github.com/pathwalk/pathwalk/samples/nqueens"
)

func ExampleConflicts() {
	b, err := nqueens.New(1, 3, 0, 2)
	if err != nil {
		panic(err)
	}
	fmt.Println(nqueens.Conflicts(b))
	// Output: 0
}
