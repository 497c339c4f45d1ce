package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/pathwalk/pathwalk/localsearch"
	"github.com/pathwalk/pathwalk/samples/nqueens"
)

var (
	nqueensSize     int
	nqueensMaxSides int
	nqueensSeed     int64
)

var nqueensCmd = &cobra.Command{
	Use:   "nqueens",
	Short: "Place N queens on an N*N board via steepest descent",
	RunE:  runNQueens,
}

func init() {
	nqueensCmd.Flags().IntVar(&nqueensSize, "size", 8, "board side length")
	nqueensCmd.Flags().IntVar(&nqueensMaxSides, "max-sides", 50, "plateau-move budget")
	nqueensCmd.Flags().Int64Var(&nqueensSeed, "seed", 0, "random seed (0 = time-based)")
}

func runNQueens(cmd *cobra.Command, args []string) error {
	seed := nqueensSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	start, err := nqueens.RandomBoard(nqueensSize, rng)
	if err != nil {
		return err
	}

	s, err := localsearch.New[nqueens.Board](nqueens.Instance, nqueens.Conflicts,
		localsearch.WithMaxSides[nqueens.Board](nqueensMaxSides),
		localsearch.WithRandSource[nqueens.Board](rng))
	if err != nil {
		return err
	}

	result := s.Run(start, nil)
	fmt.Printf("start:  %v (conflicts %.0f)\n", start, nqueens.Conflicts(start))
	fmt.Printf("result: %v (conflicts %.0f)\n", result, nqueens.Conflicts(result))
	return nil
}
