package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pathwalk/pathwalk/astar"
	"github.com/pathwalk/pathwalk/core"
	"github.com/pathwalk/pathwalk/greedy"
	"github.com/pathwalk/pathwalk/idastar"
	"github.com/pathwalk/pathwalk/parallel"
	"github.com/pathwalk/pathwalk/samples/npuzzle"
)

var (
	npuzzleStart     string
	npuzzleAlgorithm string
	npuzzleHMul      float64
	npuzzleWorkers   int
)

var npuzzleCmd = &cobra.Command{
	Use:   "npuzzle",
	Short: "Solve a sliding-tile puzzle",
	RunE:  runNPuzzle,
}

func init() {
	npuzzleCmd.Flags().StringVar(&npuzzleStart, "start", "8,7,4,1,6,3,2,5,0", "comma-separated tile values, row-major, 0 for the empty cell")
	npuzzleCmd.Flags().StringVar(&npuzzleAlgorithm, "algorithm", "astar-manhattan", "astar-manhattan|astar-outofplace|dijkstra|greedy|idastar|parallel")
	npuzzleCmd.Flags().Float64Var(&npuzzleHMul, "hmul", 1, "heuristic multiplier (astar-manhattan only)")
	npuzzleCmd.Flags().IntVar(&npuzzleWorkers, "workers", 0, "worker count for parallel (0 = runtime default)")
}

func runNPuzzle(cmd *cobra.Command, args []string) error {
	values, err := parseInts(npuzzleStart)
	if err != nil {
		return err
	}
	start, err := npuzzle.New(values...)
	if err != nil {
		return err
	}

	var path []core.Edge[npuzzle.State]
	switch npuzzleAlgorithm {
	case "astar-manhattan":
		s, err := astar.New[npuzzle.State](npuzzle.Instance, npuzzle.Manhattan, astar.WithHeuristicMultiplier[npuzzle.State](npuzzleHMul))
		if err != nil {
			return err
		}
		path, err = s.Run(start, nil)
		if err != nil {
			return err
		}
	case "astar-outofplace":
		s, err := astar.New[npuzzle.State](npuzzle.Instance, npuzzle.OutOfPlace)
		if err != nil {
			return err
		}
		path, err = s.Run(start, nil)
		if err != nil {
			return err
		}
	case "dijkstra":
		s, err := astar.Dijkstra[npuzzle.State](npuzzle.Instance, astar.WithTargetPredicate[npuzzle.State](npuzzle.IsSolved))
		if err != nil {
			return err
		}
		path, err = s.Run(start, nil)
		if err != nil {
			return err
		}
	case "greedy":
		s, err := greedy.New[npuzzle.State](npuzzle.Instance, npuzzle.Manhattan)
		if err != nil {
			return err
		}
		path, err = s.Run(start, nil)
		if err != nil {
			return err
		}
	case "idastar":
		s, err := idastar.New[npuzzle.State](npuzzle.Instance, npuzzle.Manhattan)
		if err != nil {
			return err
		}
		path, err = s.Run(start, nil)
		if err != nil {
			return err
		}
	case "parallel":
		opts := []parallel.Option[npuzzle.State]{}
		if npuzzleWorkers > 0 {
			opts = append(opts, parallel.WithWorkers[npuzzle.State](npuzzleWorkers))
		}
		s, err := parallel.New[npuzzle.State](npuzzle.Instance, npuzzle.Manhattan, opts...)
		if err != nil {
			return err
		}
		path, err = s.Run(start, nil)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown algorithm %q", npuzzleAlgorithm)
	}

	if path == nil {
		fmt.Println("no solution found")
		return nil
	}
	printPath(path)
	return nil
}

func parseInts(csv string) ([]int, error) {
	fields := strings.Split(csv, ",")
	values := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid tile value %q: %w", f, err)
		}
		values[i] = v
	}
	return values, nil
}

func printPath[N comparable](path []core.Edge[N]) {
	var total float64
	for _, e := range path {
		total += e.Weight
		if e.Label != "" {
			fmt.Printf("%s (cost %.2f) -> %v\n", e.Label, e.Weight, e.Destination)
		} else {
			fmt.Printf("(cost %.2f) -> %v\n", e.Weight, e.Destination)
		}
	}
	fmt.Printf("path length: %d, total cost: %.2f\n", len(path), total)
}
