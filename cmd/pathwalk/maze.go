package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pathwalk/pathwalk/astar"
	"github.com/pathwalk/pathwalk/bfs"
	"github.com/pathwalk/pathwalk/core"
	"github.com/pathwalk/pathwalk/samples/maze"
)

var (
	mazeStart     string
	mazeTarget    string
	mazeAlgorithm string
)

var mazeCmd = &cobra.Command{
	Use:   "maze",
	Short: "Find a route across the sample 10x10 maze grid",
	RunE:  runMaze,
}

func init() {
	mazeCmd.Flags().StringVar(&mazeStart, "start", "4,2", "start cell as row,col")
	mazeCmd.Flags().StringVar(&mazeTarget, "target", "9,6", "target cell as row,col")
	mazeCmd.Flags().StringVar(&mazeAlgorithm, "algorithm", "bfs", "bfs|dijkstra")
}

func runMaze(cmd *cobra.Command, args []string) error {
	start, err := parseCell(mazeStart)
	if err != nil {
		return err
	}
	target, err := parseCell(mazeTarget)
	if err != nil {
		return err
	}

	g := maze.Sample10x10()
	var path []core.Edge[maze.Cell]

	switch mazeAlgorithm {
	case "bfs":
		s, err := bfs.New[maze.Cell](g, maze.TargetCell(target))
		if err != nil {
			return err
		}
		path, err = s.Run(start, nil)
		if err != nil {
			return err
		}
	case "dijkstra":
		s, err := astar.Dijkstra[maze.Cell](g, astar.WithTargetPredicate[maze.Cell](maze.TargetCell(target)))
		if err != nil {
			return err
		}
		path, err = s.Run(start, nil)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown algorithm %q", mazeAlgorithm)
	}

	if path == nil {
		fmt.Println("no route found")
		return nil
	}
	printPath(path)
	return nil
}

func parseCell(csv string) (maze.Cell, error) {
	parts := strings.Split(csv, ",")
	if len(parts) != 2 {
		return maze.Cell{}, fmt.Errorf("expected row,col, got %q", csv)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return maze.Cell{}, err
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return maze.Cell{}, err
	}
	return maze.Cell{Row: row, Col: col}, nil
}
