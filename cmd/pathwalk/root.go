package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "pathwalk",
	Short: "Drive the pathwalk search engines over a handful of sample problems",
	Long: `pathwalk is a demonstration CLI for the search engines in
github.com/pathwalk/pathwalk: A*, weighted A*, Dijkstra, greedy
best-first, breadth-first, IDA*, parallel IDA*, and steepest descent.

Each subcommand selects a sample problem domain; for npuzzle and maze,
--algorithm picks which engine solves it, while nqueens always uses
steepest descent.`,
}

func init() {
	rootCmd.AddCommand(npuzzleCmd)
	rootCmd.AddCommand(mazeCmd)
	rootCmd.AddCommand(nqueensCmd)
}
