package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	boardPath   string
	configPath  string
	generations int
	rowGroups   int
	colGroups   int
	frameRate   time.Duration
	plain       bool
	noClear     bool
	logLevel    string
	logJSON     bool

	rootCmd = &cobra.Command{
		Use:   "gol-regions",
		Short: "Conway's Game of Life evolved over concurrently scanned sub-regions",
	}

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Load a board and print every generation",
		RunE:  runGame,
	}
)

func init() {
	flags := runCmd.Flags()
	flags.StringVarP(&boardPath, "board", "b", "board.csv", "delimited text file holding the initial board")
	flags.StringVarP(&configPath, "config", "c", "", "optional JSON or YAML configuration file")
	flags.IntVarP(&generations, "generations", "n", 0, "number of generations to compute (overrides config)")
	flags.IntVar(&rowGroups, "row-groups", 0, "number of row spans per generation (overrides config)")
	flags.IntVar(&colGroups, "col-groups", 0, "number of column spans per generation (overrides config)")
	flags.DurationVar(&frameRate, "delay", 0, "pause between generations (overrides config)")
	flags.BoolVar(&plain, "plain", false, "print cells as 0/1 digits")
	flags.BoolVar(&noClear, "no-clear", false, "do not clear the screen between generations")
	flags.StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	flags.BoolVar(&logJSON, "log-json", false, "write logs as JSON")

	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
