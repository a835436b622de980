package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"aoc2025/internal/config"
	"aoc2025/internal/days"
	"aoc2025/internal/puzzle"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Per-command flags
	inputPath string
	part      int

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "aoc2025",
	Short: "Advent of Code 2025 puzzle runner",
	Long: `aoc2025 runs the Advent of Code 2025 solutions.

Puzzle inputs are read from the configured input directory, one file per
day, and each registered day prints its part 1 and part 2 answers.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// solveCmd runs one day's puzzle
var solveCmd = &cobra.Command{
	Use:   "solve [day]",
	Short: "Solve one day's puzzle",
	Long: `Solves the given day against its puzzle input.

The input file defaults to <input_dir>/day-NN.txt from the config file and
can be overridden with --input.

Example:
  aoc2025 solve 8 --input inputs/day-08.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

// listCmd prints the registered days
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available days",
	RunE:  runList,
}

func runSolve(cmd *cobra.Command, args []string) error {
	day, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid day %q", args[0])
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	reg := puzzle.NewRegistry()
	days.RegisterAll(reg, days.Options{Day08Connections: cfg.Day08.Connections})

	p, ok := reg.Get(day)
	if !ok {
		return fmt.Errorf("day %d is not implemented", day)
	}

	path := inputPath
	if path == "" {
		path = filepath.Join(cfg.InputDir, fmt.Sprintf("day-%02d.txt", day))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read puzzle input: %w", err)
	}
	input := string(data)

	logger.Debug("solving puzzle",
		zap.Int("day", day),
		zap.String("title", p.Title),
		zap.String("input", path))

	if part == 0 || part == 1 {
		start := time.Now()
		answer, err := p.Part1(input)
		if err != nil {
			return fmt.Errorf("day %d part 1: %w", day, err)
		}
		logger.Debug("part 1 solved", zap.Int("day", day), zap.Duration("elapsed", time.Since(start)))
		fmt.Printf("Part 1: %v\n", answer)
	}

	if part == 0 || part == 2 {
		if p.Part2 == nil {
			if part == 2 {
				return fmt.Errorf("day %d part 2 is not implemented", day)
			}
			return nil
		}
		start := time.Now()
		answer, err := p.Part2(input)
		if err != nil {
			return fmt.Errorf("day %d part 2: %w", day, err)
		}
		logger.Debug("part 2 solved", zap.Int("day", day), zap.Duration("elapsed", time.Since(start)))
		fmt.Printf("Part 2: %v\n", answer)
	}
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	reg := puzzle.NewRegistry()
	days.RegisterAll(reg, days.DefaultOptions())

	for _, day := range reg.Days() {
		p, _ := reg.Get(day)
		parts := "parts 1-2"
		if p.Part2 == nil {
			parts = "part 1"
		}
		fmt.Printf("day %2d  %-24s %s\n", p.Day, p.Title, parts)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "aoc2025.yaml", "path to config file")

	solveCmd.Flags().StringVar(&inputPath, "input", "", "puzzle input file (overrides input_dir)")
	solveCmd.Flags().IntVar(&part, "part", 0, "part to solve (1 or 2, 0 for both)")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(listCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
