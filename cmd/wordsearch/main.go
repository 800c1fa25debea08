package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"word-search-solver/internal/puzzle"
	"word-search-solver/internal/solver"
)

func main() {
	// Define command-line flags
	gridFile := flag.String("grid", "", "Grid file, one row per line (required unless -dir is set)")
	wordsFile := flag.String("words", "", "Word list file, comma or newline separated (required unless -dir is set)")
	dir := flag.String("dir", "", "Directory of <name>.grid / <name>.words pairs to solve in one go")
	outputFile := flag.String("output", "", "Write solutions to this file instead of standard output")
	workers := flag.Int("workers", 1, "Number of solver workers (1 solves sequentially, 0 uses all CPUs)")
	normalize := flag.Bool("normalize", false, "Upper-case words and drop spaces inside them")
	quiet := flag.Bool("quiet", false, "Only print solutions")
	flag.Parse()

	// Validate input
	if *dir == "" && (*gridFile == "" || *wordsFile == "") {
		fmt.Fprintf(os.Stderr, "Error: --grid and --words are required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	programStart := time.Now()
	progressCallback := func(msg string) {
		if *quiet {
			return
		}
		elapsed := time.Since(programStart)
		fmt.Fprintf(os.Stderr, "[%s] %s\n", formatElapsed(elapsed), msg)
	}

	var puzzles []*puzzle.Puzzle
	if *dir != "" {
		progressCallback(fmt.Sprintf("Loading puzzles from %s...", *dir))
		loaded, err := puzzle.LoadDirectory(context.Background(), *dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		puzzles = loaded
	} else {
		name := strings.TrimSuffix(filepath.Base(*gridFile), filepath.Ext(*gridFile))
		p, err := puzzle.Load(name, *gridFile, *wordsFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		puzzles = []*puzzle.Puzzle{p}
	}

	reports := make([]puzzle.Report, 0, len(puzzles))
	for _, p := range puzzles {
		if *normalize {
			normalized, err := p.Normalized()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error normalizing %s: %v\n", p.Name, err)
				os.Exit(1)
			}
			p = normalized
		}

		if !*quiet {
			fmt.Printf("%s\n\n%s\n%s\n\n", p.Name, puzzle.FormatGrid(p.Grid), strings.Join(p.Words, ", "))
		}

		result, err := solvePuzzle(p.Grid, p.Words, *workers)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error solving %s: %v\n", p.Name, err)
			os.Exit(1)
		}
		progressCallback(fmt.Sprintf("%s: found %d of %d words", p.Name, result.NumFound(), len(result.Words())))

		reports = append(reports, puzzle.Report{Name: p.Name, Result: result})
	}

	if *outputFile == "" {
		fmt.Print(puzzle.FormatReports(reports))
		return
	}

	if err := puzzle.WriteSolutions(reports, *outputFile); err != nil {
		fmt.Fprintf(os.Stderr, "\nError writing output: %v\n", err)
		os.Exit(1)
	}
	progressCallback(fmt.Sprintf("Solutions written to %s", *outputFile))
}

func solvePuzzle(grid *solver.Grid, words []string, workers int) (*solver.Result, error) {
	s, err := solver.New(grid, words)
	if err != nil {
		return nil, err
	}

	if workers == 1 {
		return s.Solve(), nil
	}
	return s.SolveParallel(context.Background(), workers)
}

// formatElapsed formats a duration into a human-readable elapsed time string
func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60

	if minutes > 0 {
		return fmt.Sprintf("%dm%02ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
