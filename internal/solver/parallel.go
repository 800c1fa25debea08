package solver

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// firstRows tracks, per word, the lowest row in which a worker has found it.
// Workers use it to skip rows that can no longer change the result.
type firstRows struct {
	mu     sync.Mutex
	rows   map[string]int
	target int
}

func (f *firstRows) note(word string, row int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if prev, ok := f.rows[word]; !ok || row < prev {
		f.rows[word] = row
	}
}

// foundAbove reports whether word was already found in a row before row.
func (f *firstRows) foundAbove(word string, row int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	prev, ok := f.rows[word]
	return ok && prev < row
}

// settledAbove reports whether every word has been found in rows before row.
func (f *firstRows) settledAbove(row int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.rows) < f.target {
		return false
	}
	for _, r := range f.rows {
		if r >= row {
			return false
		}
	}
	return true
}

// SolveParallel runs the search with rows spread over a pool of workers.
// If workers is 0 or negative, runtime.NumCPU() is used. The result is the
// same as Solve's: per word, the match from the lowest row wins, and within a
// row the first match in column then direction order.
func (s *Solver) SolveParallel(ctx context.Context, workers int) (*Result, error) {
	workerPoolSize := workers
	if workerPoolSize <= 0 {
		workerPoolSize = runtime.NumCPU()
	}
	if workerPoolSize > s.grid.rows {
		workerPoolSize = s.grid.rows
	}

	tracker := &firstRows{rows: make(map[string]int), target: len(s.words)}
	rowMatches := make([][]Solution, s.grid.rows)
	rows := make(chan int, s.grid.rows)
	for r := 0; r < s.grid.rows; r++ {
		rows <- r
	}
	close(rows)

	eg, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workerPoolSize; w++ {
		eg.Go(func() error {
			for row := range rows {
				if err := ctx.Err(); err != nil {
					return err
				}
				if tracker.settledAbove(row) {
					continue
				}
				// each row index is written by exactly one worker
				rowMatches[row] = s.solveRow(row, tracker)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	result := newResult(s.words)
	for _, matches := range rowMatches {
		for _, sol := range matches {
			result.record(sol)
		}
	}
	return result, nil
}

// solveRow returns the first match of each word whose search starts in row,
// in the order they were found.
func (s *Solver) solveRow(row int, tracker *firstRows) []Solution {
	var matches []Solution
	seen := make(map[string]bool)

	for col := 0; col < s.grid.cols; col++ {
		if tracker.settledAbove(row) {
			return matches
		}
		s.visit(row, col)

		done := s.searchFrom(row, col, func(sol Solution) bool {
			if !seen[sol.Word] && !tracker.foundAbove(sol.Word, row) {
				seen[sol.Word] = true
				matches = append(matches, sol)
				tracker.note(sol.Word, row)
			}
			return tracker.settledAbove(row + 1)
		})
		if done {
			return matches
		}
	}

	return matches
}
