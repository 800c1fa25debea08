// Package solver finds a fixed list of words in a rectangular letter grid.
//
// Words may run in any of the eight straight directions. Every cell is tried
// as a starting point in row-major order and every direction in the order
// given by Directions; the first occurrence found for a word is the one
// reported.
package solver

import (
	"fmt"

	"word-search-solver/internal/trie"
)

// Solver searches one grid for one word list. The prefix tree is built by New
// and belongs to the Solver.
type Solver struct {
	grid    *Grid
	words   []string
	index   *trie.Trie
	onVisit func(row, col int)
}

// Option configures a Solver.
type Option func(*Solver)

// WithVisitHook registers fn to be called each time a cell is tried as a
// starting point. SolveParallel may call fn from several goroutines.
func WithVisitHook(fn func(row, col int)) Option {
	return func(s *Solver) {
		s.onVisit = fn
	}
}

// New creates a Solver for grid and words. Every word must be non-empty.
// Repeated words are kept once, at their first position.
func New(grid *Grid, words []string, opts ...Option) (*Solver, error) {
	if grid == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrInvalidGrid)
	}

	s := &Solver{
		grid:  grid,
		index: trie.New(),
	}

	seen := make(map[string]bool, len(words))
	for i, w := range words {
		if w == "" {
			return nil, fmt.Errorf("%w: word %d is empty", ErrInvalidWord, i)
		}
		if seen[w] {
			continue
		}
		seen[w] = true
		s.words = append(s.words, w)
		s.index.Insert(w)
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Grid returns the grid being searched.
func (s *Solver) Grid() *Grid {
	return s.grid
}

// Words returns the distinct target words in their original order.
func (s *Solver) Words() []string {
	return append([]string(nil), s.words...)
}

// Solve runs the search and returns what it found. It returns as soon as
// every word has been located.
func (s *Solver) Solve() *Result {
	result := newResult(s.words)
	remaining := make(map[string]struct{}, len(s.words))
	for _, w := range s.words {
		remaining[w] = struct{}{}
	}

	for row := 0; row < s.grid.rows; row++ {
		for col := 0; col < s.grid.cols; col++ {
			if len(remaining) == 0 {
				return result
			}
			s.visit(row, col)

			s.searchFrom(row, col, func(sol Solution) bool {
				if _, ok := remaining[sol.Word]; ok {
					delete(remaining, sol.Word)
					result.record(sol)
				}
				return len(remaining) == 0
			})
		}
	}

	return result
}

func (s *Solver) visit(row, col int) {
	if s.onVisit != nil {
		s.onVisit(row, col)
	}
}

// searchFrom follows every direction from (row, col) while the letters read
// so far form a prefix of some target word. match is called for each
// complete word met on the way; returning true abandons the search.
func (s *Solver) searchFrom(row, col int, match func(Solution) bool) bool {
	start, ok := s.index.Lookup(s.grid.cells[row][col], nil)
	if !ok {
		return false
	}

	buf := make([]rune, 0, 16)
	for _, d := range Directions {
		node := start
		buf = append(buf[:0], s.grid.cells[row][col])
		r, c := row, col

		for {
			if node.Terminal() {
				if match(Solution{Word: string(buf), Row: row, Col: col, Direction: d}) {
					return true
				}
			}
			if node.NumChildren() == 0 {
				break
			}

			r, c = r+d.DRow, c+d.DCol
			if !s.grid.InBounds(r, c) {
				break
			}

			ch := s.grid.cells[r][c]
			next, ok := s.index.Lookup(ch, node)
			if !ok {
				break
			}
			node = next
			buf = append(buf, ch)
		}
	}

	return false
}
