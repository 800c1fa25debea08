// Package puzzle reads word search puzzles from text files and formats their
// solutions.
package puzzle

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/exp/mmap"
	"golang.org/x/sync/errgroup"

	"word-search-solver/internal/solver"
)

// File extensions recognised by LoadDirectory.
const (
	GridExt  = ".grid"
	WordsExt = ".words"
)

// Puzzle is a grid together with the words hidden in it.
type Puzzle struct {
	Name  string
	Grid  *solver.Grid
	Words []string
}

// readFile maps filename into memory and returns a copy of its contents.
func readFile(filename string) (string, error) {
	r, err := mmap.Open(filename)
	if err != nil {
		return "", fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer r.Close()

	if r.Len() == 0 {
		return "", nil
	}

	data := make([]byte, r.Len())
	if _, err := r.ReadAt(data, 0); err != nil {
		return "", fmt.Errorf("error reading file %s: %w", filename, err)
	}

	return string(data), nil
}

// ParseGrid turns text into a grid, one row per non-blank line. Spaces, tabs
// and commas between letters are dropped; every other rune is a cell.
func ParseGrid(text string) (*solver.Grid, error) {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		row := strings.Map(func(r rune) rune {
			if r == ',' || unicode.IsSpace(r) {
				return -1
			}
			return r
		}, line)
		if row != "" {
			rows = append(rows, row)
		}
	}

	return solver.GridFromStrings(rows)
}

// ParseWordList splits text on commas and newlines and trims each word.
// Blank entries are dropped.
func ParseWordList(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '\n'
	})

	var words []string
	for _, f := range fields {
		word := strings.TrimSpace(f)
		if word != "" {
			words = append(words, word)
		}
	}

	return words
}

// Normalize upper-cases words and removes the spaces inside them, so that
// "ice cream" can be matched against a grid of capital letters. A word made
// only of spaces becomes "" and is left for solver.New to reject.
func Normalize(words []string) []string {
	normalized := make([]string, len(words))
	for i, w := range words {
		normalized[i] = strings.ToUpper(strings.Join(strings.Fields(w), ""))
	}
	return normalized
}

// NormalizeGrid returns a copy of grid with every cell upper-cased.
func NormalizeGrid(grid *solver.Grid) (*solver.Grid, error) {
	cells := make([][]rune, grid.Rows())
	for r := range cells {
		cells[r] = make([]rune, grid.Cols())
		for c := range cells[r] {
			cells[r][c] = unicode.ToUpper(grid.At(r, c))
		}
	}
	return solver.NewGrid(cells)
}

// Normalized returns a copy of the puzzle with its grid and words passed
// through NormalizeGrid and Normalize.
func (p *Puzzle) Normalized() (*Puzzle, error) {
	grid, err := NormalizeGrid(p.Grid)
	if err != nil {
		return nil, err
	}
	return &Puzzle{Name: p.Name, Grid: grid, Words: Normalize(p.Words)}, nil
}

// LoadGrid reads and parses a grid file.
func LoadGrid(filename string) (*solver.Grid, error) {
	text, err := readFile(filename)
	if err != nil {
		return nil, err
	}

	grid, err := ParseGrid(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse grid %s: %w", filename, err)
	}

	return grid, nil
}

// LoadWordList reads and parses a word list file.
func LoadWordList(filename string) ([]string, error) {
	text, err := readFile(filename)
	if err != nil {
		return nil, err
	}

	return ParseWordList(text), nil
}

// Load reads a puzzle from a grid file and a word list file.
func Load(name, gridFile, wordsFile string) (*Puzzle, error) {
	grid, err := LoadGrid(gridFile)
	if err != nil {
		return nil, err
	}

	words, err := LoadWordList(wordsFile)
	if err != nil {
		return nil, err
	}

	return &Puzzle{Name: name, Grid: grid, Words: words}, nil
}

// LoadDirectory loads every <name>.grid file in dirPath together with the
// matching <name>.words file. Files are read concurrently; the puzzles are
// returned sorted by name.
func LoadDirectory(ctx context.Context, dirPath string) ([]*Puzzle, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dirPath, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != GridExt {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), GridExt))
	}
	sort.Strings(names)

	puzzles := make([]*Puzzle, len(names))
	eg, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := Load(name,
				filepath.Join(dirPath, name+GridExt),
				filepath.Join(dirPath, name+WordsExt))
			if err != nil {
				return err
			}
			puzzles[i] = p
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return puzzles, nil
}
