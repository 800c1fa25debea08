package solver

import (
	"fmt"
	"strings"
)

// Grid is an immutable rectangular block of letters. Each cell holds exactly
// one rune.
type Grid struct {
	cells [][]rune
	rows  int
	cols  int
}

// NewGrid copies cells into a new Grid. It fails with ErrInvalidGrid if there
// are no rows, the first row is empty, or any row differs in length from the
// first.
func NewGrid(cells [][]rune) (*Grid, error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidGrid)
	}

	cols := len(cells[0])
	if cols == 0 {
		return nil, fmt.Errorf("%w: row 0 is empty", ErrInvalidGrid)
	}

	copied := make([][]rune, len(cells))
	for r, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidGrid, r, len(row), cols)
		}
		copied[r] = append([]rune(nil), row...)
	}

	return &Grid{cells: copied, rows: len(cells), cols: cols}, nil
}

// GridFromStrings builds a Grid where each string is one row and each rune is
// one cell.
func GridFromStrings(rows []string) (*Grid, error) {
	cells := make([][]rune, len(rows))
	for i, row := range rows {
		cells[i] = []rune(row)
	}
	return NewGrid(cells)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// At returns the rune at (row, col). The position must be in bounds.
func (g *Grid) At(row, col int) rune {
	return g.cells[row][col]
}

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Row returns a copy of the given row as a string.
func (g *Grid) Row(row int) string {
	return string(g.cells[row])
}

// Strings returns every row as a string.
func (g *Grid) Strings() []string {
	rows := make([]string, g.rows)
	for r := range rows {
		rows[r] = g.Row(r)
	}
	return rows
}

// Spell returns the word of the given length that starts at (row, col) and
// runs in direction d, or false if it would leave the grid.
func (g *Grid) Spell(row, col int, d Direction, length int) (string, bool) {
	var sb strings.Builder
	for i := 0; i < length; i++ {
		r, c := row+i*d.DRow, col+i*d.DCol
		if !g.InBounds(r, c) {
			return "", false
		}
		sb.WriteRune(g.cells[r][c])
	}
	return sb.String(), true
}
