package puzzle

import (
	"fmt"
	"os"
	"strings"

	"word-search-solver/internal/solver"
)

// FormatGrid renders the grid with a space between letters, one row per
// line.
func FormatGrid(grid *solver.Grid) string {
	var sb strings.Builder
	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(grid.At(r, c))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatOutcome renders a single word's result, e.g. "CAT (0, 0) right" or
// "DOG not found".
func FormatOutcome(o solver.Outcome) string {
	if !o.Found {
		return fmt.Sprintf("%s not found", o.Word)
	}
	return fmt.Sprintf("%s (%d, %d) %s", o.Word, o.Solution.Row, o.Solution.Col, o.Solution.Direction)
}

// FormatSolutions renders one line per target word in word-list order.
func FormatSolutions(result *solver.Result) string {
	var sb strings.Builder
	for _, o := range result.Outcomes() {
		sb.WriteString(FormatOutcome(o))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Report is the result of solving one named puzzle.
type Report struct {
	Name   string
	Result *solver.Result
}

// FormatReports renders the solutions of every report. When there is more
// than one report, each block is preceded by a "# name" header.
func FormatReports(reports []Report) string {
	var sb strings.Builder
	for _, r := range reports {
		if len(reports) > 1 {
			fmt.Fprintf(&sb, "# %s\n", r.Name)
		}
		sb.WriteString(FormatSolutions(r.Result))
	}
	return sb.String()
}

// WriteSolutions writes FormatReports output to outputPath.
func WriteSolutions(reports []Report, outputPath string) error {
	if err := os.WriteFile(outputPath, []byte(FormatReports(reports)), 0644); err != nil {
		return fmt.Errorf("failed to write solutions file: %w", err)
	}

	return nil
}
