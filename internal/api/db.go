package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// ErrPuzzleNotFound is returned when a puzzle ID has no stored puzzle.
var ErrPuzzleNotFound = errors.New("puzzle not found")

// Schema creates the tables used by the service. It is safe to run more than
// once.
const Schema = `
	CREATE TABLE IF NOT EXISTS puzzles (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		grid TEXT NOT NULL,
		words TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS solve_runs (
		id TEXT PRIMARY KEY,
		puzzle_id TEXT NOT NULL,
		found INTEGER NOT NULL,
		total INTEGER NOT NULL,
		results TEXT NOT NULL,
		duration_us INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL,
		FOREIGN KEY (puzzle_id) REFERENCES puzzles(id)
	);

	CREATE INDEX IF NOT EXISTS idx_solve_runs_puzzle ON solve_runs(puzzle_id);
`

// InitDB initializes and returns a SQLite database connection
func InitDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Migrate creates any missing tables.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(Schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// CreatePuzzle stores a puzzle and returns it with its generated ID.
func CreatePuzzle(db *sql.DB, name string, grid []string, words []string) (*Puzzle, error) {
	wordsJSON, err := json.Marshal(words)
	if err != nil {
		return nil, fmt.Errorf("failed to encode words: %w", err)
	}

	p := &Puzzle{
		Id:        uuid.New().String(),
		Name:      name,
		Grid:      grid,
		Words:     words,
		CreatedAt: time.Now().UTC(),
	}

	query := `INSERT INTO puzzles (id, name, grid, words, created_at) VALUES (?, ?, ?, ?, ?)`
	if _, err := db.Exec(query, p.Id, p.Name, strings.Join(grid, "\n"), string(wordsJSON), p.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to insert puzzle: %w", err)
	}

	return p, nil
}

func scanPuzzle(scan func(dest ...any) error) (*Puzzle, error) {
	var p Puzzle
	var grid, words string
	if err := scan(&p.Id, &p.Name, &grid, &words, &p.CreatedAt); err != nil {
		return nil, err
	}

	p.Grid = strings.Split(grid, "\n")
	if err := json.Unmarshal([]byte(words), &p.Words); err != nil {
		return nil, fmt.Errorf("failed to decode words of puzzle %s: %w", p.Id, err)
	}

	return &p, nil
}

// GetPuzzle fetches a single puzzle by its ID
func GetPuzzle(db *sql.DB, id string) (*Puzzle, error) {
	query := `SELECT id, name, grid, words, created_at FROM puzzles WHERE id = ?`

	p, err := scanPuzzle(db.QueryRow(query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", ErrPuzzleNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query puzzle: %w", err)
	}

	return p, nil
}

// ListPuzzles fetches all puzzles, most recent first
func ListPuzzles(db *sql.DB) ([]Puzzle, error) {
	query := `SELECT id, name, grid, words, created_at FROM puzzles ORDER BY created_at DESC, rowid DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query puzzles: %w", err)
	}
	defer rows.Close()

	puzzles := []Puzzle{}
	for rows.Next() {
		p, err := scanPuzzle(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan puzzle: %w", err)
		}
		puzzles = append(puzzles, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating puzzles: %w", err)
	}

	return puzzles, nil
}

// RecordSolveRun stores the outcome of solving a stored puzzle and returns
// the run with its generated ID.
func RecordSolveRun(db *sql.DB, puzzleID string, results []WordResult, elapsed time.Duration) (*SolveRun, error) {
	resultsJSON, err := json.Marshal(results)
	if err != nil {
		return nil, fmt.Errorf("failed to encode results: %w", err)
	}

	run := &SolveRun{
		Id:         uuid.New().String(),
		PuzzleId:   puzzleID,
		Found:      countFound(results),
		Total:      len(results),
		Results:    results,
		DurationUs: elapsed.Microseconds(),
		CreatedAt:  time.Now().UTC(),
	}

	query := `INSERT INTO solve_runs (id, puzzle_id, found, total, results, duration_us, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`
	if _, err := db.Exec(query, run.Id, run.PuzzleId, run.Found, run.Total, string(resultsJSON), run.DurationUs, run.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to insert solve run: %w", err)
	}

	return run, nil
}

// ListSolveRuns fetches the runs recorded for a puzzle, most recent first
func ListSolveRuns(db *sql.DB, puzzleID string) ([]SolveRun, error) {
	query := `SELECT id, puzzle_id, found, total, results, duration_us, created_at
		FROM solve_runs WHERE puzzle_id = ? ORDER BY created_at DESC, rowid DESC`

	rows, err := db.Query(query, puzzleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query solve runs: %w", err)
	}
	defer rows.Close()

	runs := []SolveRun{}
	for rows.Next() {
		var run SolveRun
		var results string
		if err := rows.Scan(&run.Id, &run.PuzzleId, &run.Found, &run.Total, &results, &run.DurationUs, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan solve run: %w", err)
		}
		if err := json.Unmarshal([]byte(results), &run.Results); err != nil {
			return nil, fmt.Errorf("failed to decode results of run %s: %w", run.Id, err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating solve runs: %w", err)
	}

	return runs, nil
}

func countFound(results []WordResult) int {
	found := 0
	for _, r := range results {
		if r.Found {
			found++
		}
	}
	return found
}
