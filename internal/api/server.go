package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"word-search-solver/internal/config"
	"word-search-solver/internal/puzzle"
	"word-search-solver/internal/solver"
)

var errGridTooLarge = errors.New("grid too large")

// Server implements ServerInterface on top of a SQLite store.
type Server struct {
	db           *sql.DB
	apiKey       string
	workers      int
	maxGridCells int
}

// NewServer creates a new API server
func NewServer(db *sql.DB, cfg config.Config) ServerInterface {
	return &Server{
		db:           db,
		apiKey:       cfg.APIKey,
		workers:      cfg.Workers,
		maxGridCells: cfg.MaxGridCells,
	}
}

// SolvePuzzle solves a puzzle given in the request body without storing it.
func (s *Server) SolvePuzzle(w http.ResponseWriter, r *http.Request) {
	var req PuzzleReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sv, err := s.newSolver(req.Grid, req.Words, req.Normalize)
	if err != nil {
		writeSolverError(w, err)
		return
	}

	result, _, err := s.solve(r.Context(), sv)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to solve puzzle")
		return
	}

	writeJSON(w, http.StatusOK, newSolveResponse(result))
}

// CreatePuzzle validates and stores a puzzle.
func (s *Server) CreatePuzzle(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		writeError(w, http.StatusUnauthorized, "Invalid or missing API key")
		return
	}

	var req PuzzleReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Validate by building a solver; the stored form is the normalised one.
	sv, err := s.newSolver(req.Grid, req.Words, req.Normalize)
	if err != nil {
		writeSolverError(w, err)
		return
	}

	name := req.Name
	if name == "" {
		name = "untitled"
	}

	p, err := CreatePuzzle(s.db, name, sv.Grid().Strings(), sv.Words())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to store puzzle")
		return
	}

	writeJSON(w, http.StatusCreated, p)
}

// ListPuzzles returns all stored puzzles.
func (s *Server) ListPuzzles(w http.ResponseWriter, r *http.Request) {
	puzzles, err := ListPuzzles(s.db)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch puzzles")
		return
	}

	writeJSON(w, http.StatusOK, puzzles)
}

// GetPuzzle returns a single stored puzzle.
func (s *Server) GetPuzzle(w http.ResponseWriter, r *http.Request, puzzleId string) {
	p, ok := s.lookupPuzzle(w, puzzleId)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, p)
}

// SolveStoredPuzzle solves a stored puzzle and records the run.
func (s *Server) SolveStoredPuzzle(w http.ResponseWriter, r *http.Request, puzzleId string) {
	if !s.authorized(r) {
		writeError(w, http.StatusUnauthorized, "Invalid or missing API key")
		return
	}

	p, ok := s.lookupPuzzle(w, puzzleId)
	if !ok {
		return
	}

	sv, err := s.newSolver(p.Grid, p.Words, false)
	if err != nil {
		writeSolverError(w, err)
		return
	}

	result, elapsed, err := s.solve(r.Context(), sv)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to solve puzzle")
		return
	}

	resp := newSolveResponse(result)
	run, err := RecordSolveRun(s.db, p.Id, resp.Results, elapsed)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to record solve run")
		return
	}

	resp.PuzzleId = &p.Id
	resp.RunId = &run.Id
	writeJSON(w, http.StatusOK, resp)
}

// ListSolveRuns returns the runs recorded for a stored puzzle.
func (s *Server) ListSolveRuns(w http.ResponseWriter, r *http.Request, puzzleId string) {
	if _, ok := s.lookupPuzzle(w, puzzleId); !ok {
		return
	}

	runs, err := ListSolveRuns(s.db, puzzleId)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch solve runs")
		return
	}

	writeJSON(w, http.StatusOK, runs)
}

func (s *Server) authorized(r *http.Request) bool {
	key := r.Header.Get("api_key")
	return key != "" && key == s.apiKey
}

// lookupPuzzle writes the error response itself when the puzzle cannot be
// returned.
func (s *Server) lookupPuzzle(w http.ResponseWriter, puzzleId string) (*Puzzle, bool) {
	p, err := GetPuzzle(s.db, puzzleId)
	if errors.Is(err, ErrPuzzleNotFound) {
		writeError(w, http.StatusNotFound, "Puzzle not found")
		return nil, false
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch puzzle")
		return nil, false
	}
	return p, true
}

func (s *Server) newSolver(rows []string, words []string, normalize bool) (*solver.Solver, error) {
	grid, err := puzzle.ParseGrid(strings.Join(rows, "\n"))
	if err != nil {
		return nil, err
	}
	if grid.Rows()*grid.Cols() > s.maxGridCells {
		return nil, fmt.Errorf("%w: %d cells exceeds limit of %d", errGridTooLarge, grid.Rows()*grid.Cols(), s.maxGridCells)
	}

	if normalize {
		if grid, err = puzzle.NormalizeGrid(grid); err != nil {
			return nil, err
		}
		words = puzzle.Normalize(words)
	}

	return solver.New(grid, words)
}

func (s *Server) solve(ctx context.Context, sv *solver.Solver) (*solver.Result, time.Duration, error) {
	start := time.Now()
	if s.workers == 1 {
		return sv.Solve(), time.Since(start), nil
	}

	result, err := sv.SolveParallel(ctx, s.workers)
	if err != nil {
		return nil, 0, err
	}
	return result, time.Since(start), nil
}

func newSolveResponse(result *solver.Result) SolveResponse {
	resp := SolveResponse{
		Results:   make([]WordResult, 0, len(result.Words())),
		Remaining: []string{},
	}

	for _, o := range result.Outcomes() {
		wr := WordResult{Word: o.Word, Found: o.Found}
		if o.Found {
			row, col, dir := o.Solution.Row, o.Solution.Col, o.Solution.Direction.String()
			wr.Row, wr.Col, wr.Direction = &row, &col, &dir
			resp.Found++
		} else {
			resp.Remaining = append(resp.Remaining, o.Word)
		}
		resp.Results = append(resp.Results, wr)
	}
	resp.Total = len(resp.Results)

	return resp
}

func writeSolverError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, solver.ErrInvalidGrid):
		writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("Invalid grid: %v", err))
	case errors.Is(err, solver.ErrInvalidWord):
		writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("Invalid word list: %v", err))
	case errors.Is(err, errGridTooLarge):
		writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("Grid too large: %v", err))
	default:
		writeError(w, http.StatusInternalServerError, "Failed to prepare puzzle")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
