package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Solve a puzzle without storing it
	// (POST /solve)
	SolvePuzzle(w http.ResponseWriter, r *http.Request)
	// List stored puzzles
	// (GET /puzzles)
	ListPuzzles(w http.ResponseWriter, r *http.Request)
	// Store a puzzle
	// (POST /puzzles)
	CreatePuzzle(w http.ResponseWriter, r *http.Request)
	// Get a stored puzzle
	// (GET /puzzles/{puzzleId})
	GetPuzzle(w http.ResponseWriter, r *http.Request, puzzleId string)
	// Solve a stored puzzle and record the run
	// (POST /puzzles/{puzzleId}/solve)
	SolveStoredPuzzle(w http.ResponseWriter, r *http.Request, puzzleId string)
	// List the recorded runs of a stored puzzle
	// (GET /puzzles/{puzzleId}/runs)
	ListSolveRuns(w http.ResponseWriter, r *http.Request, puzzleId string)
}

// withPuzzleID binds the puzzleId path parameter before calling handler.
func withPuzzleID(handler func(http.ResponseWriter, *http.Request, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var puzzleId string

		err := runtime.BindStyledParameterWithOptions("simple", "puzzleId", chi.URLParam(r, "puzzleId"), &puzzleId,
			runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter puzzleId: %v", err))
			return
		}

		handler(w, r, puzzleId)
	}
}

// HandlerFromMux registers the routes of si on r and returns r.
func HandlerFromMux(si ServerInterface, r chi.Router) http.Handler {
	r.Post("/solve", si.SolvePuzzle)
	r.Route("/puzzles", func(r chi.Router) {
		r.Get("/", si.ListPuzzles)
		r.Post("/", si.CreatePuzzle)
		r.Get("/{puzzleId}", withPuzzleID(si.GetPuzzle))
		r.Post("/{puzzleId}/solve", withPuzzleID(si.SolveStoredPuzzle))
		r.Get("/{puzzleId}/runs", withPuzzleID(si.ListSolveRuns))
	})
	return r
}
