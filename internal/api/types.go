package api

import "time"

// Puzzle is a stored grid with its word list.
type Puzzle struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Grid      []string  `json:"grid"`
	Words     []string  `json:"words"`
	CreatedAt time.Time `json:"createdAt"`
}

// PuzzleReq is the body of POST /puzzles and POST /solve. Each grid entry is
// one row; each rune in it is one cell.
type PuzzleReq struct {
	Name      string   `json:"name,omitempty"`
	Grid      []string `json:"grid"`
	Words     []string `json:"words"`
	Normalize bool     `json:"normalize,omitempty"`
}

// WordResult is the outcome for one word.
type WordResult struct {
	Word      string  `json:"word"`
	Found     bool    `json:"found"`
	Row       *int    `json:"row,omitempty"`
	Col       *int    `json:"col,omitempty"`
	Direction *string `json:"direction,omitempty"`
}

// SolveResponse is returned by the solve endpoints.
type SolveResponse struct {
	PuzzleId  *string      `json:"puzzleId,omitempty"`
	RunId     *string      `json:"runId,omitempty"`
	Found     int          `json:"found"`
	Total     int          `json:"total"`
	Results   []WordResult `json:"results"`
	Remaining []string     `json:"remaining"`
}

// SolveRun is a recorded solve of a stored puzzle.
type SolveRun struct {
	Id         string       `json:"id"`
	PuzzleId   string       `json:"puzzleId"`
	Found      int          `json:"found"`
	Total      int          `json:"total"`
	Results    []WordResult `json:"results"`
	DurationUs int64        `json:"durationUs"`
	CreatedAt  time.Time    `json:"createdAt"`
}
