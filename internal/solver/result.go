package solver

// Solution locates one word: the cell holding its first letter and the
// direction in which the remaining letters follow.
type Solution struct {
	Word      string    `json:"word"`
	Row       int       `json:"row"`
	Col       int       `json:"col"`
	Direction Direction `json:"direction"`
}

// Outcome is the result for a single target word.
type Outcome struct {
	Word     string
	Found    bool
	Solution Solution
}

// Result holds what a solve pass found. At most one Solution is kept per
// word.
type Result struct {
	words     []string
	solutions map[string]Solution
}

func newResult(words []string) *Result {
	return &Result{
		words:     words,
		solutions: make(map[string]Solution, len(words)),
	}
}

// record stores sol unless its word already has a solution. It reports
// whether sol was stored.
func (r *Result) record(sol Solution) bool {
	if _, ok := r.solutions[sol.Word]; ok {
		return false
	}
	r.solutions[sol.Word] = sol
	return true
}

// Lookup returns the solution recorded for word.
func (r *Result) Lookup(word string) (Solution, bool) {
	sol, ok := r.solutions[word]
	return sol, ok
}

// Words returns the target words in their original order.
func (r *Result) Words() []string {
	return append([]string(nil), r.words...)
}

// Remaining returns the words that were not found, in word-list order.
func (r *Result) Remaining() []string {
	var remaining []string
	for _, w := range r.words {
		if _, ok := r.solutions[w]; !ok {
			remaining = append(remaining, w)
		}
	}
	return remaining
}

// Solutions returns the found words' solutions in word-list order.
func (r *Result) Solutions() []Solution {
	sols := make([]Solution, 0, len(r.solutions))
	for _, w := range r.words {
		if sol, ok := r.solutions[w]; ok {
			sols = append(sols, sol)
		}
	}
	return sols
}

// Outcomes returns one entry per target word in word-list order.
func (r *Result) Outcomes() []Outcome {
	outcomes := make([]Outcome, len(r.words))
	for i, w := range r.words {
		sol, ok := r.solutions[w]
		outcomes[i] = Outcome{Word: w, Found: ok, Solution: sol}
	}
	return outcomes
}

// NumFound returns how many words were found.
func (r *Result) NumFound() int {
	return len(r.solutions)
}

// Complete reports whether every word was found.
func (r *Result) Complete() bool {
	return len(r.solutions) == len(r.words)
}
