package api

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary SQLite database for testing
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := InitDB(dbPath)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	assert.NoError(t, Migrate(db))
}

func TestCreateAndGetPuzzle(t *testing.T) {
	db := setupTestDB(t)

	created, err := CreatePuzzle(db, "animals", []string{"CAT", "XXX"}, []string{"CAT", "DOG"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.Id)

	got, err := GetPuzzle(db, created.Id)
	require.NoError(t, err)
	assert.Equal(t, created.Id, got.Id)
	assert.Equal(t, "animals", got.Name)
	assert.Equal(t, []string{"CAT", "XXX"}, got.Grid)
	assert.Equal(t, []string{"CAT", "DOG"}, got.Words)
	assert.WithinDuration(t, created.CreatedAt, got.CreatedAt, time.Second)
}

func TestGetPuzzle(t *testing.T) {
	tests := []struct {
		name        string
		closeDB     bool
		wantMissing bool
	}{
		{
			name:        "NonExistentPuzzle",
			wantMissing: true,
		},
		{
			name:    "DBError",
			closeDB: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			if tt.closeDB {
				db.Close()
			}

			p, err := GetPuzzle(db, "NONEXISTENT")
			assert.Nil(t, p)
			require.Error(t, err)
			assert.Equal(t, tt.wantMissing, errors.Is(err, ErrPuzzleNotFound))
		})
	}
}

func TestListPuzzles(t *testing.T) {
	db := setupTestDB(t)

	puzzles, err := ListPuzzles(db)
	require.NoError(t, err)
	assert.Empty(t, puzzles)
	assert.NotNil(t, puzzles)

	first, err := CreatePuzzle(db, "first", []string{"AB"}, []string{"AB"})
	require.NoError(t, err)
	second, err := CreatePuzzle(db, "second", []string{"CD"}, []string{"CD"})
	require.NoError(t, err)

	puzzles, err = ListPuzzles(db)
	require.NoError(t, err)
	require.Len(t, puzzles, 2)
	assert.Equal(t, second.Id, puzzles[0].Id)
	assert.Equal(t, first.Id, puzzles[1].Id)
}

func TestListPuzzles_DBError(t *testing.T) {
	db := setupTestDB(t)
	db.Close()
	_, err := ListPuzzles(db)
	assert.Error(t, err)
}

func TestRecordAndListSolveRuns(t *testing.T) {
	db := setupTestDB(t)

	p, err := CreatePuzzle(db, "p", []string{"CAT"}, []string{"CAT", "DOG"})
	require.NoError(t, err)

	row, col, dir := 0, 0, "right"
	results := []WordResult{
		{Word: "CAT", Found: true, Row: &row, Col: &col, Direction: &dir},
		{Word: "DOG"},
	}

	run, err := RecordSolveRun(db, p.Id, results, 1500*time.Microsecond)
	require.NoError(t, err)
	assert.NotEmpty(t, run.Id)
	assert.Equal(t, 1, run.Found)
	assert.Equal(t, 2, run.Total)
	assert.Equal(t, int64(1500), run.DurationUs)

	runs, err := ListSolveRuns(db, p.Id)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, run.Id, runs[0].Id)
	assert.Equal(t, results, runs[0].Results)

	runs, err = ListSolveRuns(db, "other")
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestRecordSolveRun_DBError(t *testing.T) {
	db := setupTestDB(t)
	db.Close()
	_, err := RecordSolveRun(db, "p", nil, time.Millisecond)
	assert.Error(t, err)
}

func TestInitDB_Error(t *testing.T) {
	_, err := InitDB("/nonexistent/directory/that/should/not/exist/test.db")
	assert.Error(t, err)
}
