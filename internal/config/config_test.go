package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "DB_PATH", "API_KEY", "SOLVER_WORKERS"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "server.toml")
	content := `
addr = ":9090"
db_path = "/tmp/ws.db"
workers = 4
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "/tmp/ws.db", cfg.DBPath)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, Default().APIKey, cfg.APIKey)
	assert.Equal(t, Default().MaxGridCells, cfg.MaxGridCells)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "server.toml")
	require.NoError(t, os.WriteFile(path, []byte(`addr = ":9090"`), 0644))

	t.Setenv("PORT", "7000")
	t.Setenv("DB_PATH", "env.db")
	t.Setenv("API_KEY", "from-env")
	t.Setenv("SOLVER_WORKERS", "2")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, "env.db", cfg.DBPath)
	assert.Equal(t, "from-env", cfg.APIKey)
	assert.Equal(t, 2, cfg.Workers)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
	}{
		{name: "malformed toml", content: `addr = `},
		{name: "bad workers env", content: ``, env: map[string]string{"SOLVER_WORKERS": "many"}},
		{name: "non-positive grid limit", content: `max_grid_cells = 0`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			path := filepath.Join(t.TempDir(), "server.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}
