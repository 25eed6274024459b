package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoadConfig_FallsBackOnInvalidValues(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("STORAGE_NAMESPACE", "taskAppDay2")
	t.Setenv("STORAGE_SCHEMA_VERSION", "2.0")
	t.Setenv("SESSION_TTL", "not-a-duration")
	t.Setenv("SEED_DEMO_USERS", "maybe")
	t.Setenv("MYSQL_PORT", "3306")

	cfg := LoadConfig()

	require.Equal(t, StorageMemory, cfg.StorageDriver)
	require.Equal(t, "taskAppDay2", cfg.StorageNamespace)
	require.Equal(t, "2.0", cfg.SchemaVersion)
	require.Equal(t, 24*time.Hour, cfg.SessionTTL)
	require.True(t, cfg.SeedDemoUsers)
	require.Equal(t, "3306", cfg.DbPort)
}

func TestLoadConfig_PostgresReadsPostgresVariables(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("STORAGE_DRIVER", "Postgres")
	t.Setenv("POSTGRES_HOST", "pg.local")
	t.Setenv("POSTGRES_PORT", "6543")

	cfg := LoadConfig()

	require.Equal(t, StoragePostgres, cfg.StorageDriver)
	require.Equal(t, "pg.local", cfg.DbHost)
	require.Equal(t, "6543", cfg.DbPort)
}

func TestParseList(t *testing.T) {
	require.Nil(t, parseList(""))
	require.Nil(t, parseList(" , ,"))
	require.Equal(t, []string{"http://localhost:5173", "https://tasks.example.com"},
		parseList(" http://localhost:5173 ,https://tasks.example.com,"))
}

func TestGetDuration(t *testing.T) {
	t.Setenv("X_TTL", "90m")
	require.Equal(t, 90*time.Minute, getDuration("X_TTL", time.Hour))
	t.Setenv("X_TTL", "-5m")
	require.Equal(t, time.Hour, getDuration("X_TTL", time.Hour))
}
