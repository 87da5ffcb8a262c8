package persistence

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/forgesim/smithg/internal/config"
	"github.com/forgesim/smithg/internal/engine"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSaveAndLoadRun(t *testing.T) {
	db := openTestDB(t)

	results := []engine.Result{
		{Name: "work_bot", Balance: 420000},
		{Name: "random_bot_0", Balance: 1337},
	}

	runID, err := db.SaveRun(config.Default(), results)
	require.NoError(t, err)
	_, err = uuid.Parse(runID)
	require.NoError(t, err, "run ID should be a UUID")

	loaded, err := db.LoadResults(runID)
	require.NoError(t, err)
	require.Equal(t, results, loaded)
}

func TestLoadUnknownRun(t *testing.T) {
	db := openTestDB(t)
	_, err := db.LoadResults(uuid.NewString())
	require.Error(t, err)
}

func TestSaveMultipleRuns(t *testing.T) {
	db := openTestDB(t)

	first, err := db.SaveRun(config.Default(), []engine.Result{{Name: "a", Balance: 1}})
	require.NoError(t, err)
	second, err := db.SaveRun(config.Default(), []engine.Result{{Name: "b", Balance: 2}})
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	loaded, err := db.LoadResults(second)
	require.NoError(t, err)
	require.Equal(t, "b", loaded[0].Name)
}
