// Package persistence provides an optional SQLite store for finished
// runs, so repeated simulations can be compared later. The engine never
// touches it; the CLI writes results here after a run completes.
package persistence

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/forgesim/smithg/internal/config"
	"github.com/forgesim/smithg/internal/economy"
	"github.com/forgesim/smithg/internal/engine"
)

// DB wraps a SQLite connection for run-history storage.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		rounds INTEGER NOT NULL,
		seed INTEGER NOT NULL,
		market TEXT NOT NULL,
		agents INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS results (
		run_id TEXT NOT NULL REFERENCES runs(id),
		rank INTEGER NOT NULL,
		agent_name TEXT NOT NULL,
		balance INTEGER NOT NULL,
		PRIMARY KEY (run_id, rank)
	);

	CREATE INDEX IF NOT EXISTS idx_results_run ON results(run_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveRun stores a finished run and its ranked results, returning the
// new run ID. Results are stored in the order given, rank 1 first.
func (db *DB) SaveRun(cfg config.Config, results []engine.Result) (string, error) {
	runID := uuid.NewString()

	tx, err := db.conn.Beginx()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (id, created_at, rounds, seed, market, agents) VALUES (?, ?, ?, ?, ?, ?)`,
		runID, time.Now().UTC().Format(time.RFC3339), cfg.Rounds, cfg.Seed, cfg.Market, len(results),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	for i, r := range results {
		_, err = tx.Exec(
			`INSERT INTO results (run_id, rank, agent_name, balance) VALUES (?, ?, ?, ?)`,
			runID, i+1, r.Name, int64(r.Balance),
		)
		if err != nil {
			return "", fmt.Errorf("insert result: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return runID, nil
}

// LoadResults returns a stored run's results in rank order.
func (db *DB) LoadResults(runID string) ([]engine.Result, error) {
	rows := []struct {
		AgentName string `db:"agent_name"`
		Balance   int64  `db:"balance"`
	}{}
	err := db.conn.Select(&rows,
		`SELECT agent_name, balance FROM results WHERE run_id = ? ORDER BY rank`, runID)
	if err != nil {
		return nil, fmt.Errorf("load results: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("run %s not found", runID)
	}

	results := make([]engine.Result, 0, len(rows))
	for _, row := range rows {
		results = append(results, engine.Result{
			Name:    row.AgentName,
			Balance: economy.Amount(row.Balance),
		})
	}
	return results, nil
}
