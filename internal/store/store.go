// Package store is the engine's persistence collaborator: per-learner
// skill state, per-(learner, item) review state, and an append-only
// outcome event log, all in a single SQLite file.
package store

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the database handle and hands out repositories.
type Store struct {
	db *sqlx.DB
}

// Open connects to the SQLite database at dsn, applies pragmas, and
// creates the schema if needed.
func Open(dsn string) (*Store, error) {
	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite allows a single writer; serialize through one connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return &Store{db: db}, nil
}

func applyPragmas(db *sqlx.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the underlying handle for tests.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// LearnerRepo returns the skill-state repository.
func (s *Store) LearnerRepo() LearnerRepo {
	return &learnerRepo{db: s.db}
}

// ReviewRepo returns the review-state repository.
func (s *Store) ReviewRepo() ReviewRepo {
	return &reviewRepo{db: s.db}
}

// EventRepo returns the outcome event log.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{db: s.db}
}

// ResetLearner deletes all state for one learner. The outcome event log
// is kept; it is an append-only history.
func (s *Store) ResetLearner(learnerID string) error {
	for _, q := range []string{
		"DELETE FROM skill_levels WHERE learner_id = ?",
		"DELETE FROM review_states WHERE learner_id = ?",
	} {
		if _, err := s.db.Exec(q, learnerID); err != nil {
			return fmt.Errorf("reset learner: %w", err)
		}
	}
	return nil
}
