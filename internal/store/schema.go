package store

import "github.com/jmoiron/sqlx"

// schema is applied on every Open; all statements are idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS skill_levels (
		learner_id          TEXT    NOT NULL,
		axis                TEXT    NOT NULL,
		level               INTEGER NOT NULL DEFAULT 1,
		consecutive_correct INTEGER NOT NULL DEFAULT 0,
		created_at          TEXT    NOT NULL,
		updated_at          TEXT    NOT NULL,
		PRIMARY KEY (learner_id, axis)
	)`,

	`CREATE TABLE IF NOT EXISTS review_states (
		learner_id    TEXT    NOT NULL,
		item_id       TEXT    NOT NULL,
		repetitions   INTEGER NOT NULL DEFAULT 0,
		ease_factor   REAL    NOT NULL DEFAULT 2.5,
		interval_days INTEGER NOT NULL DEFAULT 0,
		next_due      TEXT    NOT NULL DEFAULT '',
		last_quality  INTEGER NOT NULL DEFAULT 0,
		last_reviewed TEXT    NOT NULL DEFAULT '',
		PRIMARY KEY (learner_id, item_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_review_states_due
		ON review_states (learner_id, next_due)`,

	`CREATE TABLE IF NOT EXISTS outcome_events (
		seq         INTEGER PRIMARY KEY AUTOINCREMENT,
		id          TEXT    NOT NULL UNIQUE,
		learner_id  TEXT    NOT NULL,
		item_id     TEXT    NOT NULL,
		axis        TEXT    NOT NULL,
		correct     INTEGER NOT NULL,
		latency_ms  INTEGER NOT NULL DEFAULT 0,
		quality     INTEGER NOT NULL,
		observed_at TEXT    NOT NULL,
		created_at  TEXT    NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_outcome_events_learner_axis
		ON outcome_events (learner_id, axis, seq)`,
}

func migrate(db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
