package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/calasan/habla/internal/sm2"
)

// reviewRepo implements ReviewRepo over sqlx.
type reviewRepo struct {
	db *sqlx.DB
}

type reviewRow struct {
	LearnerID    string  `db:"learner_id"`
	ItemID       string  `db:"item_id"`
	Repetitions  int     `db:"repetitions"`
	EaseFactor   float64 `db:"ease_factor"`
	IntervalDays int     `db:"interval_days"`
	NextDue      string  `db:"next_due"`
	LastQuality  int     `db:"last_quality"`
	LastReviewed string  `db:"last_reviewed"`
}

func (r *reviewRepo) Get(ctx context.Context, learnerID, itemID string) (*sm2.ReviewState, error) {
	var row reviewRow
	err := r.db.GetContext(ctx, &row,
		`SELECT * FROM review_states WHERE learner_id = ? AND item_id = ?`,
		learnerID, itemID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get review state: %w", err)
	}
	return rowToState(row)
}

func (r *reviewRepo) Put(ctx context.Context, rs *sm2.ReviewState) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO review_states
			(learner_id, item_id, repetitions, ease_factor, interval_days, next_due, last_quality, last_reviewed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (learner_id, item_id) DO UPDATE SET
			repetitions = excluded.repetitions,
			ease_factor = excluded.ease_factor,
			interval_days = excluded.interval_days,
			next_due = excluded.next_due,
			last_quality = excluded.last_quality,
			last_reviewed = excluded.last_reviewed`,
		rs.LearnerID, rs.ItemID, rs.Repetitions, rs.EaseFactor, rs.IntervalDays,
		formatTime(rs.NextDue), int(rs.LastQuality), formatTime(rs.LastReviewed))
	if err != nil {
		return fmt.Errorf("put review state: %w", err)
	}
	return nil
}

func (r *reviewRepo) ForLearner(ctx context.Context, learnerID string) (map[string]*sm2.ReviewState, error) {
	var rows []reviewRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM review_states WHERE learner_id = ?`, learnerID)
	if err != nil {
		return nil, fmt.Errorf("list review states: %w", err)
	}

	out := make(map[string]*sm2.ReviewState, len(rows))
	for _, row := range rows {
		rs, err := rowToState(row)
		if err != nil {
			return nil, err
		}
		out[rs.ItemID] = rs
	}
	return out, nil
}

func rowToState(row reviewRow) (*sm2.ReviewState, error) {
	nextDue, err := parseTime(row.NextDue)
	if err != nil {
		return nil, fmt.Errorf("review state %s/%s: bad next_due: %w", row.LearnerID, row.ItemID, err)
	}
	lastReviewed, err := parseTime(row.LastReviewed)
	if err != nil {
		return nil, fmt.Errorf("review state %s/%s: bad last_reviewed: %w", row.LearnerID, row.ItemID, err)
	}
	return &sm2.ReviewState{
		LearnerID:    row.LearnerID,
		ItemID:       row.ItemID,
		Repetitions:  row.Repetitions,
		EaseFactor:   row.EaseFactor,
		IntervalDays: row.IntervalDays,
		NextDue:      nextDue,
		LastQuality:  sm2.Quality(row.LastQuality),
		LastReviewed: lastReviewed,
	}, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}
