package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/calasan/habla/internal/skills"
)

// eventRepo implements EventRepo over sqlx. Events are append-only;
// nothing in the engine ever rewrites history.
type eventRepo struct {
	db *sqlx.DB
}

func (r *eventRepo) AppendOutcome(ctx context.Context, ev OutcomeEvent) error {
	id := ev.ID
	if id == "" {
		id = uuid.NewString()
	}
	correct := 0
	if ev.Correct {
		correct = 1
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO outcome_events
			(id, learner_id, item_id, axis, correct, latency_ms, quality, observed_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, ev.LearnerID, ev.ItemID, string(ev.Axis), correct, ev.LatencyMs,
		int(ev.Quality), formatTime(ev.ObservedAt), formatTime(time.Now()))
	if err != nil {
		return fmt.Errorf("append outcome event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentAccuracy(ctx context.Context, learnerID string, axis skills.Axis, n int) (float64, int, error) {
	var rows []struct {
		Correct int `db:"correct"`
	}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT correct FROM outcome_events
		WHERE learner_id = ? AND axis = ?
		ORDER BY seq DESC
		LIMIT ?`,
		learnerID, string(axis), n)
	if err != nil {
		return 0, 0, fmt.Errorf("recent accuracy: %w", err)
	}
	if len(rows) == 0 {
		return 0, 0, nil
	}

	hits := 0
	for _, row := range rows {
		if row.Correct == 1 {
			hits++
		}
	}
	return float64(hits) / float64(len(rows)), len(rows), nil
}
