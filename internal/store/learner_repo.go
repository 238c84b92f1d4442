package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/calasan/habla/internal/skills"
)

// learnerRepo implements LearnerRepo over sqlx.
type learnerRepo struct {
	db *sqlx.DB
}

type skillLevelRow struct {
	LearnerID          string `db:"learner_id"`
	Axis               string `db:"axis"`
	Level              int    `db:"level"`
	ConsecutiveCorrect int    `db:"consecutive_correct"`
	CreatedAt          string `db:"created_at"`
	UpdatedAt          string `db:"updated_at"`
}

func (r *learnerRepo) GetAxes(ctx context.Context, learnerID string) (map[skills.Axis]AxisState, error) {
	var rows []skillLevelRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM skill_levels WHERE learner_id = ?`, learnerID)
	if err != nil {
		return nil, fmt.Errorf("get skill levels: %w", err)
	}

	out := make(map[skills.Axis]AxisState, len(rows))
	for _, row := range rows {
		axis := skills.Axis(row.Axis)
		if !skills.ValidAxis(axis) {
			// A row from a removed axis would mean the closed set
			// changed underneath us; surface it rather than guess.
			return nil, fmt.Errorf("stored axis %q is not in the skill set", row.Axis)
		}
		out[axis] = AxisState{
			Level:    skills.Level(row.Level),
			Progress: skills.Progress{ConsecutiveCorrect: row.ConsecutiveCorrect},
		}
	}
	return out, nil
}

func (r *learnerRepo) PutAxis(ctx context.Context, learnerID string, axis skills.Axis, st AxisState) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO skill_levels (learner_id, axis, level, consecutive_correct, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (learner_id, axis) DO UPDATE SET
			level = excluded.level,
			consecutive_correct = excluded.consecutive_correct,
			updated_at = excluded.updated_at`,
		learnerID, string(axis), int(st.Level), st.Progress.ConsecutiveCorrect, now, now)
	if err != nil {
		return fmt.Errorf("put skill level: %w", err)
	}
	return nil
}
