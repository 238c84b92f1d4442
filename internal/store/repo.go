package store

import (
	"context"
	"time"

	"github.com/calasan/habla/internal/skills"
	"github.com/calasan/habla/internal/sm2"
)

// AxisState is one axis's persisted level plus the in-flight
// consecutive-correct counter toward its next transition.
type AxisState struct {
	Level    skills.Level
	Progress skills.Progress
}

// LearnerRepo persists per-learner skill state. Single-record reads and
// writes are atomic; ordering across learners is the engine's concern.
type LearnerRepo interface {
	// GetAxes returns the stored axis states for a learner. Axes with
	// no row yet are simply absent; callers default them to LevelNone.
	GetAxes(ctx context.Context, learnerID string) (map[skills.Axis]AxisState, error)

	// PutAxis upserts one axis's level and progress counter.
	PutAxis(ctx context.Context, learnerID string, axis skills.Axis, st AxisState) error
}

// ReviewRepo persists SM-2 review state per (learner, item).
type ReviewRepo interface {
	// Get returns the review state, or nil if the item has never been
	// presented to the learner.
	Get(ctx context.Context, learnerID, itemID string) (*sm2.ReviewState, error)

	// Put upserts a review state.
	Put(ctx context.Context, rs *sm2.ReviewState) error

	// ForLearner returns all review states for a learner keyed by item ID.
	ForLearner(ctx context.Context, learnerID string) (map[string]*sm2.ReviewState, error)
}

// OutcomeEvent is one graded outcome, retained for analytics and any
// future decay policy. Seq orders events globally; ObservedAt is the
// caller-supplied observation time.
type OutcomeEvent struct {
	ID         string
	LearnerID  string
	ItemID     string
	Axis       skills.Axis
	Correct    bool
	LatencyMs  int
	Quality    sm2.Quality
	ObservedAt time.Time
}

// EventRepo appends and summarizes graded-outcome events.
type EventRepo interface {
	// AppendOutcome records one graded outcome.
	AppendOutcome(ctx context.Context, ev OutcomeEvent) error

	// RecentAccuracy returns the accuracy over the learner's last n
	// outcomes on an axis, plus how many outcomes were found.
	RecentAccuracy(ctx context.Context, learnerID string, axis skills.Axis, n int) (float64, int, error)
}
