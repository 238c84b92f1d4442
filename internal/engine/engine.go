// Package engine is the adaptive scheduling core: it decides what a
// learner sees next and folds graded outcomes back into skill and review
// state. It performs no I/O of its own (persistence lives behind the
// store repositories) and every operation is a bounded in-memory
// computation, so callers own timeouts and retries.
package engine

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/calasan/habla/internal/catalog"
	"github.com/calasan/habla/internal/planner"
	"github.com/calasan/habla/internal/skills"
	"github.com/calasan/habla/internal/sm2"
	"github.com/calasan/habla/internal/store"
	"github.com/calasan/habla/internal/zpd"
)

// Engine coordinates the skill model, SM-2 scheduling, readiness
// classification and session planning for all learners.
type Engine struct {
	catalog  *catalog.Catalog
	planner  *planner.Planner
	learners store.LearnerRepo
	reviews  store.ReviewRepo
	events   store.EventRepo
	locks    *learnerLocks

	// planSeed, when set, makes every plan's weighted sampling
	// reproducible. Zero means seed from the clock.
	planSeed int64
	seeded   bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithPlanSeed fixes the random seed used for weak-area weighting so
// session plans are reproducible.
func WithPlanSeed(seed int64) Option {
	return func(e *Engine) {
		e.planSeed = seed
		e.seeded = true
	}
}

// New creates an engine over a validated catalog and the storage
// collaborator's repositories.
func New(cat *catalog.Catalog, learners store.LearnerRepo, reviews store.ReviewRepo, events store.EventRepo, opts ...Option) *Engine {
	e := &Engine{
		catalog:  cat,
		planner:  planner.New(cat),
		learners: learners,
		reviews:  reviews,
		events:   events,
		locks:    newLearnerLocks(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// GetSkillDimensions returns the learner's current dimensions, creating
// the default all-None state on first contact.
func (e *Engine) GetSkillDimensions(ctx context.Context, learnerID string) (skills.Dimensions, error) {
	mu := e.locks.forLearner(learnerID)
	mu.Lock()
	defer mu.Unlock()

	dims, _, err := e.loadDimensions(ctx, learnerID, true)
	return dims, err
}

// GradeResult is the state pair an outcome produces.
type GradeResult struct {
	Review     *sm2.ReviewState
	Dimensions skills.Dimensions
}

// GradeOutcome folds one observed outcome into the learner's state: the
// item's SM-2 schedule advances and the named axis's mastery chain is
// updated. The returned state reflects both writes. All validation
// happens before any write, so a rejected call has no partial effects
// and is safe to retry with corrected input.
func (e *Engine) GradeOutcome(ctx context.Context, learnerID, itemID string, axis skills.Axis, correct bool, latencyMs int, observedAt time.Time) (*GradeResult, error) {
	if !skills.ValidAxis(axis) {
		return nil, &ErrUnknownAxis{Axis: string(axis)}
	}
	if _, err := e.catalog.Item(itemID); err != nil {
		return nil, err
	}

	mu := e.locks.forLearner(learnerID)
	mu.Lock()
	defer mu.Unlock()

	rs, err := e.reviews.Get(ctx, learnerID, itemID)
	if err != nil {
		return nil, err
	}
	if rs == nil {
		rs = sm2.NewReviewState(learnerID, itemID)
	}
	if rs.Seen() && observedAt.Before(rs.LastReviewed) {
		return nil, &ErrOutOfOrderOutcome{
			ItemID:       itemID,
			ObservedAt:   observedAt,
			LastReviewed: rs.LastReviewed,
		}
	}

	quality := sm2.QualityFromOutcome(correct, latencyMs)
	graded, err := sm2.Grade(*rs, quality, observedAt)
	if err != nil {
		return nil, err
	}
	if err := e.reviews.Put(ctx, &graded); err != nil {
		return nil, err
	}

	dims, axes, err := e.loadDimensions(ctx, learnerID, false)
	if err != nil {
		return nil, err
	}
	st := axes[axis]
	if !st.Level.Valid() {
		st.Level = skills.LevelNone
	}
	newLevel, newProgress := skills.Advance(st.Level, st.Progress, skills.Outcome{
		Correct:   correct,
		LatencyMs: latencyMs,
	})
	if err := e.learners.PutAxis(ctx, learnerID, axis, store.AxisState{
		Level:    newLevel,
		Progress: newProgress,
	}); err != nil {
		return nil, err
	}
	dims[axis] = newLevel

	if err := e.events.AppendOutcome(ctx, store.OutcomeEvent{
		LearnerID:  learnerID,
		ItemID:     itemID,
		Axis:       axis,
		Correct:    correct,
		LatencyMs:  latencyMs,
		Quality:    quality,
		ObservedAt: observedAt,
	}); err != nil {
		return nil, err
	}

	return &GradeResult{Review: &graded, Dimensions: dims}, nil
}

// PlanSession builds the next session plan for a learner: due reviews
// first, then new items in the ZPD, interleaved and weighted. An empty
// plan means nothing is due and nothing new is in reach, a valid
// terminal state rather than an error.
func (e *Engine) PlanSession(ctx context.Context, learnerID string, now time.Time, sessionSize int) (*planner.Plan, error) {
	mu := e.locks.forLearner(learnerID)
	mu.Lock()
	defer mu.Unlock()

	dims, _, err := e.loadDimensions(ctx, learnerID, false)
	if err != nil {
		return nil, err
	}
	reviews, err := e.reviews.ForLearner(ctx, learnerID)
	if err != nil {
		return nil, err
	}

	seed := e.planSeed
	if !e.seeded {
		seed = now.UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	return e.planner.BuildPlan(dims, reviews, now, sessionSize, rng), nil
}

// ClassifyReadiness reports the learner's readiness category for one
// item; diagnostic use.
func (e *Engine) ClassifyReadiness(ctx context.Context, learnerID, itemID string) (zpd.Readiness, error) {
	item, err := e.catalog.Item(itemID)
	if err != nil {
		return zpd.NotReady, err
	}

	mu := e.locks.forLearner(learnerID)
	mu.Lock()
	defer mu.Unlock()

	dims, _, err := e.loadDimensions(ctx, learnerID, false)
	if err != nil {
		return zpd.NotReady, err
	}
	return zpd.Classify(item, dims), nil
}

// Catalog exposes the engine's catalog to callers (CLI, agent).
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// loadDimensions assembles full Dimensions from stored axis rows,
// defaulting absent axes to LevelNone. With persist set, missing rows
// are written out so the learner's default state exists after first
// contact. Callers must hold the learner's lock.
func (e *Engine) loadDimensions(ctx context.Context, learnerID string, persist bool) (skills.Dimensions, map[skills.Axis]store.AxisState, error) {
	axes, err := e.learners.GetAxes(ctx, learnerID)
	if err != nil {
		return nil, nil, fmt.Errorf("load skill state: %w", err)
	}

	dims := skills.NewDimensions()
	for axis, st := range axes {
		if st.Level.Valid() {
			dims[axis] = st.Level
		}
	}

	if persist {
		for _, axis := range skills.AllAxes() {
			if _, ok := axes[axis]; ok {
				continue
			}
			st := store.AxisState{Level: skills.LevelNone}
			if err := e.learners.PutAxis(ctx, learnerID, axis, st); err != nil {
				return nil, nil, fmt.Errorf("create default skill state: %w", err)
			}
			axes[axis] = st
		}
	}

	return dims, axes, nil
}
