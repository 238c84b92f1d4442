package agent

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/calasan/habla/internal/catalog"
	"github.com/calasan/habla/internal/engine"
	"github.com/calasan/habla/internal/planner"
	"github.com/calasan/habla/internal/store"
)

type captureNotifier struct {
	learnerID string
	plan      *planner.Plan
	calls     int
}

func (c *captureNotifier) NotifyPlan(ctx context.Context, learnerID string, plan *planner.Plan) error {
	c.learnerID = learnerID
	c.plan = plan
	c.calls++
	return nil
}

func testEngine(t *testing.T) *engine.Engine {
	t.Helper()
	st, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	cat, err := catalog.Seed()
	if err != nil {
		t.Fatalf("catalog.Seed: %v", err)
	}
	return engine.New(cat, st.LearnerRepo(), st.ReviewRepo(), st.EventRepo(), engine.WithPlanSeed(3))
}

func TestNew_RejectsBadPlanTime(t *testing.T) {
	_, err := New(testEngine(t), &captureNotifier{}, "ana", 8, "quarter past nine", time.UTC, slog.Default())
	if err == nil {
		t.Error("New accepted a malformed plan time")
	}
}

func TestRunOnce_DeliversPlan(t *testing.T) {
	notifier := &captureNotifier{}
	ag, err := New(testEngine(t), notifier, "ana", 8, "09:00", time.UTC, slog.Default())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := ag.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce: %v", err)
	}
	if notifier.calls != 1 {
		t.Fatalf("notifier called %d times, want 1", notifier.calls)
	}
	if notifier.learnerID != "ana" {
		t.Errorf("learnerID = %q, want ana", notifier.learnerID)
	}
	if notifier.plan == nil || notifier.plan.Empty() {
		t.Error("delivered plan is empty for a fresh learner with a seeded catalog")
	}
}

func TestRunOnce_NilNotifier(t *testing.T) {
	ag, err := New(testEngine(t), nil, "ana", 8, "09:00", time.UTC, slog.Default())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := ag.RunOnce(context.Background()); err != nil {
		t.Errorf("RunOnce with nil notifier: %v", err)
	}
}

func TestStartStop(t *testing.T) {
	ag, err := New(testEngine(t), &captureNotifier{}, "ana", 8, "23:59", time.UTC, slog.Default())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ag.Start()
	ag.Stop()
}
