// Package agent runs the background daily-plan job. Once a day it
// builds a session plan for the configured learner and hands it to a
// Notifier.
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/calasan/habla/internal/engine"
	"github.com/calasan/habla/internal/planner"
)

// Notifier delivers a computed plan to the learner. Implementations
// might print to a terminal, send a push notification, or post to a
// chat channel.
type Notifier interface {
	NotifyPlan(ctx context.Context, learnerID string, plan *planner.Plan) error
}

// Agent schedules the daily plan job.
type Agent struct {
	engine      *engine.Engine
	notifier    Notifier
	scheduler   *gocron.Scheduler
	logger      *slog.Logger
	learnerID   string
	sessionSize int
}

// New builds an agent that plans for learnerID every day at planTime
// ("HH:MM") in loc.
func New(eng *engine.Engine, notifier Notifier, learnerID string, sessionSize int, planTime string, loc *time.Location, logger *slog.Logger) (*Agent, error) {
	if _, err := time.Parse("15:04", planTime); err != nil {
		return nil, fmt.Errorf("plan time must be HH:MM, got %q", planTime)
	}
	if logger == nil {
		logger = slog.Default()
	}

	a := &Agent{
		engine:      eng,
		notifier:    notifier,
		scheduler:   gocron.NewScheduler(loc),
		logger:      logger,
		learnerID:   learnerID,
		sessionSize: sessionSize,
	}

	if _, err := a.scheduler.Every(1).Day().At(planTime).Do(a.runOnce); err != nil {
		return nil, fmt.Errorf("schedule daily plan: %w", err)
	}
	return a, nil
}

// Start begins the schedule in the background.
func (a *Agent) Start() {
	a.scheduler.StartAsync()
	a.logger.Info("daily plan agent started", "learner", a.learnerID)
}

// Stop halts the schedule and waits for a running job to finish.
func (a *Agent) Stop() {
	a.scheduler.Stop()
	a.logger.Info("daily plan agent stopped")
}

// RunOnce computes and delivers a plan immediately, outside the
// schedule. Useful for a manual "remind me now".
func (a *Agent) RunOnce(ctx context.Context) error {
	return a.plan(ctx)
}

func (a *Agent) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := a.plan(ctx); err != nil {
		a.logger.Error("daily plan failed", "learner", a.learnerID, "err", err)
	}
}

func (a *Agent) plan(ctx context.Context) error {
	plan, err := a.engine.PlanSession(ctx, a.learnerID, time.Now(), a.sessionSize)
	if err != nil {
		return fmt.Errorf("plan session: %w", err)
	}
	if plan.Empty() {
		a.logger.Info("nothing due, skipping notification", "learner", a.learnerID)
		return nil
	}
	a.logger.Info("daily plan ready", "learner", a.learnerID, "slots", len(plan.Slots))
	if a.notifier == nil {
		return nil
	}
	return a.notifier.NotifyPlan(ctx, a.learnerID, plan)
}
