package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/calasan/habla/internal/planner"
	"github.com/calasan/habla/internal/sm2"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build the next practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, cfg, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		size, _ := cmd.Flags().GetInt("size")
		if size <= 0 {
			size = cfg.SessionSize
		}

		learner := resolveLearner(cmd, cfg)
		now := time.Now()
		plan, err := eng.PlanSession(cmd.Context(), learner, now, size)
		if err != nil {
			return err
		}
		printPlan(learner, plan)

		states, err := st.ReviewRepo().ForLearner(cmd.Context(), learner)
		if err != nil {
			return err
		}
		printReviewLoad(states, now)
		return nil
	},
}

// printReviewLoad summarizes the review backlog around the plan: how
// many items are due and by how much, and when the next one lands.
func printReviewLoad(states map[string]*sm2.ReviewState, now time.Time) {
	overdue := 0
	var maxOverdue float64
	nextIn := -1
	for _, rs := range states {
		if !rs.Seen() {
			continue
		}
		if rs.IsDue(now) {
			overdue++
			if d := rs.OverdueDays(now); d > maxOverdue {
				maxOverdue = d
			}
			continue
		}
		if d := rs.DaysUntilDue(now); nextIn == -1 || d < nextIn {
			nextIn = d
		}
	}
	if overdue > 0 {
		fmt.Printf("%d reviews due, the oldest by %.1f days.\n", overdue, maxOverdue)
	}
	if nextIn >= 0 {
		fmt.Printf("Next review due in %d day(s).\n", nextIn)
	}
}

func init() {
	planCmd.Flags().Int("size", 0, "Session size (defaults to HABLA_SESSION_SIZE)")
}

func printPlan(learner string, plan *planner.Plan) {
	if plan.Empty() {
		fmt.Printf("Nothing to practice for %s right now.\n", learner)
		return
	}
	fmt.Printf("Session plan for %s (%d slots):\n", learner, len(plan.Slots))
	for i, slot := range plan.Slots {
		tag := "review"
		if slot.Category == planner.CategoryIntroduce {
			tag = "new"
		}
		fmt.Printf("%2d. [%s] %s (%s) form=%s topic=%s\n",
			i+1, tag, slot.Item.ID, slot.Item.Spanish, slot.Form, slot.Item.Topic)
	}
}
