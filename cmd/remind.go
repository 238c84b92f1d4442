package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/calasan/habla/internal/agent"
	"github.com/calasan/habla/internal/planner"
)

// stdoutNotifier prints plans to the terminal. A richer deployment
// would swap in a push or chat notifier here.
type stdoutNotifier struct{}

func (stdoutNotifier) NotifyPlan(ctx context.Context, learnerID string, plan *planner.Plan) error {
	printPlan(learnerID, plan)
	return nil
}

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Run the daily plan agent",
	Long:  "Runs in the foreground and emits a session plan at the configured time each day (HABLA_PLAN_TIME). With --now, emits one plan immediately and exits.",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, cfg, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		learner := resolveLearner(cmd, cfg)
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

		ag, err := agent.New(eng, stdoutNotifier{}, learner, cfg.SessionSize, cfg.PlanTime, cfg.Location(), logger)
		if err != nil {
			return err
		}

		if now, _ := cmd.Flags().GetBool("now"); now {
			return ag.RunOnce(cmd.Context())
		}

		ag.Start()
		defer ag.Stop()
		fmt.Printf("Daily plan for %s at %s (%s). Ctrl-C to stop.\n", learner, cfg.PlanTime, cfg.Timezone)

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		return nil
	},
}

func init() {
	remindCmd.Flags().Bool("now", false, "Emit one plan immediately and exit")
}
