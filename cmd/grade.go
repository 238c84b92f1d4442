package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/calasan/habla/internal/skills"
)

var gradeCmd = &cobra.Command{
	Use:   "grade <item-id> <axis> <correct|incorrect>",
	Short: "Record a practice outcome",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		itemID := args[0]
		axis := skills.Axis(args[1])

		var correct bool
		switch args[2] {
		case "correct":
			correct = true
		case "incorrect":
			correct = false
		default:
			return fmt.Errorf("third argument must be correct or incorrect, got %q", args[2])
		}

		latency, _ := cmd.Flags().GetInt("latency")

		eng, st, cfg, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		learner := resolveLearner(cmd, cfg)
		res, err := eng.GradeOutcome(cmd.Context(), learner, itemID, axis, correct, latency, time.Now())
		if err != nil {
			return err
		}

		fmt.Printf("%s: reps=%d ease=%.2f interval=%dd next due %s\n",
			itemID, res.Review.Repetitions, res.Review.EaseFactor,
			res.Review.IntervalDays, res.Review.NextDue.Format("2006-01-02"))
		fmt.Printf("%s is now %s\n", axis, res.Dimensions.Level(axis))
		return nil
	},
}

func init() {
	gradeCmd.Flags().Int("latency", 0, "Response latency in milliseconds")
}
