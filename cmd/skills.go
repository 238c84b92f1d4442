package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calasan/habla/internal/skills"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Show the learner's skill profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, cfg, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		learner := resolveLearner(cmd, cfg)
		dims, err := eng.GetSkillDimensions(cmd.Context(), learner)
		if err != nil {
			return err
		}

		fmt.Printf("Skill profile for %s:\n", learner)
		for _, axis := range skills.AllAxes() {
			fmt.Printf("  %-24s %s\n", axis, dims.Level(axis))
		}
		fmt.Printf("Estimated CEFR: %s\n", skills.EstimateCEFR(dims))

		weak := dims.WeakestAxes(3)
		strong := dims.StrongestAxes(3)
		fmt.Printf("Focus areas: %v\n", weak)
		fmt.Printf("Strengths:   %v\n", strong)

		events := st.EventRepo()
		for _, axis := range weak {
			acc, n, err := events.RecentAccuracy(cmd.Context(), learner, axis, 20)
			if err != nil {
				return err
			}
			if n > 0 {
				fmt.Printf("  %s: %.0f%% over last %d outcomes\n", axis, acc*100, n)
			}
		}
		return nil
	},
}
