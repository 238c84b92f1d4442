package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset learner data",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, st, cfg, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		learner := resolveLearner(cmd, cfg)

		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			fmt.Printf("Delete all skill and review state for %s? [y/N] ", learner)
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if strings.TrimSpace(strings.ToLower(line)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := st.ResetLearner(learner); err != nil {
			return err
		}
		fmt.Printf("Reset %s.\n", learner)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip confirmation")
}
