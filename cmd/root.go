package cmd

import (
	"github.com/spf13/cobra"

	"github.com/calasan/habla/internal/catalog"
	"github.com/calasan/habla/internal/config"
	"github.com/calasan/habla/internal/engine"
	"github.com/calasan/habla/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "habla",
	Short: "Adaptive Spanish learning engine",
	Long:  "Habla — adaptive scheduler for Mexican Spanish practice: spaced repetition, skill tracking, and daily session plans.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides HABLA_DB env var)")
	rootCmd.PersistentFlags().String("learner", "", "Learner ID (overrides HABLA_LEARNER env var)")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(skillsCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(remindCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then HABLA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

func resolveLearner(cmd *cobra.Command, cfg *config.Config) string {
	if l, _ := cmd.Flags().GetString("learner"); l != "" {
		return l
	}
	return cfg.LearnerID
}

// openEngine wires config, catalog, store, and engine for a command.
// The caller must Close the returned store.
func openEngine(cmd *cobra.Command) (*engine.Engine, *store.Store, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, nil, err
	}
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		st.Close()
		return nil, nil, nil, err
	}
	eng := engine.New(cat, st.LearnerRepo(), st.ReviewRepo(), st.EventRepo())
	return eng, st, cfg, nil
}
