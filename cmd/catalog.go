package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calasan/habla/internal/catalog"
	"github.com/calasan/habla/internal/config"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List catalog items by topic",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		cat, err := catalog.Load(cfg.CatalogPath)
		if err != nil {
			return err
		}

		topic, _ := cmd.Flags().GetString("topic")
		if topic != "" {
			printTopic(cat, topic)
			return nil
		}
		for _, t := range cat.Topics() {
			printTopic(cat, t)
		}
		fmt.Printf("%d items, %d topics\n", cat.Len(), len(cat.Topics()))
		return nil
	},
}

func init() {
	catalogCmd.Flags().String("topic", "", "Only show items for this topic")
}

func printTopic(cat *catalog.Catalog, topic string) {
	items := cat.ByTopic(topic)
	if len(items) == 0 {
		return
	}
	fmt.Printf("%s:\n", topic)
	for _, it := range items {
		fmt.Printf("  %-24s %s (%s) [%s]\n", it.ID, it.Spanish, it.English, it.CEFR)
	}
}
