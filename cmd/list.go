package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/xaheen/xaheen/internal/generator"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List available templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		logger := newLogger()

		cfg := resolveConfig(ctx, logger)
		engine := newEngine(cfg, logger, false)

		ids := make(map[string]bool)
		for _, t := range generator.BuiltinTemplates() {
			ids[t.ID] = true
		}

		local, err := engine.Store().List()
		if err != nil {
			logger.Error(ctx, err, "listing templates failed")
			return err
		}
		for _, id := range local {
			ids[id] = true
		}

		sorted := make([]string, 0, len(ids))
		for id := range ids {
			sorted = append(sorted, id)
		}
		sort.Strings(sorted)

		for _, id := range sorted {
			fmt.Println(id)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
