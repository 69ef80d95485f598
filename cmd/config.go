package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xaheen/xaheen/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and migrate project configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		logger := newLogger()

		cfg := resolveConfig(ctx, logger)

		raw, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}

		fmt.Println(string(raw))
		return nil
	},
}

var configMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate legacy configuration to xaheen.config.json",
	Long: `Migrate resolves the effective configuration through the legacy probe
chain (.xaheen/config.json, then xala.config.js, then project sniffing)
and writes the result as a unified xaheen.config.json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		logger := newLogger()

		if config.Exists(projectRoot) {
			fmt.Printf("%s already exists, nothing to migrate\n", config.FileName)
			return nil
		}

		cfg := resolveConfig(ctx, logger)

		if err := config.Validate(cfg); err != nil {
			logger.Error(ctx, err, "migrated configuration invalid")
			return err
		}

		if err := config.Save(projectRoot, cfg); err != nil {
			logger.Error(ctx, err, "writing configuration failed")
			return err
		}

		fmt.Printf("Wrote %s\n", config.FileName)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configMigrateCmd)

	rootCmd.AddCommand(configCmd)
}
