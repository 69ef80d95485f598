package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xaheen/xaheen/internal/generator"
)

var (
	generateDryRun  bool
	generateForce   bool
	generateTests   bool
	generateStories bool
)

var generateCmd = &cobra.Command{
	Use:     "generate <type> <name>",
	Aliases: []string{"g"},
	Short:   "Generate an artifact from a template",
	Long: `Generate renders one or more templates into the target project.

Types:
  component    React/framework component (+ optional test and story)
  page         Page/route module
  service      Service class
  compliance   GDPR RoPA and NSM classification documents
  k8s          Kubernetes manifests (Deployment, Service, Ingress, HPA)
  helm         Helm chart (Chart.yaml, values.yaml, templates)`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		logger := newLogger()

		cfg := resolveConfig(ctx, logger)
		cfg.Generate.OutputDir = resolvePath(cfg.Generate.OutputDir)
		engine := newEngine(cfg, logger, false)

		opts := generator.Options{
			Type:    args[0],
			Name:    args[1],
			DryRun:  generateDryRun,
			Force:   generateForce,
			Tests:   generateTests || cfg.Generate.Tests,
			Stories: generateStories || cfg.Generate.Stories,
		}

		gen := generator.New(engine, cfg, logger)
		if _, err := gen.Run(ctx, opts); err != nil {
			logger.Error(ctx, err, "generation failed", "type", opts.Type, "name", opts.Name)
			return err
		}

		return nil
	},
}

func init() {
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "print planned files without writing")
	generateCmd.Flags().BoolVar(&generateForce, "force", false, "overwrite existing files")
	generateCmd.Flags().BoolVar(&generateTests, "tests", false, "also generate a test file")
	generateCmd.Flags().BoolVar(&generateStories, "stories", false, "also generate a story file")

	rootCmd.AddCommand(generateCmd)
}
