package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/xaheen/xaheen/internal/config"
)

var initYes bool

var initCmd = &cobra.Command{
	Use:     "init",
	Aliases: []string{"i"},
	Short:   "Initialize project configuration",
	Long: `Init writes a unified xaheen.config.json to the project root. Defaults
are sniffed from the project (package.json dependencies, lockfiles,
monorepo layout); pass --yes to accept them without prompting.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		logger := newLogger()

		cfg := config.Sniff(projectRoot)

		if !initYes {
			if err := promptConfig(cfg); err != nil {
				return err
			}
		}

		if err := config.Validate(cfg); err != nil {
			logger.Error(ctx, err, "configuration invalid")
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

// promptConfig interactively refines a sniffed configuration.
func promptConfig(cfg *config.Config) error {
	questions := []*survey.Question{
		{
			Name: "name",
			Prompt: &survey.Input{
				Message: "Project name:",
				Default: cfg.Project.Name,
			},
			Validate: survey.Required,
		},
		{
			Name: "framework",
			Prompt: &survey.Select{
				Message: "Framework:",
				Options: []string{"nextjs", "nuxt", "remix", "angular", "svelte", "vue", "react"},
				Default: cfg.Project.Framework,
			},
		},
		{
			Name: "packageManager",
			Prompt: &survey.Select{
				Message: "Package manager:",
				Options: []string{"npm", "yarn", "pnpm", "bun"},
				Default: cfg.Project.PackageManager,
			},
		},
		{
			Name: "templatesDir",
			Prompt: &survey.Input{
				Message: "Templates directory:",
				Default: cfg.Templates.Dir,
			},
		},
	}

	answers := struct {
		Name           string
		Framework      string
		PackageManager string
		TemplatesDir   string
	}{}

	if err := survey.Ask(questions, &answers); err != nil {
		return err
	}

	cfg.Project.Name = answers.Name
	cfg.Project.Framework = answers.Framework
	cfg.Project.PackageManager = answers.PackageManager
	cfg.Templates.Dir = answers.TemplatesDir

	return nil
}

func init() {
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "accept sniffed defaults without prompting")

	rootCmd.AddCommand(initCmd)
}
