package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/xaheen/xaheen/internal/errors"
	"github.com/xaheen/xaheen/internal/generator"
)

var (
	renderDataFile string
	renderOutFile  string
)

var renderCmd = &cobra.Command{
	Use:   "render <template-id>",
	Short: "Render a single template",
	Long: `Render compiles one template (built-in or from the project template
directory) and executes it against a JSON context supplied with --data.
The result goes to stdout unless --out is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		logger := newLogger()

		cfg := resolveConfig(ctx, logger)
		engine := newEngine(cfg, logger, false)

		// Seed built-ins so they render like any other template.
		generator.New(engine, cfg, logger)

		data := map[string]interface{}{}
		if renderDataFile != "" {
			raw, err := os.ReadFile(renderDataFile)
			if err != nil {
				return errors.NewIOError("reading context file", err)
			}
			if err := json.Unmarshal(raw, &data); err != nil {
				return errors.NewIOError("parsing context file", err)
			}
		}

		out, err := engine.Render(ctx, args[0], data)
		if err != nil {
			logger.Error(ctx, err, "render failed", "template", args[0])
			return err
		}

		if renderOutFile == "" {
			fmt.Print(out)
			return nil
		}

		if err := os.MkdirAll(filepath.Dir(renderOutFile), 0755); err != nil {
			return errors.NewIOError("creating output directory", err)
		}
		if err := os.WriteFile(renderOutFile, []byte(out), 0644); err != nil {
			return errors.NewIOError("writing output file", err)
		}

		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderDataFile, "data", "", "JSON file with the render context")
	renderCmd.Flags().StringVar(&renderOutFile, "out", "", "write output to a file instead of stdout")

	rootCmd.AddCommand(renderCmd)
}
