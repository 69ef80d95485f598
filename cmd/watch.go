package cmd

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/xaheen/xaheen/internal/watcher"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:     "watch",
	Aliases: []string{"w"},
	Short:   "Watch the template directory and hot-reload the compilation cache",
	Long: `Watch runs the engine in development mode and invalidates compiled
templates when their sources change, so the next render picks up edits
without restarting. Stops on interrupt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		logger := newLogger()
		cfg := resolveConfig(ctx, logger)
		engine := newEngine(cfg, logger, true)

		fw, err := watcher.NewFileWatcher(watchDebounce, logger)
		if err != nil {
			logger.Error(ctx, err, "creating file watcher failed")
			return err
		}
		defer fw.Stop()

		fw.AddFilter(watcher.TemplateFilter)
		fw.AddHandler(watcher.InvalidationHandler(engine, logger))

		dir := resolvePath(cfg.Templates.Dir)
		if err := fw.AddPath(dir); err != nil {
			logger.Error(ctx, err, "watching template directory failed", "dir", dir)
			return err
		}

		if err := fw.Start(ctx); err != nil {
			return err
		}

		logger.Info(ctx, "watching templates", "dir", dir, "debounce", watchDebounce.String())

		<-ctx.Done()
		logger.Info(ctx, "watch stopped")

		return nil
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 300*time.Millisecond, "debounce delay for change events")

	rootCmd.AddCommand(watchCmd)
}
