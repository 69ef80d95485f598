// Package cmd provides the command-line interface for Xaheen.
//
// Configuration precedence follows the usual viper ordering: command-line
// flags first, then XAHEEN_-prefixed environment variables, then the
// unified xaheen.config.json at the project root. Projects without a
// unified config fall back to legacy-format migration and finally to
// project sniffing; see the config package.
package cmd

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/xaheen/xaheen/internal/config"
	"github.com/xaheen/xaheen/internal/logging"
	"github.com/xaheen/xaheen/internal/template"
)

var (
	projectRoot string
	logLevel    string
	logFormat   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "xaheen",
	Short: "A code-generation CLI for scaffolding applications and services",
	Long: `Xaheen scaffolds application artifacts from Handlebars templates:
components, pages, services, compliance documents, and Kubernetes/Helm
manifests. It reads a unified xaheen.config.json and migrates legacy
configuration formats automatically.

Quick Start:
  xaheen init                          Initialize project configuration
  xaheen generate component Button     Generate a component
  xaheen list                          List available templates
  xaheen watch                         Watch templates and hot-reload the cache`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initEnv)

	rootCmd.PersistentFlags().SetNormalizeFunc(normalizeFlag)
	rootCmd.PersistentFlags().StringVar(&projectRoot, "root", ".", "project root directory")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text, json)")
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// normalizeFlag accepts underscore spellings of dashed flag names, e.g.
// --log_level for --log-level.
func normalizeFlag(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

// initEnv enables XAHEEN_-prefixed environment variable overrides, e.g.
// XAHEEN_LOG_LEVEL=debug.
func initEnv() {
	viper.SetEnvPrefix("XAHEEN")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
}

// newLogger builds the logger shared by one command invocation.
func newLogger() logging.Logger {
	level := logLevel
	if v := viper.GetString("log-level"); v != "" {
		level = v
	}

	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(level)
	cfg.Format = logFormat

	return logging.NewLogger(cfg)
}

// resolveConfig loads the effective configuration for the project root,
// migrating legacy formats or sniffing the project when needed.
func resolveConfig(ctx context.Context, logger logging.Logger) *config.Config {
	return config.LoadOrMigrate(ctx, projectRoot, logger)
}

// newEngine builds a template engine for the resolved configuration.
func newEngine(cfg *config.Config, logger logging.Logger, devMode bool) *template.Engine {
	return template.NewEngine(template.EngineOptions{
		Dir:     resolvePath(cfg.Templates.Dir),
		Locale:  cfg.Templates.Locale,
		DevMode: devMode,
		Logger:  logger,
	})
}

func resolvePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(projectRoot, path)
}
