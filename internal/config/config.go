// Package config manages the unified xaheen.config.json project
// configuration: loading and validating it, migrating the two legacy
// formats (.xaheen/config.json and xala.config.js), and synthesizing
// defaults by inspecting the target project when no configuration exists.
//
// Probe order is fixed: unified file first, then legacy format A
// (.xaheen/config.json), then legacy format B (xala.config.js), then
// project sniffing. Any read or parse error along the chain is logged and
// the loader falls back to the next source, ending at defaults.
package config

import (
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/xaheen/xaheen/internal/errors"
)

// FileName is the unified configuration file probed at the project root.
const FileName = "xaheen.config.json"

// Legacy configuration locations, in migration priority order.
const (
	LegacyXaheenPath = ".xaheen/config.json"
	LegacyXalaPath   = "xala.config.js"
)

// Config is the unified project configuration shape.
type Config struct {
	Project   ProjectConfig   `json:"project" mapstructure:"project"`
	Templates TemplatesConfig `json:"templates" mapstructure:"templates"`
	Generate  GenerateConfig  `json:"generate" mapstructure:"generate"`
}

// ProjectConfig describes the target project.
type ProjectConfig struct {
	Name           string `json:"name" mapstructure:"name"`
	Framework      string `json:"framework" mapstructure:"framework"`
	PackageManager string `json:"packageManager" mapstructure:"packageManager"`
	Monorepo       bool   `json:"monorepo" mapstructure:"monorepo"`
}

// TemplatesConfig configures the template engine.
type TemplatesConfig struct {
	Dir       string `json:"dir" mapstructure:"dir"`
	Locale    string `json:"locale" mapstructure:"locale"`
	HotReload bool   `json:"hotReload" mapstructure:"hotReload"`
}

// GenerateConfig configures artifact generation.
type GenerateConfig struct {
	OutputDir string `json:"outputDir" mapstructure:"outputDir"`
	Tests     bool   `json:"tests" mapstructure:"tests"`
	Stories   bool   `json:"stories" mapstructure:"stories"`
}

// Load reads and validates the unified configuration file at root.
func Load(root string) (*Config, error) {
	path := filepath.Join(root, FileName)

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.NewConfigError("reading "+FileName, err)
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.NewConfigError("decoding "+FileName, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Exists reports whether the unified configuration file is present at root.
func Exists(root string) bool {
	return fileExists(filepath.Join(root, FileName))
}
