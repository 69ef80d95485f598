package config

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/xaheen/xaheen/internal/logging"
)

// legacyXaheenConfig is legacy format A, stored at .xaheen/config.json by
// earlier releases. Field names differ from the unified shape.
type legacyXaheenConfig struct {
	ProjectName    string `json:"projectName"`
	Framework      string `json:"framework"`
	PackageManager string `json:"packageManager"`
	TemplateDir    string `json:"templateDir"`
	OutputDir      string `json:"outputDir"`
	GenerateTests  *bool  `json:"generateTests"`
}

// legacyXalaConfig is legacy format B, a CommonJS module export in
// xala.config.js produced by the predecessor tool.
type legacyXalaConfig struct {
	Project        string `json:"project"`
	Framework      string `json:"framework"`
	PackageManager string `json:"packageManager"`
	Templates      string `json:"templates"`
	Output         string `json:"output"`
}

// LoadOrMigrate resolves the effective configuration for a project root.
// Probe order: unified file, legacy format A, legacy format B, then
// synthesized defaults from project sniffing. Read or parse failures on
// any source are logged and the chain continues with the next source.
func LoadOrMigrate(ctx context.Context, root string, logger logging.Logger) *Config {
	logger = logger.WithComponent("config")

	if Exists(root) {
		cfg, err := Load(root)
		if err == nil {
			return cfg
		}
		logger.Warn(ctx, err, "unified config unreadable, falling back", "path", FileName)
	}

	if cfg, ok := migrateXaheen(ctx, root, logger); ok {
		return cfg
	}
	if cfg, ok := migrateXala(ctx, root, logger); ok {
		return cfg
	}

	logger.Debug(ctx, "no configuration found, sniffing project", "root", root)

	return Sniff(root)
}

func migrateXaheen(ctx context.Context, root string, logger logging.Logger) (*Config, bool) {
	path := filepath.Join(root, LegacyXaheenPath)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var legacy legacyXaheenConfig
	if err := json.Unmarshal(raw, &legacy); err != nil {
		logger.Warn(ctx, err, "legacy config unreadable, skipping", "path", path)
		return nil, false
	}

	logger.Info(ctx, "migrating legacy configuration", "path", path)

	cfg := Sniff(root)
	if legacy.ProjectName != "" {
		cfg.Project.Name = legacy.ProjectName
	}
	if legacy.Framework != "" {
		cfg.Project.Framework = legacy.Framework
	}
	if legacy.PackageManager != "" {
		cfg.Project.PackageManager = legacy.PackageManager
	}
	if legacy.TemplateDir != "" {
		cfg.Templates.Dir = legacy.TemplateDir
	}
	if legacy.OutputDir != "" {
		cfg.Generate.OutputDir = legacy.OutputDir
	}
	if legacy.GenerateTests != nil {
		cfg.Generate.Tests = *legacy.GenerateTests
	}

	return cfg, true
}

func migrateXala(ctx context.Context, root string, logger logging.Logger) (*Config, bool) {
	path := filepath.Join(root, LegacyXalaPath)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	jsonText, err := jsObjectToJSON(string(raw))
	if err != nil {
		logger.Warn(ctx, err, "legacy xala config unreadable, skipping", "path", path)
		return nil, false
	}

	var legacy legacyXalaConfig
	if err := json.Unmarshal([]byte(jsonText), &legacy); err != nil {
		logger.Warn(ctx, err, "legacy xala config unreadable, skipping", "path", path)
		return nil, false
	}

	logger.Info(ctx, "migrating legacy xala configuration", "path", path)

	cfg := Sniff(root)
	if legacy.Project != "" {
		cfg.Project.Name = legacy.Project
	}
	if legacy.Framework != "" {
		cfg.Project.Framework = legacy.Framework
	}
	if legacy.PackageManager != "" {
		cfg.Project.PackageManager = legacy.PackageManager
	}
	if legacy.Templates != "" {
		cfg.Templates.Dir = legacy.Templates
	}
	if legacy.Output != "" {
		cfg.Generate.OutputDir = legacy.Output
	}

	return cfg, true
}

// Save writes the unified configuration file to the project root.
func Save(root string, cfg *Config) error {
	raw, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	raw = append(raw, '\n')

	return os.WriteFile(filepath.Join(root, FileName), raw, 0644)
}

var (
	lineComments    = regexp.MustCompile(`(?m)//.*$`)
	unquotedKeys    = regexp.MustCompile(`(?m)([{,]\s*)([A-Za-z_$][A-Za-z0-9_$]*)\s*:`)
	trailingCommas  = regexp.MustCompile(`,(\s*[}\]])`)
	errNoObject     = jsParseError("no object literal found")
	errUnterminated = jsParseError("unterminated object literal")
)

type jsParseError string

func (e jsParseError) Error() string { return string(e) }

// jsObjectToJSON extracts the object literal from a CommonJS config export
// and normalizes it far enough for the JSON decoder: comments stripped,
// keys quoted, single quotes converted, trailing commas removed. This
// covers the flat key/value configs the predecessor tool wrote; anything
// fancier fails and the caller falls back to the next source.
func jsObjectToJSON(src string) (string, error) {
	start := strings.IndexByte(src, '{')
	if start < 0 {
		return "", errNoObject
	}
	end := strings.LastIndexByte(src, '}')
	if end < start {
		return "", errUnterminated
	}

	obj := src[start : end+1]
	obj = lineComments.ReplaceAllString(obj, "")
	obj = strings.ReplaceAll(obj, "'", `"`)
	obj = unquotedKeys.ReplaceAllString(obj, `$1"$2":`)
	obj = trailingCommas.ReplaceAllString(obj, "$1")

	return obj, nil
}
