package config

import (
	"regexp"
	"strings"

	"github.com/xaheen/xaheen/internal/errors"
)

var validFrameworks = map[string]bool{
	FrameworkNextJS:  true,
	FrameworkNuxt:    true,
	FrameworkRemix:   true,
	FrameworkAngular: true,
	FrameworkSvelte:  true,
	FrameworkVue:     true,
	FrameworkReact:   true,
}

var validPackageManagers = map[string]bool{
	"npm":  true,
	"yarn": true,
	"pnpm": true,
	"bun":  true,
}

var projectNamePattern = regexp.MustCompile(`^[a-zA-Z@][a-zA-Z0-9._/-]*$`)

// Validate checks a configuration against the unified schema. Every
// violated field contributes one error carrying its field path.
func Validate(cfg *Config) error {
	var v errors.ValidationErrors

	if cfg.Project.Name == "" {
		v.Add("project.name", "must not be empty")
	} else if !projectNamePattern.MatchString(cfg.Project.Name) {
		v.Add("project.name", "must be a valid package name")
	}

	if cfg.Project.Framework != "" && !validFrameworks[cfg.Project.Framework] {
		v.Add("project.framework", "unknown framework "+cfg.Project.Framework)
	}

	if cfg.Project.PackageManager != "" && !validPackageManagers[cfg.Project.PackageManager] {
		v.Add("project.packageManager", "unknown package manager "+cfg.Project.PackageManager)
	}

	if cfg.Templates.Dir == "" {
		v.Add("templates.dir", "must not be empty")
	} else if strings.ContainsRune(cfg.Templates.Dir, '\x00') {
		v.Add("templates.dir", "must be a valid path")
	}

	if cfg.Generate.OutputDir == "" {
		v.Add("generate.outputDir", "must not be empty")
	}

	return v.OrNil()
}
