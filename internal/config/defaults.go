package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Framework names recognized by the sniffer and validator.
const (
	FrameworkNextJS  = "nextjs"
	FrameworkNuxt    = "nuxt"
	FrameworkRemix   = "remix"
	FrameworkAngular = "angular"
	FrameworkSvelte  = "svelte"
	FrameworkVue     = "vue"
	FrameworkReact   = "react"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Project: ProjectConfig{
			Name:           "app",
			Framework:      FrameworkReact,
			PackageManager: "npm",
		},
		Templates: TemplatesConfig{
			Dir:       "./templates",
			Locale:    "en",
			HotReload: false,
		},
		Generate: GenerateConfig{
			OutputDir: "./src",
			Tests:     true,
			Stories:   false,
		},
	}
}

// packageJSON is the subset of package.json the sniffer cares about.
type packageJSON struct {
	Name            string            `json:"name"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Workspaces      json.RawMessage   `json:"workspaces"`
}

// frameworkProbes maps dependency names to frameworks, most specific
// first. next implies react, so order matters.
var frameworkProbes = []struct {
	dependency string
	framework  string
}{
	{"next", FrameworkNextJS},
	{"nuxt", FrameworkNuxt},
	{"@remix-run/react", FrameworkRemix},
	{"@angular/core", FrameworkAngular},
	{"svelte", FrameworkSvelte},
	{"vue", FrameworkVue},
	{"react", FrameworkReact},
}

// lockfileProbes maps lockfile names to package managers, checked in order.
var lockfileProbes = []struct {
	file    string
	manager string
}{
	{"bun.lockb", "bun"},
	{"pnpm-lock.yaml", "pnpm"},
	{"yarn.lock", "yarn"},
	{"package-lock.json", "npm"},
}

// Sniff synthesizes a configuration for a project with no config file by
// inspecting package.json dependencies, lockfiles and monorepo layout.
func Sniff(root string) *Config {
	cfg := DefaultConfig()

	pkg := readPackageJSON(filepath.Join(root, "package.json"))
	if pkg != nil {
		if pkg.Name != "" {
			cfg.Project.Name = pkg.Name
		}
		if fw := sniffFramework(pkg); fw != "" {
			cfg.Project.Framework = fw
		}
		if len(pkg.Workspaces) > 0 && string(pkg.Workspaces) != "null" {
			cfg.Project.Monorepo = true
		}
	}

	for _, probe := range lockfileProbes {
		if fileExists(filepath.Join(root, probe.file)) {
			cfg.Project.PackageManager = probe.manager
			break
		}
	}

	if fileExists(filepath.Join(root, "nx.json")) {
		cfg.Project.Monorepo = true
	}

	return cfg
}

func sniffFramework(pkg *packageJSON) string {
	has := func(name string) bool {
		if _, ok := pkg.Dependencies[name]; ok {
			return true
		}
		_, ok := pkg.DevDependencies[name]
		return ok
	}

	for _, probe := range frameworkProbes {
		if has(probe.dependency) {
			return probe.framework
		}
	}

	return ""
}

func readPackageJSON(path string) *packageJSON {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var pkg packageJSON
	if err := json.Unmarshal(raw, &pkg); err != nil {
		return nil
	}

	return &pkg
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
