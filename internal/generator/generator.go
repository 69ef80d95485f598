// Package generator renders built-in or project-local templates into
// target files: components with optional tests and stories, pages,
// services, compliance documents, and Kubernetes/Helm manifests.
//
// Generation has no rollback. When one file in a multi-file generation
// fails, the command aborts and files already written stay in place.
package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xaheen/xaheen/internal/config"
	"github.com/xaheen/xaheen/internal/errors"
	"github.com/xaheen/xaheen/internal/logging"
	"github.com/xaheen/xaheen/internal/manifests"
	"github.com/xaheen/xaheen/internal/naming"
	"github.com/xaheen/xaheen/internal/template"
)

// Options holds options for one generation run.
type Options struct {
	Type    string // component, page, service, compliance, k8s, helm
	Name    string
	DryRun  bool
	Force   bool
	Tests   bool
	Stories bool
}

// file is one planned output: a template to render and a destination path.
type file struct {
	templateID string
	path       string
}

// Generator renders templates into a target project.
type Generator struct {
	engine *template.Engine
	cfg    *config.Config
	logger logging.Logger
}

// New creates a generator. Built-in templates are seeded into the engine's
// store; project-local template files with the same id win.
func New(engine *template.Engine, cfg *config.Config, logger logging.Logger) *Generator {
	store := engine.Store()
	for _, t := range BuiltinTemplates() {
		if _, err := store.Load(t.ID); err != nil {
			store.Register(t)
		}
	}

	return &Generator{
		engine: engine,
		cfg:    cfg,
		logger: logger.WithComponent("generator"),
	}
}

// Run executes one generation and returns the paths it wrote. On dry runs
// nothing is written and the planned paths are returned.
func (g *Generator) Run(ctx context.Context, opts Options) ([]string, error) {
	if opts.Name == "" {
		return nil, errors.NewValidationError("name", "must not be empty")
	}

	switch opts.Type {
	case "k8s", "helm":
		return g.runManifests(ctx, opts)
	}

	files, err := g.plan(opts)
	if err != nil {
		return nil, err
	}

	data := g.renderContext(opts)

	var written []string
	for _, f := range files {
		if opts.DryRun {
			g.logger.Info(ctx, "would generate", "template", f.templateID, "path", f.path)
			written = append(written, f.path)
			continue
		}

		if !opts.Force && fileExists(f.path) {
			return written, errors.NewIOError(
				fmt.Sprintf("%s already exists (use --force to overwrite)", f.path), nil)
		}

		out, err := g.engine.Render(ctx, f.templateID, data)
		if err != nil {
			return written, err
		}

		if err := writeFile(f.path, out); err != nil {
			return written, err
		}

		g.logger.Info(ctx, "generated", "template", f.templateID, "path", f.path)
		written = append(written, f.path)
	}

	return written, nil
}

func (g *Generator) plan(opts Options) ([]file, error) {
	out := g.cfg.Generate.OutputDir
	pascal := naming.ToPascalCase(opts.Name)
	kebab := naming.ToKebabCase(opts.Name)

	switch opts.Type {
	case "component":
		dir := filepath.Join(out, "components", kebab)
		files := []file{{"component", filepath.Join(dir, pascal+".tsx")}}
		if opts.Tests {
			files = append(files, file{"component-test", filepath.Join(dir, pascal+".test.tsx")})
		}
		if opts.Stories {
			files = append(files, file{"component-story", filepath.Join(dir, pascal+".stories.tsx")})
		}
		return files, nil
	case "page":
		return []file{{"page", filepath.Join(out, "pages", kebab+".tsx")}}, nil
	case "service":
		return []file{{"service", filepath.Join(out, "services", kebab+".ts")}}, nil
	case "compliance":
		dir := filepath.Join(out, "docs", "compliance")
		return []file{
			{"compliance-ropa", filepath.Join(dir, kebab+"-ropa.md")},
			{"compliance-nsm", filepath.Join(dir, kebab+"-nsm.md")},
		}, nil
	default:
		return nil, errors.NewValidationError("type", "unknown generation type "+opts.Type)
	}
}

func (g *Generator) renderContext(opts Options) map[string]interface{} {
	return map[string]interface{}{
		"name":           opts.Name,
		"project":        g.cfg.Project.Name,
		"framework":      g.cfg.Project.Framework,
		"packageManager": g.cfg.Project.PackageManager,
		"owner":          g.cfg.Project.Name,
		"reviewDate":     time.Now().AddDate(1, 0, 0).Format(time.RFC3339),
		"classification": "BEGRENSET",
		"activities":     []map[string]interface{}{},
		"controls":       []string{},
	}
}

func (g *Generator) runManifests(ctx context.Context, opts Options) ([]string, error) {
	spec := manifests.DefaultSpec(naming.ToKebabCase(opts.Name))

	var (
		path string
		out  string
		err  error
	)

	switch opts.Type {
	case "k8s":
		path = filepath.Join(g.cfg.Generate.OutputDir, "k8s", spec.Name+".yaml")
		out, err = manifests.RenderKubernetes(spec)
	case "helm":
		path = filepath.Join(g.cfg.Generate.OutputDir, "charts", spec.Name)
		return g.writeHelmChart(ctx, spec, path, opts)
	}
	if err != nil {
		return nil, err
	}

	if opts.DryRun {
		g.logger.Info(ctx, "would generate", "path", path)
		return []string{path}, nil
	}
	if !opts.Force && fileExists(path) {
		return nil, errors.NewIOError(
			fmt.Sprintf("%s already exists (use --force to overwrite)", path), nil)
	}
	if err := writeFile(path, out); err != nil {
		return nil, err
	}

	g.logger.Info(ctx, "generated", "path", path)
	return []string{path}, nil
}

func (g *Generator) writeHelmChart(ctx context.Context, spec manifests.Spec, dir string, opts Options) ([]string, error) {
	chart, err := manifests.RenderHelmChart(spec)
	if err != nil {
		return nil, err
	}

	var written []string
	for _, f := range chart {
		path := filepath.Join(dir, f.Name)
		if opts.DryRun {
			g.logger.Info(ctx, "would generate", "path", path)
			written = append(written, path)
			continue
		}
		if !opts.Force && fileExists(path) {
			return written, errors.NewIOError(
				fmt.Sprintf("%s already exists (use --force to overwrite)", path), nil)
		}
		if err := writeFile(path, f.Content); err != nil {
			return written, err
		}
		g.logger.Info(ctx, "generated", "path", path)
		written = append(written, path)
	}

	return written, nil
}

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewIOError("creating output directory", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.NewIOError("writing "+path, err)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
