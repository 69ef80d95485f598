package generator

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xaheen/xaheen/internal/config"
	"github.com/xaheen/xaheen/internal/errors"
	"github.com/xaheen/xaheen/internal/logging"
	"github.com/xaheen/xaheen/internal/template"
)

func newTestGenerator(t *testing.T) (*Generator, *config.Config) {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Generate.OutputDir = t.TempDir()
	cfg.Templates.Dir = t.TempDir()

	engine := template.NewEngine(template.EngineOptions{
		Dir:    cfg.Templates.Dir,
		Locale: cfg.Templates.Locale,
	})

	return New(engine, cfg, logging.NewLogger(nil)), cfg
}

func readGenerated(t *testing.T, path string) string {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(raw)
}

func TestGenerateComponent(t *testing.T) {
	gen, cfg := newTestGenerator(t)

	written, err := gen.Run(context.Background(), Options{Type: "component", Name: "user card"})
	require.NoError(t, err)

	expected := filepath.Join(cfg.Generate.OutputDir, "components", "user-card", "UserCard.tsx")
	require.Equal(t, []string{expected}, written)

	content := readGenerated(t, expected)
	assert.Contains(t, content, "Generated by Xaheen")
	assert.Contains(t, content, "export const UserCard")
	assert.Contains(t, content, `className="user-card"`)
}

func TestGenerateComponentWithTestsAndStories(t *testing.T) {
	gen, cfg := newTestGenerator(t)

	written, err := gen.Run(context.Background(), Options{
		Type:    "component",
		Name:    "UserCard",
		Tests:   true,
		Stories: true,
	})
	require.NoError(t, err)

	dir := filepath.Join(cfg.Generate.OutputDir, "components", "user-card")
	assert.Equal(t, []string{
		filepath.Join(dir, "UserCard.tsx"),
		filepath.Join(dir, "UserCard.test.tsx"),
		filepath.Join(dir, "UserCard.stories.tsx"),
	}, written)

	testContent := readGenerated(t, written[1])
	assert.Contains(t, testContent, "describe('UserCard'")
}

func TestGeneratePage(t *testing.T) {
	gen, cfg := newTestGenerator(t)

	written, err := gen.Run(context.Background(), Options{Type: "page", Name: "About Us"})
	require.NoError(t, err)

	expected := filepath.Join(cfg.Generate.OutputDir, "pages", "about-us.tsx")
	require.Equal(t, []string{expected}, written)
	assert.Contains(t, readGenerated(t, expected), "function AboutUsPage()")
}

func TestGenerateService(t *testing.T) {
	gen, cfg := newTestGenerator(t)

	written, err := gen.Run(context.Background(), Options{Type: "service", Name: "order-history"})
	require.NoError(t, err)

	expected := filepath.Join(cfg.Generate.OutputDir, "services", "order-history.ts")
	require.Equal(t, []string{expected}, written)

	content := readGenerated(t, expected)
	assert.Contains(t, content, "class OrderHistoryService")
	assert.Contains(t, content, "ORDER_HISTORY_LIST_FAILED")
}

func TestGenerateComplianceDocuments(t *testing.T) {
	gen, cfg := newTestGenerator(t)
	cfg.Project.Name = "storefront"

	written, err := gen.Run(context.Background(), Options{Type: "compliance", Name: "storefront"})
	require.NoError(t, err)
	require.Len(t, written, 2)

	ropa := readGenerated(t, filepath.Join(cfg.Generate.OutputDir, "docs", "compliance", "storefront-ropa.md"))
	assert.Contains(t, ropa, "# Record of Processing Activities: storefront")
	assert.Contains(t, ropa, "Document owner: storefront")

	nsm := readGenerated(t, filepath.Join(cfg.Generate.OutputDir, "docs", "compliance", "storefront-nsm.md"))
	assert.Contains(t, nsm, "# NSM: storefront")
	assert.Contains(t, nsm, "**BEGRENSET**")
}

func TestGenerateDryRunWritesNothing(t *testing.T) {
	gen, cfg := newTestGenerator(t)

	written, err := gen.Run(context.Background(), Options{Type: "component", Name: "card", DryRun: true})
	require.NoError(t, err)
	require.Len(t, written, 1)

	_, statErr := os.Stat(written[0])
	assert.True(t, os.IsNotExist(statErr))

	entries, err := os.ReadDir(cfg.Generate.OutputDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerateExistingFileNeedsForce(t *testing.T) {
	gen, _ := newTestGenerator(t)
	ctx := context.Background()

	_, err := gen.Run(ctx, Options{Type: "component", Name: "card"})
	require.NoError(t, err)

	_, err = gen.Run(ctx, Options{Type: "component", Name: "card"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	_, err = gen.Run(ctx, Options{Type: "component", Name: "card", Force: true})
	assert.NoError(t, err)
}

func TestGenerateUnknownType(t *testing.T) {
	gen, _ := newTestGenerator(t)

	_, err := gen.Run(context.Background(), Options{Type: "widget", Name: "x"})
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestGenerateEmptyName(t *testing.T) {
	gen, _ := newTestGenerator(t)

	_, err := gen.Run(context.Background(), Options{Type: "component"})
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestGenerateKubernetesManifest(t *testing.T) {
	gen, cfg := newTestGenerator(t)

	written, err := gen.Run(context.Background(), Options{Type: "k8s", Name: "Shop"})
	require.NoError(t, err)

	expected := filepath.Join(cfg.Generate.OutputDir, "k8s", "shop.yaml")
	require.Equal(t, []string{expected}, written)

	content := readGenerated(t, expected)
	assert.Contains(t, content, "kind: Deployment")
	assert.Contains(t, content, "kind: HorizontalPodAutoscaler")
}

func TestGenerateHelmChart(t *testing.T) {
	gen, cfg := newTestGenerator(t)

	written, err := gen.Run(context.Background(), Options{Type: "helm", Name: "shop"})
	require.NoError(t, err)

	dir := filepath.Join(cfg.Generate.OutputDir, "charts", "shop")
	assert.Equal(t, []string{
		filepath.Join(dir, "Chart.yaml"),
		filepath.Join(dir, "values.yaml"),
		filepath.Join(dir, "templates", "all.yaml"),
	}, written)
}

func TestProjectTemplateOverridesBuiltin(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Generate.OutputDir = t.TempDir()
	cfg.Templates.Dir = t.TempDir()

	custom := filepath.Join(cfg.Templates.Dir, "component.hbs")
	require.NoError(t, os.WriteFile(custom, []byte("custom {{pascalCase name}}"), 0644))

	engine := template.NewEngine(template.EngineOptions{
		Dir:    cfg.Templates.Dir,
		Locale: cfg.Templates.Locale,
	})
	gen := New(engine, cfg, logging.NewLogger(nil))

	written, err := gen.Run(context.Background(), Options{Type: "component", Name: "card"})
	require.NoError(t, err)
	require.Len(t, written, 1)

	assert.Equal(t, "custom Card", readGenerated(t, written[0]))
}
