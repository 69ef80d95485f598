package template

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/xaheen/xaheen/internal/errors"
)

// Resolver flattens template inheritance chains. A child template declares
// a parent and a set of block overrides; resolution substitutes each
// overridden {{#block "name"}}...{{/block}} span in the resolved parent
// with the child's content. Blocks the child does not override keep the
// parent's default content.
type Resolver struct {
	store *Store
}

// NewResolver creates a resolver backed by the given store.
func NewResolver(store *Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve returns the flattened source for a template. Parentless
// templates are returned unchanged, so resolving an already-resolved
// template is idempotent. A cycle in the parent chain fails with a cyclic
// inheritance error instead of recursing without bound.
func (r *Resolver) Resolve(t *Template) (string, error) {
	return r.resolve(t, map[string]bool{t.ID: true}, []string{t.ID})
}

func (r *Resolver) resolve(t *Template, visited map[string]bool, chain []string) (string, error) {
	if !t.HasParent() {
		return t.Content, nil
	}

	if visited[t.Parent] {
		return "", errors.NewCyclicInheritanceError(append(chain, t.Parent))
	}
	visited[t.Parent] = true

	parent, err := r.store.Load(t.Parent)
	if err != nil {
		return "", err
	}

	resolved, err := r.resolve(parent, visited, append(chain, t.Parent))
	if err != nil {
		return "", err
	}

	for _, block := range t.Blocks {
		pattern := blockPattern(block.Name)
		if !pattern.MatchString(resolved) {
			return "", errors.NewCompileError(t.ID,
				fmt.Errorf("block %q not declared by any ancestor", block.Name))
		}
		replacement := wrapBlock(block.Name, block.Content)
		resolved = pattern.ReplaceAllLiteralString(resolved, replacement)
	}

	return resolved, nil
}

// blockPattern matches the full {{#block "name"}}...{{/block}} span for
// one block name. (?s) lets the body span lines; the match is lazy so
// sibling blocks are untouched.
func blockPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?s)\{\{#block\s+"` + regexp.QuoteMeta(name) + `"\s*\}\}.*?\{\{/block\}\}`)
}

func wrapBlock(name, content string) string {
	var b strings.Builder
	b.WriteString(`{{#block "`)
	b.WriteString(name)
	b.WriteString(`"}}`)
	b.WriteString(content)
	b.WriteString(`{{/block}}`)
	return b.String()
}
