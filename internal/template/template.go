// Package template implements the Handlebars template engine behind the
// Xaheen generators: a disk-backed template store with JSON metadata
// sidecars, parent/child inheritance with named override blocks, a
// helper/partial registry, and a compilation cache with mtime-based
// invalidation for development mode.
package template

import (
	"time"
)

// Template is a unit of generatable text with optional inheritance and
// named override blocks.
type Template struct {
	ID        string
	Name      string
	Path      string
	Content   string
	Parent    string
	Blocks    []Block
	Variables []string
	Partials  []string
	Helpers   []string
	ModTime   time.Time
}

// Block is a named, overridable region within a template. Block names are
// unique within one template. A block a child declares must exist in some
// ancestor of its inheritance chain.
type Block struct {
	Name        string `json:"name"`
	Content     string `json:"content"`
	Description string `json:"description,omitempty"`
}

// Metadata is the JSON sidecar stored next to a template source file as
// {id}.json.
type Metadata struct {
	ID        string   `json:"id"`
	Name      string   `json:"name,omitempty"`
	Variables []string `json:"variables,omitempty"`
	Partials  []string `json:"partials,omitempty"`
	Helpers   []string `json:"helpers,omitempty"`
	Parent    string   `json:"parent,omitempty"`
	Blocks    []Block  `json:"blocks,omitempty"`
}

// Block looks up a declared block by name.
func (t *Template) Block(name string) (Block, bool) {
	for _, b := range t.Blocks {
		if b.Name == name {
			return b, true
		}
	}
	return Block{}, false
}

// HasParent reports whether the template declares a parent.
func (t *Template) HasParent() bool {
	return t.Parent != ""
}
