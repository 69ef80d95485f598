package template

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/xaheen/xaheen/internal/errors"
)

// SourceExt is the filename extension for template source files.
const SourceExt = ".hbs"

// Store loads templates and their metadata sidecars from a directory and
// keeps them in an in-memory map so repeated loads within one invocation
// are O(1). The CLI is single-threaded per invocation; the mutex only
// guards against the hot-reload watcher goroutine.
type Store struct {
	dir       string
	templates map[string]*Template
	mutex     sync.RWMutex
}

// NewStore creates a template store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{
		dir:       dir,
		templates: make(map[string]*Template),
	}
}

// Dir returns the directory the store reads from.
func (s *Store) Dir() string {
	return s.dir
}

// SourcePath returns the on-disk path of a template's source file.
func (s *Store) SourcePath(id string) string {
	return filepath.Join(s.dir, id+SourceExt)
}

// MetadataPath returns the on-disk path of a template's JSON sidecar.
func (s *Store) MetadataPath(id string) string {
	return filepath.Join(s.dir, id+".json")
}

// Load returns the template with the given id, reading it from disk on
// first access. It fails with a not-found error when neither the source
// file nor the metadata sidecar exists.
func (s *Store) Load(id string) (*Template, error) {
	s.mutex.RLock()
	t, ok := s.templates[id]
	s.mutex.RUnlock()
	if ok {
		return t, nil
	}

	return s.Reload(id)
}

// Reload reads the template from disk unconditionally, replacing any
// in-memory copy. The compilation cache uses this when a source mtime
// mismatch is detected in development mode.
func (s *Store) Reload(id string) (*Template, error) {
	t, err := s.read(id)
	if err != nil {
		return nil, err
	}

	s.mutex.Lock()
	s.templates[id] = t
	s.mutex.Unlock()

	return t, nil
}

func (s *Store) read(id string) (*Template, error) {
	t := &Template{ID: id, Name: id, Path: s.SourcePath(id)}

	content, contentErr := os.ReadFile(s.SourcePath(id))
	if contentErr == nil {
		t.Content = string(content)
		if info, err := os.Stat(s.SourcePath(id)); err == nil {
			t.ModTime = info.ModTime()
		}
	}

	meta, metaErr := s.readMetadata(id)
	if metaErr == nil && meta != nil {
		if meta.Name != "" {
			t.Name = meta.Name
		}
		t.Parent = meta.Parent
		t.Blocks = meta.Blocks
		t.Variables = meta.Variables
		t.Partials = meta.Partials
		t.Helpers = meta.Helpers

		if contentErr != nil {
			// Sidecar-only template, e.g. a child that only overrides
			// blocks. Use the sidecar mtime for cache invalidation.
			if info, err := os.Stat(s.MetadataPath(id)); err == nil {
				t.ModTime = info.ModTime()
			}
		}
	}

	if contentErr != nil && metaErr != nil {
		return nil, errors.NewNotFoundError(id)
	}

	return t, nil
}

func (s *Store) readMetadata(id string) (*Metadata, error) {
	raw, err := os.ReadFile(s.MetadataPath(id))
	if err != nil {
		return nil, err
	}

	var meta Metadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, errors.NewIOError("invalid template metadata", err).
			WithTemplate(id)
	}

	return &meta, nil
}

// Register puts an authored template into the in-memory map without
// touching disk.
func (s *Store) Register(t *Template) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.templates[t.ID] = t
}

// Save writes the template source and metadata sidecar to disk, creating
// the store directory if needed, and refreshes the in-memory copy.
func (s *Store) Save(t *Template) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return errors.NewIOError("creating template directory", err)
	}

	if err := os.WriteFile(s.SourcePath(t.ID), []byte(t.Content), 0644); err != nil {
		return errors.NewIOError("writing template source", err).WithTemplate(t.ID)
	}

	meta := Metadata{
		ID:        t.ID,
		Name:      t.Name,
		Variables: t.Variables,
		Partials:  t.Partials,
		Helpers:   t.Helpers,
		Parent:    t.Parent,
		Blocks:    t.Blocks,
	}

	raw, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return errors.NewInternalError("encoding template metadata", err)
	}

	if err := os.WriteFile(s.MetadataPath(t.ID), raw, 0644); err != nil {
		return errors.NewIOError("writing template metadata", err).WithTemplate(t.ID)
	}

	s.Register(t)

	return nil
}

// List returns the ids of all templates present in the store directory.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.NewIOError("listing template directory", err)
	}

	seen := make(map[string]bool)
	var ids []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		var id string
		switch filepath.Ext(name) {
		case SourceExt:
			id = name[:len(name)-len(SourceExt)]
		case ".json":
			id = name[:len(name)-len(".json")]
		default:
			continue
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	return ids, nil
}

// ModTime returns the current on-disk modification time for a template
// source, falling back to the sidecar for sidecar-only templates.
func (s *Store) ModTime(id string) (time.Time, bool) {
	if info, err := os.Stat(s.SourcePath(id)); err == nil {
		return info.ModTime(), true
	}
	if info, err := os.Stat(s.MetadataPath(id)); err == nil {
		return info.ModTime(), true
	}
	return time.Time{}, false
}
