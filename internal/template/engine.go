package template

import (
	"context"

	"github.com/mailgun/raymond/v2"

	"github.com/xaheen/xaheen/internal/errors"
	"github.com/xaheen/xaheen/internal/logging"
)

// EngineOptions configures an Engine.
type EngineOptions struct {
	// Dir is the template directory the store reads from.
	Dir string
	// Locale selects the language for the localized UI-string helper.
	Locale string
	// DevMode enables mtime-based cache invalidation on every compile
	// lookup, so edits to template sources take effect without restarting.
	DevMode bool
	// Logger receives engine diagnostics. Defaults to a stderr logger.
	Logger logging.Logger
}

// Engine composes the template store, inheritance resolver, helper/partial
// registry and compilation cache behind a single render entry point. All
// collaborators are injected at construction; nothing lives in package
// state.
type Engine struct {
	store    *Store
	resolver *Resolver
	registry *Registry
	cache    *Cache
	devMode  bool
	logger   logging.Logger
}

// NewEngine creates an engine for the given options.
func NewEngine(opts EngineOptions) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewLogger(nil)
	}

	store := NewStore(opts.Dir)

	return &Engine{
		store:    store,
		resolver: NewResolver(store),
		registry: NewRegistry(opts.Locale),
		cache:    NewCache(),
		devMode:  opts.DevMode,
		logger:   logger.WithComponent("template"),
	}
}

// Store exposes the underlying template store.
func (e *Engine) Store() *Store {
	return e.store
}

// Registry exposes the helper/partial registry.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Render loads, resolves and compiles the template with the given id, then
// executes it against data. Runtime failures are wrapped in a render error
// carrying the template id.
func (e *Engine) Render(ctx context.Context, id string, data map[string]interface{}) (string, error) {
	tpl, err := e.Compiled(ctx, id)
	if err != nil {
		return "", err
	}

	out, err := tpl.Exec(data)
	if err != nil {
		return "", errors.NewRenderError(id, err)
	}

	return out, nil
}

// Compiled returns the compiled template function for id, compiling on
// first use. In development mode a changed source mtime forces a
// recompile; otherwise cached entries live until ClearCache or an
// explicit Invalidate.
func (e *Engine) Compiled(ctx context.Context, id string) (*raymond.Template, error) {
	if tpl, cachedAt, ok := e.cache.Get(id); ok {
		if !e.devMode {
			return tpl, nil
		}
		if modTime, ok := e.store.ModTime(id); ok && modTime.Equal(cachedAt) {
			return tpl, nil
		}
		e.logger.Debug(ctx, "template source changed, recompiling", "template", id)
		if _, err := e.store.Reload(id); err != nil {
			return nil, err
		}
	}

	return e.compile(ctx, id)
}

func (e *Engine) compile(ctx context.Context, id string) (*raymond.Template, error) {
	t, err := e.store.Load(id)
	if err != nil {
		return nil, err
	}

	source, err := e.resolver.Resolve(t)
	if err != nil {
		return nil, err
	}

	tpl, err := raymond.Parse(source)
	if err != nil {
		return nil, errors.NewCompileError(id, err)
	}

	e.registry.Apply(tpl, source)
	e.cache.Put(id, tpl, t.ModTime)

	e.logger.Debug(ctx, "template compiled", "template", id, "parent", t.Parent)

	return tpl, nil
}

// Invalidate drops the cached compilation for id. The file watcher calls
// this when a template source changes.
func (e *Engine) Invalidate(id string) {
	e.cache.Invalidate(id)
}

// ClearCache drops every cached compilation.
func (e *Engine) ClearCache() {
	e.cache.Clear()
}
