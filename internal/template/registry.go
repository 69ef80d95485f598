package template

import (
	"regexp"
	"sync"

	"github.com/mailgun/raymond/v2"
)

// partialRefPattern finds {{> name}} references in flattened template
// source so unregistered partials can be stubbed out before execution.
var partialRefPattern = regexp.MustCompile(`\{\{>\s*([a-zA-Z0-9_./-]+)`)

// Registry holds the named helpers and partials applied to every compiled
// template. Registration is last-write-wins; there is no ownership
// tracking. The registry is passed explicitly to the engine rather than
// living in package-level state, so each CLI invocation owns its own.
type Registry struct {
	helpers  map[string]interface{}
	partials map[string]string
	locale   string
	mutex    sync.RWMutex
}

// NewRegistry creates a registry pre-populated with the default helper
// set. locale selects the language for the localized UI-string helper.
func NewRegistry(locale string) *Registry {
	r := &Registry{
		helpers:  make(map[string]interface{}),
		partials: make(map[string]string),
		locale:   locale,
	}

	for name, fn := range defaultHelpers(r) {
		r.helpers[name] = fn
	}

	return r
}

// RegisterHelper registers a named helper function. Re-registering a name
// replaces the previous helper.
func (r *Registry) RegisterHelper(name string, fn interface{}) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.helpers[name] = fn
}

// RegisterPartial registers a named reusable template fragment.
// Re-registering a name replaces the previous fragment.
func (r *Registry) RegisterPartial(name, text string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.partials[name] = text
}

// HasHelper reports whether a helper is registered under name.
func (r *Registry) HasHelper(name string) bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	_, ok := r.helpers[name]
	return ok
}

// HasPartial reports whether a partial is registered under name.
func (r *Registry) HasPartial(name string) bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	_, ok := r.partials[name]
	return ok
}

// Apply registers the current helper and partial sets onto a freshly
// compiled template. Partials referenced by the source but never
// registered are stubbed with empty fragments so they render to nothing
// instead of failing execution.
func (r *Registry) Apply(tpl *raymond.Template, source string) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	tpl.RegisterHelpers(r.helpers)

	partials := make(map[string]string, len(r.partials))
	for name, text := range r.partials {
		partials[name] = text
	}

	for _, match := range partialRefPattern.FindAllStringSubmatch(source, -1) {
		name := match[1]
		if _, ok := partials[name]; !ok {
			partials[name] = ""
		}
	}

	if len(partials) > 0 {
		tpl.RegisterPartials(partials)
	}
}
