package plugin

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
)

// Registry manages plugin registration and lookup by resolve identifier.
type Registry struct {
	mu      sync.RWMutex
	plugins map[string]Plugin
}

// NewRegistry creates a new empty plugin registry.
func NewRegistry() *Registry {
	return &Registry{
		plugins: make(map[string]Plugin),
	}
}

// NewBuiltinRegistry creates a registry holding the built-in plugins.
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()
	for _, p := range Builtins() {
		if err := r.Register(p); err != nil {
			panic(fmt.Sprintf("register builtin plugin: %v", err))
		}
	}
	return r
}

// Register adds a plugin to the registry.
// Returns an error if a plugin with the same name already exists.
func (r *Registry) Register(plugin Plugin) error {
	if plugin == nil {
		return fmt.Errorf("cannot register nil plugin")
	}

	metadata := plugin.Metadata()
	if err := metadata.Validate(); err != nil {
		return fmt.Errorf("invalid plugin metadata: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, exists := r.plugins[metadata.Name]; exists {
		return fmt.Errorf("plugin %s already registered as %s", metadata.Name, existing.Metadata())
	}
	r.plugins[metadata.Name] = plugin
	return nil
}

// Get retrieves a plugin by resolve identifier. A missing plugin yields an
// UnknownPlugin error.
func (r *Registry) Get(name string) (Plugin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plugin, ok := r.plugins[name]
	if !ok {
		b := errors.UnknownPlugin(name)
		if suggestion := r.closestLocked(name); suggestion != "" {
			b = b.WithContext("suggestion", suggestion)
		}
		return nil, b.Build()
	}
	return plugin, nil
}

// closestLocked returns a registered name sharing name's suffix after the
// common "gatsby-" prefixes, which catches theme/plugin mix-ups.
func (r *Registry) closestLocked(name string) string {
	trim := func(s string) string {
		s = strings.TrimPrefix(s, "gatsby-")
		s = strings.TrimPrefix(s, "plugin-")
		return strings.TrimPrefix(s, "theme-")
	}
	want := trim(name)
	for registered := range r.plugins {
		if trim(registered) == want {
			return registered
		}
	}
	return ""
}

// Has checks if a plugin with the given name exists.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.plugins[name]
	return ok
}

// List returns all registered plugins sorted by name.
func (r *Registry) List() []Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Plugin, 0, len(r.plugins))
	for _, plugin := range r.plugins {
		result = append(result, plugin)
	}
	slices.SortFunc(result, func(a, b Plugin) int {
		return strings.Compare(a.Metadata().Name, b.Metadata().Name)
	})
	return result
}

// ListByKind returns all plugins of a specific kind sorted by name.
func (r *Registry) ListByKind(kind Kind) []Plugin {
	var result []Plugin
	for _, plugin := range r.List() {
		if plugin.Metadata().Kind == kind {
			result = append(result, plugin)
		}
	}
	return result
}

// Unregister removes a plugin from the registry.
func (r *Registry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.plugins[name]; !ok {
		return fmt.Errorf("plugin %s not found", name)
	}
	delete(r.plugins, name)
	return nil
}

// Count returns the number of registered plugins.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.plugins)
}
