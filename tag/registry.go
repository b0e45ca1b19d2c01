package tag

import (
	"sort"
	"strings"
	"sync"
)

// Registry is a thread-safe set of tag definitions.
type Registry struct {
	mu          sync.RWMutex
	definitions map[string]Definition
}

func NewRegistry() *Registry {
	return &Registry{
		definitions: make(map[string]Definition),
	}
}

// Default is used by Register and by content funcs which have no registry of their own.
var Default = NewRegistry()

// Register adds def to the Default registry.
func Register(def Definition) error {
	return Default.Register(def)
}

// Register stores def, replacing any definition with the same name.
func (r *Registry) Register(def Definition) error {
	name := normalize(def.Name)
	if name == "" || def.New == nil {
		return ErrInvalidDefinition
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.definitions[name] = def
	return nil
}

func (r *Registry) Lookup(name string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.definitions[normalize(name)]
	return def, ok
}

// Names returns the registered tag names in order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.definitions))
	for name := range r.definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.definitions, normalize(name))
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
