package variants

import (
	"sort"
	"sync"

	"github.com/alexisbeaulieu97/palettegen/internal/color"
)

var (
	registryMu sync.RWMutex
	registry   = map[string]Generator{}
)

func init() {
	Register(Lightness{})
}

// Register adds or replaces a generator under its own name.
func Register(g Generator) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[g.Name()] = g
}

// Lookup resolves a generator by name. Unknown names fail with NOT_IMPLEMENTED.
func Lookup(name string) (Generator, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	g, ok := registry[name]
	if !ok {
		return nil, color.NotImplemented("variants generator " + name)
	}
	return g, nil
}

// Names lists the registered generators alphabetically.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
