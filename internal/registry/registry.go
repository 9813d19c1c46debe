// Package registry provides a global registry of named rain palettes.
// Built-in palettes register themselves in init(); callers may add more
// before the first lookup.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/neon-rain/internal/rain"
)

// DefaultPalette is the palette used when none is configured.
const DefaultPalette = "neon"

// PaletteInfo describes a registered palette.
type PaletteInfo struct {
	Name    string
	Title   string
	Palette rain.Palette
}

var (
	palettes = make(map[string]PaletteInfo)
	mu       sync.RWMutex
)

// Register adds a palette to the registry.
// Panics if a palette with the same name is already registered.
func Register(name, title string, p rain.Palette) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := palettes[name]; exists {
		panic(fmt.Sprintf("registry: palette %q already registered", name))
	}

	palettes[name] = PaletteInfo{Name: name, Title: title, Palette: p}
}

// List returns all registered palettes, sorted by name.
func List() []PaletteInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PaletteInfo, 0, len(palettes))
	for _, info := range palettes {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Get returns the palette registered under name.
// Returns an error if the name is not registered.
func Get(name string) (rain.Palette, error) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := palettes[name]
	if !ok {
		return rain.Palette{}, fmt.Errorf("registry: unknown palette %q", name)
	}

	return info.Palette, nil
}

// Exists checks if a palette with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := palettes[name]
	return ok
}
