// Package registry provides a global registry for output formats.
// Surfaces register themselves in init() functions, allowing the CLI
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/vovakirdan/polyscatter/internal/render"
)

// ErrUnknownFormat is returned by Create for an unregistered format ID.
var ErrUnknownFormat = errors.New("registry: unknown format")

// Output is a drawing surface that can be written out once painted.
type Output interface {
	render.Surface

	// Encode writes everything painted so far in the format's encoding.
	Encode(w io.Writer) error

	// Close releases the surface. It is safe to call more than once.
	Close() error
}

// FormatInfo contains metadata about a registered format.
type FormatInfo struct {
	ID        string // e.g. "png"
	Title     string // e.g. "PNG image"
	Extension string // File extension including the dot
}

// Factory creates an output surface of the given size in pixels.
type Factory func(width, height int) Output

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]FormatInfo)
	mu        sync.RWMutex
)

// Register adds a format factory to the registry.
// Typically called from a surface package's init() function.
// Panics if a format with the same ID is already registered.
func Register(info FormatInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[info.ID]; exists {
		panic(fmt.Sprintf("registry: format %q already registered", info.ID))
	}

	factories[info.ID] = f
	infos[info.ID] = info
}

// List returns information about all registered formats, sorted by ID.
func List() []FormatInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FormatInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates an output surface by format ID.
func Create(id string, width, height int) (Output, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, id)
	}

	return f(width, height), nil
}

// Lookup returns the metadata of a registered format.
func Lookup(id string) (FormatInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := infos[id]
	return info, ok
}

// Exists checks if a format with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
