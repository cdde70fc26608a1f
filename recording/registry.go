package recording

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownBackend is returned by NewBackend for a name no backend
// package has registered.
var ErrUnknownBackend = errors.New("recording: unknown backend")

// BackendFactory returns a fresh backend. Every replay of a metafile
// gets its own instance, so factories must not hand out shared state.
type BackendFactory func() Backend

var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
)

// Register makes a backend available under name. Backend packages call
// it from init, so importing them for side effects is enough:
//
//	import _ "github.com/gogpu/gg-wmf/recording/backends/raster"
//
// Register panics on a nil factory or a name that is already taken.
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("recording: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("recording: Register called twice for " + name)
	}
	backends[name] = factory
}

// Unregister removes name from the registry. Unknown names are ignored.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// NewBackend returns a new instance of the backend registered as name.
// For an unknown name the error wraps ErrUnknownBackend and lists the
// registered names, which is what wmf2png reports for a bad -backend.
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		names := Backends()
		if len(names) == 0 {
			return nil, fmt.Errorf("%w %q (none registered, forgotten import?)", ErrUnknownBackend, name)
		}
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownBackend, name, strings.Join(names, ", "))
	}
	return factory(), nil
}

// Backends returns the registered backend names in sorted order.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a backend is registered as name.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}
