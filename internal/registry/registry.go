// Package registry tracks the extensions a host process has installed.
// Registration happens once at startup through an explicit call from
// the host-facing entry point; nothing else mutates the registry.
package registry

import (
	"errors"
	"log/slog"
	"sort"
	"sync"

	"github.com/dbops-mcp/zed-extension/internal/errortypes"
	"github.com/dbops-mcp/zed-extension/internal/extension"
)

var (
	mu         sync.RWMutex
	extensions = map[string]extension.Extension{}
)

// Register makes ext available to the host under name. Registering an
// empty name, a nil extension, or a name that is already taken is a
// configuration error.
func Register(name string, ext extension.Extension) error {
	if name == "" {
		return errortypes.ValidationError(errors.New("extension name is empty"), "cannot register extension")
	}
	if ext == nil {
		return errortypes.ValidationError(errors.New("extension is nil"), "cannot register extension")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := extensions[name]; exists {
		return errortypes.ConfigError(errors.New("extension already registered"), "cannot register extension").
			WithField("name", name)
	}

	extensions[name] = ext
	slog.Info("Registered extension", "name", name)
	return nil
}

// Lookup returns the extension registered under name.
func Lookup(name string) (extension.Extension, bool) {
	mu.RLock()
	defer mu.RUnlock()

	ext, ok := extensions[name]
	return ext, ok
}

// Names returns the registered extension names in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(extensions))
	for name := range extensions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reset removes all registrations. Intended for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	extensions = map[string]extension.Extension{}
}
