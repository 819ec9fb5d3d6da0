package registry

import (
	"github.com/pkg/errors"

	"proxylistgen/internal/types"
)

// ErrNotConfigured is returned when a source name has no registered URL,
// distinguishing "never set up" from "returned nothing".
var ErrNotConfigured = errors.New("source not configured")

// Registry is the fixed table of proxy list sources for a run. It is built
// once at startup and never mutated.
type Registry struct {
	sources []types.SourceDescriptor
	index   map[string]int
}

// New builds a Registry preserving the given descriptor order.
func New(sources ...types.SourceDescriptor) *Registry {
	r := &Registry{
		sources: sources,
		index:   make(map[string]int, len(sources)),
	}
	for i, s := range sources {
		r.index[s.Name] = i
	}
	return r
}

// Default returns the built-in source table, in alphabetical order.
func Default() *Registry {
	return New(
		types.SourceDescriptor{
			Name:     "free_proxy_list",
			URL:      `https://free-proxy-list.net/`,
			Strategy: types.StructuredTable,
			Selector: `.fpl-list .table tbody tr td`,
		},
		types.SourceDescriptor{
			Name:     "spys_me",
			URL:      `https://spys.me/proxy.txt`,
			Strategy: types.Pattern,
		},
	)
}

// Lookup returns the descriptor registered under name, or ErrNotConfigured.
func (r *Registry) Lookup(name string) (types.SourceDescriptor, error) {
	i, ok := r.index[name]
	if !ok {
		return types.SourceDescriptor{}, errors.Wrapf(ErrNotConfigured, "unknown source %q", name)
	}
	return r.sources[i], nil
}

// All returns the registered descriptors in registry order.
func (r *Registry) All() []types.SourceDescriptor {
	out := make([]types.SourceDescriptor, len(r.sources))
	copy(out, r.sources)
	return out
}

// Names returns the registered source names in registry order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.sources))
	for i, s := range r.sources {
		names[i] = s.Name
	}
	return names
}
