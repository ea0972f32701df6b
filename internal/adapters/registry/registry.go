// Package registry implements the in-memory profile registry. Names are
// stored as given; extensions are normalized to lowercase with the dot
// kept, so lookups by extension are case-insensitive.
package registry

import (
	"sort"
	"strings"
	"sync"

	"github.com/corey/lexis/internal/domain/profile"
)

// Registry is the process-wide map from language identifiers to profiles.
// The zero value is not usable; call New.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]*profile.Language
	byExt  map[string]*profile.Language
	exts   map[string][]string // name -> registered extensions, for replacement cleanup
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		byName: make(map[string]*profile.Language),
		byExt:  make(map[string]*profile.Language),
		exts:   make(map[string][]string),
	}
}

// Register installs a profile. Re-registering a name replaces the prior
// binding and drops its extensions.
func (r *Registry) Register(lang *profile.Language) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, old := range r.exts[lang.Name] {
		delete(r.byExt, old)
	}

	r.byName[lang.Name] = lang
	normalized := make([]string, 0, len(lang.Extensions))
	for _, ext := range lang.Extensions {
		ext = strings.ToLower(ext)
		r.byExt[ext] = lang
		normalized = append(normalized, ext)
	}
	r.exts[lang.Name] = normalized
}

// Lookup resolves a profile name as-is, then an extension
// case-insensitively.
func (r *Registry) Lookup(nameOrExt string) (*profile.Language, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if lang, ok := r.byName[nameOrExt]; ok {
		return lang, true
	}
	if lang, ok := r.byExt[strings.ToLower(nameOrExt)]; ok {
		return lang, true
	}
	return nil, false
}

// ListNames returns all profile names, sorted.
func (r *Registry) ListNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListExtensions returns all registered extensions, sorted.
func (r *Registry) ListExtensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
