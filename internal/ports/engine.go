// Package ports defines the interfaces between the engine core and its
// adapters: the profile registry, the analysis façade, and the file
// watcher used by the CLI's watch mode.
package ports

import (
	"errors"

	"github.com/corey/lexis/internal/domain/profile"
	"github.com/corey/lexis/internal/domain/symbols"
	"github.com/corey/lexis/internal/domain/token"
)

// ErrUnknownLanguage is returned when a language identifier resolves to no
// registered profile.
var ErrUnknownLanguage = errors.New("unknown language")

// Registry stores language profiles and resolves identifiers. Lookup
// accepts a profile name as-is and an extension case-insensitively; the
// dot is part of the extension. Implementations must serialize writers so
// readers never observe a partially installed profile.
type Registry interface {
	// Register installs a profile, replacing any prior binding with the
	// same name together with that binding's extensions.
	Register(lang *profile.Language)

	// Lookup resolves a profile name or extension.
	Lookup(nameOrExt string) (*profile.Language, bool)

	// ListNames returns all registered profile names, sorted.
	ListNames() []string

	// ListExtensions returns all registered extensions, sorted.
	ListExtensions() []string
}

// Analyzer is the engine façade: tokenization and symbol extraction by
// language name or extension.
type Analyzer interface {
	Tokenize(src, nameOrExt string) ([]token.Token, error)
	ExtractSymbols(src, nameOrExt string) ([]symbols.Symbol, error)
}
