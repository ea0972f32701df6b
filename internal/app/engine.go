// Package app wires the engine façade: registry lookup, per-profile
// compiled lexer caching, and the tokenize / extract-symbols entry points.
package app

import (
	"fmt"

	gocache "github.com/patrickmn/go-cache"

	"github.com/corey/lexis/internal/domain/blocks"
	"github.com/corey/lexis/internal/domain/lexer"
	"github.com/corey/lexis/internal/domain/profile"
	"github.com/corey/lexis/internal/domain/symbols"
	"github.com/corey/lexis/internal/domain/token"
	"github.com/corey/lexis/internal/log"
	"github.com/corey/lexis/internal/ports"
)

// Engine resolves language identifiers through the registry and caches one
// compiled lexer per profile. Profiles are immutable after registration,
// so the cache is keyed by profile identity and never invalidated.
type Engine struct {
	reg    ports.Registry
	lexers *gocache.Cache
}

// New returns an engine over the given registry.
func New(reg ports.Registry) *Engine {
	return &Engine{
		reg:    reg,
		lexers: gocache.New(gocache.NoExpiration, 0),
	}
}

// Registry returns the engine's registry, for callers that install ad-hoc
// profiles before analyzing.
func (e *Engine) Registry() ports.Registry {
	return e.reg
}

// Tokenize lexes src under the profile named by nameOrExt.
func (e *Engine) Tokenize(src, nameOrExt string) ([]token.Token, error) {
	lex, err := e.lexerFor(nameOrExt)
	if err != nil {
		return nil, err
	}
	return lex.Tokenize(src)
}

// ExtractSymbols lexes src, tracks its blocks, and runs the profile's
// symbol rules over the stream.
func (e *Engine) ExtractSymbols(src, nameOrExt string) ([]symbols.Symbol, error) {
	lex, err := e.lexerFor(nameOrExt)
	if err != nil {
		return nil, err
	}
	tokens, err := lex.Tokenize(src)
	if err != nil {
		return nil, err
	}
	lang := lex.Language()
	spans := blocks.Track(tokens, lang.Blocks)
	return symbols.Detect(tokens, spans, lang), nil
}

func (e *Engine) lexerFor(nameOrExt string) (*lexer.Lexer, error) {
	lang, ok := e.reg.Lookup(nameOrExt)
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ports.ErrUnknownLanguage, nameOrExt, e.reg.ListNames())
	}

	key := identityKey(lang)
	if cached, ok := e.lexers.Get(key); ok {
		return cached.(*lexer.Lexer), nil
	}

	lex, err := lexer.Compile(lang)
	if err != nil {
		return nil, err
	}
	log.NewLogger("app").WithField("language", lang.Name).Debug("compiled lexer")
	e.lexers.Set(key, lex, gocache.NoExpiration)
	return lex, nil
}

// identityKey keys the cache by profile identity, never by deep equality:
// re-registering a name installs a new pointer and naturally misses.
func identityKey(lang *profile.Language) string {
	return fmt.Sprintf("%p", lang)
}
