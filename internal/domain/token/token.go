// Package token defines the classified token value produced by the lexer.
package token

import "github.com/corey/lexis/internal/domain/source"

// Reserved names emitted by the engine itself. Profiles choose every other
// type and category freely.
const (
	TypeError     = "error"
	CategoryError = "error"
	CategoryPlain = "plain"
)

// Token is one classified slice of the source. Tokens cover the source
// without gaps and without overlap.
type Token struct {
	Type     string       `json:"type"`
	Value    string       `json:"value"`
	Category string       `json:"category"`
	Range    source.Range `json:"range"`
}

// IsError reports whether the token was synthesized because no lexer rule
// matched.
func (t Token) IsError() bool {
	return t.Type == TypeError
}
