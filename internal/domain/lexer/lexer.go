// Package lexer drives a compiled profile over source text. The current
// state's rules are tried in order; the first matching rule wins, its
// token is emitted, and its transition is applied. When nothing matches,
// a single character is consumed as an error token so the lexer always
// makes progress.
package lexer

import (
	"fmt"

	"github.com/corey/lexis/internal/domain/charclass"
	"github.com/corey/lexis/internal/domain/matcher"
	"github.com/corey/lexis/internal/domain/profile"
	"github.com/corey/lexis/internal/domain/source"
	"github.com/corey/lexis/internal/domain/token"
)

type compiledRule struct {
	scan matcher.Scan
	rule *profile.Rule
}

// Lexer is a profile compiled into scan functions. It is immutable after
// Compile and safe to share across goroutines.
type Lexer struct {
	lang   *profile.Language
	states map[string][]compiledRule
}

// Compile builds every state's matchers up front. Malformed matchers and
// unresolved class references surface here, before any source is lexed.
func Compile(lang *profile.Language) (*Lexer, error) {
	if lang.Initial == "" {
		return nil, fmt.Errorf("lexer: profile %q has no initial state", lang.Name)
	}
	if _, ok := lang.States[lang.Initial]; !ok {
		return nil, fmt.Errorf("lexer: profile %q initial state %q is not defined", lang.Name, lang.Initial)
	}
	classes := charclass.NewResolver(lang.Classes)
	states := make(map[string][]compiledRule, len(lang.States))
	for name, rules := range lang.States {
		compiled := make([]compiledRule, 0, len(rules))
		for i, rule := range rules {
			scan, err := matcher.Compile(rule.Match, classes)
			if err != nil {
				return nil, fmt.Errorf("lexer: profile %q state %q rule %d: %w", lang.Name, name, i, err)
			}
			compiled = append(compiled, compiledRule{scan: scan, rule: rule})
		}
		states[name] = compiled
	}
	return &Lexer{lang: lang, states: states}, nil
}

// Language returns the profile this lexer was compiled from.
func (l *Lexer) Language() *profile.Language {
	return l.lang
}

// Tokenize produces the token stream for src. Tokens cover the source
// without gaps or overlap; an empty input yields an empty list.
func (l *Lexer) Tokenize(src string) ([]token.Token, error) {
	cursor := source.NewCursor(src)
	stack := newStateStack(l.lang.Initial)
	var tokens []token.Token

	for !cursor.EOF() {
		rules, ok := l.states[stack.current()]
		if !ok {
			return nil, fmt.Errorf("lexer: profile %q reached unknown state %q", l.lang.Name, stack.current())
		}

		start := cursor.Pos()
		matched := false
		for i := range rules {
			n := rules[i].scan(cursor)
			if n == 0 {
				continue
			}
			value := cursor.AdvanceN(n)
			tokens = append(tokens, token.Token{
				Type:     rules[i].rule.Token,
				Value:    value,
				Category: l.lang.Category(rules[i].rule.Token),
				Range:    source.Range{Start: start, End: cursor.Pos()},
			})
			stack.applyTransition(rules[i].rule)
			matched = true
			break
		}
		if !matched {
			value := cursor.Advance()
			tokens = append(tokens, token.Token{
				Type:     token.TypeError,
				Value:    value,
				Category: token.CategoryError,
				Range:    source.Range{Start: start, End: cursor.Pos()},
			})
		}
	}
	return tokens, nil
}
