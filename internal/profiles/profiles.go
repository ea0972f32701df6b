// Package profiles carries the built-in language profiles. Each language
// is one Language literal — classes, states, rules, blocks, and symbol
// patterns — interpreted by the engine at runtime. Adding a language here
// means adding data, never scanner code.
package profiles

import (
	"sync"

	"github.com/corey/lexis/internal/adapters/registry"
	"github.com/corey/lexis/internal/domain/profile"
	"github.com/corey/lexis/internal/log"
	"github.com/corey/lexis/internal/ports"
)

var (
	defaultOnce sync.Once
	defaultReg  *registry.Registry
)

// All returns freshly built copies of every built-in profile.
func All() []*profile.Language {
	return []*profile.Language{
		JavaScript(),
		TypeScript(),
		Python(),
		Go(),
		JSON(),
		TOML(),
		Markdown(),
	}
}

// Default returns the process-wide registry with all built-in profiles
// installed. It is the convenience singleton; callers that want isolation
// build their own registry and register profiles from All.
func Default() ports.Registry {
	defaultOnce.Do(func() {
		defaultReg = registry.New()
		logger := log.NewLogger("profiles")
		for _, lang := range All() {
			defaultReg.Register(lang)
			logger.WithField("language", lang.Name).Debug("registered builtin profile")
		}
	})
	return defaultReg
}

// --- profile construction helpers ---

func cls(predefined string) *profile.Class {
	return &profile.Class{Is: predefined}
}

func chars(set string) *profile.Class {
	return &profile.Class{Chars: set}
}

func union(classes ...*profile.Class) *profile.Class {
	return &profile.Class{OneOf: classes}
}

func ref(name string) *profile.Class {
	return &profile.Class{Ref: name}
}

func not(c *profile.Class) *profile.Class {
	return &profile.Class{Not: c}
}

func rule(m *profile.Matcher, tok string) *profile.Rule {
	return &profile.Rule{Match: m, Token: tok}
}

func keywords(words ...string) *profile.Matcher {
	return &profile.Matcher{Keywords: words}
}

func literals(ss ...string) *profile.Matcher {
	return &profile.Matcher{Strings: ss}
}

func lineFrom(start string) *profile.Matcher {
	return &profile.Matcher{Line: start}
}

func charSeq(first, rest *profile.Class) *profile.Matcher {
	return &profile.Matcher{Chars: &profile.CharSeq{First: first, Rest: rest}}
}

func delimited(d profile.Delimited) *profile.Matcher {
	return &profile.Matcher{Delimited: &d}
}

func number(n profile.Number) *profile.Matcher {
	return &profile.Matcher{Number: &n}
}

// whitespaceRules are the two leading rules nearly every profile starts
// with: runs of spaces/tabs, and single newline characters. Newlines stay
// single-character so blank-line detection sees one token per terminator.
func whitespaceRules() []*profile.Rule {
	return []*profile.Rule{
		rule(charSeq(cls(profile.ClassWhitespace), cls(profile.ClassWhitespace)), "whitespace"),
		rule(charSeq(cls(profile.ClassNewline), nil), "newline"),
	}
}

func step(tok, value, capture string) *profile.Step {
	return &profile.Step{Token: tok, Value: value, Capture: capture}
}

func skipTo(max int) *profile.Step {
	return &profile.Step{Skip: true, MaxTokens: max}
}

func optional(s *profile.Step) *profile.Step {
	return &profile.Step{Optional: s}
}

func anyOf(alts ...*profile.Step) *profile.Step {
	return &profile.Step{AnyOf: alts}
}

// bracketBlocks is the usual brace/paren/bracket triple.
func bracketBlocks() []profile.BlockRule {
	return []profile.BlockRule{
		{Name: "braces", Open: "{", Close: "}"},
		{Name: "parens", Open: "(", Close: ")"},
		{Name: "brackets", Open: "[", Close: "]"},
	}
}
