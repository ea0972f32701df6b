// Package profile defines the declarative language description the engine
// interprets: character classes, matchers, lexer states, block rules, and
// symbol rules. A profile is pure data — adding a language means adding a
// Language value (in Go or YAML), never writing scanner code.
package profile

// Predefined character class names.
const (
	ClassLetter       = "letter"
	ClassUpper        = "upper"
	ClassLower        = "lower"
	ClassDigit        = "digit"
	ClassHexDigit     = "hexDigit"
	ClassAlphanumeric = "alphanumeric"
	ClassWhitespace   = "whitespace"
	ClassNewline      = "newline"
	ClassAny          = "any"
)

// Body styles for symbol rules.
const (
	BodyBraces     = "braces"
	BodyIndent     = "indentation"
	BodyMarkup     = "markup-block"
	BodyEndKeyword = "end-keyword"
)

// Class is a character class expression. Exactly one branch is set; OneOf
// is a union, Not a negation, Ref a named reference resolved against the
// profile's class table.
type Class struct {
	Is    string   `yaml:"is,omitempty" json:"is,omitempty"`       // predefined class name
	Chars string   `yaml:"chars,omitempty" json:"chars,omitempty"` // explicit character set
	From  string   `yaml:"from,omitempty" json:"from,omitempty"`   // inclusive range start
	To    string   `yaml:"to,omitempty" json:"to,omitempty"`       // inclusive range end
	OneOf []*Class `yaml:"oneOf,omitempty" json:"oneOf,omitempty"`
	Not   *Class   `yaml:"not,omitempty" json:"not,omitempty"`
	Ref   string   `yaml:"ref,omitempty" json:"ref,omitempty"`
}

// Delimited describes a region between an open and a close literal.
type Delimited struct {
	Open      string `yaml:"open" json:"open"`
	Close     string `yaml:"close" json:"close"`
	Escape    string `yaml:"escape,omitempty" json:"escape,omitempty"` // single character; swallows the next
	Multiline bool   `yaml:"multiline,omitempty" json:"multiline,omitempty"`
	Nested    bool   `yaml:"nested,omitempty" json:"nested,omitempty"`
}

// CharSeq matches one character of First, then greedily extends over Rest.
type CharSeq struct {
	First *Class `yaml:"first" json:"first"`
	Rest  *Class `yaml:"rest,omitempty" json:"rest,omitempty"`
}

// Number configures the numeric literal scanner. The Float flag gates the
// leading-dot form; fractional and exponent parts are always attempted.
type Number struct {
	Hex       bool     `yaml:"hex,omitempty" json:"hex,omitempty"`
	Octal     bool     `yaml:"octal,omitempty" json:"octal,omitempty"`
	Binary    bool     `yaml:"binary,omitempty" json:"binary,omitempty"`
	Float     bool     `yaml:"float,omitempty" json:"float,omitempty"`
	Separator string   `yaml:"separator,omitempty" json:"separator,omitempty"` // digit separator, e.g. "_"
	Suffixes  []string `yaml:"suffixes,omitempty" json:"suffixes,omitempty"`
}

// Matcher is a tagged variant; exactly one branch is set. The compiler in
// internal/domain/matcher rejects empty matchers; when several branches are
// set, it uses the first one in field order.
type Matcher struct {
	String    string     `yaml:"string,omitempty" json:"string,omitempty"`
	Strings   []string   `yaml:"strings,omitempty" json:"strings,omitempty"`
	Keywords  []string   `yaml:"keywords,omitempty" json:"keywords,omitempty"`
	Delimited *Delimited `yaml:"delimited,omitempty" json:"delimited,omitempty"`
	Line      string     `yaml:"line,omitempty" json:"line,omitempty"` // start marker through end of line
	Chars     *CharSeq   `yaml:"chars,omitempty" json:"chars,omitempty"`
	Number    *Number    `yaml:"number,omitempty" json:"number,omitempty"`
	Sequence  []*Matcher `yaml:"sequence,omitempty" json:"sequence,omitempty"`
	Regex     string     `yaml:"regex,omitempty" json:"regex,omitempty"` // anchored escape hatch
}

// Rule binds a matcher to a token type and an optional state transition.
// Transition priority when several are set: push, then pop, then switchTo.
type Rule struct {
	Match    *Matcher `yaml:"match" json:"match"`
	Token    string   `yaml:"token" json:"token"`
	Push     string   `yaml:"push,omitempty" json:"push,omitempty"`
	Pop      bool     `yaml:"pop,omitempty" json:"pop,omitempty"`
	SwitchTo string   `yaml:"switchTo,omitempty" json:"switchTo,omitempty"`
}

// BlockRule names a bracket pair tracked by the block tracker. Literals are
// compared against token values, not types.
type BlockRule struct {
	Name  string `yaml:"name" json:"name"`
	Open  string `yaml:"open" json:"open"`
	Close string `yaml:"close" json:"close"`
}

// Step is one token pattern step: a match (Token/Value/Capture), a bounded
// skip, an optional step, or a choice. Exactly one interpretation applies;
// Skip wins over Optional and AnyOf, which win over a plain match.
type Step struct {
	Token     string  `yaml:"token,omitempty" json:"token,omitempty"`
	Value     string  `yaml:"value,omitempty" json:"value,omitempty"`
	Capture   string  `yaml:"capture,omitempty" json:"capture,omitempty"`
	Skip      bool    `yaml:"skip,omitempty" json:"skip,omitempty"`
	MaxTokens int     `yaml:"maxTokens,omitempty" json:"maxTokens,omitempty"` // skip bound; 0 means the default of 50
	Optional  *Step   `yaml:"optional,omitempty" json:"optional,omitempty"`
	AnyOf     []*Step `yaml:"anyOf,omitempty" json:"anyOf,omitempty"`
}

// SymbolRule describes one structural symbol: the token pattern that
// announces it and the body style that decides where its content ends.
type SymbolRule struct {
	Name       string  `yaml:"name" json:"name"`
	Kind       string  `yaml:"kind" json:"kind"`
	Pattern    []*Step `yaml:"pattern" json:"pattern"`
	HasBody    bool    `yaml:"hasBody,omitempty" json:"hasBody,omitempty"`
	BodyStyle  string  `yaml:"bodyStyle,omitempty" json:"bodyStyle,omitempty"`
	EndKeyword string  `yaml:"endKeyword,omitempty" json:"endKeyword,omitempty"`
	Nested     bool    `yaml:"nested,omitempty" json:"nested,omitempty"`
}

// Indent carries optional indentation configuration. Accepted for any
// profile; the engine does not interpret it today.
type Indent struct {
	TabWidth int `yaml:"tabWidth,omitempty" json:"tabWidth,omitempty"`
}

// Embedded declares an embedded language region. Accepted and stored,
// never interpreted by this engine.
type Embedded struct {
	State    string `yaml:"state,omitempty" json:"state,omitempty"`
	Language string `yaml:"language,omitempty" json:"language,omitempty"`
}

// Language is a complete profile. Registered profiles are immutable;
// callers must not mutate a Language after handing it to a registry.
type Language struct {
	Name       string             `yaml:"name" json:"name"`
	Extensions []string           `yaml:"extensions,omitempty" json:"extensions,omitempty"`
	Classes    map[string]*Class  `yaml:"classes,omitempty" json:"classes,omitempty"`
	TokenTypes map[string]string  `yaml:"tokenTypes,omitempty" json:"tokenTypes,omitempty"` // type -> category
	States     map[string][]*Rule `yaml:"states" json:"states"`
	Initial    string             `yaml:"initial" json:"initial"`
	SkipTokens []string           `yaml:"skipTokens,omitempty" json:"skipTokens,omitempty"`
	Indent     *Indent            `yaml:"indent,omitempty" json:"indent,omitempty"`
	Blocks     []BlockRule        `yaml:"blocks,omitempty" json:"blocks,omitempty"`
	Symbols    []SymbolRule       `yaml:"symbols,omitempty" json:"symbols,omitempty"`
	Inherit    string             `yaml:"inherit,omitempty" json:"inherit,omitempty"`   // accepted, not interpreted
	Embedded   []Embedded         `yaml:"embedded,omitempty" json:"embedded,omitempty"` // accepted, not interpreted
}

// Category returns the highlighting category for a token type, falling
// back to plain for unmapped types.
func (l *Language) Category(tokenType string) string {
	if c, ok := l.TokenTypes[tokenType]; ok {
		return c
	}
	return "plain"
}

// Skips reports whether a token type is hidden from the structure parser.
func (l *Language) Skips(tokenType string) bool {
	for _, s := range l.SkipTokens {
		if s == tokenType {
			return true
		}
	}
	return false
}
