package app

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/corey/lexis/internal/adapters/registry"
	"github.com/corey/lexis/internal/domain/profile"
	"github.com/corey/lexis/internal/domain/token"
	"github.com/corey/lexis/internal/ports"
	"github.com/corey/lexis/internal/profiles"
)

func newEngine() *Engine {
	reg := registry.New()
	for _, lang := range profiles.All() {
		reg.Register(lang)
	}
	return New(reg)
}

func nonBlankValues(tokens []token.Token) []string {
	var out []string
	for _, t := range tokens {
		if strings.TrimSpace(t.Value) != "" {
			out = append(out, t.Value)
		}
	}
	return out
}

func TestTokenize_JavaScriptFunction(t *testing.T) {
	e := newEngine()
	tokens, err := e.Tokenize(`function greet(name) { return "hi"; }`, "javascript")
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"function", "greet", "(", "name", ")", "{", "return", `"hi"`, ";", "}"},
		nonBlankValues(tokens))
}

func TestExtractSymbols_JavaScriptFunction(t *testing.T) {
	e := newEngine()
	src := `function greet(name) { return "hi"; }`
	syms, err := e.ExtractSymbols(src, "javascript")
	require.NoError(t, err)
	require.Len(t, syms, 1)
	assert.Equal(t, "greet", syms[0].Name)
	assert.Equal(t, "function", syms[0].Kind)
	assert.Equal(t, 1, syms[0].ContentRange.Start.Line)
	// Content runs to the closing brace.
	assert.Equal(t, len(src), syms[0].ContentRange.End.Offset)
}

func TestExtractSymbols_PythonClassWithBody(t *testing.T) {
	e := newEngine()
	src := "class User:\n    def run(self):\n        return True\n"
	syms, err := e.ExtractSymbols(src, "python")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(syms), 2)

	byName := map[string]int{}
	for i, s := range syms {
		byName[s.Name] = i
	}
	require.Contains(t, byName, "User")
	require.Contains(t, byName, "run")

	user := syms[byName["User"]]
	assert.Equal(t, "class", user.Kind)
	assert.Equal(t, 1, user.ContentRange.Start.Line)
	assert.Equal(t, 3, user.ContentRange.End.Line)

	run := syms[byName["run"]]
	assert.Equal(t, "function", run.Kind)
	assert.Equal(t, 2, run.ContentRange.Start.Line)
	assert.Equal(t, 3, run.ContentRange.End.Line)
}

// toytest is the custom registration scenario: keyword, identifier, and
// punctuation only.
func toytestProfile() *profile.Language {
	return &profile.Language{
		Name:       "toytest",
		Extensions: []string{".toy"},
		Classes: map[string]*profile.Class{
			"identStart": {OneOf: []*profile.Class{{Is: profile.ClassLetter}, {Chars: "_"}}},
			"identRest":  {OneOf: []*profile.Class{{Ref: "identStart"}, {Is: profile.ClassDigit}}},
		},
		TokenTypes: map[string]string{
			"whitespace": "plain", "newline": "plain",
			"keyword": "keyword", "identifier": "identifier", "punctuation": "punctuation",
		},
		Initial: "root",
		States: map[string][]*profile.Rule{
			"root": {
				{Match: &profile.Matcher{Chars: &profile.CharSeq{First: &profile.Class{Is: profile.ClassWhitespace}, Rest: &profile.Class{Is: profile.ClassWhitespace}}}, Token: "whitespace"},
				{Match: &profile.Matcher{Chars: &profile.CharSeq{First: &profile.Class{Is: profile.ClassNewline}}}, Token: "newline"},
				{Match: &profile.Matcher{Keywords: []string{"fn"}}, Token: "keyword"},
				{Match: &profile.Matcher{Chars: &profile.CharSeq{First: &profile.Class{Ref: "identStart"}, Rest: &profile.Class{Ref: "identRest"}}}, Token: "identifier"},
				{Match: &profile.Matcher{Strings: []string{"{", "}", "(", ")", ","}}, Token: "punctuation"},
			},
		},
		SkipTokens: []string{"whitespace", "newline"},
		Blocks:     []profile.BlockRule{{Name: "braces", Open: "{", Close: "}"}},
		Symbols: []profile.SymbolRule{
			{
				Name: "function", Kind: "function",
				Pattern: []*profile.Step{
					{Token: "keyword", Value: "fn"},
					{Token: "identifier", Capture: "name"},
				},
				HasBody: true, BodyStyle: profile.BodyBraces,
			},
		},
	}
}

func TestCustomProfileRegistration(t *testing.T) {
	e := newEngine()
	e.Registry().Register(toytestProfile())
	src := "fn add(a, b) {\n}\n"

	byName, err := e.Tokenize(src, "toytest")
	require.NoError(t, err)
	require.NotEmpty(t, byName)

	byExt, err := e.Tokenize(src, ".toy")
	require.NoError(t, err)
	assert.Equal(t, byName, byExt)

	syms, err := e.ExtractSymbols(src, "toytest")
	require.NoError(t, err)
	require.Len(t, syms, 1)
	assert.Equal(t, "add", syms[0].Name)
}

func TestExtractSymbols_MarkdownHeadingAndFence(t *testing.T) {
	e := newEngine()
	src := "# Title\n\n```typescript\nconst x = 1;\n```\n"
	syms, err := e.ExtractSymbols(src, "markdown")
	require.NoError(t, err)

	var sawHeading, sawCode bool
	for _, s := range syms {
		switch s.Kind {
		case "heading":
			sawHeading = true
			assert.True(t, strings.HasPrefix(s.Name, "#"), "heading name %q", s.Name)
		case "codeBlock":
			sawCode = true
			assert.GreaterOrEqual(t, s.ContentRange.End.Line, s.ContentRange.Start.Line)
		}
	}
	assert.True(t, sawHeading)
	assert.True(t, sawCode)
}

func TestTokenize_TOML(t *testing.T) {
	e := newEngine()
	src := "# demo\ntitle = \"x\"\n[section]\nport = 5432\n"
	tokens, err := e.Tokenize(src, "toml")
	require.NoError(t, err)

	var sawComment, sawEquals, sawOpen, sawClose bool
	for _, tok := range tokens {
		require.NotEqual(t, token.TypeError, tok.Type, "error token %q", tok.Value)
		switch {
		case tok.Type == "comment":
			sawComment = true
		case tok.Type == "operator" && tok.Value == "=":
			sawEquals = true
		case tok.Type == "punctuation" && tok.Value == "[":
			sawOpen = true
		case tok.Type == "punctuation" && tok.Value == "]":
			sawClose = true
		}
	}
	assert.True(t, sawComment)
	assert.True(t, sawEquals)
	assert.True(t, sawOpen)
	assert.True(t, sawClose)
}

func TestUnknownLanguage(t *testing.T) {
	e := newEngine()
	_, err := e.Tokenize("x", "klingon")
	require.ErrorIs(t, err, ports.ErrUnknownLanguage)
	assert.Contains(t, err.Error(), "klingon")

	_, err = e.ExtractSymbols("x", ".klingon")
	require.ErrorIs(t, err, ports.ErrUnknownLanguage)
}

func TestEmptyInputAllLanguages(t *testing.T) {
	e := newEngine()
	for _, lang := range profiles.All() {
		tokens, err := e.Tokenize("", lang.Name)
		require.NoError(t, err, lang.Name)
		assert.Empty(t, tokens, lang.Name)

		syms, err := e.ExtractSymbols("", lang.Name)
		require.NoError(t, err, lang.Name)
		assert.Empty(t, syms, lang.Name)
	}
}

func TestLexerCacheReusedPerProfile(t *testing.T) {
	e := newEngine()
	first, err := e.lexerFor("javascript")
	require.NoError(t, err)
	second, err := e.lexerFor(".js")
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestLexerCacheMissesAfterReplacement(t *testing.T) {
	e := newEngine()
	e.Registry().Register(toytestProfile())
	first, err := e.lexerFor("toytest")
	require.NoError(t, err)

	e.Registry().Register(toytestProfile()) // new pointer, same name
	second, err := e.lexerFor("toytest")
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}

// Coverage and monotone ranges hold for every built-in profile on
// arbitrary input.
func TestTokenizeInvariantsAllLanguages(t *testing.T) {
	e := newEngine()
	for _, lang := range profiles.All() {
		t.Run(lang.Name, func(t *testing.T) {
			name := lang.Name
			rapid.Check(t, func(t *rapid.T) {
				src := rapid.StringMatching("[ -~\n\t]{0,120}").Draw(t, "src")
				tokens, err := e.Tokenize(src, name)
				require.NoError(t, err)

				var sb strings.Builder
				prevEnd := 0
				for _, tok := range tokens {
					require.Equal(t, prevEnd, tok.Range.Start.Offset)
					require.GreaterOrEqual(t, tok.Range.End.Offset, tok.Range.Start.Offset)
					prevEnd = tok.Range.End.Offset
					sb.WriteString(tok.Value)
				}
				require.Equal(t, src, sb.String())
			})
		})
	}
}

// Symbol extraction is invariant under surrounding blank lines, modulo
// shifted ranges.
func TestSymbolWhitespaceInvariance(t *testing.T) {
	e := newEngine()
	cases := []struct{ lang, src string }{
		{"javascript", `function greet(name) { return "hi"; }`},
		{"python", "class User:\n    def run(self):\n        return True"},
		{"toml", "title = \"x\"\n[section]\nport = 5432"},
	}
	for _, tc := range cases {
		base, err := e.ExtractSymbols(tc.src, tc.lang)
		require.NoError(t, err, tc.lang)
		padded, err := e.ExtractSymbols("\n"+tc.src+"\n", tc.lang)
		require.NoError(t, err, tc.lang)

		require.Equal(t, len(base), len(padded), tc.lang)
		for i := range base {
			assert.Equal(t, base[i].Name, padded[i].Name, tc.lang)
			assert.Equal(t, base[i].Kind, padded[i].Kind, tc.lang)
			assert.Equal(t, base[i].ContentRange.Start.Line+1, padded[i].ContentRange.Start.Line, tc.lang)
		}
	}
}

func TestNameContainmentAllSymbols(t *testing.T) {
	e := newEngine()
	sources := map[string]string{
		"javascript": "function a() {}\nclass B {}\nconst f = (x) => x;\n",
		"python":     "class A:\n    def b(self):\n        pass\n",
		"go":         "func main() {}\nfunc (s *S) Run() {}\ntype S struct {}\n",
		"toml":       "[table]\nkey = 1\n",
		"json":       "{\"a\": 1}",
	}
	for lang, src := range sources {
		syms, err := e.ExtractSymbols(src, lang)
		require.NoError(t, err, lang)
		for _, s := range syms {
			assert.GreaterOrEqual(t, s.NameRange.Start.Offset, s.ContentRange.Start.Offset, "%s %s", lang, s.Name)
			assert.LessOrEqual(t, s.NameRange.End.Offset, s.ContentRange.End.Offset, "%s %s", lang, s.Name)
		}
	}
}
