package yamlprofile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/lexis/internal/domain/blocks"
	"github.com/corey/lexis/internal/domain/lexer"
	"github.com/corey/lexis/internal/domain/symbols"
)

const toyYAML = `
name: toy
extensions: [".toy"]
classes:
  identStart:
    oneOf:
      - is: letter
      - chars: "_"
  identRest:
    oneOf:
      - ref: identStart
      - is: digit
tokenTypes:
  whitespace: plain
  newline: plain
  keyword: keyword
  identifier: identifier
  punctuation: punctuation
initial: root
states:
  root:
    - match:
        chars:
          first: {is: whitespace}
          rest: {is: whitespace}
      token: whitespace
    - match:
        chars:
          first: {is: newline}
      token: newline
    - match:
        keywords: [fn]
      token: keyword
    - match:
        chars:
          first: {ref: identStart}
          rest: {ref: identRest}
      token: identifier
    - match:
        strings: ["{", "}", "(", ")", ","]
      token: punctuation
skipTokens: [whitespace, newline]
blocks:
  - {name: braces, open: "{", close: "}"}
symbols:
  - name: function
    kind: function
    pattern:
      - {token: keyword, value: fn}
      - {token: identifier, capture: name}
    hasBody: true
    bodyStyle: braces
`

func TestDecode_FullProfile(t *testing.T) {
	lang, err := Decode([]byte(toyYAML))
	require.NoError(t, err)
	assert.Equal(t, "toy", lang.Name)
	assert.Equal(t, []string{".toy"}, lang.Extensions)
	require.Len(t, lang.Symbols, 1)
	assert.Equal(t, "braces", lang.Symbols[0].BodyStyle)
}

func TestDecode_ProfileLexesAndDetects(t *testing.T) {
	lang, err := Decode([]byte(toyYAML))
	require.NoError(t, err)

	lex, err := lexer.Compile(lang)
	require.NoError(t, err)
	tokens, err := lex.Tokenize("fn add(a, b) {\n}\n")
	require.NoError(t, err)
	require.NotEmpty(t, tokens)

	spans := blocks.Track(tokens, lang.Blocks)
	syms := symbols.Detect(tokens, spans, lang)
	require.Len(t, syms, 1)
	assert.Equal(t, "add", syms[0].Name)
}

func TestDecode_RejectsMissingName(t *testing.T) {
	_, err := Decode([]byte("initial: root\nstates:\n  root: []\n"))
	require.Error(t, err)
}

func TestDecode_RejectsUndefinedInitialState(t *testing.T) {
	_, err := Decode([]byte("name: x\ninitial: gone\nstates:\n  root: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gone")
}

func TestDecode_RejectsRuleWithoutMatcher(t *testing.T) {
	doc := `
name: x
initial: root
states:
  root:
    - token: text
`
	_, err := Decode([]byte(doc))
	require.Error(t, err)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(toyYAML), 0o644))

	lang, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "toy", lang.Name)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
