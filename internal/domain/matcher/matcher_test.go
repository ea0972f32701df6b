package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/lexis/internal/domain/charclass"
	"github.com/corey/lexis/internal/domain/profile"
	"github.com/corey/lexis/internal/domain/source"
)

func compile(t *testing.T, m *profile.Matcher) Scan {
	t.Helper()
	scan, err := Compile(m, charclass.NewResolver(nil))
	require.NoError(t, err)
	return scan
}

func at(src string, advance int) *source.Cursor {
	c := source.NewCursor(src)
	c.AdvanceN(advance)
	return c
}

func TestString_Single(t *testing.T) {
	scan := compile(t, &profile.Matcher{String: "->"})
	assert.Equal(t, 2, scan(at("->x", 0)))
	assert.Equal(t, 0, scan(at("x->", 0)))
}

func TestString_ListPrefersLongest(t *testing.T) {
	scan := compile(t, &profile.Matcher{Strings: []string{"=", "==", "==="}})
	assert.Equal(t, 3, scan(at("=== a", 0)))
	assert.Equal(t, 2, scan(at("== a", 0)))
	assert.Equal(t, 1, scan(at("= a", 0)))
}

func TestKeywords_WordBoundaries(t *testing.T) {
	scan := compile(t, &profile.Matcher{Keywords: []string{"fn", "func"}})
	assert.Equal(t, 4, scan(at("func x", 0)))
	assert.Equal(t, 2, scan(at("fn(", 0)))
	assert.Equal(t, 0, scan(at("funcs", 0)))    // word char after
	assert.Equal(t, 0, scan(at("xfunc y", 1))) // word char before
	assert.Equal(t, 4, scan(at("(func)", 1)))
}

func TestKeywords_DollarAndUnderscoreAreWordChars(t *testing.T) {
	scan := compile(t, &profile.Matcher{Keywords: []string{"let"}})
	assert.Equal(t, 0, scan(at("let_", 0)))
	assert.Equal(t, 0, scan(at("$let x", 1)))
}

func TestDelimited_Basic(t *testing.T) {
	scan := compile(t, &profile.Matcher{Delimited: &profile.Delimited{Open: `"`, Close: `"`}})
	assert.Equal(t, 5, scan(at(`"abc" x`, 0)))
	assert.Equal(t, 0, scan(at(`x"abc"`, 0)))
}

func TestDelimited_EscapeSwallowsNext(t *testing.T) {
	scan := compile(t, &profile.Matcher{Delimited: &profile.Delimited{Open: `"`, Close: `"`, Escape: `\`}})
	assert.Equal(t, 6, scan(at(`"a\"b"x`, 0)))
	assert.Equal(t, 0, scan(at(`"abc\"`, 0))) // escape eats the close: unterminated
}

func TestDelimited_SinglelineRejectsNewline(t *testing.T) {
	scan := compile(t, &profile.Matcher{Delimited: &profile.Delimited{Open: `"`, Close: `"`}})
	assert.Equal(t, 0, scan(at("\"ab\ncd\"", 0)))
}

func TestDelimited_Multiline(t *testing.T) {
	scan := compile(t, &profile.Matcher{Delimited: &profile.Delimited{Open: "/*", Close: "*/", Multiline: true}})
	assert.Equal(t, 9, scan(at("/* a\nb */x", 0)))
}

func TestDelimited_Nested(t *testing.T) {
	scan := compile(t, &profile.Matcher{Delimited: &profile.Delimited{Open: "{", Close: "}", Nested: true}})
	assert.Equal(t, 7, scan(at("{a{b}c}x", 0)))
}

func TestDelimited_UnterminatedFails(t *testing.T) {
	scan := compile(t, &profile.Matcher{Delimited: &profile.Delimited{Open: "(", Close: ")"}})
	assert.Equal(t, 0, scan(at("(abc", 0)))
}

func TestLine_StopsBeforeTerminator(t *testing.T) {
	scan := compile(t, &profile.Matcher{Line: "//"})
	assert.Equal(t, 7, scan(at("// hi x\nrest", 0)))
	assert.Equal(t, 4, scan(at("// x", 0))) // EOF ends the line
	assert.Equal(t, 0, scan(at("/ x", 0)))
}

func TestChars_SingleWithoutRest(t *testing.T) {
	scan := compile(t, &profile.Matcher{Chars: &profile.CharSeq{
		First: &profile.Class{Is: profile.ClassNewline},
	}})
	assert.Equal(t, 1, scan(at("\n\n", 0)))
}

func TestChars_GreedyRest(t *testing.T) {
	scan := compile(t, &profile.Matcher{Chars: &profile.CharSeq{
		First: &profile.Class{Is: profile.ClassLetter},
		Rest:  &profile.Class{Is: profile.ClassAlphanumeric},
	}})
	assert.Equal(t, 5, scan(at("ab1cd-x", 0)))
	assert.Equal(t, 0, scan(at("1ab", 0)))
}

func TestSequence_MeasuresAndRestores(t *testing.T) {
	scan := compile(t, &profile.Matcher{Sequence: []*profile.Matcher{
		{String: "a"},
		{Chars: &profile.CharSeq{First: &profile.Class{Is: profile.ClassDigit}, Rest: &profile.Class{Is: profile.ClassDigit}}},
	}})
	c := at("a12x", 0)
	assert.Equal(t, 3, scan(c))
	assert.Equal(t, 0, c.Pos().Offset) // cursor restored after measuring
}

func TestSequence_FailsWhole(t *testing.T) {
	scan := compile(t, &profile.Matcher{Sequence: []*profile.Matcher{
		{String: "a"},
		{String: "b"},
	}})
	c := at("ac", 0)
	assert.Equal(t, 0, scan(c))
	assert.Equal(t, 0, c.Pos().Offset)
}

func TestRegex_Anchored(t *testing.T) {
	scan := compile(t, &profile.Matcher{Regex: "[0-9]+"})
	assert.Equal(t, 3, scan(at("123a", 0)))
	assert.Equal(t, 0, scan(at("a123", 0)))
}

func TestRegex_InvalidPatternIsError(t *testing.T) {
	_, err := Compile(&profile.Matcher{Regex: "["}, charclass.NewResolver(nil))
	require.Error(t, err)
}

func TestEmptySpecificationIsError(t *testing.T) {
	_, err := Compile(&profile.Matcher{}, charclass.NewResolver(nil))
	require.Error(t, err)
}
