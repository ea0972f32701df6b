package profiles

import "github.com/corey/lexis/internal/domain/profile"

// ecmaKeywords is the shared JavaScript keyword set; TypeScript adds its
// own on top.
var ecmaKeywords = []string{
	"function", "return", "const", "let", "var", "class", "extends", "super",
	"if", "else", "for", "while", "do", "switch", "case", "default",
	"break", "continue", "throw", "try", "catch", "finally",
	"new", "delete", "typeof", "instanceof", "void", "in", "of",
	"import", "export", "from", "as", "async", "await", "yield",
	"this", "null", "undefined", "true", "false", "static", "get", "set",
}

// JavaScript returns the built-in JavaScript profile.
func JavaScript() *profile.Language {
	return ecmaProfile("javascript", []string{".js", ".mjs", ".cjs", ".jsx"}, nil, nil)
}

// ecmaProfile builds the shared ECMAScript-family profile. TypeScript
// layers extra keywords and symbol rules over the same state machine.
func ecmaProfile(name string, exts, extraKeywords []string, extraSymbols []profile.SymbolRule) *profile.Language {
	kws := append(append([]string{}, ecmaKeywords...), extraKeywords...)

	symbols := []profile.SymbolRule{
		{
			Name: "function", Kind: "function",
			Pattern: []*profile.Step{
				step("keyword", "function", ""),
				step("identifier", "", "name"),
			},
			HasBody: true, BodyStyle: profile.BodyBraces,
		},
		{
			Name: "class", Kind: "class",
			Pattern: []*profile.Step{
				step("keyword", "class", ""),
				step("identifier", "", "name"),
			},
			HasBody: true, BodyStyle: profile.BodyBraces,
		},
		{
			Name: "arrowFunction", Kind: "function",
			Pattern: []*profile.Step{
				anyOf(
					step("keyword", "const", ""),
					step("keyword", "let", ""),
					step("keyword", "var", ""),
				),
				step("identifier", "", "name"),
				step("operator", "=", ""),
				skipTo(8),
				step("operator", "=>", ""),
			},
			HasBody: true, BodyStyle: profile.BodyBraces,
		},
	}
	symbols = append(symbols, extraSymbols...)

	return &profile.Language{
		Name:       name,
		Extensions: exts,
		Classes: map[string]*profile.Class{
			"identStart": union(cls(profile.ClassLetter), chars("_$")),
			"identRest":  union(ref("identStart"), cls(profile.ClassDigit)),
		},
		TokenTypes: map[string]string{
			"whitespace":  "plain",
			"newline":     "plain",
			"comment":     "comment",
			"string":      "string",
			"number":      "number",
			"keyword":     "keyword",
			"identifier":  "identifier",
			"operator":    "operator",
			"punctuation": "punctuation",
		},
		Initial: "root",
		States: map[string][]*profile.Rule{
			"root": append(whitespaceRules(),
				rule(lineFrom("//"), "comment"),
				rule(delimited(profile.Delimited{Open: "/*", Close: "*/", Multiline: true}), "comment"),
				rule(delimited(profile.Delimited{Open: `"`, Close: `"`, Escape: `\`}), "string"),
				rule(delimited(profile.Delimited{Open: "'", Close: "'", Escape: `\`}), "string"),
				rule(delimited(profile.Delimited{Open: "`", Close: "`", Escape: `\`, Multiline: true}), "string"),
				rule(number(profile.Number{Hex: true, Octal: true, Binary: true, Float: true, Separator: "_", Suffixes: []string{"n"}}), "number"),
				rule(keywords(kws...), "keyword"),
				rule(charSeq(ref("identStart"), ref("identRest")), "identifier"),
				rule(literals(
					"===", "!==", "**=", "...", "=>", "==", "!=", "<=", ">=",
					"&&", "||", "??", "?.", "++", "--", "**", "+=", "-=", "*=", "/=", "%=",
					"=", "+", "-", "*", "/", "%", "<", ">", "!", "&", "|", "^", "~", "?", ":",
				), "operator"),
				rule(literals("{", "}", "(", ")", "[", "]", ";", ",", "."), "punctuation"),
			),
		},
		SkipTokens: []string{"whitespace", "newline", "comment"},
		Blocks:     bracketBlocks(),
		Symbols:    symbols,
	}
}
