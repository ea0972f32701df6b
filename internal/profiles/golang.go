package profiles

import "github.com/corey/lexis/internal/domain/profile"

// Go returns the built-in Go profile.
func Go() *profile.Language {
	return &profile.Language{
		Name:       "go",
		Extensions: []string{".go"},
		Classes: map[string]*profile.Class{
			"identStart": union(cls(profile.ClassLetter), chars("_")),
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
				rule(delimited(profile.Delimited{Open: "`", Close: "`", Multiline: true}), "string"),
				rule(delimited(profile.Delimited{Open: "'", Close: "'", Escape: `\`}), "string"),
				rule(number(profile.Number{Hex: true, Octal: true, Binary: true, Float: true, Separator: "_", Suffixes: []string{"i"}}), "number"),
				rule(keywords(
					"func", "type", "struct", "interface", "package", "import",
					"return", "var", "const", "if", "else", "for", "range",
					"switch", "case", "default", "break", "continue", "goto",
					"go", "defer", "chan", "map", "select", "fallthrough",
				), "keyword"),
				rule(charSeq(ref("identStart"), ref("identRest")), "identifier"),
				rule(literals(
					"<<=", ">>=", "&^=", ":=", "...", "<-", "&&", "||", "&^",
					"==", "!=", "<=", ">=", "<<", ">>", "++", "--",
					"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
					"=", "+", "-", "*", "/", "%", "<", ">", "!", "&", "|", "^",
				), "operator"),
				rule(literals("{", "}", "(", ")", "[", "]", ";", ",", ".", ":"), "punctuation"),
			),
		},
		SkipTokens: []string{"whitespace", "newline", "comment"},
		Blocks:     bracketBlocks(),
		Symbols: []profile.SymbolRule{
			{
				Name: "method", Kind: "method",
				Pattern: []*profile.Step{
					step("keyword", "func", ""),
					step("punctuation", "(", ""),
					skipTo(8),
					step("punctuation", ")", ""),
					step("identifier", "", "name"),
				},
				HasBody: true, BodyStyle: profile.BodyBraces,
			},
			{
				Name: "function", Kind: "function",
				Pattern: []*profile.Step{
					step("keyword", "func", ""),
					step("identifier", "", "name"),
				},
				HasBody: true, BodyStyle: profile.BodyBraces,
			},
			{
				Name: "type", Kind: "struct",
				Pattern: []*profile.Step{
					step("keyword", "type", ""),
					step("identifier", "", "name"),
					anyOf(
						step("keyword", "struct", ""),
						step("keyword", "interface", ""),
					),
				},
				HasBody: true, BodyStyle: profile.BodyBraces,
			},
		},
	}
}
