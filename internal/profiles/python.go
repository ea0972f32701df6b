package profiles

import "github.com/corey/lexis/internal/domain/profile"

// Python returns the built-in Python profile. Class and function bodies
// are measured by indentation, so newline tokens stay in the stream even
// though the structure parser skips them.
func Python() *profile.Language {
	return &profile.Language{
		Name:       "python",
		Extensions: []string{".py", ".pyi", ".pyw"},
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
				rule(lineFrom("#"), "comment"),
				rule(delimited(profile.Delimited{Open: `"""`, Close: `"""`, Escape: `\`, Multiline: true}), "string"),
				rule(delimited(profile.Delimited{Open: "'''", Close: "'''", Escape: `\`, Multiline: true}), "string"),
				rule(delimited(profile.Delimited{Open: `"`, Close: `"`, Escape: `\`}), "string"),
				rule(delimited(profile.Delimited{Open: "'", Close: "'", Escape: `\`}), "string"),
				rule(number(profile.Number{Hex: true, Octal: true, Binary: true, Float: true, Separator: "_", Suffixes: []string{"j", "J"}}), "number"),
				rule(keywords(
					"def", "class", "return", "pass", "lambda",
					"if", "elif", "else", "for", "while", "break", "continue",
					"import", "from", "as", "with", "try", "except", "finally", "raise",
					"and", "or", "not", "in", "is", "assert", "del",
					"global", "nonlocal", "yield", "async", "await",
					"True", "False", "None",
				), "keyword"),
				rule(charSeq(ref("identStart"), ref("identRest")), "identifier"),
				rule(literals(
					"**=", "//=", "**", "//", "==", "!=", "<=", ">=", "->", ":=",
					"+=", "-=", "*=", "/=", "%=", "=", "+", "-", "*", "/", "%",
					"<", ">", "@", "&", "|", "^", "~",
				), "operator"),
				rule(literals("(", ")", "[", "]", "{", "}", ":", ",", ".", ";"), "punctuation"),
			),
		},
		SkipTokens: []string{"whitespace", "newline", "comment"},
		Blocks:     bracketBlocks(),
		Symbols: []profile.SymbolRule{
			{
				Name: "class", Kind: "class",
				Pattern: []*profile.Step{
					step("keyword", "class", ""),
					step("identifier", "", "name"),
				},
				HasBody: true, BodyStyle: profile.BodyIndent,
			},
			{
				Name: "function", Kind: "function",
				Pattern: []*profile.Step{
					step("keyword", "def", ""),
					step("identifier", "", "name"),
				},
				HasBody: true, BodyStyle: profile.BodyIndent,
			},
		},
	}
}
