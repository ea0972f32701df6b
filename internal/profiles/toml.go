package profiles

import "github.com/corey/lexis/internal/domain/profile"

// TOML returns the built-in TOML profile. Numbers run before bare keys so
// that pure-digit values lex as numbers; dates decompose into numbers,
// bare-key identifiers and punctuation rather than erroring.
func TOML() *profile.Language {
	return &profile.Language{
		Name:       "toml",
		Extensions: []string{".toml"},
		Classes: map[string]*profile.Class{
			"bareKey": union(cls(profile.ClassAlphanumeric), chars("_-")),
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
				rule(delimited(profile.Delimited{Open: "'''", Close: "'''", Multiline: true}), "string"),
				rule(delimited(profile.Delimited{Open: `"`, Close: `"`, Escape: `\`}), "string"),
				rule(delimited(profile.Delimited{Open: "'", Close: "'"}), "string"),
				rule(number(profile.Number{Hex: true, Octal: true, Binary: true, Float: true, Separator: "_"}), "number"),
				rule(keywords("true", "false", "inf", "nan"), "keyword"),
				rule(charSeq(ref("bareKey"), ref("bareKey")), "identifier"),
				rule(literals("="), "operator"),
				rule(literals("[", "]", "{", "}", ",", ".", "-", "+", ":"), "punctuation"),
			),
		},
		SkipTokens: []string{"whitespace", "newline", "comment"},
		Blocks: []profile.BlockRule{
			{Name: "braces", Open: "{", Close: "}"},
			{Name: "brackets", Open: "[", Close: "]"},
		},
		Symbols: []profile.SymbolRule{
			{
				Name: "table", Kind: "table",
				Pattern: []*profile.Step{
					step("punctuation", "[", ""),
					optional(step("punctuation", "[", "")),
					step("identifier", "", "name"),
					skipTo(8),
					step("punctuation", "]", ""),
				},
			},
			{
				Name: "key", Kind: "property",
				Pattern: []*profile.Step{
					step("identifier", "", "name"),
					step("operator", "=", ""),
				},
			},
		},
	}
}
