package profiles

import "github.com/corey/lexis/internal/domain/profile"

// JSON returns the built-in JSON profile.
func JSON() *profile.Language {
	return &profile.Language{
		Name:       "json",
		Extensions: []string{".json", ".jsonc"},
		TokenTypes: map[string]string{
			"whitespace":  "plain",
			"newline":     "plain",
			"comment":     "comment",
			"string":      "string",
			"number":      "number",
			"keyword":     "keyword",
			"punctuation": "punctuation",
		},
		Initial: "root",
		States: map[string][]*profile.Rule{
			"root": append(whitespaceRules(),
				rule(lineFrom("//"), "comment"),
				rule(delimited(profile.Delimited{Open: "/*", Close: "*/", Multiline: true}), "comment"),
				rule(delimited(profile.Delimited{Open: `"`, Close: `"`, Escape: `\`}), "string"),
				rule(number(profile.Number{Float: true}), "number"),
				rule(keywords("true", "false", "null"), "keyword"),
				rule(literals("{", "}", "[", "]", ":", ",", "-", "+"), "punctuation"),
			),
		},
		SkipTokens: []string{"whitespace", "newline", "comment"},
		Blocks: []profile.BlockRule{
			{Name: "braces", Open: "{", Close: "}"},
			{Name: "brackets", Open: "[", Close: "]"},
		},
		Symbols: []profile.SymbolRule{
			{
				Name: "property", Kind: "property",
				Pattern: []*profile.Step{
					step("string", "", "name"),
					step("punctuation", ":", ""),
				},
			},
		},
	}
}
