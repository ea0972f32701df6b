package profiles

import "github.com/corey/lexis/internal/domain/profile"

// Markdown returns the built-in Markdown profile. A fenced code block is a
// single multiline token; headings are line tokens whose body extends to
// the next blank line (the markup-block style — markdown has no bracket or
// indentation structure to lean on).
func Markdown() *profile.Language {
	return &profile.Language{
		Name:       "markdown",
		Extensions: []string{".md", ".markdown"},
		TokenTypes: map[string]string{
			"whitespace": "plain",
			"newline":    "plain",
			"heading":    "heading",
			"codeBlock":  "string",
			"quote":      "comment",
			"rule":       "punctuation",
			"text":       "plain",
		},
		Initial: "root",
		States: map[string][]*profile.Rule{
			"root": {
				rule(delimited(profile.Delimited{Open: "```", Close: "```", Multiline: true}), "codeBlock"),
				rule(lineFrom("#"), "heading"),
				rule(lineFrom(">"), "quote"),
				rule(lineFrom("---"), "rule"),
				rule(charSeq(cls(profile.ClassWhitespace), cls(profile.ClassWhitespace)), "whitespace"),
				rule(charSeq(cls(profile.ClassNewline), nil), "newline"),
				rule(charSeq(not(cls(profile.ClassNewline)), not(cls(profile.ClassNewline))), "text"),
			},
		},
		SkipTokens: []string{"whitespace"},
		Symbols: []profile.SymbolRule{
			{
				Name: "heading", Kind: "heading",
				Pattern: []*profile.Step{
					step("heading", "", "name"),
				},
				HasBody: true, BodyStyle: profile.BodyMarkup,
			},
			{
				Name: "codeBlock", Kind: "codeBlock",
				Pattern: []*profile.Step{
					step("codeBlock", "", ""),
				},
			},
		},
	}
}
