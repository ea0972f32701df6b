package profiles

import "github.com/corey/lexis/internal/domain/profile"

// TypeScript returns the built-in TypeScript profile: the ECMAScript state
// machine plus type-level keywords and symbols.
func TypeScript() *profile.Language {
	extraKeywords := []string{
		"interface", "type", "enum", "implements", "namespace", "declare",
		"abstract", "readonly", "public", "private", "protected", "keyof",
		"infer", "is", "satisfies", "any", "unknown", "never", "string",
		"number", "boolean",
	}
	extraSymbols := []profile.SymbolRule{
		{
			Name: "interface", Kind: "interface",
			Pattern: []*profile.Step{
				step("keyword", "interface", ""),
				step("identifier", "", "name"),
			},
			HasBody: true, BodyStyle: profile.BodyBraces,
		},
		{
			Name: "enum", Kind: "enum",
			Pattern: []*profile.Step{
				step("keyword", "enum", ""),
				step("identifier", "", "name"),
			},
			HasBody: true, BodyStyle: profile.BodyBraces,
		},
		{
			Name: "typeAlias", Kind: "type",
			Pattern: []*profile.Step{
				step("keyword", "type", ""),
				step("identifier", "", "name"),
				step("operator", "=", ""),
			},
		},
	}
	return ecmaProfile("typescript", []string{".ts", ".tsx", ".mts", ".cts"}, extraKeywords, extraSymbols)
}
