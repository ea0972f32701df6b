// Package yamlprofile decodes language profiles from YAML documents. A
// profile is data; this codec is how new languages arrive without code —
// from a --profile flag on the CLI or from files shipped next to a
// project.
package yamlprofile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/corey/lexis/internal/domain/profile"
)

// Decode parses one YAML profile document.
func Decode(data []byte) (*profile.Language, error) {
	var lang profile.Language
	if err := yaml.Unmarshal(data, &lang); err != nil {
		return nil, fmt.Errorf("yamlprofile: %w", err)
	}
	if err := validate(&lang); err != nil {
		return nil, err
	}
	return &lang, nil
}

// Load reads and decodes a profile file.
func Load(path string) (*profile.Language, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("yamlprofile: %w", err)
	}
	lang, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("yamlprofile: %s: %w", path, err)
	}
	return lang, nil
}

// validate rejects documents that cannot possibly lex: the state checks
// here mirror what the lexer compiler would reject later, with friendlier
// messages for hand-written files; a missing name or token type is
// rejected here as well, although the compiler accepts both.
func validate(lang *profile.Language) error {
	if lang.Name == "" {
		return fmt.Errorf("yamlprofile: profile has no name")
	}
	if lang.Initial == "" {
		return fmt.Errorf("yamlprofile: profile %q has no initial state", lang.Name)
	}
	if len(lang.States) == 0 {
		return fmt.Errorf("yamlprofile: profile %q declares no states", lang.Name)
	}
	if _, ok := lang.States[lang.Initial]; !ok {
		return fmt.Errorf("yamlprofile: profile %q initial state %q is not defined", lang.Name, lang.Initial)
	}
	for state, rules := range lang.States {
		for i, rule := range rules {
			if rule.Match == nil {
				return fmt.Errorf("yamlprofile: profile %q state %q rule %d has no matcher", lang.Name, state, i)
			}
			if rule.Token == "" {
				return fmt.Errorf("yamlprofile: profile %q state %q rule %d has no token type", lang.Name, state, i)
			}
		}
	}
	return nil
}
