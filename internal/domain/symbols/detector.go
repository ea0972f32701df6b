// Package symbols runs declarative token patterns over a lexed stream and
// measures each match's content extent, producing structural symbols with
// name and content ranges.
package symbols

import (
	"sort"

	"github.com/corey/lexis/internal/domain/blocks"
	"github.com/corey/lexis/internal/domain/profile"
	"github.com/corey/lexis/internal/domain/source"
	"github.com/corey/lexis/internal/domain/token"
)

// DefaultSkipBound caps how far a skip step may scan before the pattern
// fails. It is the only runaway guard in symbol matching.
const DefaultSkipBound = 50

// Symbol is one detected structural element. NameRange is always contained
// in ContentRange.
type Symbol struct {
	Name         string       `json:"name"`
	Kind         string       `json:"kind"`
	NameRange    source.Range `json:"nameRange"`
	ContentRange source.Range `json:"contentRange"`
}

// Detect runs every symbol rule of the profile over the token stream.
// Spans come from the block tracker on the same stream. Rules run in
// profile order; positions claimed by an earlier match are not reused.
func Detect(tokens []token.Token, spans []blocks.Span, lang *profile.Language) []Symbol {
	d := &detector{tokens: tokens, spans: spans, lang: lang}
	d.compress()

	var out []Symbol
	for i := range lang.Symbols {
		out = append(out, d.run(&lang.Symbols[i])...)
	}

	sort.SliceStable(out, func(a, b int) bool {
		sa, sb := out[a].ContentRange.Start, out[b].ContentRange.Start
		if sa.Line != sb.Line {
			return sa.Line < sb.Line
		}
		return sa.Column < sb.Column
	})
	return out
}

type detector struct {
	tokens  []token.Token
	spans   []blocks.Span
	lang    *profile.Language
	comp    []int // compressed index -> original index
	claimed []bool
}

// compress hides skip-set token types from pattern matching while keeping
// the mapping back to original indices.
func (d *detector) compress() {
	for i := range d.tokens {
		if !d.lang.Skips(d.tokens[i].Type) {
			d.comp = append(d.comp, i)
		}
	}
	d.claimed = make([]bool, len(d.comp))
}

func (d *detector) at(cpos int) *token.Token {
	return &d.tokens[d.comp[cpos]]
}

func (d *detector) run(rule *profile.SymbolRule) []Symbol {
	var out []Symbol
	for start := 0; start < len(d.comp); start++ {
		if d.claimed[start] {
			continue
		}
		m, ok := d.match(rule.Pattern, start)
		if !ok {
			continue
		}
		out = append(out, d.build(rule, start, m))
		for i := start; i < m.end; i++ {
			d.claimed[i] = true
		}
	}
	return out
}

type matchState struct {
	end      int // one past the last consumed compressed position
	captures map[string]int
}

// match attempts the pattern anchored at compressed position start.
func (d *detector) match(steps []*profile.Step, start int) (matchState, bool) {
	m := matchState{end: start, captures: make(map[string]int)}
	pos := start

	for si := 0; si < len(steps); si++ {
		step := steps[si]
		switch {
		case step.Skip:
			if si+1 >= len(steps) {
				return m, false
			}
			target := steps[si+1]
			bound := step.MaxTokens
			if bound == 0 {
				bound = DefaultSkipBound
			}
			found := -1
			for j := 0; j < bound && pos+j < len(d.comp); j++ {
				if d.single(target, pos+j, &m) {
					found = pos + j
					break
				}
			}
			if found < 0 {
				return m, false
			}
			pos = found + 1
			si++ // the sentinel step is consumed by the skip

		case step.Optional != nil:
			if pos < len(d.comp) && d.single(step.Optional, pos, &m) {
				pos++
			}

		case len(step.AnyOf) > 0:
			if pos >= len(d.comp) {
				return m, false
			}
			matched := false
			for _, alt := range step.AnyOf {
				if d.single(alt, pos, &m) {
					matched = true
					break
				}
			}
			if !matched {
				return m, false
			}
			pos++

		default:
			if pos >= len(d.comp) || !d.single(step, pos, &m) {
				return m, false
			}
			pos++
		}
	}

	if pos == start {
		return m, false // a pattern of only unmatched optionals is no match
	}
	m.end = pos
	return m, true
}

// single tests one step against one compressed position, recording any
// capture on success. Choice steps recurse one level for skip sentinels.
func (d *detector) single(step *profile.Step, cpos int, m *matchState) bool {
	if len(step.AnyOf) > 0 {
		for _, alt := range step.AnyOf {
			if d.single(alt, cpos, m) {
				return true
			}
		}
		return false
	}
	if step.Optional != nil {
		return d.single(step.Optional, cpos, m)
	}
	t := d.at(cpos)
	if t.Type != step.Token {
		return false
	}
	if step.Value != "" && t.Value != step.Value {
		return false
	}
	if step.Capture != "" {
		m.captures[step.Capture] = cpos
	}
	return true
}

func (d *detector) build(rule *profile.SymbolRule, start int, m matchState) Symbol {
	startOrig := d.comp[start]
	lastOrig := d.comp[m.end-1]

	name := rule.Name
	nameRange := d.tokens[startOrig].Range
	if cpos, ok := m.captures["name"]; ok {
		t := d.at(cpos)
		name = t.Value
		nameRange = t.Range
	}

	contentEnd := d.contentEnd(rule, startOrig, lastOrig)

	return Symbol{
		Name:      name,
		Kind:      rule.Kind,
		NameRange: nameRange,
		ContentRange: source.Range{
			Start: d.tokens[startOrig].Range.Start,
			End:   d.tokens[contentEnd].Range.End,
		},
	}
}
