// Package blocks matches bracket pairs over a token stream. Matching is
// tolerant: unmatched closes are dropped, opens left hanging at end of
// input produce no span, and a close that skips over unrelated opens
// discards them rather than failing.
package blocks

import (
	"sort"

	"github.com/corey/lexis/internal/domain/profile"
	"github.com/corey/lexis/internal/domain/token"
)

// Span is one matched bracket pair. Indices are positions in the token
// stream; Depth is the number of enclosing frames at open time.
type Span struct {
	Name       string `json:"name"`
	OpenIndex  int    `json:"openIndex"`
	CloseIndex int    `json:"closeIndex"`
	Depth      int    `json:"depth"`
}

type frame struct {
	name      string
	openIndex int
	depth     int
}

// Track walks the token stream and returns matched spans sorted by open
// index. Token values, not types, are tested against the rule literals.
func Track(tokens []token.Token, rules []profile.BlockRule) []Span {
	if len(rules) == 0 {
		return nil
	}

	// The same literal may serve several rules; dispatch on close goes by
	// rule name against the stack, so closes map to every rule name that
	// uses them. Opens take the first rule in profile order.
	opens := make(map[string]string, len(rules))
	closes := make(map[string][]string, len(rules))
	for _, r := range rules {
		if _, ok := opens[r.Open]; !ok {
			opens[r.Open] = r.Name
		}
		closes[r.Close] = append(closes[r.Close], r.Name)
	}

	var stack []frame
	var spans []Span

	for i, t := range tokens {
		if name, ok := opens[t.Value]; ok {
			stack = append(stack, frame{name: name, openIndex: i, depth: len(stack)})
			continue
		}
		names, ok := closes[t.Value]
		if !ok {
			continue
		}
		// Nearest frame, top-down, whose rule name this close serves.
		for j := len(stack) - 1; j >= 0; j-- {
			if !containsName(names, stack[j].name) {
				continue
			}
			spans = append(spans, Span{
				Name:       stack[j].name,
				OpenIndex:  stack[j].openIndex,
				CloseIndex: i,
				Depth:      stack[j].depth,
			})
			stack = stack[:j] // intervening unmatched opens are discarded
			break
		}
		// No frame matched: the close is dropped silently.
	}

	sort.SliceStable(spans, func(a, b int) bool {
		return spans[a].OpenIndex < spans[b].OpenIndex
	})
	return spans
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
