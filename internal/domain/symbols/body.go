package symbols

import (
	"strings"

	"github.com/corey/lexis/internal/domain/profile"
	"github.com/corey/lexis/internal/domain/token"
)

// contentEnd resolves the original token index where a symbol's content
// ends, according to the rule's body style.
func (d *detector) contentEnd(rule *profile.SymbolRule, startOrig, lastOrig int) int {
	if !rule.HasBody {
		return d.statementEnd(lastOrig)
	}
	switch rule.BodyStyle {
	case profile.BodyIndent:
		return d.indentEnd(startOrig, lastOrig)
	case profile.BodyMarkup:
		return d.markupEnd(lastOrig)
	case profile.BodyEndKeyword:
		return d.endKeywordEnd(rule.EndKeyword, lastOrig)
	default:
		// Braces is the default body style when a rule says hasBody but
		// names nothing else.
		return d.bracesEnd(lastOrig)
	}
}

// bracesEnd attaches the first braces block opening at or after the match.
func (d *detector) bracesEnd(lastOrig int) int {
	for _, span := range d.spans {
		if span.Name == "braces" && span.OpenIndex >= lastOrig {
			return span.CloseIndex
		}
	}
	return lastOrig
}

// indentEnd extends the content over every following token whose start
// column stays right of the symbol's own start column. Whitespace and
// newline tokens neither end nor extend the body.
func (d *detector) indentEnd(startOrig, lastOrig int) int {
	base := d.tokens[startOrig].Range.Start.Column
	last := -1
	for i := lastOrig + 1; i < len(d.tokens); i++ {
		t := &d.tokens[i]
		if isBlank(t) {
			continue
		}
		if t.Range.Start.Column <= base {
			break
		}
		last = i
	}
	if last < 0 {
		return lastOrig // nothing indented past the head: no body
	}
	return last
}

// markupEnd extends the content until a blank line: a newline token
// immediately followed by another newline token.
func (d *detector) markupEnd(lastOrig int) int {
	last := lastOrig
	for i := lastOrig + 1; i < len(d.tokens); i++ {
		t := &d.tokens[i]
		if isNewline(t) && i+1 < len(d.tokens) && isNewline(&d.tokens[i+1]) {
			break
		}
		if !isBlank(t) {
			last = i
		}
	}
	return last
}

// endKeywordEnd finds the closing keyword at bracket depth zero.
func (d *detector) endKeywordEnd(endKeyword string, lastOrig int) int {
	depth := 0
	for i := lastOrig + 1; i < len(d.tokens); i++ {
		t := &d.tokens[i]
		switch t.Value {
		case "{", "(", "[":
			depth++
		case "}", ")", "]":
			depth--
		}
		if depth == 0 && t.Type == "keyword" && t.Value == endKeyword {
			return i
		}
	}
	return lastOrig
}

// statementEnd walks to the next terminator for body-less symbols: at
// bracket depth zero a ";" token ends the content there, and a newline
// ends it at the last non-whitespace token before it.
func (d *detector) statementEnd(lastOrig int) int {
	depth := 0
	last := lastOrig
	for i := lastOrig + 1; i < len(d.tokens); i++ {
		t := &d.tokens[i]
		switch t.Value {
		case "{", "(", "[":
			depth++
		case "}", ")", "]":
			depth--
		}
		if depth <= 0 {
			if t.Value == ";" {
				return i
			}
			if isNewline(t) {
				return last
			}
		}
		if !isBlank(t) {
			last = i
		}
	}
	return last
}

// isBlank reports whether a token is pure whitespace or line terminators.
func isBlank(t *token.Token) bool {
	return strings.TrimLeft(t.Value, " \t\r\n") == ""
}

// isNewline reports whether a token is purely line terminators.
func isNewline(t *token.Token) bool {
	return t.Value != "" && strings.TrimLeft(t.Value, "\r\n") == ""
}
