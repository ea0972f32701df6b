// Package matcher compiles declarative matcher specifications into scan
// functions. A scan measures how many characters the matcher would consume
// from the cursor's current position and never advances the cursor; the
// lexer commits a match by advancing the reported count.
package matcher

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/corey/lexis/internal/domain/charclass"
	"github.com/corey/lexis/internal/domain/profile"
	"github.com/corey/lexis/internal/domain/source"
)

// Scan reports the number of characters a matcher would consume at the
// cursor's current position. Zero means no match.
type Scan func(c *source.Cursor) int

// Compile builds the scan function for one matcher specification. The
// resolver supplies named character classes from the owning profile.
func Compile(m *profile.Matcher, classes *charclass.Resolver) (Scan, error) {
	if m == nil {
		return nil, fmt.Errorf("matcher: nil specification")
	}
	switch {
	case m.String != "":
		return compileString([]string{m.String}), nil
	case len(m.Strings) > 0:
		return compileString(m.Strings), nil
	case len(m.Keywords) > 0:
		return compileKeywords(m.Keywords), nil
	case m.Delimited != nil:
		return compileDelimited(m.Delimited)
	case m.Line != "":
		return compileLine(m.Line), nil
	case m.Chars != nil:
		return compileChars(m.Chars, classes)
	case m.Number != nil:
		return compileNumber(m.Number), nil
	case len(m.Sequence) > 0:
		return compileSequence(m.Sequence, classes)
	case m.Regex != "":
		return compileRegex(m.Regex)
	default:
		return nil, fmt.Errorf("matcher: empty specification")
	}
}

// byLengthDesc sorts literals longest first so that the first prefix hit
// is the longest match among them.
func byLengthDesc(literals []string) []string {
	sorted := make([]string, len(literals))
	copy(sorted, literals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})
	return sorted
}

func compileString(literals []string) Scan {
	sorted := byLengthDesc(literals)
	return func(c *source.Cursor) int {
		for _, lit := range sorted {
			if c.Match(lit) {
				return utf8.RuneCountInString(lit)
			}
		}
		return 0
	}
}

// isWordChar is the boundary test for keyword matching: ASCII letter,
// digit, underscore, or dollar sign.
func isWordChar(ch string) bool {
	if ch == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(ch)
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_' || r == '$'
}

func compileKeywords(keywords []string) Scan {
	sorted := byLengthDesc(keywords)
	return func(c *source.Cursor) int {
		if isWordChar(c.Before()) {
			return 0
		}
		for _, kw := range sorted {
			if !c.Match(kw) {
				continue
			}
			n := utf8.RuneCountInString(kw)
			if isWordChar(c.Peek(n)) {
				continue
			}
			return n
		}
		return 0
	}
}

func compileDelimited(d *profile.Delimited) (Scan, error) {
	if d.Open == "" || d.Close == "" {
		return nil, fmt.Errorf("matcher: delimited requires open and close literals")
	}
	if utf8.RuneCountInString(d.Escape) > 1 {
		return nil, fmt.Errorf("matcher: delimited escape %q must be a single character", d.Escape)
	}
	open, closing, escape := d.Open, d.Close, d.Escape
	return func(c *source.Cursor) int {
		rest := c.Rest()
		if !strings.HasPrefix(rest, open) {
			return 0
		}
		depth := 1
		i := len(open)
		n := utf8.RuneCountInString(open)
		for i < len(rest) {
			if escape != "" && strings.HasPrefix(rest[i:], escape) {
				// The escape swallows the following character.
				i += len(escape)
				n++
				if i < len(rest) {
					_, w := utf8.DecodeRuneInString(rest[i:])
					i += w
					n++
				}
				continue
			}
			if d.Nested && strings.HasPrefix(rest[i:], open) {
				depth++
				i += len(open)
				n += utf8.RuneCountInString(open)
				continue
			}
			if strings.HasPrefix(rest[i:], closing) {
				depth--
				i += len(closing)
				n += utf8.RuneCountInString(closing)
				if depth == 0 {
					return n
				}
				continue
			}
			r, w := utf8.DecodeRuneInString(rest[i:])
			if !d.Multiline && (r == '\n' || r == '\r') {
				return 0
			}
			i += w
			n++
		}
		return 0 // unterminated
	}, nil
}

func compileLine(start string) Scan {
	return func(c *source.Cursor) int {
		rest := c.Rest()
		if !strings.HasPrefix(rest, start) {
			return 0
		}
		n := utf8.RuneCountInString(start)
		for i := len(start); i < len(rest); {
			r, w := utf8.DecodeRuneInString(rest[i:])
			if r == '\n' || r == '\r' {
				break
			}
			i += w
			n++
		}
		return n
	}
}

func compileChars(cs *profile.CharSeq, classes *charclass.Resolver) (Scan, error) {
	if cs.First == nil {
		return nil, fmt.Errorf("matcher: chars requires a first class")
	}
	first, err := classes.Compile(cs.First)
	if err != nil {
		return nil, err
	}
	var rest charclass.Predicate
	if cs.Rest != nil {
		rest, err = classes.Compile(cs.Rest)
		if err != nil {
			return nil, err
		}
	}
	return func(c *source.Cursor) int {
		if !first(c.Peek(0)) {
			return 0
		}
		if rest == nil {
			return 1
		}
		n := 1
		for rest(c.Peek(n)) {
			n++
		}
		return n
	}, nil
}

func compileSequence(specs []*profile.Matcher, classes *charclass.Resolver) (Scan, error) {
	scans := make([]Scan, len(specs))
	for i, spec := range specs {
		s, err := Compile(spec, classes)
		if err != nil {
			return nil, err
		}
		scans[i] = s
	}
	return func(c *source.Cursor) int {
		mark := c.Save()
		total := 0
		for _, scan := range scans {
			n := scan(c)
			if n == 0 {
				c.Restore(mark)
				return 0
			}
			c.AdvanceN(n)
			total += n
		}
		c.Restore(mark)
		return total
	}, nil
}

func compileRegex(pattern string) (Scan, error) {
	re, err := regexp.Compile(`\A(?:` + pattern + `)`)
	if err != nil {
		return nil, fmt.Errorf("matcher: invalid regex %q: %w", pattern, err)
	}
	return func(c *source.Cursor) int {
		rest := c.Rest()
		loc := re.FindStringIndex(rest)
		if loc == nil {
			return 0
		}
		return utf8.RuneCountInString(rest[:loc[1]])
	}, nil
}
