package matcher

import (
	"strings"
	"unicode/utf8"

	"github.com/corey/lexis/internal/domain/profile"
	"github.com/corey/lexis/internal/domain/source"
)

// compileNumber builds the numeric literal scanner. Prefixed forms
// (0x/0o/0b) are attempted first when their flag is enabled; a present
// prefix with no digit of its base is no match. Otherwise the decimal
// form runs: leading digits, a fractional part that only consumes
// the dot when a digit follows, and a scientific suffix that only commits
// with at least one exponent digit. A leading ".5" form requires Float.
func compileNumber(spec *profile.Number) Scan {
	suffixes := byLengthDesc(spec.Suffixes)
	sep := spec.Separator

	return func(c *source.Cursor) int {
		rest := c.Rest()
		if rest == "" {
			return 0
		}

		if spec.Hex && hasPrefix(rest, "0x", "0X") {
			return prefixed(rest, "0x", "0X", isHexDigit, sep, suffixes)
		}
		if spec.Octal && hasPrefix(rest, "0o", "0O") {
			return prefixed(rest, "0o", "0O", isOctalDigit, sep, suffixes)
		}
		if spec.Binary && hasPrefix(rest, "0b", "0B") {
			return prefixed(rest, "0b", "0B", isBinaryDigit, sep, suffixes)
		}

		n := 0
		digits := 0
		if spec.Float && strings.HasPrefix(rest[n:], ".") && isDecimalDigit(peekByte(rest, n+1)) {
			n++ // the leading dot
			dn, dc := digitRun(rest[n:], isDecimalDigit, sep)
			n += dn
			digits += dc
		} else {
			dn, dc := digitRun(rest, isDecimalDigit, sep)
			n += dn
			digits += dc
			if digits == 0 {
				return 0
			}
			if strings.HasPrefix(rest[n:], ".") && isDecimalDigit(peekByte(rest, n+1)) {
				n++
				fn, fc := digitRun(rest[n:], isDecimalDigit, sep)
				n += fn
				digits += fc
			}
		}
		if digits == 0 {
			return 0
		}

		// Exponent commits only when at least one digit follows.
		if e := peekByte(rest, n); e == 'e' || e == 'E' {
			en := n + 1
			if s := peekByte(rest, en); s == '+' || s == '-' {
				en++
			}
			xn, xc := digitRun(rest[en:], isDecimalDigit, "")
			if xc > 0 {
				n = en + xn
			}
		}

		n += suffixLen(rest[n:], suffixes)
		return n
	}
}

func hasPrefix(rest, lower, upper string) bool {
	return strings.HasPrefix(rest, lower) || strings.HasPrefix(rest, upper)
}

// prefixed scans one radix-prefixed form. It returns 0 unless at least one
// digit of the base follows the prefix.
func prefixed(rest, lower, upper string, digit func(byte) bool, sep string, suffixes []string) int {
	if !hasPrefix(rest, lower, upper) {
		return 0
	}
	n := len(lower)
	dn, dc := digitRun(rest[n:], digit, sep)
	if dc == 0 {
		return 0
	}
	n += dn
	n += suffixLen(rest[n:], suffixes)
	return n
}

// digitRun consumes digits with separators permitted between digits. A
// separator is only consumed when a digit follows it. Returns the byte
// count consumed and the number of actual digits.
func digitRun(s string, digit func(byte) bool, sep string) (n, digits int) {
	for n < len(s) {
		if digit(s[n]) {
			n++
			digits++
			continue
		}
		if sep != "" && digits > 0 && strings.HasPrefix(s[n:], sep) && digit(peekByte(s, n+len(sep))) {
			n += len(sep)
			continue
		}
		break
	}
	return n, digits
}

// suffixLen returns the character length of the longest matching suffix.
// Suffixes must already be sorted longest first.
func suffixLen(s string, suffixes []string) int {
	for _, suf := range suffixes {
		if strings.HasPrefix(s, suf) {
			return utf8.RuneCountInString(suf)
		}
	}
	return 0
}

func peekByte(s string, i int) byte {
	if i >= len(s) {
		return 0
	}
	return s[i]
}

func isDecimalDigit(b byte) bool { return b >= '0' && b <= '9' }
func isOctalDigit(b byte) bool   { return b >= '0' && b <= '7' }
func isBinaryDigit(b byte) bool  { return b == '0' || b == '1' }
func isHexDigit(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F'
}
