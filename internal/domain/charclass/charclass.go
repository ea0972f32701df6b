// Package charclass compiles declarative character class expressions into
// single-character predicates. Named references resolve through the
// profile's class table; an unknown reference is a configuration error.
package charclass

import (
	"fmt"
	"unicode/utf8"

	"github.com/corey/lexis/internal/domain/profile"
)

// Predicate reports whether a single character (passed as a one-character
// string) belongs to the class. Every predicate fails on "".
type Predicate func(ch string) bool

// Resolver compiles classes against one profile's class table, memoizing
// named references and detecting reference cycles.
type Resolver struct {
	table     map[string]*profile.Class
	compiled  map[string]Predicate
	resolving map[string]bool
}

// NewResolver returns a resolver over the given class table. A nil table
// is valid for profiles that declare no named classes.
func NewResolver(table map[string]*profile.Class) *Resolver {
	return &Resolver{
		table:     table,
		compiled:  make(map[string]Predicate),
		resolving: make(map[string]bool),
	}
}

// Compile turns a class expression into a predicate.
func (r *Resolver) Compile(c *profile.Class) (Predicate, error) {
	if c == nil {
		return nil, fmt.Errorf("charclass: nil class expression")
	}
	switch {
	case c.Is != "":
		return predefined(c.Is)
	case c.Chars != "":
		set := c.Chars
		return func(ch string) bool {
			if ch == "" {
				return false
			}
			for _, m := range set {
				if string(m) == ch {
					return true
				}
			}
			return false
		}, nil
	case c.From != "" || c.To != "":
		from, _ := utf8.DecodeRuneInString(c.From)
		to, _ := utf8.DecodeRuneInString(c.To)
		if c.From == "" || c.To == "" || from > to {
			return nil, fmt.Errorf("charclass: invalid range %q..%q", c.From, c.To)
		}
		return func(ch string) bool {
			if ch == "" {
				return false
			}
			x, _ := utf8.DecodeRuneInString(ch)
			return x >= from && x <= to
		}, nil
	case len(c.OneOf) > 0:
		preds := make([]Predicate, len(c.OneOf))
		for i, sub := range c.OneOf {
			p, err := r.Compile(sub)
			if err != nil {
				return nil, err
			}
			preds[i] = p
		}
		return func(ch string) bool {
			for _, p := range preds {
				if p(ch) {
					return true
				}
			}
			return false
		}, nil
	case c.Not != nil:
		inner, err := r.Compile(c.Not)
		if err != nil {
			return nil, err
		}
		return func(ch string) bool {
			return ch != "" && !inner(ch)
		}, nil
	case c.Ref != "":
		return r.ref(c.Ref)
	default:
		return nil, fmt.Errorf("charclass: empty class expression")
	}
}

func (r *Resolver) ref(name string) (Predicate, error) {
	if p, ok := r.compiled[name]; ok {
		return p, nil
	}
	if r.resolving[name] {
		return nil, fmt.Errorf("charclass: reference cycle through %q", name)
	}
	target, ok := r.table[name]
	if !ok {
		return nil, fmt.Errorf("charclass: unresolved class reference %q", name)
	}
	r.resolving[name] = true
	p, err := r.Compile(target)
	delete(r.resolving, name)
	if err != nil {
		return nil, err
	}
	r.compiled[name] = p
	return p, nil
}

// predefined returns the predicate for one of the built-in class names.
func predefined(name string) (Predicate, error) {
	switch name {
	case profile.ClassLetter:
		return isLetter, nil
	case profile.ClassUpper:
		return single(func(r rune) bool { return r >= 'A' && r <= 'Z' }), nil
	case profile.ClassLower:
		return single(func(r rune) bool { return r >= 'a' && r <= 'z' }), nil
	case profile.ClassDigit:
		return single(func(r rune) bool { return r >= '0' && r <= '9' }), nil
	case profile.ClassHexDigit:
		return single(func(r rune) bool {
			return r >= '0' && r <= '9' || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F'
		}), nil
	case profile.ClassAlphanumeric:
		return func(ch string) bool {
			return isLetter(ch) || isDigit(ch)
		}, nil
	case profile.ClassWhitespace:
		// Space and tab only; newline is its own class.
		return single(func(r rune) bool { return r == ' ' || r == '\t' }), nil
	case profile.ClassNewline:
		return single(func(r rune) bool { return r == '\n' || r == '\r' }), nil
	case profile.ClassAny:
		return func(ch string) bool { return ch != "" }, nil
	default:
		return nil, fmt.Errorf("charclass: unknown predefined class %q", name)
	}
}

var isDigit = single(func(r rune) bool { return r >= '0' && r <= '9' })

// isLetter covers ASCII letters plus the Latin-1 Supplement and Latin
// Extended blocks (U+00C0..U+024F).
func isLetter(ch string) bool {
	if ch == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(ch)
	return r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= 0x00C0 && r <= 0x024F
}

func single(f func(rune) bool) Predicate {
	return func(ch string) bool {
		if ch == "" {
			return false
		}
		r, _ := utf8.DecodeRuneInString(ch)
		return f(r)
	}
}
