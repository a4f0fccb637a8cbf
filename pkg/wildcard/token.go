package wildcard

import (
	"strings"
	"unicode"
)

type Kind uint8

const (
	Literal Kind = iota
	AnyOne
	Class
	Star
	DoubleStar
)

var kindStrings = [...]string{"Literal", "AnyOne", "Class", "Star", "DoubleStar"}

func (k Kind) String() string {
	if int(k) < len(kindStrings) {
		return kindStrings[k]
	}
	return "Unknown"
}

// outcome is the relation of a token to a single input character.
type outcome uint8

const (
	noMatch outcome = iota
	consumeOne
	consumeOneOrMore
)

// Token is one compiled unit of a pattern. Char is set for Literal tokens,
// Set and Negated for Class tokens.
type Token struct {
	Kind    Kind
	Char    rune
	Set     []rune
	Negated bool
}

func (t Token) test(c rune) outcome {
	switch t.Kind {
	case Literal:
		if c == t.Char {
			return consumeOne
		}
	case AnyOne:
		return consumeOne
	case Class:
		if t.contains(c) != t.Negated {
			return consumeOne
		}
	case Star:
		if c != '/' {
			return consumeOneOrMore
		}
	case DoubleStar:
		return consumeOneOrMore
	}
	return noMatch
}

func (t Token) contains(c rune) bool {
	for _, r := range t.Set {
		if r == c {
			return true
		}
	}
	return false
}

// folded returns a lower-cased copy for case-insensitive matchers.
func (t Token) folded() Token {
	switch t.Kind {
	case Literal:
		t.Char = unicode.ToLower(t.Char)
	case Class:
		set := make([]rune, len(t.Set))
		for i, r := range t.Set {
			set[i] = unicode.ToLower(r)
		}
		t.Set = set
	}
	return t
}

// String renders the token back in pattern syntax.
func (t Token) String() string {
	switch t.Kind {
	case Literal:
		return string(t.Char)
	case AnyOne:
		return "?"
	case Class:
		var b strings.Builder
		b.WriteByte('[')
		if t.Negated {
			b.WriteByte('!')
		}
		b.WriteString(string(t.Set))
		b.WriteByte(']')
		return b.String()
	case Star:
		return "*"
	case DoubleStar:
		return "**"
	}
	return ""
}
