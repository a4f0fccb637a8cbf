package wildcard

import "unicode"

// Matcher is a compiled wildcard pattern. It is immutable and safe for
// concurrent use.
type Matcher struct {
	pattern       string
	tokens        []Token
	caseSensitive bool
	acceptPrefix  bool
}

// Compile tokenizes pattern and builds a Matcher for the given modes.
// With acceptPrefix set, a name that could still be extended into a full
// match is reported as matching.
func Compile(pattern string, caseSensitive, acceptPrefix bool) (*Matcher, error) {
	tokens, err := Tokenize(pattern)
	if err != nil {
		return nil, err
	}
	if !caseSensitive {
		for i := range tokens {
			tokens[i] = tokens[i].folded()
		}
	}
	return &Matcher{
		pattern:       pattern,
		tokens:        tokens,
		caseSensitive: caseSensitive,
		acceptPrefix:  acceptPrefix,
	}, nil
}

func MustCompile(pattern string, caseSensitive, acceptPrefix bool) *Matcher {
	m, err := Compile(pattern, caseSensitive, acceptPrefix)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Matcher) Pattern() string {
	return m.pattern
}

func (m *Matcher) CaseSensitive() bool {
	return m.caseSensitive
}

func (m *Matcher) AcceptPrefix() bool {
	return m.acceptPrefix
}

func (m *Matcher) Tokens() []Token {
	tokens := make([]Token, len(m.tokens))
	copy(tokens, m.tokens)
	return tokens
}

// Match reports whether name matches the compiled pattern.
//
// The result is computed column by column over the name, from its end to its
// start. After processing position j, cur[i] holds whether tokens[i:] matches
// name[j:]. Every token consumes at least one character, so only the column
// to the right is needed.
func (m *Matcher) Match(name string) bool {
	text := []rune(name)
	n := len(m.tokens)

	if n > len(text) && !m.acceptPrefix {
		return false
	}

	next := make([]bool, n+1)
	cur := make([]bool, n+1)

	// text exhausted: an exhausted pattern matches, a partial one only in
	// prefix mode
	for i := 0; i < n; i++ {
		cur[i] = m.acceptPrefix
	}
	cur[n] = true

	for j := len(text) - 1; j >= 0; j-- {
		next, cur = cur, next

		c := text[j]
		if !m.caseSensitive {
			c = unicode.ToLower(c)
		}

		alive := false
		cur[n] = false
		for i := n - 1; i >= 0; i-- {
			switch m.tokens[i].test(c) {
			case consumeOne:
				cur[i] = next[i+1]
			case consumeOneOrMore:
				cur[i] = next[i+1] || next[i]
			default:
				cur[i] = false
			}
			alive = alive || cur[i]
		}
		if !alive {
			return false
		}
	}
	return cur[0]
}
