package wildcard

// Tokenize compiles a wildcard pattern into its token sequence.
//
//	*       matches everything except for a path separator
//	**      matches everything
//	?       matches any single character
//	[seq]   matches any character in seq
//	[!seq]  matches any character not in seq
func Tokenize(pattern string) ([]Token, error) {
	runes := []rune(pattern)
	tokens := make([]Token, 0, len(runes))

	for i := 0; i < len(runes); {
		switch runes[i] {
		case '[':
			end := indexRune(runes, ']', i+1)
			if end < 0 {
				return nil, invalidPattern(pattern, reasonUnterminatedClass)
			}
			tokens = append(tokens, newClass(runes[i+1:end]))
			i = end + 1
		case ']':
			return nil, invalidPattern(pattern, reasonUnmatchedBracket)
		case '?':
			tokens = append(tokens, Token{Kind: AnyOne})
			i++
		case '*':
			n := 1
			for i+n < len(runes) && runes[i+n] == '*' {
				n++
			}
			if n > 2 {
				return nil, invalidPattern(pattern, reasonTooManyStars)
			}
			if n == 2 {
				tokens = append(tokens, Token{Kind: DoubleStar})
			} else {
				tokens = append(tokens, Token{Kind: Star})
			}
			i += n
		default:
			tokens = append(tokens, Token{Kind: Literal, Char: runes[i]})
			i++
		}
	}
	return tokens, nil
}

func newClass(body []rune) Token {
	t := Token{Kind: Class}
	if len(body) > 0 && body[0] == '!' {
		t.Negated = true
		body = body[1:]
	}
	t.Set = make([]rune, len(body))
	copy(t.Set, body)
	return t
}

func indexRune(runes []rune, r rune, from int) int {
	for i := from; i < len(runes); i++ {
		if runes[i] == r {
			return i
		}
	}
	return -1
}
