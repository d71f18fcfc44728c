package parser

import "strings"

var parenPadder = strings.NewReplacer("(", " ( ", ")", " ) ")

// Tokenize splits source text into paren and atom tokens. It never fails;
// blank input yields an empty slice.
func Tokenize(src string) []string {
	tokens := strings.Fields(parenPadder.Replace(src))
	if tokens == nil {
		return []string{}
	}
	return tokens
}

// Depth reports how many opening parens in tokens are still unclosed. A
// negative result means a closing paren appeared with nothing to close.
func Depth(tokens []string) int {
	depth := 0
	for _, tok := range tokens {
		switch tok {
		case "(":
			depth++
		case ")":
			depth--
			if depth < 0 {
				return depth
			}
		}
	}
	return depth
}
