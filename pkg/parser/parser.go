package parser

import (
	"errors"
	"strconv"
	"strings"

	"largo/interpreter-go/pkg/ast"
	"largo/interpreter-go/pkg/reason"
)

// Parse reads one expression from the front of tokens and returns it along
// with the tokens that follow it. Leftover tokens are not an error here;
// callers decide what to do with them.
func Parse(tokens []string) (ast.Expression, []string, error) {
	if len(tokens) == 0 {
		return nil, nil, reason.New("could not get token")
	}
	token, rest := tokens[0], tokens[1:]
	switch token {
	case "(":
		return readSeq(rest)
	case ")":
		return nil, nil, reason.New("unexpected `)`")
	default:
		return ParseAtom(token), rest, nil
	}
}

func readSeq(tokens []string) (ast.Expression, []string, error) {
	items := make([]ast.Expression, 0)
	xs := tokens
	for {
		if len(xs) == 0 {
			return nil, nil, reason.New("could not find closing `)`")
		}
		if xs[0] == ")" {
			return ast.NewList(items), xs[1:], nil
		}
		expr, rest, err := Parse(xs)
		if err != nil {
			return nil, nil, err
		}
		items = append(items, expr)
		xs = rest
	}
}

// ParseAtom classifies a non-paren token. The token is a number only when
// the whole of it is a decimal float literal (or an inf/nan spelling).
// Literals too large for float64 become signed infinity.
func ParseAtom(token string) ast.Atom {
	if !decimalLiteral(token) {
		return ast.NewSymbol(token)
	}
	value, err := strconv.ParseFloat(token, 64)
	if err == nil || errors.Is(err, strconv.ErrRange) {
		return ast.NewNumber(value)
	}
	return ast.NewSymbol(token)
}

// decimalLiteral screens out the Go-only float syntax ParseFloat accepts:
// hex mantissas and underscore digit separators.
func decimalLiteral(token string) bool {
	if strings.Contains(token, "_") {
		return false
	}
	digits := strings.TrimLeft(token, "+-")
	if len(digits) < len(token)-1 {
		return false
	}
	return !strings.HasPrefix(digits, "0x") && !strings.HasPrefix(digits, "0X")
}

// Read tokenizes src and parses the first expression from it.
func Read(src string) (ast.Expression, []string, error) {
	return Parse(Tokenize(src))
}
