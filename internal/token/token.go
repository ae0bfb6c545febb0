package token

import "strings"

type TokenType string

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	// literals
	NUMBER = "NUMBER" // 42, -7
	FLOAT  = "FLOAT"  // 3.14, -0.5
	SYMBOL = "SYMBOL" // +, def, \, my-func

	// delimiters
	LPAREN = "("
	RPAREN = ")"
	LBRACE = "{"
	RBRACE = "}"
)

type Token struct {
	Type     TokenType
	Literal  string
	Position int // the src index of the token
}

// Classify decides whether a run of symbol characters is a number, a float
// or a plain symbol. The number forms follow -?[0-9]+ and -?[0-9]+\.[0-9]+.
func Classify(literal string) TokenType {
	body := literal
	if len(body) > 1 && body[0] == '-' {
		body = body[1:]
	}
	intPart, fracPart, hasDot := strings.Cut(body, ".")
	if !allDigits(intPart) {
		if hasDot {
			return ILLEGAL
		}
		return SYMBOL
	}
	if !hasDot {
		return NUMBER
	}
	if allDigits(fracPart) {
		return FLOAT
	}
	return ILLEGAL
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
