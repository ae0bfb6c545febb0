package lexer

import (
	"tinylisp/internal/token"
	"unicode/utf8"
)

type Lexer struct {
	input        string
	position     int  // current byte position in input (points to start of current rune)
	readPosition int  // next byte position in input (start of next rune)
	ch           rune // current rune under examination; 0 means EOF
}

func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

func (l *Lexer) NextToken() token.Token {
	var tok token.Token

	l.skipWhitespace()

	startPosition := l.position

	switch l.ch {
	case '(':
		tok = newToken(token.LPAREN, l.ch, startPosition)
	case ')':
		tok = newToken(token.RPAREN, l.ch, startPosition)
	case '{':
		tok = newToken(token.LBRACE, l.ch, startPosition)
	case '}':
		tok = newToken(token.RBRACE, l.ch, startPosition)
	case 0:
		if !l.atEOF() {
			tok = newToken(token.ILLEGAL, l.ch, startPosition)
			break
		}
		tok.Literal = ""
		tok.Type = token.EOF
		tok.Position = startPosition
	default:
		if isSymbolChar(l.ch) || l.ch == '.' {
			tok.Literal = l.readSymbol()
			tok.Type = token.Classify(tok.Literal)
			tok.Position = startPosition
			return tok
		}
		tok = newToken(token.ILLEGAL, l.ch, startPosition)
	}

	l.readChar()
	return tok
}

func (l *Lexer) skipWhitespace() {
	for {
		switch l.ch {
		case ' ', '\t', '\r', '\n':
			l.readChar()
		case ';':
			l.skipToLineEnd()
		default:
			return
		}
	}
}

func (l *Lexer) skipToLineEnd() {
	for l.ch != '\n' && !l.atEOF() {
		l.readChar()
	}
}

// atEOF tells a NUL rune in the input apart from the end of input.
func (l *Lexer) atEOF() bool {
	return l.position >= len(l.input)
}

// readChar advances by one UTF-8 rune, updating byte positions
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += size
}

// readSymbol returns the run of symbol runes; '.' is kept so float literals stay whole
func (l *Lexer) readSymbol() string {
	start := l.position
	for isSymbolChar(l.ch) || l.ch == '.' {
		l.readChar()
	}
	return l.input[start:l.position]
}

// [a-zA-Z0-9_+\-*\/\\=<>!&%^]
func isSymbolChar(ch rune) bool {
	switch {
	case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
		return true
	}
	switch ch {
	case '_', '+', '-', '*', '/', '\\', '=', '<', '>', '!', '&', '%', '^':
		return true
	}
	return false
}

func newToken(tokenType token.TokenType, ch rune, position int) token.Token {
	return token.Token{Type: tokenType, Literal: string(ch), Position: position}
}
