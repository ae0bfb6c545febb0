package parser

import (
	"fmt"
	"tinylisp/internal/ast"
	"tinylisp/internal/lexer"
	"tinylisp/internal/token"
	"tinylisp/internal/util"
)

var closers = map[token.TokenType]token.TokenType{
	token.LPAREN: token.RPAREN,
	token.LBRACE: token.RBRACE,
}

type Parser struct {
	l      *lexer.Lexer
	src    string // source code here
	errors []string
	// src index of the token each error was reported at
	errorPositions []int

	// set when the input ended inside an open expression
	incomplete bool

	curToken token.Token
}

func New(l *lexer.Lexer, source string) *Parser {
	p := &Parser{
		l:      l,
		src:    source,
		errors: []string{},
	}
	p.nextToken()
	return p
}

// Parse is a convenience wrapper lexing and parsing source in one go.
func Parse(source string) (*ast.Node, *Parser) {
	p := New(lexer.New(source), source)
	return p.ParseProgram(), p
}

func (p *Parser) nextToken() {
	p.curToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) addError(message string, args ...interface{}) {
	line, col := util.GetLineAndColumn(p.src, p.curToken.Position)
	m := fmt.Sprintf(message, args...)
	msg := fmt.Sprintf("[%3d:%2d] %s", line, col, m)
	p.errors = append(p.errors, msg)
	p.errorPositions = append(p.errorPositions, p.curToken.Position)
}

func (p *Parser) Errors() []string {
	return p.errors
}

// ErrorContext renders the source lines leading up to the first error.
func (p *Parser) ErrorContext() string {
	if len(p.errorPositions) == 0 {
		return ""
	}
	line, col := util.GetLineAndColumn(p.src, p.errorPositions[0])
	return util.GetContextLines(p.src, line, col)
}

// Incomplete reports whether parsing stopped because the input ran out
// before every '(' or '{' was closed.
func (p *Parser) Incomplete() bool {
	return p.incomplete
}

// ParseProgram parses every top-level expression into a single program node.
func (p *Parser) ParseProgram() *ast.Node {
	program := &ast.Node{Tag: ast.PROGRAM, Position: p.curToken.Position}

	for !p.curTokenIs(token.EOF) {
		expr := p.parseExpression()
		if expr != nil {
			program.Children = append(program.Children, expr)
		}
		if p.incomplete {
			break
		}
		p.nextToken()
	}

	return program
}

func (p *Parser) parseExpression() *ast.Node {
	switch p.curToken.Type {
	case token.NUMBER:
		return p.leaf(ast.NUMBER)
	case token.FLOAT:
		return p.leaf(ast.FLOAT)
	case token.SYMBOL:
		return p.leaf(ast.SYMBOL)
	case token.LPAREN:
		return p.parseList(ast.SEXPR)
	case token.LBRACE:
		return p.parseList(ast.QEXPR)
	case token.RPAREN, token.RBRACE:
		p.addError("unexpected %s", p.curToken.Literal)
	default:
		p.addError("illegal token %q", p.curToken.Literal)
	}
	return nil
}

func (p *Parser) leaf(tag string) *ast.Node {
	return &ast.Node{Tag: tag, Contents: p.curToken.Literal, Position: p.curToken.Position}
}

// parseList reads from the opening bracket in curToken up to and including
// its matching closer.
func (p *Parser) parseList(tag string) *ast.Node {
	closer := closers[p.curToken.Type]
	node := &ast.Node{Tag: tag, Position: p.curToken.Position}
	node.Children = append(node.Children, p.leaf(ast.CHAR))

	for {
		p.nextToken()
		switch {
		case p.curTokenIs(token.EOF):
			p.incomplete = true
			p.addError("expected %s, got EOF", closer)
			return nil
		case p.curTokenIs(closer):
			node.Children = append(node.Children, p.leaf(ast.CHAR))
			return node
		case p.curTokenIs(token.RPAREN), p.curTokenIs(token.RBRACE):
			p.addError("expected %s, got %s", closer, p.curToken.Literal)
			return nil
		}
		if child := p.parseExpression(); child != nil {
			node.Children = append(node.Children, child)
		} else if p.incomplete {
			return nil
		}
	}
}
