// Package parser implements a Pratt (precedence-climbing) parser over
// the lexer's token stream, producing the two AST sub-grammars defined
// in package ast: the top-level regex grammar and the nested
// character-class grammar.
package parser

import (
	"fmt"

	"github.com/lnsp/rexmin/ast"
	"github.com/lnsp/rexmin/lexer"
)

// Parse builds the lexer internally and parses pattern into a regex
// AST. It fails with *SyntaxError or *InvalidRangeError.
func Parse(pattern string) (ast.Node, error) {
	p := &parser{tokens: lexer.Tokenize(pattern)}
	node, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}

	// A complete parse always ends at Eof; parseExpr only stops early
	// on a CloseParen/CloseBracket it doesn't own, i.e. one with no
	// matching opener.
	switch p.peek().Type {
	case lexer.Eof:
		return node, nil
	case lexer.CloseParen:
		return nil, &SyntaxError{Msg: "Unmatched parenthesis."}
	case lexer.CloseBracket:
		return nil, &SyntaxError{Msg: "Unmatched bracket."}
	default:
		return nil, &SyntaxError{Msg: "Unexpected token."}
	}
}

type parser struct {
	tokens []lexer.Token
	pos    int
}

func (p *parser) peek() lexer.Token {
	return p.tokens[p.pos]
}

func (p *parser) advance() lexer.Token {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

// infixBP returns the (left, right) binding power of a regex-layer
// binary/postfix operator. ok is false for anything else.
func infixBP(t lexer.TokenType) (left, right int, ok bool) {
	switch t {
	case lexer.Union:
		return 1, 2, true
	case lexer.Concatenation:
		return 3, 3, true
	case lexer.ClosureStar, lexer.ClosurePlus:
		return 5, 0, true // postfix: right bp unused
	default:
		return 0, 0, false
	}
}

// parseExpr parses a regex-layer expression, stopping when the next
// operator's left binding power is below minBP.
func (p *parser) parseExpr(minBP int) (ast.Node, error) {
	lhs, err := p.nud()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.peek()
		if tok.Type == lexer.Eof {
			return lhs, nil
		}

		lbp, rbp, ok := infixBP(tok.Type)
		if !ok {
			// CloseParen, CloseBracket, Dash (stray): let the caller decide.
			return lhs, nil
		}
		if lbp < minBP {
			return lhs, nil
		}

		p.advance()

		switch tok.Type {
		case lexer.ClosureStar, lexer.ClosurePlus:
			if p.peek().Type == lexer.ClosureStar {
				return nil, &SyntaxError{Msg: "Invalid Closure: ClosureStar operator can't be followed by another Closure Star operator"}
			}
			op := ast.ClosureStar
			if tok.Type == lexer.ClosurePlus {
				op = ast.ClosurePlus
			}
			lhs = ast.Unary{Child: lhs, Op: op}

		case lexer.Union:
			if p.peek().Type == lexer.Eof {
				// Trailing '|' unions with the empty string.
				lhs = ast.Binary{Lhs: lhs, Op: ast.Union, Rhs: ast.EmptyString{}}
				continue
			}
			rhs, err := p.parseExpr(rbp)
			if err != nil {
				return nil, err
			}
			lhs = ast.Binary{Lhs: lhs, Op: ast.Union, Rhs: rhs}

		case lexer.Concatenation:
			rhs, err := p.parseExpr(rbp)
			if err != nil {
				return nil, err
			}
			lhs = ast.Binary{Lhs: lhs, Op: ast.Concatenation, Rhs: rhs}
		}
	}
}

// nud ("null denotation") parses a prefix position: an atom, or a
// prefix error for an operator that can never start an expression.
func (p *parser) nud() (ast.Node, error) {
	tok := p.advance()

	switch tok.Type {
	case lexer.Symbol:
		return ast.Symbol{Char: tok.Value}, nil

	case lexer.OpenParen:
		inner, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		switch p.peek().Type {
		case lexer.Eof:
			return nil, &SyntaxError{Msg: "Invalid group: missing closing parenthesis!"}
		case lexer.CloseParen:
			p.advance()
			return inner, nil
		default:
			return nil, &SyntaxError{Msg: fmt.Sprintf("Parenthesis at position %d doesn't have a closing parenthesis!", tok.Start)}
		}

	case lexer.OpenBracket:
		inner, err := p.parseClass(0)
		if err != nil {
			return nil, err
		}
		if p.peek().Type != lexer.CloseBracket {
			return nil, &SyntaxError{Msg: fmt.Sprintf("Brackets at position %d doesn't have a closing brackets!", tok.Start)}
		}
		p.advance()
		return ast.CharClass{Class: inner}, nil

	case lexer.ClosureStar:
		return nil, &SyntaxError{Msg: `Invalid Closure: ClosureStar operator needs a preceding literal, e.g. "a*", "(ab)*", "(a|c)*".`}

	case lexer.ClosurePlus:
		return nil, &SyntaxError{Msg: `Invalid Closure: ClosurePlus operator needs a preceding literal, e.g. "a+", "(ab)+", "(a|c)+".`}

	case lexer.Union:
		return nil, &SyntaxError{Msg: `Invalid Union: the union operator "|" needs to be between two literals, e.g. "ab|cd", "a|z", "1*|0*".`}

	case lexer.CloseParen:
		return nil, &SyntaxError{Msg: "Unmatched parenthesis."}

	case lexer.CloseBracket:
		return nil, &SyntaxError{Msg: "Unmatched bracket."}

	case lexer.Eof:
		return ast.EmptyString{}, nil

	default:
		return nil, &SyntaxError{Msg: "Unexpected token."}
	}
}

// classInfixBP returns the (left, right) binding power of a
// character-class operator.
func classInfixBP(t lexer.TokenType) (left, right int, ok bool) {
	switch t {
	case lexer.Union:
		return 1, 2, true
	case lexer.Dash:
		return 6, 5, true // right-associative Range
	default:
		return 0, 0, false
	}
}

// parseClass parses a character-class expression.
func (p *parser) parseClass(minBP int) (ast.ClassNode, error) {
	lhs, err := p.classNud()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.peek()
		if tok.Type == lexer.Eof || tok.Type == lexer.CloseBracket {
			return lhs, nil
		}

		lbp, rbp, ok := classInfixBP(tok.Type)
		if !ok {
			return lhs, nil
		}
		if lbp < minBP {
			return lhs, nil
		}

		p.advance()

		rhs, err := p.parseClass(rbp)
		if err != nil {
			return nil, err
		}

		if tok.Type == lexer.Dash {
			lo, loOK := lhs.(ast.Single)
			hi, hiOK := rhs.(ast.Single)
			if !loOK || !hiOK {
				// Reached by chained ranges such as "[a-b-c]": Range is
				// right-associative, so the right-hand side parsed above is
				// itself a ClassRange rather than a Single.
				return nil, &SyntaxError{Msg: "Invalid Range: range operands must be single characters!"}
			}
			if hi.Char < lo.Char {
				return nil, &InvalidRangeError{Msg: fmt.Sprintf("Invalid Range: \"%c\" is bigger than \"%c\"!", lo.Char, hi.Char)}
			}
			lhs = ast.ClassRange{Lo: lo.Char, Hi: hi.Char}
		} else {
			lhs = ast.ClassUnion{Lhs: lhs, Rhs: rhs}
		}
	}
}

func (p *parser) classNud() (ast.ClassNode, error) {
	tok := p.advance()

	switch tok.Type {
	case lexer.Symbol:
		return ast.Single{Char: tok.Value}, nil

	case lexer.Eof:
		return nil, &SyntaxError{Msg: "Invalid character class: missing closing bracket!"}

	case lexer.CloseBracket:
		return nil, &SyntaxError{Msg: "Invalid character class: character class cannot be empty!"}

	default:
		return nil, &SyntaxError{Msg: "Invalid character class: unexpected token."}
	}
}
