package parser

import (
	"github.com/timon-lang/timon/lang/errors"
	"github.com/timon-lang/timon/lang/lexer"
)

// Parser performs recursive-descent parsing over a lazily-pulled token
// stream, keeping a single token of lookahead beyond the current token
// (spec section 9: "pull iterator with a one-token peek buffer").
type Parser struct {
	lex *lexer.Lexer

	cur      lexer.Token
	peekTok  lexer.Token
	havePeek bool
}

// New creates a Parser over lex and primes the current token.
func New(lex *lexer.Lexer) (*Parser, *errors.Diagnostic) {
	p := &Parser{lex: lex}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// Parse parses the full token stream into a Program, stopping at the
// first syntax error (spec section 4.2: "abort parsing").
func (p *Parser) Parse() (*Program, *errors.Diagnostic) {
	var stmts []Stmt
	for p.cur.Kind != lexer.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return &Program{Statements: stmts}, nil
}

// --- token stream helpers ---

func (p *Parser) advance() *errors.Diagnostic {
	if p.havePeek {
		p.cur = p.peekTok
		p.havePeek = false
		return nil
	}
	t, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.cur = t
	return nil
}

func (p *Parser) peek() (lexer.Token, *errors.Diagnostic) {
	if !p.havePeek {
		t, err := p.lex.Next()
		if err != nil {
			return lexer.Token{}, err
		}
		p.peekTok = t
		p.havePeek = true
	}
	return p.peekTok, nil
}

func (p *Parser) check(kind lexer.Kind) bool {
	return p.cur.Kind == kind
}

// expect requires the current token to have the given kind, consumes it,
// and returns it; otherwise it reports a syntax error naming what was
// expected and what was actually found.
func (p *Parser) expect(kind lexer.Kind, what string) (lexer.Token, *errors.Diagnostic) {
	if !p.check(kind) {
		return lexer.Token{}, p.unexpected(what)
	}
	tok := p.cur
	if err := p.advance(); err != nil {
		return lexer.Token{}, err
	}
	return tok, nil
}

func (p *Parser) unexpected(what string) *errors.Diagnostic {
	return errors.New(errors.ParseError, errors.CodeUnexpectedToken,
		pos(p.cur.Pos), "expected %s, found %s %q", what, p.cur.Kind, p.cur.Lexeme)
}

func (p *Parser) errAt(code string, position lexer.Position, format string, args ...interface{}) *errors.Diagnostic {
	return errors.New(errors.ParseError, code, pos(position), format, args...)
}

func pos(p lexer.Position) errors.Position {
	return errors.Position{Line: p.Line, Column: p.Column, Offset: p.Offset}
}

// parseBlock parses a brace-delimited statement list: "{" stmt* "}".
func (p *Parser) parseBlock() ([]Stmt, *errors.Diagnostic) {
	if _, err := p.expect(lexer.LBRACE, "'{'"); err != nil {
		return nil, err
	}
	var stmts []Stmt
	for !p.check(lexer.RBRACE) {
		if p.check(lexer.EOF) {
			return nil, p.unexpected("'}'")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.expect(lexer.RBRACE, "'}'"); err != nil {
		return nil, err
	}
	return stmts, nil
}
