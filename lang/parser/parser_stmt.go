package parser

import (
	"github.com/timon-lang/timon/lang/errors"
	"github.com/timon-lang/timon/lang/lexer"
)

// parseStatement parses a single top-level or block statement, dispatching
// on the leading token the way the grammar's alternation does (spec
// section 6).
func (p *Parser) parseStatement() (Stmt, *errors.Diagnostic) {
	switch p.cur.Kind {
	case lexer.FUN:
		return p.parseFunctionDef()
	case lexer.VAR:
		return p.parseVarDef()
	case lexer.IF:
		return p.parseIf()
	case lexer.FROM:
		return p.parseFrom()
	case lexer.PRINT:
		return p.parsePrint()
	case lexer.RETURN:
		return p.parseReturn()
	case lexer.IDENT:
		return p.parseIdentifierFirst()
	default:
		return nil, p.unexpected("a statement")
	}
}

// parseFunctionDef parses: "fun" identifier "(" [ident {"," ident}] ")" body
func (p *Parser) parseFunctionDef() (Stmt, *errors.Diagnostic) {
	startPos := p.cur.Pos
	if err := p.advance(); err != nil { // consume 'fun'
		return nil, err
	}
	nameTok, err := p.expect(lexer.IDENT, "function name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN, "'(' after function name"); err != nil {
		return nil, err
	}
	var params []string
	if !p.check(lexer.RPAREN) {
		for {
			ptok, err := p.expect(lexer.IDENT, "parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, ptok.Lexeme)
			if !p.check(lexer.COMMA) {
				break
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.expect(lexer.RPAREN, "')' after parameter list"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &FunctionDef{Name: nameTok.Lexeme, Params: params, Body: body, Position: startPos}, nil
}

// parseVarDef parses: "var" identifier [ "=" expr ]
func (p *Parser) parseVarDef() (Stmt, *errors.Diagnostic) {
	startPos := p.cur.Pos
	if err := p.advance(); err != nil { // consume 'var'
		return nil, err
	}
	nameTok, err := p.expect(lexer.IDENT, "variable name")
	if err != nil {
		return nil, err
	}
	var init Expr
	if p.check(lexer.ASSIGN) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		init, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	return &VarDef{Name: nameTok.Lexeme, Init: init, Position: startPos}, nil
}

// parseIdentifierFirst resolves the identifier-first ambiguity: a call
// statement if followed by '(', an assignment if followed by '=', a syntax
// error otherwise (spec section 4.2).
func (p *Parser) parseIdentifierFirst() (Stmt, *errors.Diagnostic) {
	nameTok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	switch p.cur.Kind {
	case lexer.LPAREN:
		args, err := p.parseArgList()
		if err != nil {
			return nil, err
		}
		return &CallStmt{Name: nameTok.Lexeme, Args: args, Position: nameTok.Pos}, nil
	case lexer.ASSIGN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &Assign{Name: nameTok.Lexeme, Value: value, Position: nameTok.Pos}, nil
	default:
		return nil, p.unexpected("'(' or '=' after identifier")
	}
}

// parseArgList parses "(" [expr {"," expr}] ")", with the '(' already current.
func (p *Parser) parseArgList() ([]Expr, *errors.Diagnostic) {
	if err := p.advance(); err != nil { // consume '('
		return nil, err
	}
	var args []Expr
	if !p.check(lexer.RPAREN) {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.check(lexer.COMMA) {
				break
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.expect(lexer.RPAREN, "')' after argument list"); err != nil {
		return nil, err
	}
	return args, nil
}

// parseIf parses: "if" expr body ["else" body]
func (p *Parser) parseIf() (Stmt, *errors.Diagnostic) {
	startPos := p.cur.Pos
	if err := p.advance(); err != nil { // consume 'if'
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var elseBody []Stmt
	if p.check(lexer.ELSE) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		elseBody, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}
	return &If{Cond: cond, Then: then, Else: elseBody, Position: startPos}, nil
}

// parseFrom parses:
//
//	"from" expr "to" expr "by" stepUnit "as" identifier body
func (p *Parser) parseFrom() (Stmt, *errors.Diagnostic) {
	startPos := p.cur.Pos
	if err := p.advance(); err != nil { // consume 'from'
		return nil, err
	}
	start, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TO, "'to'"); err != nil {
		return nil, err
	}
	end, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.BY, "'by'"); err != nil {
		return nil, err
	}
	if !p.cur.Kind.IsUnit() {
		return nil, p.unexpected("a step unit (years, months, weeks, days, hours, minutes, or seconds)")
	}
	stepUnit := p.cur.Kind
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.AS, "'as'"); err != nil {
		return nil, err
	}
	iterTok, err := p.expect(lexer.IDENT, "iterator name")
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &From{
		Start: start, End: end, StepUnit: stepUnit, IterName: iterTok.Lexeme,
		Body: body, Position: startPos,
	}, nil
}

// parsePrint parses: "print" expr
func (p *Parser) parsePrint() (Stmt, *errors.Diagnostic) {
	startPos := p.cur.Pos
	if err := p.advance(); err != nil { // consume 'print'
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &Print{Expr: expr, Position: startPos}, nil
}

// parseReturn parses: "return" expr
func (p *Parser) parseReturn() (Stmt, *errors.Diagnostic) {
	startPos := p.cur.Pos
	if err := p.advance(); err != nil { // consume 'return'
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &Return{Expr: expr, Position: startPos}, nil
}
