package parser

import (
	"github.com/timon-lang/timon/lang/errors"
	"github.com/timon-lang/timon/lang/lexer"
	"github.com/timon-lang/timon/lang/value"
)

// Operator precedence, lowest to highest (spec section 4.2):
// | , & , == != , < <= > >= , + - , * / , unary , atom.

// parseExpression is the entry point for expression parsing.
func (p *Parser) parseExpression() (Expr, *errors.Diagnostic) {
	return p.parseOr()
}

func (p *Parser) parseOr() (Expr, *errors.Diagnostic) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.OR) {
		opPos := p.cur.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: lexer.OR, LHS: left, RHS: right, Position: opPos}
	}
	return left, nil
}

func (p *Parser) parseAnd() (Expr, *errors.Diagnostic) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.AND) {
		opPos := p.cur.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: lexer.AND, LHS: left, RHS: right, Position: opPos}
	}
	return left, nil
}

// parseEquality parses at most one == or != (non-associative: a second
// occurrence at this level is left for the caller to reject as an
// unexpected token, per spec section 4.2).
func (p *Parser) parseEquality() (Expr, *errors.Diagnostic) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	if p.check(lexer.EQ) || p.check(lexer.NEQ) {
		op := p.cur.Kind
		opPos := p.cur.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, LHS: left, RHS: right, Position: opPos}
	}
	return left, nil
}

// parseComparison parses at most one relational operator, for the same
// non-associativity reason as parseEquality.
func (p *Parser) parseComparison() (Expr, *errors.Diagnostic) {
	left, err := p.parseAddSub()
	if err != nil {
		return nil, err
	}
	if isComparisonOp(p.cur.Kind) {
		op := p.cur.Kind
		opPos := p.cur.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAddSub()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, LHS: left, RHS: right, Position: opPos}
	}
	return left, nil
}

func isComparisonOp(k lexer.Kind) bool {
	return k == lexer.LT || k == lexer.LTE || k == lexer.GT || k == lexer.GTE
}

func (p *Parser) parseAddSub() (Expr, *errors.Diagnostic) {
	left, err := p.parseMulDiv()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.PLUS) || p.check(lexer.MINUS) {
		op := p.cur.Kind
		opPos := p.cur.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseMulDiv()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, LHS: left, RHS: right, Position: opPos}
	}
	return left, nil
}

func (p *Parser) parseMulDiv() (Expr, *errors.Diagnostic) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.STAR) || p.check(lexer.SLASH) {
		op := p.cur.Kind
		opPos := p.cur.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, LHS: left, RHS: right, Position: opPos}
	}
	return left, nil
}

// parseUnary parses an optional single `!` or unary `-`; a second unary
// operator immediately following is rejected (spec section 4.2:
// "cannot stack").
func (p *Parser) parseUnary() (Expr, *errors.Diagnostic) {
	if p.check(lexer.NOT) || p.check(lexer.MINUS) {
		op := p.cur.Kind
		opPos := p.cur.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.check(lexer.NOT) || p.check(lexer.MINUS) {
			return nil, p.errAt(errors.CodeStackedUnary, p.cur.Pos, "unary operators cannot be stacked")
		}
		operand, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		return &Unary{Op: op, Operand: operand, Position: opPos}, nil
	}
	return p.parseAtom()
}

// parseAtom parses a literal, identifier reference, call, or parenthesized
// group, followed by zero or more `.field` accesses.
func (p *Parser) parseAtom() (Expr, *errors.Diagnostic) {
	var base Expr
	var err *errors.Diagnostic

	switch p.cur.Kind {
	case lexer.NUMBER:
		base = &Literal{Value: value.Number(p.cur.Int), Position: p.cur.Pos}
		err = p.advance()
	case lexer.STRING:
		base = &Literal{Value: value.String(p.cur.Str), Position: p.cur.Pos}
		err = p.advance()
	case lexer.DATE:
		dv := p.cur.DateVal
		base = &Literal{Value: value.DateVal(value.Date{Day: dv.Day, Month: dv.Month, Year: dv.Year}), Position: p.cur.Pos}
		err = p.advance()
	case lexer.TIME:
		tv := p.cur.TimeVal
		base = &Literal{Value: value.TimeVal(value.Time{Hour: tv.Hour, Minute: tv.Minute, Second: tv.Second}), Position: p.cur.Pos}
		err = p.advance()
	case lexer.DATETIME:
		dtv := p.cur.DTVal
		base = &Literal{Value: value.DatetimeVal(value.Datetime{
			Date: value.Date{Day: dtv.Date.Day, Month: dtv.Date.Month, Year: dtv.Date.Year},
			Time: value.Time{Hour: dtv.Time.Hour, Minute: dtv.Time.Minute, Second: dtv.Time.Second},
		}), Position: p.cur.Pos}
		err = p.advance()
	case lexer.TIMEDELTA:
		tdv := p.cur.TDVal
		base = &Literal{Value: value.TimedeltaVal(value.Timedelta{
			Years: tdv.Years, Months: tdv.Months, Weeks: tdv.Weeks, Days: tdv.Days,
			Hours: tdv.Hours, Minutes: tdv.Minutes, Seconds: tdv.Seconds,
		}), Position: p.cur.Pos}
		err = p.advance()
	case lexer.LPAREN:
		base, err = p.parseGroup()
	case lexer.IDENT:
		base, err = p.parseIdentOrCall()
	default:
		return nil, p.unexpected("an expression")
	}
	if err != nil {
		return nil, err
	}

	for p.check(lexer.DOT) {
		dotPos := p.cur.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		if !p.cur.Kind.IsUnit() {
			return nil, p.unexpected("a field name (years, months, weeks, days, hours, minutes, or seconds)")
		}
		field := p.cur.Lexeme
		if err := p.advance(); err != nil {
			return nil, err
		}
		base = &FieldAccess{Base: base, Field: field, Position: dotPos}
	}
	return base, nil
}

func (p *Parser) parseGroup() (Expr, *errors.Diagnostic) {
	if err := p.advance(); err != nil { // consume '('
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) parseIdentOrCall() (Expr, *errors.Diagnostic) {
	nameTok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.check(lexer.LPAREN) {
		args, err := p.parseArgList()
		if err != nil {
			return nil, err
		}
		return &CallExpr{Name: nameTok.Lexeme, Args: args, Position: nameTok.Pos}, nil
	}
	return &Var{Name: nameTok.Lexeme, Position: nameTok.Pos}, nil
}
