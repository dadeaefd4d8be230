package eval

import (
	"github.com/timon-lang/timon/lang/errors"
	"github.com/timon-lang/timon/lang/lexer"
	"github.com/timon-lang/timon/lang/parser"
	"github.com/timon-lang/timon/lang/value"
)

func (ev *Evaluator) evalExpr(e parser.Expr) (value.Value, *errors.Diagnostic) {
	switch n := e.(type) {
	case *parser.Literal:
		return n.Value, nil
	case *parser.Var:
		return ev.evalVar(n)
	case *parser.Binary:
		return ev.evalBinary(n)
	case *parser.Unary:
		return ev.evalUnary(n)
	case *parser.CallExpr:
		return ev.callFunction(n.Name, n.Args, n.Position)
	case *parser.FieldAccess:
		return ev.evalFieldAccess(n)
	}
	return value.Value{}, errors.New(errors.TypeError, errors.CodeTypeMismatch, toPos(e.Pos()), "unevaluable expression")
}

func (ev *Evaluator) evalVar(n *parser.Var) (value.Value, *errors.Diagnostic) {
	v, ok := ev.env.Lookup(n.Name)
	if !ok {
		return value.Value{}, errors.New(errors.NameError, errors.CodeUndefinedName, toPos(n.Position),
			"undefined variable %q", n.Name)
	}
	return v, nil
}

func (ev *Evaluator) evalFieldAccess(n *parser.FieldAccess) (value.Value, *errors.Diagnostic) {
	base, diag := ev.evalExpr(n.Base)
	if diag != nil {
		return value.Value{}, diag
	}
	v, err := value.FieldAccess(base, n.Field)
	if err != nil {
		return value.Value{}, errors.New(errors.TypeError, errors.CodeFieldAccess, toPos(n.Position),
			"%s", err.Error())
	}
	return v, nil
}

func (ev *Evaluator) evalUnary(n *parser.Unary) (value.Value, *errors.Diagnostic) {
	operand, diag := ev.evalExpr(n.Operand)
	if diag != nil {
		return value.Value{}, diag
	}
	switch n.Op {
	case lexer.NOT:
		if operand.Kind != value.KindBool {
			return value.Value{}, errors.New(errors.TypeError, errors.CodeTypeMismatch, toPos(n.Position),
				"'!' requires Bool, got %s", operand.TypeName())
		}
		return value.BoolVal(!operand.Bool), nil
	case lexer.MINUS:
		v, err := value.Neg(operand)
		if err != nil {
			return value.Value{}, ev.wrapValueErr(err, n.Position)
		}
		return v, nil
	}
	return value.Value{}, errors.New(errors.TypeError, errors.CodeTypeMismatch, toPos(n.Position), "unknown unary operator")
}

func (ev *Evaluator) evalBinary(n *parser.Binary) (value.Value, *errors.Diagnostic) {
	if n.Op == lexer.AND || n.Op == lexer.OR {
		return ev.evalLogical(n)
	}

	lhs, diag := ev.evalExpr(n.LHS)
	if diag != nil {
		return value.Value{}, diag
	}
	rhs, diag := ev.evalExpr(n.RHS)
	if diag != nil {
		return value.Value{}, diag
	}

	switch n.Op {
	case lexer.PLUS:
		v, err := value.Add(lhs, rhs)
		if err != nil {
			return value.Value{}, ev.wrapValueErr(err, n.Position)
		}
		return v, nil
	case lexer.MINUS:
		v, err := value.Sub(lhs, rhs)
		if err != nil {
			return value.Value{}, ev.wrapValueErr(err, n.Position)
		}
		return v, nil
	case lexer.STAR:
		v, err := value.Mul(lhs, rhs)
		if err != nil {
			return value.Value{}, ev.wrapValueErr(err, n.Position)
		}
		return v, nil
	case lexer.SLASH:
		v, err := value.Div(lhs, rhs)
		if err != nil {
			return value.Value{}, ev.wrapValueErr(err, n.Position)
		}
		return v, nil
	case lexer.EQ:
		eq, err := value.Equal(lhs, rhs)
		if err != nil {
			return value.Value{}, ev.wrapValueErr(err, n.Position)
		}
		return value.BoolVal(eq), nil
	case lexer.NEQ:
		eq, err := value.Equal(lhs, rhs)
		if err != nil {
			return value.Value{}, ev.wrapValueErr(err, n.Position)
		}
		return value.BoolVal(!eq), nil
	case lexer.LT, lexer.LTE, lexer.GT, lexer.GTE:
		cmp, err := value.Compare(lhs, rhs)
		if err != nil {
			return value.Value{}, ev.wrapValueErr(err, n.Position)
		}
		return value.BoolVal(compareSatisfies(n.Op, cmp)), nil
	}
	return value.Value{}, errors.New(errors.TypeError, errors.CodeTypeMismatch, toPos(n.Position), "unknown binary operator")
}

func compareSatisfies(op lexer.Kind, cmp int) bool {
	switch op {
	case lexer.LT:
		return cmp < 0
	case lexer.LTE:
		return cmp <= 0
	case lexer.GT:
		return cmp > 0
	case lexer.GTE:
		return cmp >= 0
	}
	return false
}

// evalLogical implements `&`/`|` with left-to-right short-circuiting; both
// operands must be exactly Bool (spec section 9: "no implicit bool").
func (ev *Evaluator) evalLogical(n *parser.Binary) (value.Value, *errors.Diagnostic) {
	lhs, diag := ev.evalExpr(n.LHS)
	if diag != nil {
		return value.Value{}, diag
	}
	if lhs.Kind != value.KindBool {
		return value.Value{}, errors.New(errors.TypeError, errors.CodeTypeMismatch, toPos(n.LHS.Pos()),
			"%s requires Bool operands, got %s", operatorName(n.Op), lhs.TypeName())
	}
	if n.Op == lexer.AND && !lhs.Bool {
		return value.BoolVal(false), nil
	}
	if n.Op == lexer.OR && lhs.Bool {
		return value.BoolVal(true), nil
	}
	rhs, diag := ev.evalExpr(n.RHS)
	if diag != nil {
		return value.Value{}, diag
	}
	if rhs.Kind != value.KindBool {
		return value.Value{}, errors.New(errors.TypeError, errors.CodeTypeMismatch, toPos(n.RHS.Pos()),
			"%s requires Bool operands, got %s", operatorName(n.Op), rhs.TypeName())
	}
	return value.BoolVal(rhs.Bool), nil
}

func operatorName(k lexer.Kind) string {
	if k == lexer.AND {
		return "'&'"
	}
	return "'|'"
}

// wrapValueErr classifies a position-agnostic value-package error into a
// positioned Diagnostic of the right taxonomy kind (spec section 7).
func (ev *Evaluator) wrapValueErr(err error, pos lexer.Position) *errors.Diagnostic {
	if value.IsDivisionByZero(err) {
		return errors.New(errors.ArithmeticError, errors.CodeDivisionByZero, toPos(pos), "%s", err.Error())
	}
	if value.IsRangeError(err) {
		return errors.New(errors.ArithmeticError, errors.CodeDateOutOfRange, toPos(pos), "%s", err.Error())
	}
	return errors.New(errors.TypeError, errors.CodeTypeMismatch, toPos(pos), "%s", err.Error())
}

// callFunction evaluates args in the caller's scope, checks arity, and
// executes fn's body in a fresh call frame visible only to itself and the
// global frame (spec section 4.4).
func (ev *Evaluator) callFunction(name string, argExprs []parser.Expr, pos lexer.Position) (value.Value, *errors.Diagnostic) {
	fn, ok := ev.env.LookupFunction(name)
	if !ok {
		return value.Value{}, errors.New(errors.NameError, errors.CodeUndefinedName, toPos(pos),
			"undefined function %q", name)
	}
	if len(argExprs) != len(fn.Params) {
		return value.Value{}, errors.New(errors.ArityError, errors.CodeArityMismatch, toPos(pos),
			"%q expects %d argument(s), got %d", name, len(fn.Params), len(argExprs))
	}
	args := make([]value.Value, len(argExprs))
	for i, ae := range argExprs {
		v, diag := ev.evalExpr(ae)
		if diag != nil {
			return value.Value{}, diag
		}
		args[i] = v
	}

	params := make(map[string]value.Value, len(fn.Params))
	for i, p := range fn.Params {
		params[p] = args[i]
	}

	restore := ev.env.EnterCall(params)
	ev.callDepth++
	result, diag := ev.execStmts(fn.Body)
	ev.callDepth--
	restore()
	if diag != nil {
		return value.Value{}, diag
	}
	if result.returning {
		return result.value, nil
	}
	return value.Unit, nil
}
