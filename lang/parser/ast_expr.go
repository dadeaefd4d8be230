package parser

import (
	"github.com/timon-lang/timon/lang/lexer"
	"github.com/timon-lang/timon/lang/value"
)

// Literal is a directly-literalizable value: Number, String, Date, Time,
// Datetime, or Timedelta. Bool and Unit are never produced by a Literal
// node (spec section 3: "Bool ... not directly literalizable").
type Literal struct {
	Value    value.Value
	Position lexer.Position
}

func (n *Literal) exprNode()          {}
func (n *Literal) Pos() lexer.Position { return n.Position }

// Var references a variable binding by name.
type Var struct {
	Name     string
	Position lexer.Position
}

func (n *Var) exprNode()          {}
func (n *Var) Pos() lexer.Position { return n.Position }

// Binary is a two-operand operator expression.
type Binary struct {
	Op       lexer.Kind
	LHS, RHS Expr
	Position lexer.Position
}

func (n *Binary) exprNode()          {}
func (n *Binary) Pos() lexer.Position { return n.Position }

// Unary is a single-operand prefix operator expression (`!` or unary `-`).
type Unary struct {
	Op       lexer.Kind
	Operand  Expr
	Position lexer.Position
}

func (n *Unary) exprNode()          {}
func (n *Unary) Pos() lexer.Position { return n.Position }

// CallExpr is the expression form of a function call.
type CallExpr struct {
	Name     string
	Args     []Expr
	Position lexer.Position
}

func (n *CallExpr) exprNode()          {}
func (n *CallExpr) Pos() lexer.Position { return n.Position }

// FieldAccess reads a named component off a temporal/timedelta value.
type FieldAccess struct {
	Base     Expr
	Field    string
	Position lexer.Position
}

func (n *FieldAccess) exprNode()          {}
func (n *FieldAccess) Pos() lexer.Position { return n.Position }
