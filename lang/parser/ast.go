// Package parser implements the Timon recursive-descent parser: it
// consumes the lexer's token stream and produces an AST of statements and
// expressions (spec section 4.2).
package parser

import (
	"github.com/timon-lang/timon/lang/lexer"
)

// Stmt is the interface implemented by every statement AST node.
type Stmt interface {
	stmtNode()
	Pos() lexer.Position
}

// Expr is the interface implemented by every expression AST node.
type Expr interface {
	exprNode()
	Pos() lexer.Position
}

// Program is the root node: an ordered list of top-level statements.
type Program struct {
	Statements []Stmt
}

// FunctionDef declares a named, non-closing callable.
type FunctionDef struct {
	Name     string
	Params   []string
	Body     []Stmt
	Position lexer.Position
}

func (n *FunctionDef) stmtNode()            {}
func (n *FunctionDef) Pos() lexer.Position  { return n.Position }

// VarDef introduces a binding in the current frame, optionally initialized.
type VarDef struct {
	Name     string
	Init     Expr // nil if omitted
	Position lexer.Position
}

func (n *VarDef) stmtNode()           {}
func (n *VarDef) Pos() lexer.Position { return n.Position }

// Assign overwrites the nearest enclosing binding of Name.
type Assign struct {
	Name     string
	Value    Expr
	Position lexer.Position
}

func (n *Assign) stmtNode()           {}
func (n *Assign) Pos() lexer.Position { return n.Position }

// CallStmt is the statement form of a function call; its result is
// evaluated and discarded.
type CallStmt struct {
	Name     string
	Args     []Expr
	Position lexer.Position
}

func (n *CallStmt) stmtNode()           {}
func (n *CallStmt) Pos() lexer.Position { return n.Position }

// If is a conditional with an optional else body.
type If struct {
	Cond     Expr
	Then     []Stmt
	Else     []Stmt // nil if no else branch
	Position lexer.Position
}

func (n *If) stmtNode()           {}
func (n *If) Pos() lexer.Position { return n.Position }

// From walks a temporal range by a fixed calendar step.
type From struct {
	Start    Expr
	End      Expr
	StepUnit lexer.Kind // one of the YEARS..SECONDS kinds
	IterName string
	Body     []Stmt
	Position lexer.Position
}

func (n *From) stmtNode()           {}
func (n *From) Pos() lexer.Position { return n.Position }

// Print writes the canonical string form of Expr followed by a newline.
type Print struct {
	Expr     Expr
	Position lexer.Position
}

func (n *Print) stmtNode()           {}
func (n *Print) Pos() lexer.Position { return n.Position }

// Return unwinds to the enclosing function call with Expr's value.
type Return struct {
	Expr     Expr
	Position lexer.Position
}

func (n *Return) stmtNode()           {}
func (n *Return) Pos() lexer.Position { return n.Position }
