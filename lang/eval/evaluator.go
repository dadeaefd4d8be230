// Package eval implements the Timon tree-walking evaluator: statement
// execution, the frame-stack environment, and function calls (spec
// section 4.4).
package eval

import (
	"io"

	"github.com/timon-lang/timon/lang/errors"
	"github.com/timon-lang/timon/lang/lexer"
	"github.com/timon-lang/timon/lang/parser"
	"github.com/timon-lang/timon/lang/value"
)

// Evaluator walks a Program's statements against an Environment, writing
// `print` output to Out.
type Evaluator struct {
	env       *Environment
	out       io.Writer
	callDepth int
}

// New creates an Evaluator that writes print output to out.
func New(out io.Writer) *Evaluator {
	return &Evaluator{env: NewEnvironment(), out: out}
}

// Run executes prog's top-level statements in order against the global
// frame, stopping at the first diagnostic. A top-level `return` is itself
// reported as a diagnostic by execReturn, since callDepth is zero there.
func (ev *Evaluator) Run(prog *parser.Program) *errors.Diagnostic {
	_, diag := ev.execStmts(prog.Statements)
	return diag
}

// execResult communicates a Return unwinding up through block execution.
type execResult struct {
	returning bool
	value     value.Value
}

// execStmts runs stmts in the current frame without pushing a new one;
// used for the global program body and for function bodies, which execute
// directly in the call frame (spec section 4.4).
func (ev *Evaluator) execStmts(stmts []parser.Stmt) (execResult, *errors.Diagnostic) {
	for _, s := range stmts {
		res, diag := ev.execStmt(s)
		if diag != nil {
			return execResult{}, diag
		}
		if res.returning {
			return res, nil
		}
	}
	return execResult{}, nil
}

// execBlock runs stmts in a freshly pushed frame, popping it on exit
// (spec section 3: "Environment frames are pushed on ... block entry").
func (ev *Evaluator) execBlock(stmts []parser.Stmt) (execResult, *errors.Diagnostic) {
	ev.env.PushBlock()
	defer ev.env.PopBlock()
	return ev.execStmts(stmts)
}

func (ev *Evaluator) execStmt(s parser.Stmt) (execResult, *errors.Diagnostic) {
	switch n := s.(type) {
	case *parser.FunctionDef:
		return execResult{}, ev.execFunctionDef(n)
	case *parser.VarDef:
		return execResult{}, ev.execVarDef(n)
	case *parser.Assign:
		return execResult{}, ev.execAssign(n)
	case *parser.CallStmt:
		_, diag := ev.callFunction(n.Name, n.Args, n.Position)
		return execResult{}, diag
	case *parser.If:
		return ev.execIf(n)
	case *parser.From:
		return ev.execFrom(n)
	case *parser.Print:
		return execResult{}, ev.execPrint(n)
	case *parser.Return:
		return ev.execReturn(n)
	}
	return execResult{}, nil
}

func (ev *Evaluator) execFunctionDef(n *parser.FunctionDef) *errors.Diagnostic {
	if ev.env.HasVariable(n.Name) {
		return errors.New(errors.NameError, errors.CodeDuplicateName, toPos(n.Position),
			"%q is already bound to a variable", n.Name)
	}
	if !ev.env.DefineFunction(n) {
		return errors.New(errors.NameError, errors.CodeDuplicateName, toPos(n.Position),
			"function %q is already defined", n.Name)
	}
	return nil
}

func (ev *Evaluator) execVarDef(n *parser.VarDef) *errors.Diagnostic {
	if ev.env.HasFunction(n.Name) {
		return errors.New(errors.NameError, errors.CodeDuplicateName, toPos(n.Position),
			"%q is already bound to a function", n.Name)
	}
	val := value.Unit
	if n.Init != nil {
		v, diag := ev.evalExpr(n.Init)
		if diag != nil {
			return diag
		}
		val = v
	}
	if !ev.env.DefineLocal(n.Name, val) {
		return errors.New(errors.NameError, errors.CodeDuplicateName, toPos(n.Position),
			"%q is already declared in this scope", n.Name)
	}
	return nil
}

func (ev *Evaluator) execAssign(n *parser.Assign) *errors.Diagnostic {
	val, diag := ev.evalExpr(n.Value)
	if diag != nil {
		return diag
	}
	if !ev.env.Assign(n.Name, val) {
		return errors.New(errors.NameError, errors.CodeUndefinedName, toPos(n.Position),
			"undefined variable %q", n.Name)
	}
	return nil
}

func (ev *Evaluator) execIf(n *parser.If) (execResult, *errors.Diagnostic) {
	cond, diag := ev.evalExpr(n.Cond)
	if diag != nil {
		return execResult{}, diag
	}
	if cond.Kind != value.KindBool {
		return execResult{}, errors.New(errors.TypeError, errors.CodeTypeMismatch, toPos(n.Cond.Pos()),
			"if condition must be Bool, got %s", cond.TypeName())
	}
	if cond.Bool {
		return ev.execBlock(n.Then)
	}
	if n.Else != nil {
		return ev.execBlock(n.Else)
	}
	return execResult{}, nil
}

func (ev *Evaluator) execPrint(n *parser.Print) *errors.Diagnostic {
	v, diag := ev.evalExpr(n.Expr)
	if diag != nil {
		return diag
	}
	io.WriteString(ev.out, v.String())
	io.WriteString(ev.out, "\n")
	return nil
}

func (ev *Evaluator) execReturn(n *parser.Return) (execResult, *errors.Diagnostic) {
	v := value.Unit
	if n.Expr != nil {
		val, diag := ev.evalExpr(n.Expr)
		if diag != nil {
			return execResult{}, diag
		}
		v = val
	}
	if ev.callDepth == 0 {
		return execResult{}, errors.New(errors.TypeError, errors.CodeReturnOutsideCall, toPos(n.Position),
			"return used outside of a function")
	}
	return execResult{returning: true, value: v}, nil
}

func toPos(p lexer.Position) errors.Position {
	return errors.Position{Line: p.Line, Column: p.Column, Offset: p.Offset}
}
