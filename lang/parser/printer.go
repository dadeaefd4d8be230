package parser

import (
	"fmt"
	"strings"
)

// Sprint renders prog as an indented s-expression tree for the `--stage
// parser` CLI output (spec section 6: "exact textual form is
// implementation-defined but must be deterministic").
func Sprint(prog *Program) string {
	var b strings.Builder
	b.WriteString("(program\n")
	for _, s := range prog.Statements {
		printStmt(&b, s, 1)
	}
	b.WriteString(")\n")
	return b.String()
}

func indent(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
}

func printStmt(b *strings.Builder, s Stmt, depth int) {
	switch n := s.(type) {
	case *FunctionDef:
		indent(b, depth)
		fmt.Fprintf(b, "(fun %s (%s)\n", n.Name, strings.Join(n.Params, " "))
		printBlock(b, n.Body, depth+1)
		indent(b, depth)
		b.WriteString(")\n")
	case *VarDef:
		indent(b, depth)
		if n.Init != nil {
			fmt.Fprintf(b, "(var %s %s)\n", n.Name, printExpr(n.Init))
		} else {
			fmt.Fprintf(b, "(var %s)\n", n.Name)
		}
	case *Assign:
		indent(b, depth)
		fmt.Fprintf(b, "(assign %s %s)\n", n.Name, printExpr(n.Value))
	case *CallStmt:
		indent(b, depth)
		fmt.Fprintf(b, "(call %s)\n", printCall(n.Name, n.Args))
	case *If:
		indent(b, depth)
		fmt.Fprintf(b, "(if %s\n", printExpr(n.Cond))
		printBlock(b, n.Then, depth+1)
		if n.Else != nil {
			indent(b, depth)
			b.WriteString("else\n")
			printBlock(b, n.Else, depth+1)
		}
		indent(b, depth)
		b.WriteString(")\n")
	case *From:
		indent(b, depth)
		fmt.Fprintf(b, "(from %s to %s by %s as %s\n", printExpr(n.Start), printExpr(n.End), n.StepUnit, n.IterName)
		printBlock(b, n.Body, depth+1)
		indent(b, depth)
		b.WriteString(")\n")
	case *Print:
		indent(b, depth)
		fmt.Fprintf(b, "(print %s)\n", printExpr(n.Expr))
	case *Return:
		indent(b, depth)
		fmt.Fprintf(b, "(return %s)\n", printExpr(n.Expr))
	}
}

func printBlock(b *strings.Builder, stmts []Stmt, depth int) {
	for _, s := range stmts {
		printStmt(b, s, depth)
	}
}

func printExpr(e Expr) string {
	switch n := e.(type) {
	case *Literal:
		return n.Value.String()
	case *Var:
		return n.Name
	case *Binary:
		return fmt.Sprintf("(%s %s %s)", n.Op, printExpr(n.LHS), printExpr(n.RHS))
	case *Unary:
		return fmt.Sprintf("(%s %s)", n.Op, printExpr(n.Operand))
	case *CallExpr:
		return printCall(n.Name, n.Args)
	case *FieldAccess:
		return fmt.Sprintf("(. %s %s)", printExpr(n.Base), n.Field)
	default:
		return "?"
	}
}

func printCall(name string, args []Expr) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = printExpr(a)
	}
	return fmt.Sprintf("(%s %s)", name, strings.Join(parts, " "))
}
