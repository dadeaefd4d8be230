package eval

import (
	"strings"
	"testing"

	"github.com/timon-lang/timon/lang/lexer"
	"github.com/timon-lang/timon/lang/parser"
)

func runProgram(t *testing.T, src string) (string, error) {
	t.Helper()
	p, err := parser.New(lexer.New(src))
	if err != nil {
		t.Fatalf("unexpected error priming parser: %v", err)
	}
	prog, err := p.Parse()
	if err != nil {
		return "", err
	}
	var out strings.Builder
	if diag := New(&out).Run(prog); diag != nil {
		return out.String(), diag
	}
	return out.String(), nil
}

func TestPrintArithmetic(t *testing.T) {
	out, err := runProgram(t, "print 1+2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "3\n" {
		t.Errorf("expected %q, got %q", "3\n", out)
	}
}

func TestPrintStringConcat(t *testing.T) {
	out, err := runProgram(t, `print "ab"+"cd"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "abcd\n" {
		t.Errorf("expected %q, got %q", "abcd\n", out)
	}
}

func TestPrintMonthClampLeapYear(t *testing.T) {
	out, err := runProgram(t, "print 31.01.2024 + '1M'")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "29.02.2024\n" {
		t.Errorf("expected %q, got %q", "29.02.2024\n", out)
	}
}

func TestPrintMonthClampNonLeapYear(t *testing.T) {
	out, err := runProgram(t, "print 31.01.2023 + '1M'")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "28.02.2023\n" {
		t.Errorf("expected %q, got %q", "28.02.2023\n", out)
	}
}

func TestDatetimeSecondCarryIntoDate(t *testing.T) {
	out, err := runProgram(t, "var d = 01.01.2020~23:59:59 + '1s'\nprint d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "02.01.2020~00:00:00\n" {
		t.Errorf("expected %q, got %q", "02.01.2020~00:00:00\n", out)
	}
}

func TestFromLoopDays(t *testing.T) {
	out, err := runProgram(t, "from 01.01.2020 to 03.01.2020 by days as i { print i }")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "01.01.2020\n02.01.2020\n03.01.2020\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestFromLoopEmptyRange(t *testing.T) {
	out, err := runProgram(t, "from 03.01.2020 to 01.01.2020 by days as i { print i }")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" {
		t.Errorf("expected no output for an empty range, got %q", out)
	}
}

func TestFromLoopStepUnitIncompatible(t *testing.T) {
	_, err := runProgram(t, "from 00:00:00 to 01:00:00 by days as i { print i }")
	if err == nil {
		t.Fatal("expected an error for an incompatible step unit")
	}
}

func TestFunctionCallAndReturn(t *testing.T) {
	out, err := runProgram(t, "fun f(x){ return x*2 } print f(5)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "10\n" {
		t.Errorf("expected %q, got %q", "10\n", out)
	}
}

func TestFunctionArityMismatch(t *testing.T) {
	_, err := runProgram(t, "fun f(x){ return x } print f(1, 2)")
	if err == nil {
		t.Fatal("expected an arity error")
	}
}

func TestFunctionSeesOnlyItsOwnAndGlobalFrame(t *testing.T) {
	_, err := runProgram(t, "fun f(){ return x } if 1 == 1 { var x = 1 print f() }")
	if err == nil {
		t.Fatal("expected undefined-variable error: functions cannot see caller locals")
	}
}

func TestFunctionSeesGlobalVariable(t *testing.T) {
	out, err := runProgram(t, "var x = 1\nfun f() { return x }\nprint f()")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1\n" {
		t.Errorf("expected %q, got %q", "1\n", out)
	}
}

func TestDivisionByZeroIsFatal(t *testing.T) {
	_, err := runProgram(t, "print 10/0")
	if err == nil {
		t.Fatal("expected a division-by-zero error")
	}
	if !strings.Contains(err.Error(), "ArithmeticError") {
		t.Errorf("expected ArithmeticError in message, got %q", err.Error())
	}
}

func TestTopLevelReturnIsError(t *testing.T) {
	_, err := runProgram(t, "return 1")
	if err == nil {
		t.Fatal("expected an error for a top-level return")
	}
}

func TestVarRedeclarationInSameFrameIsError(t *testing.T) {
	_, err := runProgram(t, "var x = 1\nvar x = 2")
	if err == nil {
		t.Fatal("expected an error for redeclaring x in the same frame")
	}
}

func TestAssignToUndefinedIsError(t *testing.T) {
	_, err := runProgram(t, "x = 1")
	if err == nil {
		t.Fatal("expected an error assigning to an undefined variable")
	}
}

func TestIfConditionMustBeBool(t *testing.T) {
	_, err := runProgram(t, "if 1 { print 1 }")
	if err == nil {
		t.Fatal("expected a type error for a non-Bool condition")
	}
}

func TestIfElseBranches(t *testing.T) {
	out, err := runProgram(t, "if 1 == 2 { print 1 } else { print 2 }")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "2\n" {
		t.Errorf("expected %q, got %q", "2\n", out)
	}
}

func TestLogicalShortCircuit(t *testing.T) {
	out, err := runProgram(t, "var called = 0\nfun sideEffect() { called = 1 return true }\nif 1 == 2 & sideEffect() { print 1 }\nprint called")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "0\n" {
		t.Errorf("expected short-circuit to skip the call, got %q", out)
	}
}

func TestFieldAccessExpression(t *testing.T) {
	out, err := runProgram(t, "var d = '1Y2M3W'\nprint d.months")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "2\n" {
		t.Errorf("expected %q, got %q", "2\n", out)
	}
}
