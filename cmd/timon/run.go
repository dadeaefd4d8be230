package main

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/timon-lang/timon/lang/errors"
	"github.com/timon-lang/timon/lang/eval"
	"github.com/timon-lang/timon/lang/lexer"
	"github.com/timon-lang/timon/lang/parser"
)

// runPipeline drives the lexer, parser, and evaluator up to the requested
// stage, writing that stage's artifact to out (spec section 6).
func runPipeline(source, stage string, logger *zap.SugaredLogger, out io.Writer) *errors.Diagnostic {
	if stage == "lexer" {
		diag := renderLexerStage(lexer.New(source), out)
		logger.Debugw("lex complete", "ok", diag == nil)
		return diag
	}

	p, diag := parser.New(lexer.New(source))
	if diag != nil {
		return diag
	}
	prog, diag := p.Parse()
	logger.Debugw("parse complete", "ok", diag == nil)
	if diag != nil {
		return diag
	}

	if stage == "parser" {
		fmt.Fprint(out, parser.Sprint(prog))
		return nil
	}

	diag = eval.New(out).Run(prog)
	logger.Debugw("eval complete", "ok", diag == nil)
	return diag
}

func renderLexerStage(lx *lexer.Lexer, out io.Writer) *errors.Diagnostic {
	for {
		tok, diag := lx.Next()
		if diag != nil {
			return diag
		}
		if payload := tokenPayload(tok); payload != "" {
			fmt.Fprintf(out, "%d:%d %s %s\n", tok.Pos.Line, tok.Pos.Column, tok.Kind, payload)
		} else {
			fmt.Fprintf(out, "%d:%d %s\n", tok.Pos.Line, tok.Pos.Column, tok.Kind)
		}
		if tok.Kind == lexer.EOF {
			return nil
		}
	}
}

func tokenPayload(t lexer.Token) string {
	switch t.Kind {
	case lexer.IDENT:
		return t.Lexeme
	case lexer.NUMBER:
		return fmt.Sprintf("%d", t.Int)
	case lexer.STRING:
		return t.Str
	case lexer.DATE:
		return fmt.Sprintf("%02d.%02d.%04d", t.DateVal.Day, t.DateVal.Month, t.DateVal.Year)
	case lexer.TIME:
		return fmt.Sprintf("%02d:%02d:%02d", t.TimeVal.Hour, t.TimeVal.Minute, t.TimeVal.Second)
	case lexer.DATETIME:
		return fmt.Sprintf("%02d.%02d.%04d~%02d:%02d:%02d",
			t.DTVal.Date.Day, t.DTVal.Date.Month, t.DTVal.Date.Year,
			t.DTVal.Time.Hour, t.DTVal.Time.Minute, t.DTVal.Time.Second)
	case lexer.TIMEDELTA:
		return t.Lexeme
	default:
		return ""
	}
}
