package lexer

import "testing"

func scanAll(t *testing.T, src string) []Token {
	t.Helper()
	lx := New(src)
	var toks []Token
	for {
		tok, err := lx.Next()
		if err != nil {
			t.Fatalf("unexpected lex error: %v", err)
		}
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks
		}
	}
}

func TestKeywords(t *testing.T) {
	tests := []struct {
		input    string
		expected Kind
	}{
		{"fun", FUN}, {"var", VAR}, {"if", IF}, {"else", ELSE},
		{"from", FROM}, {"to", TO}, {"by", BY}, {"as", AS},
		{"print", PRINT}, {"return", RETURN},
		{"years", YEARS}, {"months", MONTHS}, {"weeks", WEEKS}, {"days", DAYS},
		{"hours", HOURS}, {"minutes", MINUTES}, {"seconds", SECONDS},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks := scanAll(t, tt.input)
			if len(toks) != 2 {
				t.Fatalf("expected 2 tokens (keyword + EOF), got %d", len(toks))
			}
			if toks[0].Kind != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, toks[0].Kind)
			}
		})
	}
}

func TestIdentifierVsKeyword(t *testing.T) {
	toks := scanAll(t, "fundamental")
	if toks[0].Kind != IDENT || toks[0].Lexeme != "fundamental" {
		t.Errorf("expected IDENT(fundamental), got %s(%s)", toks[0].Kind, toks[0].Lexeme)
	}
}

func TestNumberLeadingZeroIsError(t *testing.T) {
	lx := New("007")
	if _, err := lx.Next(); err == nil {
		t.Fatal("expected lex error for leading zero")
	}
}

func TestNumberZeroAlone(t *testing.T) {
	toks := scanAll(t, "0")
	if toks[0].Kind != NUMBER || toks[0].Int != 0 {
		t.Errorf("expected NUMBER(0), got %s(%d)", toks[0].Kind, toks[0].Int)
	}
}

func TestStringEscape(t *testing.T) {
	toks := scanAll(t, `"a\"b"`)
	if toks[0].Kind != STRING || toks[0].Str != `a"b` {
		t.Errorf("expected STRING(a\"b), got %s(%q)", toks[0].Kind, toks[0].Str)
	}
}

func TestStringNewlineForbidden(t *testing.T) {
	lx := New("\"a\nb\"")
	if _, err := lx.Next(); err == nil {
		t.Fatal("expected lex error for newline in string")
	}
}

func TestUnterminatedComment(t *testing.T) {
	lx := New("# never closes")
	if _, err := lx.Next(); err == nil {
		t.Fatal("expected lex error for unterminated comment")
	}
}

func TestCommentSkipped(t *testing.T) {
	toks := scanAll(t, "1 # ignored # 2")
	if len(toks) != 3 || toks[0].Int != 1 || toks[1].Int != 2 {
		t.Fatalf("expected two numbers around the comment, got %+v", toks)
	}
}

func TestDateLiteral(t *testing.T) {
	toks := scanAll(t, "31.01.2024")
	if toks[0].Kind != DATE {
		t.Fatalf("expected DATE, got %s", toks[0].Kind)
	}
	dv := toks[0].DateVal
	if dv.Day != 31 || dv.Month != 1 || dv.Year != 2024 {
		t.Errorf("unexpected date value %+v", dv)
	}
}

func TestInvalidCalendarDate(t *testing.T) {
	lx := New("31.02.2024")
	if _, err := lx.Next(); err == nil {
		t.Fatal("expected lex error for invalid calendar date")
	}
}

func TestTimeLiteral(t *testing.T) {
	toks := scanAll(t, "23:59:59")
	if toks[0].Kind != TIME {
		t.Fatalf("expected TIME, got %s", toks[0].Kind)
	}
	tv := toks[0].TimeVal
	if tv.Hour != 23 || tv.Minute != 59 || tv.Second != 59 {
		t.Errorf("unexpected time value %+v", tv)
	}
}

func TestDatetimeLiteral(t *testing.T) {
	toks := scanAll(t, "01.01.2020~00:00:00")
	if toks[0].Kind != DATETIME {
		t.Fatalf("expected DATETIME, got %s", toks[0].Kind)
	}
}

func TestTimedeltaLiteral(t *testing.T) {
	toks := scanAll(t, "'1Y2M3W4D5h6m7s'")
	if toks[0].Kind != TIMEDELTA {
		t.Fatalf("expected TIMEDELTA, got %s", toks[0].Kind)
	}
	td := toks[0].TDVal
	want := TimedeltaValue{Years: 1, Months: 2, Weeks: 3, Days: 4, Hours: 5, Minutes: 6, Seconds: 7}
	if td != want {
		t.Errorf("expected %+v, got %+v", want, td)
	}
}

func TestTimedeltaOutOfOrderIsError(t *testing.T) {
	lx := New("'1M1Y'")
	if _, err := lx.Next(); err == nil {
		t.Fatal("expected lex error for out-of-order timedelta units")
	}
}

func TestTimedeltaDuplicateUnitIsError(t *testing.T) {
	lx := New("'1Y2Y'")
	if _, err := lx.Next(); err == nil {
		t.Fatal("expected lex error for duplicate timedelta unit")
	}
}

func TestMultiCharOperators(t *testing.T) {
	toks := scanAll(t, "== != >= <=")
	expected := []Kind{EQ, NEQ, GTE, LTE, EOF}
	for i, k := range expected {
		if toks[i].Kind != k {
			t.Errorf("token %d: expected %s, got %s", i, k, toks[i].Kind)
		}
	}
}

func TestPositionsMonotonic(t *testing.T) {
	toks := scanAll(t, "1\n22 333")
	prevLine, prevCol := 0, 0
	for _, tok := range toks {
		if tok.Pos.Line < prevLine || (tok.Pos.Line == prevLine && tok.Pos.Column < prevCol) {
			t.Fatalf("token positions not monotonic: %+v", tok)
		}
		prevLine, prevCol = tok.Pos.Line, tok.Pos.Column
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	lx := New("@")
	if _, err := lx.Next(); err == nil {
		t.Fatal("expected lex error for unexpected character")
	}
}
