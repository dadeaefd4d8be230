package lexer

// keywords maps reserved words to their Kind for O(1) lookup.
var keywords = map[string]Kind{
	"fun":     FUN,
	"var":     VAR,
	"if":      IF,
	"else":    ELSE,
	"from":    FROM,
	"to":      TO,
	"by":      BY,
	"as":      AS,
	"print":   PRINT,
	"return":  RETURN,
	"years":   YEARS,
	"months":  MONTHS,
	"weeks":   WEEKS,
	"days":    DAYS,
	"hours":   HOURS,
	"minutes": MINUTES,
	"seconds": SECONDS,
}

// lookupKeyword reports whether identifier names a keyword, returning its
// Kind if so.
func lookupKeyword(identifier string) (Kind, bool) {
	k, ok := keywords[identifier]
	return k, ok
}
