package eval

import (
	"github.com/timon-lang/timon/lang/errors"
	"github.com/timon-lang/timon/lang/lexer"
	"github.com/timon-lang/timon/lang/parser"
	"github.com/timon-lang/timon/lang/value"
)

// execFrom walks a temporal range by a fixed calendar step (spec section
// 4.4). The cursor is inclusive at the start and exclusive once it strictly
// exceeds end; a start already past end runs zero iterations.
func (ev *Evaluator) execFrom(n *parser.From) (execResult, *errors.Diagnostic) {
	start, diag := ev.evalExpr(n.Start)
	if diag != nil {
		return execResult{}, diag
	}
	end, diag := ev.evalExpr(n.End)
	if diag != nil {
		return execResult{}, diag
	}
	if start.Kind != end.Kind {
		return execResult{}, errors.New(errors.TypeError, errors.CodeTypeMismatch, toPos(n.Position),
			"from range endpoints must be the same temporal variant, got %s and %s", start.TypeName(), end.TypeName())
	}
	switch start.Kind {
	case value.KindDate, value.KindTime, value.KindDatetime:
	default:
		return execResult{}, errors.New(errors.TypeError, errors.CodeTypeMismatch, toPos(n.Position),
			"from range requires Date, Time, or Datetime, got %s", start.TypeName())
	}
	if !stepUnitCompatible(start.Kind, n.StepUnit) {
		return execResult{}, errors.New(errors.TypeError, errors.CodeStepUnitIncompatible, toPos(n.Position),
			"step unit %s is not compatible with %s", n.StepUnit, start.TypeName())
	}

	step := value.TimedeltaVal(stepTimedelta(n.StepUnit))
	cursor := start
	for {
		cmp, err := value.Compare(cursor, end)
		if err != nil {
			return execResult{}, ev.wrapValueErr(err, n.Position)
		}
		if cmp > 0 {
			break
		}

		ev.env.PushBlock()
		ev.env.DefineLocal(n.IterName, cursor)
		res, diag := ev.execStmts(n.Body)
		ev.env.PopBlock()
		if diag != nil {
			return execResult{}, diag
		}
		if res.returning {
			return res, nil
		}

		next, err := value.Add(cursor, step)
		if err != nil {
			return execResult{}, ev.wrapValueErr(err, n.Position)
		}
		// A Time cursor wraps at midnight instead of exceeding end; once
		// it has wrapped, every Time up to end has been visited.
		if cursor.Kind == value.KindTime {
			if c, _ := value.Compare(next, cursor); c <= 0 {
				break
			}
		}
		cursor = next
	}
	return execResult{}, nil
}

// stepTimedelta builds a one-unit timedelta in the named step unit.
func stepTimedelta(unit lexer.Kind) value.Timedelta {
	switch unit {
	case lexer.YEARS:
		return value.Timedelta{Years: 1}
	case lexer.MONTHS:
		return value.Timedelta{Months: 1}
	case lexer.WEEKS:
		return value.Timedelta{Weeks: 1}
	case lexer.DAYS:
		return value.Timedelta{Days: 1}
	case lexer.HOURS:
		return value.Timedelta{Hours: 1}
	case lexer.MINUTES:
		return value.Timedelta{Minutes: 1}
	case lexer.SECONDS:
		return value.Timedelta{Seconds: 1}
	}
	return value.Timedelta{}
}

// stepUnitCompatible reports whether unit is a meaningful granularity for
// vk: calendar units (years/months/weeks/days) step a Date, clock units
// (hours/minutes/seconds) step a Time, and a Datetime accepts either
// (spec section 4.4: "Step unit incompatible with operand variant ... is
// an error").
func stepUnitCompatible(vk value.Kind, unit lexer.Kind) bool {
	switch vk {
	case value.KindDate:
		switch unit {
		case lexer.YEARS, lexer.MONTHS, lexer.WEEKS, lexer.DAYS:
			return true
		}
		return false
	case value.KindTime:
		switch unit {
		case lexer.HOURS, lexer.MINUTES, lexer.SECONDS:
			return true
		}
		return false
	case value.KindDatetime:
		return true
	}
	return false
}
