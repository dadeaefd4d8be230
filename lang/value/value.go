// Package value defines the Timon runtime value domain: tagged values and
// the calendar-aware arithmetic, comparison, and field-access operations
// defined over them (spec section 4.3).
package value

import "fmt"

// Kind tags a Value's variant.
type Kind int

const (
	KindNumber Kind = iota
	KindString
	KindDate
	KindTime
	KindDatetime
	KindTimedelta
	KindBool
	KindUnit
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindDate:
		return "Date"
	case KindTime:
		return "Time"
	case KindDatetime:
		return "Datetime"
	case KindTimedelta:
		return "Timedelta"
	case KindBool:
		return "Bool"
	case KindUnit:
		return "Unit"
	default:
		return "?"
	}
}

// Date is a Gregorian calendar date.
type Date struct {
	Day, Month, Year int
}

// Time is a clock time with h in [0,23] and m,s in [0,59].
type Time struct {
	Hour, Minute, Second int
}

// Datetime pairs a Date and a Time.
type Datetime struct {
	Date Date
	Time Time
}

// Timedelta is a signed, unnormalized duration with seven named components.
type Timedelta struct {
	Years, Months, Weeks, Days, Hours, Minutes, Seconds int
}

// IsZero reports whether every component of d is zero.
func (d Timedelta) IsZero() bool {
	return d == Timedelta{}
}

// Value is a tagged runtime value. Exactly one of the typed fields is
// meaningful, selected by Kind.
type Value struct {
	Kind Kind

	Num  int64
	Str  string
	Date Date
	Time Time
	DT   Datetime
	TD   Timedelta
	Bool bool
}

func Number(n int64) Value     { return Value{Kind: KindNumber, Num: n} }
func String(s string) Value    { return Value{Kind: KindString, Str: s} }
func DateVal(d Date) Value     { return Value{Kind: KindDate, Date: d} }
func TimeVal(t Time) Value     { return Value{Kind: KindTime, Time: t} }
func DatetimeVal(dt Datetime) Value { return Value{Kind: KindDatetime, DT: dt} }
func TimedeltaVal(td Timedelta) Value { return Value{Kind: KindTimedelta, TD: td} }
func BoolVal(b bool) Value     { return Value{Kind: KindBool, Bool: b} }

// Unit is the absence-of-a-value singleton.
var Unit = Value{Kind: KindUnit}

// TypeName returns the variant name used in TypeError messages.
func (v Value) TypeName() string { return v.Kind.String() }

// String renders v in its canonical print form (spec section 4.4).
func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return fmt.Sprintf("%d", v.Num)
	case KindString:
		return v.Str
	case KindDate:
		return fmt.Sprintf("%02d.%02d.%04d", v.Date.Day, v.Date.Month, v.Date.Year)
	case KindTime:
		return fmt.Sprintf("%02d:%02d:%02d", v.Time.Hour, v.Time.Minute, v.Time.Second)
	case KindDatetime:
		return fmt.Sprintf("%s~%s", DateVal(v.DT.Date).String(), TimeVal(v.DT.Time).String())
	case KindTimedelta:
		return timedeltaString(v.TD)
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindUnit:
		return ""
	default:
		return ""
	}
}

func timedeltaString(td Timedelta) string {
	type part struct {
		n    int
		unit string
	}
	parts := []part{
		{td.Years, "Y"}, {td.Months, "M"}, {td.Weeks, "W"}, {td.Days, "D"},
		{td.Hours, "h"}, {td.Minutes, "m"}, {td.Seconds, "s"},
	}
	out := "'"
	any := false
	for _, p := range parts {
		if p.n != 0 {
			out += fmt.Sprintf("%d%s", p.n, p.unit)
			any = true
		}
	}
	if !any {
		out += "0s"
	}
	return out + "'"
}
