package value

// Component-wise timedelta algebra and the rules for applying a timedelta
// to an anchor value (spec section 4.3: "Timedelta application to dates").

func negateTimedelta(td Timedelta) Timedelta {
	return Timedelta{
		Years: -td.Years, Months: -td.Months, Weeks: -td.Weeks, Days: -td.Days,
		Hours: -td.Hours, Minutes: -td.Minutes, Seconds: -td.Seconds,
	}
}

func addTimedeltas(a, b Timedelta) Timedelta {
	return Timedelta{
		Years: a.Years + b.Years, Months: a.Months + b.Months,
		Weeks: a.Weeks + b.Weeks, Days: a.Days + b.Days,
		Hours: a.Hours + b.Hours, Minutes: a.Minutes + b.Minutes, Seconds: a.Seconds + b.Seconds,
	}
}

func subTimedeltas(a, b Timedelta) Timedelta {
	return addTimedeltas(a, negateTimedelta(b))
}

func scaleTimedelta(td Timedelta, n int64) Timedelta {
	f := int(n)
	return Timedelta{
		Years: td.Years * f, Months: td.Months * f, Weeks: td.Weeks * f, Days: td.Days * f,
		Hours: td.Hours * f, Minutes: td.Minutes * f, Seconds: td.Seconds * f,
	}
}

func scaleTimedeltaDiv(td Timedelta, n int64) Timedelta {
	f := int(n)
	return Timedelta{
		Years: td.Years / f, Months: td.Months / f, Weeks: td.Weeks / f, Days: td.Days / f,
		Hours: td.Hours / f, Minutes: td.Minutes / f, Seconds: td.Seconds / f,
	}
}

const secondsPerDay = 86400

func secondsToTime(s int) Time {
	s = floorMod(s, secondsPerDay)
	h := s / 3600
	rem := s % 3600
	return Time{Hour: h, Minute: rem / 60, Second: rem % 60}
}

// applyTimedeltaToDate applies td's components in Y->M->W->D->h->m->s
// order, clamping the day-of-month after the years/months step and
// carrying any whole days implied by h/m/s into the day count (the
// fractional remainder has nowhere to go on a bare Date and is discarded).
func applyTimedeltaToDate(d Date, td Timedelta) Date {
	d = AddYearsMonths(d, td.Years, td.Months)
	extraSeconds := td.Hours*3600 + td.Minutes*60 + td.Seconds
	extraDays := td.Weeks*7 + td.Days + floorDiv(extraSeconds, secondsPerDay)
	return AddDays(d, extraDays)
}

// applyTimedeltaToTime applies only the clock-relevant components,
// wrapping modulo 24h and discarding any day carry (spec section 4.3).
func applyTimedeltaToTime(t Time, td Timedelta) Time {
	total := timeSeconds(t) + td.Hours*3600 + td.Minutes*60 + td.Seconds
	return secondsToTime(total)
}

// applyTimedeltaToDatetime applies the full component order, carrying
// hour/minute/second overflow into the date.
func applyTimedeltaToDatetime(dt Datetime, td Timedelta) Datetime {
	d := AddYearsMonths(dt.Date, td.Years, td.Months)
	d = AddDays(d, td.Weeks*7+td.Days)
	total := timeSeconds(dt.Time) + td.Hours*3600 + td.Minutes*60 + td.Seconds
	dayCarry := floorDiv(total, secondsPerDay)
	d = AddDays(d, dayCarry)
	return Datetime{Date: d, Time: secondsToTime(total)}
}

// timeDiff returns a-b as an hours/minutes/seconds-only timedelta.
func timeDiff(a, b Time) Timedelta {
	total := timeSeconds(a) - timeSeconds(b)
	sign := 1
	if total < 0 {
		sign, total = -1, -total
	}
	h, rem := total/3600, total%3600
	m, s := rem/60, rem%60
	return Timedelta{Hours: sign * h, Minutes: sign * m, Seconds: sign * s}
}

// datetimeDiff returns a-b as a days/hours/minutes/seconds-only timedelta.
func datetimeDiff(a, b Datetime) Timedelta {
	total := (epochDays(a.Date)-epochDays(b.Date))*secondsPerDay + (timeSeconds(a.Time) - timeSeconds(b.Time))
	sign := 1
	if total < 0 {
		sign, total = -1, -total
	}
	days, rem := total/secondsPerDay, total%secondsPerDay
	h, rem2 := rem/3600, rem%3600
	m, s := rem2/60, rem2%60
	return Timedelta{Days: sign * days, Hours: sign * h, Minutes: sign * m, Seconds: sign * s}
}
