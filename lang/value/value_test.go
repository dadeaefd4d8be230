package value

import "testing"

func TestCanonicalStringForms(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want string
	}{
		{"number", Number(42), "42"},
		{"negative number", Number(-7), "-7"},
		{"zero", Number(0), "0"},
		{"string", String("hello"), "hello"},
		{"date", DateVal(Date{Day: 1, Month: 1, Year: 2020}), "01.01.2020"},
		{"time", TimeVal(Time{Hour: 9, Minute: 5, Second: 0}), "09:05:00"},
		{"datetime", DatetimeVal(Datetime{Date: Date{1, 1, 2020}, Time: Time{9, 5, 0}}), "01.01.2020~09:05:00"},
		{"timedelta full", TimedeltaVal(Timedelta{Years: 1, Months: 2, Weeks: 3, Days: 4, Hours: 5, Minutes: 6, Seconds: 7}), "'1Y2M3W4D5h6m7s'"},
		{"timedelta zero", TimedeltaVal(Timedelta{}), "'0s'"},
		{"timedelta sparse", TimedeltaVal(Timedelta{Days: 2}), "'2D'"},
		{"bool true", BoolVal(true), "true"},
		{"bool false", BoolVal(false), "false"},
		{"unit", Unit, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.v.String(); got != c.want {
				t.Errorf("expected %q, got %q", c.want, got)
			}
		})
	}
}

func TestIsLeapYear(t *testing.T) {
	cases := []struct {
		year int
		want bool
	}{
		{2024, true}, {2023, false}, {1900, false}, {2000, true}, {2100, false},
	}
	for _, c := range cases {
		if got := IsLeapYear(c.year); got != c.want {
			t.Errorf("IsLeapYear(%d): expected %v, got %v", c.year, c.want, got)
		}
	}
}

func TestValidDate(t *testing.T) {
	if !ValidDate(2024, 2, 29) {
		t.Error("2024-02-29 should be valid (leap year)")
	}
	if ValidDate(2023, 2, 29) {
		t.Error("2023-02-29 should be invalid (not a leap year)")
	}
	if ValidDate(2020, 13, 1) {
		t.Error("month 13 should be invalid")
	}
}
