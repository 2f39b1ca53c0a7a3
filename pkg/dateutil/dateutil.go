package dateutil

import (
	"strconv"
	"strings"
	"time"
)

// Date is a validated Gregorian calendar date. Instances are only
// produced by Parse, so a Date in hand is always a real date with
// year >= 1900.
type Date struct {
	Year  int `json:"year" yaml:"year"`
	Month int `json:"month" yaml:"month"`
	Day   int `json:"day" yaml:"day"`
}

// FromTime truncates a time.Time to its calendar date.
func FromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// String renders the date back in the insurer's DD/MM/YYYY format.
func (d Date) String() string {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC).Format("02/01/2006")
}

// Parse reads a date in the strict DD/MM/YYYY format: two-digit day,
// two-digit month, four-digit year, slash separators, exactly ten
// characters. It returns nil for anything else; malformed dates are an
// expected input, not an error condition. Impossible dates (31 April,
// 29 February outside a leap year, day or month zero) and years before
// 1900 are rejected the same way.
func Parse(text string) *Date {
	if len(text) != 10 {
		return nil
	}
	parts := strings.Split(text, "/")
	if len(parts) != 3 || len(parts[0]) != 2 || len(parts[1]) != 2 || len(parts[2]) != 4 {
		return nil
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return nil
	}
	if month < 1 || month > 12 || day < 1 || day > 31 || year < 1900 {
		return nil
	}
	// Round-trip through time.Date, which normalizes overflow (31 April
	// becomes 1 May). A changed component means the triple was not a
	// real date.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return nil
	}
	return &Date{Year: year, Month: month, Day: day}
}

// InsuranceAge derives the age used for rate lookup from a raw date of
// birth. An unparseable date yields 0, which no rate table covers, so
// bad input degrades to an empty quote.
//
// The insurer's rounding convention: take the naive difference in
// calendar years, subtract one if the birthday has not yet come around
// in the reference year, then add one unless the reference date is the
// exact month-and-day anniversary. On the birthday itself this equals
// completed years; on every other day it is completed years plus one.
func InsuranceAge(dob string, ref Date) int {
	birth := Parse(dob)
	if birth == nil {
		return 0
	}
	age := ref.Year - birth.Year
	if ref.Month < birth.Month || (ref.Month == birth.Month && ref.Day < birth.Day) {
		age--
	}
	if !(ref.Month == birth.Month && ref.Day == birth.Day) {
		age++
	}
	return age
}
