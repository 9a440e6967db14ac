package date

import (
	"fmt"
	"time"
)

// MonthFormat is the ISO-8601 string form of a month.
const MonthFormat = "2006-01"

// Month represents a calendar month. It acts as the half-open interval
// [first day of month, first day of next month) when filtering dates.
type Month struct {
	y int
	m time.Month
}

// NewMonth returns a normalized Month for the given year and month.
func NewMonth(year int, month time.Month) Month {
	d := New(year, month, 1)
	return Month{y: d.Year(), m: d.Month()}
}

// MonthOf returns the month containing the date d.
func MonthOf(d Date) Month { return Month{y: d.Year(), m: d.Month()} }

// ThisMonth returns the current month.
func ThisMonth() Month { return MonthOf(Today()) }

// First returns the first day of the month.
func (m Month) First() Date { return New(m.y, m.m, 1) }

// Next returns the following month.
func (m Month) Next() Month { return NewMonth(m.y, m.m+1) }

// Contains reports whether d falls within the month, i.e. within the
// half-open interval [m.First(), m.Next().First()).
func (m Month) Contains(d Date) bool {
	return !d.Before(m.First()) && d.Before(m.Next().First())
}

// String format the month in its standard format.
func (m Month) String() string { return m.First().time().Format(MonthFormat) }

// ParseMonth parses a Month from a "YYYY-MM" string.
func ParseMonth(str string) (Month, error) {
	on, err := time.Parse(MonthFormat, str)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format %q: %w", str, MonthFormat, err)
	}
	return NewMonth(on.Year(), on.Month()), nil
}

// MustParseMonth is like ParseMonth but panics on error.
func MustParseMonth(str string) Month {
	m, err := ParseMonth(str)
	if err != nil {
		panic(err.Error())
	}
	return m
}
