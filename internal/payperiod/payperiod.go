// Package payperiod resolves monthly ("YYYY-MM") and weekly ("WWYY") pay
// period identifiers into inclusive calendar-day ranges. All dates are
// midnight UTC, the canonical timezone for day matching.
package payperiod

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

type Type string

const (
	Monthly Type = "Monthly"
	Weekly  Type = "Weekly"
)

const (
	monthLayout = "2006-01"
	dayLayout   = "2006-01-02"
)

var weekPattern = regexp.MustCompile(`^\d{4}$`)

// Period is an inclusive [Start, End] range of calendar days.
type Period struct {
	Type  Type
	Start time.Time
	End   time.Time
	Key   string
}

// Days is the number of calendar days in the period.
func (p Period) Days() int {
	return int(p.End.Sub(p.Start).Hours()/24) + 1
}

// Dates lists every day in the period in order.
func (p Period) Dates() []time.Time {
	dates := make([]time.Time, 0, p.Days())
	for d := p.Start; !d.After(p.End); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// Day truncates t to its calendar day in UTC.
func Day(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DayKey is the lookup key used to match attendance and holiday dates.
func DayKey(t time.Time) string {
	return t.UTC().Format(dayLayout)
}

// ParseMonth resolves "YYYY-MM" into the full calendar month.
func ParseMonth(month string) (Period, error) {
	start, err := time.ParseInLocation(monthLayout, month, time.UTC)
	if err != nil {
		return Period{}, ErrInvalidMonth.WithCause(err)
	}
	return Period{
		Type:  Monthly,
		Start: start,
		End:   start.AddDate(0, 1, -1),
		Key:   start.Format(monthLayout),
	}, nil
}

// WeekID is an ISO week number paired with its ISO year.
type WeekID struct {
	Week int
	Year int
}

// ParseWeekID parses "WWYY": two-digit ISO week then two-digit year, read as
// 2000+YY. Week 53 is accepted only for years that have one.
func ParseWeekID(s string) (WeekID, error) {
	if !weekPattern.MatchString(s) {
		return WeekID{}, ErrInvalidWeek
	}
	week, _ := strconv.Atoi(s[:2])
	yy, _ := strconv.Atoi(s[2:])
	id := WeekID{Week: week, Year: 2000 + yy}

	if week < 1 || week > weeksInYear(id.Year) {
		return WeekID{}, ErrInvalidWeek.WithCause(fmt.Errorf("week %d out of range for %d", week, id.Year))
	}
	return id, nil
}

func (w WeekID) String() string {
	return fmt.Sprintf("%02d%02d", w.Week, w.Year%100)
}

// WeekOf returns the ISO week containing t.
func WeekOf(t time.Time) WeekID {
	year, week := t.UTC().ISOWeek()
	return WeekID{Week: week, Year: year}
}

// MonthKey formats t as "YYYY-MM".
func MonthKey(t time.Time) string {
	return t.UTC().Format(monthLayout)
}

// Monday returns the first day of the ISO week.
func (w WeekID) Monday() time.Time {
	// 4 January always falls in ISO week 1.
	jan4 := time.Date(w.Year, time.January, 4, 0, 0, 0, 0, time.UTC)
	offset := (int(jan4.Weekday()) + 6) % 7
	week1 := jan4.AddDate(0, 0, -offset)
	return week1.AddDate(0, 0, 7*(w.Week-1))
}

// Period resolves the Monday to Sunday range of the week.
func (w WeekID) Period() Period {
	start := w.Monday()
	return Period{
		Type:  Weekly,
		Start: start,
		End:   start.AddDate(0, 0, 6),
		Key:   w.String(),
	}
}

// ParseWeek is ParseWeekID followed by Period.
func ParseWeek(week string) (Period, error) {
	id, err := ParseWeekID(week)
	if err != nil {
		return Period{}, err
	}
	return id.Period(), nil
}

// Resolve parses id according to the period type.
func Resolve(t Type, id string) (Period, error) {
	switch t {
	case Monthly:
		return ParseMonth(id)
	case Weekly:
		return ParseWeek(id)
	default:
		return Period{}, ErrUnknownType
	}
}

func weeksInYear(year int) int {
	// 28 December is always in the last ISO week of its year.
	_, week := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return week
}
