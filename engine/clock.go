/*
clock.go - Wall-clock value types for schedule arithmetic

PURPOSE:
  All schedule math works on two value types:
  - TimeOfDay: local wall-clock "HH:MM" with no timezone
  - Date: a calendar date with no timezone offset

  Store hours, shift boundaries, and pay periods are defined by callers
  in local time; any timezone normalization happens upstream. Keeping
  these as plain value types (minutes since midnight, y/m/d triples)
  means shift duration math can never pick up a DST or zone dependency.

KEY OPERATIONS:
  TimeOfDay.Sub:        duration between two clock times, in decimal hours
  TimeOfDay.AddMinutes: advance a cursor while laying out a day's shifts
  Date.AddDays:         walk a week or a pay period
  DaysInclusive:        calendar days in a period, both endpoints counted
  WeekOf:               the Monday-anchored retail week containing a date

SEE ALSO:
  - types.go: DayHours and ShiftAssignment, built on these types
  - schedule/generator.go: the day-cursor loop that consumes them
*/
package engine

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// TIME OF DAY - Minutes since midnight, no timezone
// =============================================================================

// TimeOfDay is a local wall-clock time, stored as minutes since midnight.
type TimeOfDay int

// NewTimeOfDay builds a TimeOfDay from an hour and minute.
func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// ParseTimeOfDay parses "HH:MM". Seconds and timezone designators are
// rejected; callers substitute defaults on error rather than failing a run.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid time of day %q: out of range", s)
	}
	return NewTimeOfDay(hour, minute), nil
}

// ParseStoredTimeOfDay parses "HH:MM" without the 24-hour ceiling.
// Generated shifts can run past midnight when a day's cursor overruns
// closing time, and those end times must round-trip through storage
// unchanged. Client input still goes through ParseTimeOfDay.
func ParseStoredTimeOfDay(s string) (TimeOfDay, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	if hour < 0 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid time of day %q: out of range", s)
	}
	return NewTimeOfDay(hour, minute), nil
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) Before(other TimeOfDay) bool { return t < other }
func (t TimeOfDay) After(other TimeOfDay) bool  { return t > other }

// AddMinutes returns the clock time n minutes later.
func (t TimeOfDay) AddMinutes(n int) TimeOfDay { return t + TimeOfDay(n) }

// AddHours returns the clock time n whole hours later.
func (t TimeOfDay) AddHours(n int) TimeOfDay { return t.AddMinutes(n * 60) }

// Add advances the clock by a decimal-hours duration, rounded to the minute.
func (t TimeOfDay) Add(h Hours) TimeOfDay {
	minutes := decimal.Decimal(h).Mul(decimal.NewFromInt(60)).Round(0).IntPart()
	return t.AddMinutes(int(minutes))
}

// Sub returns t - other as decimal hours. Negative when t is earlier.
func (t TimeOfDay) Sub(other TimeOfDay) Hours {
	return Hours(decimal.NewFromInt(int64(t - other)).Div(decimal.NewFromInt(60)))
}

// String formats as "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// =============================================================================
// DATE - Calendar date, no timezone offset
// =============================================================================

// Date is a calendar date. The zero value is the zero date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date, normalizing overflow (e.g. Jan 32 -> Feb 1).
func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate parses "2006-01-02".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

func (d Date) time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) AddDays(n int) Date {
	t := d.time().AddDate(0, 0, n)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (d Date) Before(other Date) bool { return d.time().Before(other.time()) }
func (d Date) After(other Date) bool  { return d.time().After(other.time()) }
func (d Date) Equal(other Date) bool  { return d == other }
func (d Date) IsZero() bool           { return d == Date{} }

func (d Date) Weekday() time.Weekday { return d.time().Weekday() }

// String formats as "2006-01-02".
func (d Date) String() string { return d.time().Format("2006-01-02") }

// =============================================================================
// PERIOD - Inclusive date range (pay periods, shift queries)
// =============================================================================

// Period is an inclusive calendar date range.
type Period struct {
	Start Date
	End   Date
}

// Contains reports whether the date falls within [Start, End].
func (p Period) Contains(d Date) bool {
	return !d.Before(p.Start) && !d.After(p.End)
}

// DaysInclusive returns the number of calendar days in the period,
// counting both endpoints. A single-day period has 1 day.
func (p Period) DaysInclusive() int {
	return int(p.End.time().Sub(p.Start.time()).Hours()/24) + 1
}

func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + "]"
}

// =============================================================================
// WEEK - The six-day retail week (Monday through Saturday)
// =============================================================================

// Week is a Monday-anchored scheduling week. The store trades Monday
// through Saturday; Sunday is always closed and never scheduled.
type Week struct {
	Monday Date
}

// WeekOf returns the week containing the given date.
func WeekOf(d Date) Week {
	offset := int(d.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7 // Sunday belongs to the preceding retail week
	}
	return Week{Monday: d.AddDays(-offset)}
}

// Days returns the six scheduled days, Monday first.
func (w Week) Days() []Date {
	days := make([]Date, 6)
	for i := range days {
		days[i] = w.Monday.AddDays(i)
	}
	return days
}

// Period returns the Monday-Saturday date range of the week.
func (w Week) Period() Period {
	return Period{Start: w.Monday, End: w.Monday.AddDays(5)}
}

// Next returns the following week.
func (w Week) Next() Week { return Week{Monday: w.Monday.AddDays(7)} }
