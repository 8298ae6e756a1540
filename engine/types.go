/*
Package engine provides the core shift-scheduling and compensation model.

PURPOSE:
  This package contains the shared value types and calculators used by the
  scheduling and payroll subsystems: staff records, store hours, shift
  assignments, conflicts, and the availability calculation that feeds the
  generator.

KEY CONCEPTS IN THIS FILE (types.go):
  - Money / Hours: decimal-backed quantities (never float64)
  - StaffMember:   roster entry with pay terms and weekly caps
  - DayHours:      a weekday's open/close window
  - ShiftAssignment: the durable unit the generator emits
  - Conflict:      a non-fatal record of an assignment that couldn't be made

DESIGN PRINCIPLES:
  1. Precision: all money and hour figures use decimal.Decimal
  2. Value semantics: calculators copy inputs, never mutate caller state
  3. Conflicts over errors: unsatisfiable constraints are surfaced as data
  4. Determinism: identical inputs always produce identical outputs

USAGE:
  staff := engine.StaffMember{
      ID:           "st-1",
      Name:         "Dana",
      PayType:      engine.PayHourly,
      HourlyRate:   engine.NewMoneyFromFloat(18.50),
      MaxHoursPerWeek: engine.NewHoursFromInt(40),
  }
  avail := calc.AvailableHours(staff, assignedShifts)

SEE ALSO:
  - clock.go: TimeOfDay / Date / Week value types
  - availability.go: remaining-hours calculation
  - schedule/generator.go: the week generator consuming these types
  - payroll/calculator.go: compensation math over persisted shifts
*/
package engine

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// MONEY / HOURS - Decimal-backed quantities
// =============================================================================

// Money is a currency amount. Stored as a decimal to keep pay math exact.
type Money decimal.Decimal

func NewMoneyFromFloat(v float64) Money { return Money(decimal.NewFromFloat(v)) }
func NewMoneyFromInt(v int64) Money     { return Money(decimal.NewFromInt(v)) }

// ParseMoney parses a decimal string, returning zero on malformed input.
// Missing or non-numeric rates degrade to zero pay rather than failing a run.
func ParseMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}
	}
	return Money(d)
}

func (m Money) Decimal() decimal.Decimal { return decimal.Decimal(m) }
func (m Money) Add(b Money) Money        { return Money(m.Decimal().Add(b.Decimal())) }
func (m Money) Sub(b Money) Money        { return Money(m.Decimal().Sub(b.Decimal())) }
func (m Money) Mul(s decimal.Decimal) Money { return Money(m.Decimal().Mul(s)) }
func (m Money) Div(s decimal.Decimal) Money { return Money(m.Decimal().Div(s)) }
func (m Money) IsZero() bool             { return m.Decimal().IsZero() }
func (m Money) IsPositive() bool         { return m.Decimal().IsPositive() }
func (m Money) GreaterThanOrEqual(b Money) bool {
	return m.Decimal().GreaterThanOrEqual(b.Decimal())
}
func (m Money) Equal(b Money) bool { return m.Decimal().Equal(b.Decimal()) }
func (m Money) String() string     { return m.Decimal().String() }

// Hours is a duration expressed in decimal hours.
type Hours decimal.Decimal

func NewHoursFromFloat(v float64) Hours { return Hours(decimal.NewFromFloat(v)) }
func NewHoursFromInt(v int64) Hours     { return Hours(decimal.NewFromInt(v)) }

func (h Hours) Decimal() decimal.Decimal { return decimal.Decimal(h) }
func (h Hours) Add(b Hours) Hours        { return Hours(h.Decimal().Add(b.Decimal())) }
func (h Hours) Sub(b Hours) Hours        { return Hours(h.Decimal().Sub(b.Decimal())) }
func (h Hours) IsZero() bool             { return h.Decimal().IsZero() }
func (h Hours) IsNegative() bool         { return h.Decimal().IsNegative() }
func (h Hours) LessThan(b Hours) bool    { return h.Decimal().LessThan(b.Decimal()) }
func (h Hours) GreaterThan(b Hours) bool { return h.Decimal().GreaterThan(b.Decimal()) }
func (h Hours) Equal(b Hours) bool       { return h.Decimal().Equal(b.Decimal()) }
func (h Hours) Min(b Hours) Hours {
	if h.LessThan(b) {
		return h
	}
	return b
}
func (h Hours) Max(b Hours) Hours {
	if h.GreaterThan(b) {
		return h
	}
	return b
}
func (h Hours) String() string { return h.Decimal().String() }

// =============================================================================
// IDENTIFIERS
// =============================================================================

type StoreID string
type StaffID string
type ShiftID string

// =============================================================================
// STAFF MEMBER - Roster entry (owned by the staffing collaborator)
// =============================================================================

// PayType determines how base pay is computed for a staff member.
type PayType string

const (
	PayHourly      PayType = "hourly"
	PaySalary      PayType = "salary"
	PaySalaryBonus PayType = "salary+bonus"
)

// StaffMember is a roster entry. The engine reads these, it never writes
// them; pay terms and caps are owned by the staffing collaborator.
type StaffMember struct {
	ID   StaffID
	Name string
	Role string

	PayType        PayType
	HourlyRate     Money // hourly staff only
	SalaryAmount   Money // yearly, salary and salary+bonus staff
	CommissionRate Money // percent of hours, salary+bonus staff; 0 when untracked

	PreferredHoursPerWeek Hours
	MaxHoursPerWeek       Hours
}

// =============================================================================
// DAY HOURS - A weekday's open/close window
// =============================================================================

// Defaults substituted when a day's hours are missing or malformed.
var (
	DefaultOpenTime  = NewTimeOfDay(9, 0)
	DefaultCloseTime = NewTimeOfDay(17, 0)
)

// DayHours is the store's operating window for one weekday. The week
// runs Monday through Saturday; Sunday never trades. When IsOpen is
// false the open/close times are ignored.
type DayHours struct {
	Weekday string // "monday".."saturday"
	IsOpen  bool
	Open    TimeOfDay
	Close   TimeOfDay
}

// Window returns the effective open window, substituting the documented
// 09:00-17:00 default when the stored times are malformed.
func (d DayHours) Window() (TimeOfDay, TimeOfDay) {
	if !d.Open.Before(d.Close) {
		return DefaultOpenTime, DefaultCloseTime
	}
	return d.Open, d.Close
}

// =============================================================================
// SHIFT ASSIGNMENT - The durable unit persisted by the collaborator
// =============================================================================

// ShiftAssignment is one staff member working one contiguous block.
// Invariant: Start < End. A lunch-split shift is stored as two rows.
type ShiftAssignment struct {
	ID      ShiftID
	StoreID StoreID
	StaffID StaffID
	Date    Date
	Start   TimeOfDay
	End     TimeOfDay
	Notes   string
}

// Duration returns the shift length in decimal hours.
func (s ShiftAssignment) Duration() Hours {
	return s.End.Sub(s.Start)
}

// =============================================================================
// CONFLICT - Why a desired assignment could not be made
// =============================================================================

type ConflictType string

const (
	// ConflictInsufficientHours: a staff member had fewer available hours
	// than the configured minimum shift duration on a day they were
	// considered.
	ConflictInsufficientHours ConflictType = "insufficient_hours"
)

// Conflict is an ephemeral record produced by a generation run. It is
// returned to the caller alongside the shift list and never persisted.
type Conflict struct {
	Type    ConflictType
	StaffID StaffID
	Date    Date
	Message string
}
