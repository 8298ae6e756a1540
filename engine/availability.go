/*
availability.go - Remaining assignable hours per staff member

PURPOSE:
  Answers "how many more hours can this person be scheduled this week?"
  The generator consumes this to rank candidates and size shifts.

CALCULATION:
  available = max(0, maxHoursPerWeek - hours already assigned in the week)

  Staff without explicit caps fall back to the calculator's configured
  defaults (32 preferred / 40 max out of the box). There are no error
  conditions: a fully-booked staff member simply has zero availability.

SEE ALSO:
  - schedule/generator.go: ranks staff by these figures
  - types.go: StaffMember and ShiftAssignment
*/
package engine

// Fallback caps applied when a staff record carries none.
var (
	DefaultPreferredHoursPerWeek = NewHoursFromInt(32)
	DefaultMaxHoursPerWeek       = NewHoursFromInt(40)
)

// Availability is one staff member's remaining assignable hours for a week.
type Availability struct {
	Staff          StaffMember
	AvailableHours Hours
}

// AvailabilityCalculator derives remaining weekly hours. The zero value
// uses the package default caps.
type AvailabilityCalculator struct {
	DefaultPreferred Hours
	DefaultMax       Hours
}

func (c AvailabilityCalculator) defaults() (Hours, Hours) {
	preferred, max := c.DefaultPreferred, c.DefaultMax
	if preferred.IsZero() {
		preferred = DefaultPreferredHoursPerWeek
	}
	if max.IsZero() {
		max = DefaultMaxHoursPerWeek
	}
	return preferred, max
}

// MaxHours returns the staff member's weekly cap, with fallback.
func (c AvailabilityCalculator) MaxHours(staff StaffMember) Hours {
	_, fallbackMax := c.defaults()
	if staff.MaxHoursPerWeek.IsZero() || staff.MaxHoursPerWeek.IsNegative() {
		return fallbackMax
	}
	return staff.MaxHoursPerWeek
}

// PreferredHours returns the staff member's preferred weekly hours, with fallback.
func (c AvailabilityCalculator) PreferredHours(staff StaffMember) Hours {
	fallbackPreferred, _ := c.defaults()
	if staff.PreferredHoursPerWeek.IsZero() || staff.PreferredHoursPerWeek.IsNegative() {
		return fallbackPreferred
	}
	return staff.PreferredHoursPerWeek
}

// AvailableHours returns max(0, cap - assigned) given the shifts already
// attributed to the staff member within the target week.
func (c AvailabilityCalculator) AvailableHours(staff StaffMember, assigned []ShiftAssignment) Hours {
	total := NewHoursFromInt(0)
	for _, s := range assigned {
		if s.StaffID != staff.ID {
			continue
		}
		total = total.Add(s.Duration())
	}

	remaining := c.MaxHours(staff).Sub(total)
	if remaining.IsNegative() {
		return NewHoursFromInt(0)
	}
	return remaining
}

// ForWeek computes availability for every staff member against the shifts
// already attributed to the week. The returned slice preserves roster
// order; the generator's sort is stable on top of it, so roster order is
// the documented tie-break.
func (c AvailabilityCalculator) ForWeek(roster []StaffMember, assigned []ShiftAssignment) []Availability {
	out := make([]Availability, 0, len(roster))
	for _, staff := range roster {
		out = append(out, Availability{
			Staff:          staff,
			AvailableHours: c.AvailableHours(staff, assigned),
		})
	}
	return out
}
