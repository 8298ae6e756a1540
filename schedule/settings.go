/*
settings.go - Scheduling configuration knobs

PURPOSE:
  Settings drive the week generator: coverage floor, lunch-break rules,
  and minimum shift length. Each store carries its own settings, parsed
  from stored JSON by the factory package; DefaultSettings fills the gaps.

RECOGNIZED OPTIONS:
  MinStaffing          minimum simultaneous staff per open day (>= 1)
  MaxConsecutiveHours  soft cap on a single shift; accepted but not
                       enforced by the generator (known gap)
  LunchBreakRequired   split shifts longer than 5 hours around a break
  LunchBreakDuration   lunch length in minutes
  MinShiftDuration     staff with less availability are skipped (conflict)
  MaxHoursPerWeek      staff-level weekly cap fallback
*/
package schedule

import "github.com/honesthomesales/scrub-shop-road-app-sub000/engine"

// Settings is the scheduling configuration for one store.
type Settings struct {
	MinStaffing         int
	MaxConsecutiveHours int // accepted, not enforced in the generation loop
	LunchBreakRequired  bool
	LunchBreakDuration  int // minutes
	MinShiftDuration    int // hours
	MaxHoursPerWeek     int
}

// DefaultSettings returns the out-of-the-box configuration.
func DefaultSettings() Settings {
	return Settings{
		MinStaffing:         1,
		MaxConsecutiveHours: 8,
		LunchBreakRequired:  true,
		LunchBreakDuration:  30,
		MinShiftDuration:    3,
		MaxHoursPerWeek:     40,
	}
}

// Normalize clamps out-of-range values to usable ones.
func (s Settings) Normalize() Settings {
	d := DefaultSettings()
	if s.MinStaffing < 1 {
		s.MinStaffing = d.MinStaffing
	}
	if s.MaxConsecutiveHours <= 0 {
		s.MaxConsecutiveHours = d.MaxConsecutiveHours
	}
	if s.LunchBreakDuration <= 0 {
		s.LunchBreakDuration = d.LunchBreakDuration
	}
	if s.MinShiftDuration <= 0 {
		s.MinShiftDuration = d.MinShiftDuration
	}
	if s.MaxHoursPerWeek <= 0 {
		s.MaxHoursPerWeek = d.MaxHoursPerWeek
	}
	return s
}

// MinShift returns the minimum shift duration as decimal hours.
func (s Settings) MinShift() engine.Hours {
	return engine.NewHoursFromInt(int64(s.MinShiftDuration))
}
