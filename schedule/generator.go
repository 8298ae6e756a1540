/*
Package schedule implements the week shift generator.

PURPOSE:
  Given a store's operating hours, the roster's remaining availability,
  and scheduling settings, GenerateWeek produces a full week of shift
  assignments plus a list of conflicts for staff it had to skip.

ALGORITHM (per open day):
  1. totalHours = close - open
  2. requiredStaff = max(minStaffing, ceil(totalHours / 8))
  3. Rank staff descending by remaining available hours; ties keep
     roster order (stable sort; the tie-break decides who gets
     assigned first)
  4. Take candidates in rank order:
       - availability below minShiftDuration: record an
         insufficient_hours conflict, move on
       - shiftDuration = min(available, max(minShiftDuration, 8))
       - over 5 hours with lunch required: split around a lunch break
         at the midpoint (floor of half the duration, whole hours)
       - advance the day cursor to the shift's end; deduct the hours
     Stop once requiredStaff are assigned or candidates run out.
  5. Closed days produce no shifts.

KNOWN GAPS:
  - A day ending with fewer than requiredStaff assigned records NO
    conflict; only individually-skipped staff are logged.
  - MaxConsecutiveHours is accepted in Settings but never enforced;
    shift length is capped only by availability and the 8-hour ceiling.

PURITY:
  The generator works on a value-copied availability map. It never
  mutates the caller's staff records or availability slice, so the same
  inputs can be replayed: two runs with identical inputs produce
  identical output. Shift IDs are assigned at persistence time, not here.

SEE ALSO:
  - engine/availability.go: produces the availability input
  - settings.go: the recognized options
*/
package schedule

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/honesthomesales/scrub-shop-road-app-sub000/engine"
)

// Result is a generation run's output: the week's shifts in day order
// plus the conflicts encountered. Both are transient; persistence is the
// caller's call.
type Result struct {
	Shifts    []engine.ShiftAssignment
	Conflicts []engine.Conflict
}

// Generator produces week schedules. The zero value is ready to use.
type Generator struct{}

// dayState tracks one candidate's remaining hours through the week loop.
// Kept as a working copy so reruns and later days never see mutations of
// the caller's records.
type dayState struct {
	staff     engine.StaffMember
	remaining engine.Hours
}

var eightHours = engine.NewHoursFromInt(8)
var fiveHours = engine.NewHoursFromInt(5)

// GenerateWeek builds the week's schedule for a store. The days slice
// holds the six Monday-through-Saturday operating windows; availability
// is the roster's remaining hours in roster order.
func (g Generator) GenerateWeek(
	storeID engine.StoreID,
	week engine.Week,
	days []engine.DayHours,
	availability []engine.Availability,
	settings Settings,
) Result {
	settings = settings.Normalize()

	// Working copy of the availability list. The order is preserved; it
	// carries the documented tie-break.
	pool := make([]*dayState, 0, len(availability))
	for _, a := range availability {
		pool = append(pool, &dayState{staff: a.Staff, remaining: a.AvailableHours})
	}

	var result Result
	for i, date := range week.Days() {
		if i >= len(days) || !days[i].IsOpen {
			continue
		}
		shifts, conflicts := g.generateDay(storeID, date, days[i], pool, settings)
		result.Shifts = append(result.Shifts, shifts...)
		result.Conflicts = append(result.Conflicts, conflicts...)
	}
	return result
}

func (g Generator) generateDay(
	storeID engine.StoreID,
	date engine.Date,
	day engine.DayHours,
	pool []*dayState,
	settings Settings,
) ([]engine.ShiftAssignment, []engine.Conflict) {
	openAt, closeAt := day.Window()
	totalHours := closeAt.Sub(openAt)
	required := requiredStaff(totalHours, settings.MinStaffing)

	ranked := rankByRemaining(pool)

	var (
		shifts    []engine.ShiftAssignment
		conflicts []engine.Conflict
	)
	cursor := openAt
	assigned := 0

	for _, candidate := range ranked {
		if assigned >= required {
			break
		}

		if candidate.remaining.LessThan(settings.MinShift()) {
			conflicts = append(conflicts, engine.Conflict{
				Type:    engine.ConflictInsufficientHours,
				StaffID: candidate.staff.ID,
				Date:    date,
				Message: fmt.Sprintf("%s has %s hours available, below the %dh minimum shift",
					candidate.staff.Name, candidate.remaining, settings.MinShiftDuration),
			})
			continue
		}

		duration := candidate.remaining.Min(settings.MinShift().Max(eightHours))

		if duration.GreaterThan(fiveHours) && settings.LunchBreakRequired {
			first, second := splitAroundLunch(cursor, duration, settings.LunchBreakDuration)
			shifts = append(shifts,
				shift(storeID, candidate.staff.ID, date, first[0], first[1]),
				shift(storeID, candidate.staff.ID, date, second[0], second[1]),
			)
			cursor = second[1]
		} else {
			end := cursor.Add(duration)
			shifts = append(shifts, shift(storeID, candidate.staff.ID, date, cursor, end))
			cursor = end
		}

		candidate.remaining = candidate.remaining.Sub(duration)
		assigned++
	}

	// A day left with fewer than required assignments records no conflict
	// of its own; only the per-staff skips above are surfaced.
	return shifts, conflicts
}

// requiredStaff = max(minStaffing, ceil(totalHours / 8)).
func requiredStaff(totalHours engine.Hours, minStaffing int) int {
	needed := int(totalHours.Decimal().Div(decimal.NewFromInt(8)).Ceil().IntPart())
	if needed < minStaffing {
		return minStaffing
	}
	return needed
}

// rankByRemaining returns the pool sorted descending by remaining hours.
// The sort is stable: equal availability keeps roster order.
func rankByRemaining(pool []*dayState) []*dayState {
	ranked := make([]*dayState, len(pool))
	copy(ranked, pool)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].remaining.GreaterThan(ranked[j].remaining)
	})
	return ranked
}

// splitAroundLunch splits a [cursor, cursor+duration+lunch] window into
// two segments around the break. The midpoint is floor of half the
// duration, rounded down to whole hours; the two segments together span
// exactly the original duration.
func splitAroundLunch(start engine.TimeOfDay, duration engine.Hours, lunchMinutes int) (first, second [2]engine.TimeOfDay) {
	half := int(duration.Decimal().Div(decimal.NewFromInt(2)).Floor().IntPart())
	firstEnd := start.AddHours(half)
	secondStart := firstEnd.AddMinutes(lunchMinutes)
	secondEnd := secondStart.Add(duration.Sub(engine.NewHoursFromInt(int64(half))))
	return [2]engine.TimeOfDay{start, firstEnd}, [2]engine.TimeOfDay{secondStart, secondEnd}
}

func shift(storeID engine.StoreID, staffID engine.StaffID, date engine.Date, start, end engine.TimeOfDay) engine.ShiftAssignment {
	return engine.ShiftAssignment{
		StoreID: storeID,
		StaffID: staffID,
		Date:    date,
		Start:   start,
		End:     end,
		Notes:   "auto-generated",
	}
}
