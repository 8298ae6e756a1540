package schedule_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/honesthomesales/scrub-shop-road-app-sub000/engine"
	"github.com/honesthomesales/scrub-shop-road-app-sub000/schedule"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

const testStore = engine.StoreID("store-1")

func week() engine.Week {
	return engine.WeekOf(engine.NewDate(2026, time.January, 5)) // Mon Jan 5
}

func openDay(weekday string, openH, closeH int) engine.DayHours {
	return engine.DayHours{
		Weekday: weekday,
		IsOpen:  true,
		Open:    engine.NewTimeOfDay(openH, 0),
		Close:   engine.NewTimeOfDay(closeH, 0),
	}
}

func closedDay(weekday string) engine.DayHours {
	return engine.DayHours{Weekday: weekday, IsOpen: false}
}

// sixDays: Mon-Fri 10:00-19:00 (9h), Sat 10:00-18:00 (8h)
func sixDays() []engine.DayHours {
	return []engine.DayHours{
		openDay("monday", 10, 19),
		openDay("tuesday", 10, 19),
		openDay("wednesday", 10, 19),
		openDay("thursday", 10, 19),
		openDay("friday", 10, 19),
		openDay("saturday", 10, 18),
	}
}

func avail(id string, hours int64) engine.Availability {
	return engine.Availability{
		Staff: engine.StaffMember{
			ID:              engine.StaffID(id),
			Name:            id,
			PayType:         engine.PayHourly,
			MaxHoursPerWeek: engine.NewHoursFromInt(hours),
		},
		AvailableHours: engine.NewHoursFromInt(hours),
	}
}

func settings(minStaffing, minShift int, lunch bool) schedule.Settings {
	return schedule.Settings{
		MinStaffing:        minStaffing,
		LunchBreakRequired: lunch,
		LunchBreakDuration: 30,
		MinShiftDuration:   minShift,
		MaxHoursPerWeek:    40,
	}
}

func shiftsOn(shifts []engine.ShiftAssignment, date engine.Date) []engine.ShiftAssignment {
	var out []engine.ShiftAssignment
	for _, s := range shifts {
		if s.Date.Equal(date) {
			out = append(out, s)
		}
	}
	return out
}

func distinctStaff(shifts []engine.ShiftAssignment) map[engine.StaffID]bool {
	out := make(map[engine.StaffID]bool)
	for _, s := range shifts {
		out[s.StaffID] = true
	}
	return out
}

func totalHoursFor(shifts []engine.ShiftAssignment, id engine.StaffID) engine.Hours {
	total := engine.NewHoursFromInt(0)
	for _, s := range shifts {
		if s.StaffID == id {
			total = total.Add(s.Duration())
		}
	}
	return total
}

// =============================================================================
// COVERAGE AND DAY LOOP
// =============================================================================

func TestGenerateWeek_FlagshipScenario(t *testing.T) {
	// GIVEN: Mon-Fri 9h days + Sat 8h, minStaffing=2, three staff with
	//        40h caps, minShift=3, lunch breaks on
	// THEN:  every day covers 2 distinct staff, every shift is lunch-split,
	//        and nobody exceeds their 40h cap
	var g schedule.Generator
	availability := []engine.Availability{avail("A", 40), avail("B", 40), avail("C", 40)}

	result := g.GenerateWeek(testStore, week(), sixDays(), availability, settings(2, 3, true))

	if len(result.Conflicts) != 0 {
		t.Fatalf("expected no conflicts, got %v", result.Conflicts)
	}
	// 6 days x 2 staff x 2 lunch-split rows
	if len(result.Shifts) != 24 {
		t.Fatalf("expected 24 shift rows, got %d", len(result.Shifts))
	}

	for _, date := range week().Days() {
		day := shiftsOn(result.Shifts, date)
		if got := len(distinctStaff(day)); got != 2 {
			t.Errorf("%s: %d distinct staff, want 2", date, got)
		}
		// every staff/day pair should hold exactly two rows (the split)
		perStaff := make(map[engine.StaffID]int)
		for _, s := range day {
			perStaff[s.StaffID]++
		}
		for id, n := range perStaff {
			if n != 2 {
				t.Errorf("%s/%s: %d rows, want 2 (lunch split)", date, id, n)
			}
		}
	}

	for _, id := range []engine.StaffID{"A", "B", "C"} {
		if total := totalHoursFor(result.Shifts, id); total.GreaterThan(engine.NewHoursFromInt(40)) {
			t.Errorf("staff %s assigned %s hours, exceeds 40h cap", id, total)
		}
	}
}

func TestGenerateWeek_ClosedDayYieldsNoShifts(t *testing.T) {
	var g schedule.Generator
	days := sixDays()
	days[2] = closedDay("wednesday") // close Wednesday

	result := g.GenerateWeek(testStore, week(), days, []engine.Availability{avail("A", 40)}, settings(1, 3, false))

	wed := week().Days()[2]
	if got := shiftsOn(result.Shifts, wed); len(got) != 0 {
		t.Errorf("closed Wednesday produced %d shifts, want 0", len(got))
	}
	// the other five days still schedule
	if len(result.Shifts) == 0 {
		t.Error("open days produced no shifts")
	}
}

func TestGenerateWeek_RequiredStaffScalesWithDayLength(t *testing.T) {
	// GIVEN: a 14h day and minStaffing=1
	// THEN:  ceil(14/8) = 2 staff are required even though minStaffing is 1
	var g schedule.Generator
	days := []engine.DayHours{openDay("monday", 8, 22)}

	result := g.GenerateWeek(testStore, week(), days,
		[]engine.Availability{avail("A", 40), avail("B", 40)}, settings(1, 3, false))

	mon := week().Days()[0]
	if got := len(distinctStaff(shiftsOn(result.Shifts, mon))); got != 2 {
		t.Errorf("14h day scheduled %d staff, want 2", got)
	}
}

func TestGenerateWeek_StopsWhenStaffRunOut_NoCoverageConflict(t *testing.T) {
	// An understaffed open day simply ends short: no conflict is recorded
	// for the day itself, only for individually-skipped staff.
	var g schedule.Generator
	days := []engine.DayHours{openDay("monday", 10, 19)}

	result := g.GenerateWeek(testStore, week(), days,
		[]engine.Availability{avail("A", 40)}, settings(2, 3, false))

	mon := week().Days()[0]
	if got := len(distinctStaff(shiftsOn(result.Shifts, mon))); got != 1 {
		t.Errorf("scheduled %d staff, want the 1 available", got)
	}
	if len(result.Conflicts) != 0 {
		t.Errorf("understaffed day recorded %d conflicts, want 0", len(result.Conflicts))
	}
}

// =============================================================================
// LUNCH SPLITTING
// =============================================================================

func TestGenerateWeek_LunchSplit_SpansEqualDurationMinusBreak(t *testing.T) {
	// GIVEN: one staff member, one 9h day, lunch required (30 min)
	var g schedule.Generator
	days := []engine.DayHours{openDay("monday", 10, 19)}

	result := g.GenerateWeek(testStore, week(), days,
		[]engine.Availability{avail("A", 40)}, settings(1, 3, true))

	if len(result.Shifts) != 2 {
		t.Fatalf("expected 2 rows for a split shift, got %d", len(result.Shifts))
	}
	first, second := result.Shifts[0], result.Shifts[1]

	// 8h shift, midpoint at floor(8/2)=4h: 10:00-14:00 and 14:30-18:30
	if first.Start.String() != "10:00" || first.End.String() != "14:00" {
		t.Errorf("first segment %s-%s, want 10:00-14:00", first.Start, first.End)
	}
	if second.Start.String() != "14:30" || second.End.String() != "18:30" {
		t.Errorf("second segment %s-%s, want 14:30-18:30", second.Start, second.End)
	}

	// combined span = whole window minus the lunch break
	combined := first.Duration().Add(second.Duration())
	window := second.End.Sub(first.Start)
	if !window.Sub(combined).Equal(engine.NewHoursFromFloat(0.5)) {
		t.Errorf("window %s - worked %s != 30min lunch", window, combined)
	}
}

func TestGenerateWeek_OddDuration_MidpointFloorsToWholeHours(t *testing.T) {
	// GIVEN: 7 available hours -> 7h shift, midpoint floor(7/2) = 3h
	var g schedule.Generator
	days := []engine.DayHours{openDay("monday", 10, 19)}

	result := g.GenerateWeek(testStore, week(), days,
		[]engine.Availability{avail("A", 7)}, settings(1, 3, true))

	if len(result.Shifts) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(result.Shifts))
	}
	if result.Shifts[0].End.String() != "13:00" {
		t.Errorf("first segment ends %s, want 13:00", result.Shifts[0].End)
	}
	if result.Shifts[1].Start.String() != "13:30" || result.Shifts[1].End.String() != "17:30" {
		t.Errorf("second segment %s-%s, want 13:30-17:30",
			result.Shifts[1].Start, result.Shifts[1].End)
	}
}

func TestGenerateWeek_ShortShift_NoLunchSplit(t *testing.T) {
	// A 5h shift does not exceed the 5h threshold: single row.
	var g schedule.Generator
	days := []engine.DayHours{openDay("monday", 10, 19)}

	result := g.GenerateWeek(testStore, week(), days,
		[]engine.Availability{avail("A", 5)}, settings(1, 3, true))

	if len(result.Shifts) != 1 {
		t.Fatalf("expected 1 row for a 5h shift, got %d", len(result.Shifts))
	}
	if !result.Shifts[0].Duration().Equal(engine.NewHoursFromInt(5)) {
		t.Errorf("duration %s, want 5", result.Shifts[0].Duration())
	}
}

func TestGenerateWeek_LunchDisabled_SingleRow(t *testing.T) {
	var g schedule.Generator
	days := []engine.DayHours{openDay("monday", 10, 19)}

	result := g.GenerateWeek(testStore, week(), days,
		[]engine.Availability{avail("A", 40)}, settings(1, 3, false))

	if len(result.Shifts) != 1 {
		t.Fatalf("expected 1 row with lunch disabled, got %d", len(result.Shifts))
	}
	if !result.Shifts[0].Duration().Equal(engine.NewHoursFromInt(8)) {
		t.Errorf("duration %s, want 8", result.Shifts[0].Duration())
	}
}

// =============================================================================
// CONFLICTS AND SKIPS
// =============================================================================

func TestGenerateWeek_InsufficientHours_OneConflictPerConsideredDay(t *testing.T) {
	// GIVEN: a staff member with 2h available and minShift=3, alongside one
	//        full-time colleague, with 2-person coverage forcing both to be
	//        considered every day
	var g schedule.Generator

	result := g.GenerateWeek(testStore, week(), sixDays(),
		[]engine.Availability{avail("low", 2), avail("full", 60)}, settings(2, 3, false))

	for _, s := range result.Shifts {
		if s.StaffID == "low" {
			t.Fatalf("staff with 2h available was assigned a shift on %s", s.Date)
		}
	}
	if len(result.Conflicts) != 6 {
		t.Fatalf("expected 6 conflicts (one per open day), got %d", len(result.Conflicts))
	}
	seen := make(map[string]bool)
	for _, c := range result.Conflicts {
		if c.Type != engine.ConflictInsufficientHours {
			t.Errorf("conflict type %s, want insufficient_hours", c.Type)
		}
		if c.StaffID != "low" {
			t.Errorf("conflict for %s, want low", c.StaffID)
		}
		if seen[c.Date.String()] {
			t.Errorf("duplicate conflict for %s", c.Date)
		}
		seen[c.Date.String()] = true
	}
}

func TestGenerateWeek_SkippedStaffNotConsideredOnceCovered(t *testing.T) {
	// With coverage already satisfied by higher-availability staff, the
	// low-hours member is never reached and no conflict is recorded.
	var g schedule.Generator
	days := []engine.DayHours{openDay("monday", 10, 18)} // 8h -> 1 required

	result := g.GenerateWeek(testStore, week(), days,
		[]engine.Availability{avail("full", 40), avail("low", 2)}, settings(1, 3, false))

	if len(result.Conflicts) != 0 {
		t.Errorf("expected no conflicts when coverage was met first, got %d", len(result.Conflicts))
	}
}

// =============================================================================
// DETERMINISM AND PURITY
// =============================================================================

func TestGenerateWeek_IdempotentRegeneration(t *testing.T) {
	var g schedule.Generator
	availability := []engine.Availability{avail("A", 40), avail("B", 37), avail("C", 21)}

	first := g.GenerateWeek(testStore, week(), sixDays(), availability, settings(2, 3, true))
	second := g.GenerateWeek(testStore, week(), sixDays(), availability, settings(2, 3, true))

	if !reflect.DeepEqual(first, second) {
		t.Error("two runs over identical inputs produced different output")
	}
}

func TestGenerateWeek_DoesNotMutateCallerAvailability(t *testing.T) {
	var g schedule.Generator
	availability := []engine.Availability{avail("A", 40), avail("B", 40)}

	g.GenerateWeek(testStore, week(), sixDays(), availability, settings(2, 3, true))

	for _, a := range availability {
		if !a.AvailableHours.Equal(engine.NewHoursFromInt(40)) {
			t.Errorf("caller's availability for %s mutated to %s", a.Staff.ID, a.AvailableHours)
		}
	}
}

func TestGenerateWeek_TieBreakKeepsRosterOrder(t *testing.T) {
	// GIVEN: equal availability everywhere and a 1-person day
	// THEN:  the first roster entry wins the assignment
	var g schedule.Generator
	days := []engine.DayHours{openDay("monday", 10, 18)}

	result := g.GenerateWeek(testStore, week(), days,
		[]engine.Availability{avail("B", 40), avail("A", 40)}, settings(1, 3, false))

	if len(result.Shifts) != 1 {
		t.Fatalf("expected 1 shift, got %d", len(result.Shifts))
	}
	if result.Shifts[0].StaffID != "B" {
		t.Errorf("assigned %s, want roster-first B", result.Shifts[0].StaffID)
	}
}

func TestGenerateWeek_RanksByRemainingHoursAcrossDays(t *testing.T) {
	// Day two must prefer the staff member who sat out day one.
	var g schedule.Generator
	days := []engine.DayHours{openDay("monday", 10, 18), openDay("tuesday", 10, 18)}

	result := g.GenerateWeek(testStore, week(), days,
		[]engine.Availability{avail("A", 40), avail("B", 40)}, settings(1, 3, false))

	mon, tue := week().Days()[0], week().Days()[1]
	monShifts := shiftsOn(result.Shifts, mon)
	tueShifts := shiftsOn(result.Shifts, tue)
	if len(monShifts) != 1 || len(tueShifts) != 1 {
		t.Fatalf("expected 1 shift per day, got %d/%d", len(monShifts), len(tueShifts))
	}
	if monShifts[0].StaffID != "A" || tueShifts[0].StaffID != "B" {
		t.Errorf("got %s then %s, want A then B", monShifts[0].StaffID, tueShifts[0].StaffID)
	}
}

// =============================================================================
// SETTINGS BEHAVIOR
// =============================================================================

func TestGenerateWeek_MaxConsecutiveHoursNotEnforced(t *testing.T) {
	// MaxConsecutiveHours is accepted but the loop only caps duration by
	// availability and the 8-hour ceiling. A 3h setting still yields 8h.
	var g schedule.Generator
	days := []engine.DayHours{openDay("monday", 10, 19)}
	s := settings(1, 3, false)
	s.MaxConsecutiveHours = 3

	result := g.GenerateWeek(testStore, week(), days,
		[]engine.Availability{avail("A", 40)}, s)

	if len(result.Shifts) != 1 {
		t.Fatalf("expected 1 shift, got %d", len(result.Shifts))
	}
	if !result.Shifts[0].Duration().Equal(engine.NewHoursFromInt(8)) {
		t.Errorf("duration %s, want 8 (setting is not enforced)", result.Shifts[0].Duration())
	}
}

func TestGenerateWeek_ShiftDurationCappedByAvailability(t *testing.T) {
	var g schedule.Generator
	days := []engine.DayHours{openDay("monday", 10, 19)}

	result := g.GenerateWeek(testStore, week(), days,
		[]engine.Availability{avail("A", 4)}, settings(1, 3, false))

	if len(result.Shifts) != 1 {
		t.Fatalf("expected 1 shift, got %d", len(result.Shifts))
	}
	if !result.Shifts[0].Duration().Equal(engine.NewHoursFromInt(4)) {
		t.Errorf("duration %s, want the 4h available", result.Shifts[0].Duration())
	}
}

func TestGenerateWeek_MalformedDayWindowFallsBackToDefaults(t *testing.T) {
	// An open day with zeroed times gets the 09:00-17:00 default window.
	var g schedule.Generator
	days := []engine.DayHours{{Weekday: "monday", IsOpen: true}}

	result := g.GenerateWeek(testStore, week(), days,
		[]engine.Availability{avail("A", 40)}, settings(1, 3, false))

	if len(result.Shifts) != 1 {
		t.Fatalf("expected 1 shift, got %d", len(result.Shifts))
	}
	if result.Shifts[0].Start.String() != "09:00" {
		t.Errorf("shift starts %s, want default 09:00", result.Shifts[0].Start)
	}
}
