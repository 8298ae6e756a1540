package engine_test

import (
	"testing"
	"time"

	"github.com/honesthomesales/scrub-shop-road-app-sub000/engine"
)

func hourly(id, name string, maxHours int64) engine.StaffMember {
	return engine.StaffMember{
		ID:              engine.StaffID(id),
		Name:            name,
		PayType:         engine.PayHourly,
		HourlyRate:      engine.NewMoneyFromFloat(16),
		MaxHoursPerWeek: engine.NewHoursFromInt(maxHours),
	}
}

func assigned(staffID string, date engine.Date, startH, endH int) engine.ShiftAssignment {
	return engine.ShiftAssignment{
		StaffID: engine.StaffID(staffID),
		Date:    date,
		Start:   engine.NewTimeOfDay(startH, 0),
		End:     engine.NewTimeOfDay(endH, 0),
	}
}

func TestAvailableHours_SubtractsAssigned(t *testing.T) {
	// GIVEN: a 40h cap and 12h already assigned this week
	calc := engine.AvailabilityCalculator{}
	staff := hourly("st-1", "Ava", 40)
	mon := engine.NewDate(2026, time.January, 5)
	shifts := []engine.ShiftAssignment{
		assigned("st-1", mon, 9, 17),            // 8h
		assigned("st-1", mon.AddDays(1), 10, 14), // 4h
		assigned("st-2", mon, 9, 17),            // someone else's, ignored
	}

	got := calc.AvailableHours(staff, shifts)
	if !got.Equal(engine.NewHoursFromInt(28)) {
		t.Errorf("available = %s, want 28", got)
	}
}

func TestAvailableHours_NeverNegative(t *testing.T) {
	calc := engine.AvailabilityCalculator{}
	staff := hourly("st-1", "Ava", 8)
	mon := engine.NewDate(2026, time.January, 5)
	shifts := []engine.ShiftAssignment{
		assigned("st-1", mon, 9, 19),            // 10h, over cap
	}

	got := calc.AvailableHours(staff, shifts)
	if !got.IsZero() {
		t.Errorf("available = %s, want 0", got)
	}
}

func TestAvailableHours_MissingCapUsesDefault(t *testing.T) {
	// GIVEN: a staff record with no weekly cap set
	calc := engine.AvailabilityCalculator{}
	staff := engine.StaffMember{ID: "st-1", Name: "Ava", PayType: engine.PayHourly}

	got := calc.AvailableHours(staff, nil)
	if !got.Equal(engine.DefaultMaxHoursPerWeek) {
		t.Errorf("available = %s, want default cap %s", got, engine.DefaultMaxHoursPerWeek)
	}
}

func TestAvailableHours_ConfiguredFallback(t *testing.T) {
	calc := engine.AvailabilityCalculator{
		DefaultPreferred: engine.NewHoursFromInt(20),
		DefaultMax:       engine.NewHoursFromInt(25),
	}
	staff := engine.StaffMember{ID: "st-1", Name: "Ava"}

	if got := calc.MaxHours(staff); !got.Equal(engine.NewHoursFromInt(25)) {
		t.Errorf("max = %s, want 25", got)
	}
	if got := calc.PreferredHours(staff); !got.Equal(engine.NewHoursFromInt(20)) {
		t.Errorf("preferred = %s, want 20", got)
	}
}

func TestForWeek_PreservesRosterOrder(t *testing.T) {
	// Roster order is the generator's tie-break; ForWeek must not reorder.
	calc := engine.AvailabilityCalculator{}
	roster := []engine.StaffMember{
		hourly("st-b", "Ben", 40),
		hourly("st-a", "Ava", 40),
		hourly("st-c", "Cleo", 40),
	}

	out := calc.ForWeek(roster, nil)
	if len(out) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(out))
	}
	for i, want := range []engine.StaffID{"st-b", "st-a", "st-c"} {
		if out[i].Staff.ID != want {
			t.Errorf("position %d = %s, want %s", i, out[i].Staff.ID, want)
		}
	}
}
