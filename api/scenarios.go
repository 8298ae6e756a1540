/*
scenarios.go - Demo scenario loaders for testing and demonstrations

PURPOSE:
  Pre-built scenarios that populate the store with realistic data for
  demos and manual testing. Each scenario creates store hours, a roster,
  settings, and bonus tiers demonstrating a specific engine behavior.

AVAILABLE SCENARIOS:
  flagship-week:  three hourly staff, Mon-Fri 10:00-19:00 and Sat
                  10:00-18:00, two-person coverage with lunch splits
  salaried-crew:  mixed hourly / salary / salary+bonus pay types with
                  store-wide bonus tiers
  lean-roster:    a nearly fully-booked roster that produces
                  insufficient_hours conflicts

NOTE:
  Scenarios reset the backing store. Development and demo use only.

SEE ALSO:
  - handlers.go: ListScenarios, LoadScenario handlers
*/
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/honesthomesales/scrub-shop-road-app-sub000/engine"
)

// Resetter is implemented by stores that can clear themselves for a
// scenario load.
type Resetter interface {
	Reset(ctx context.Context) error
}

var scenarios = []ScenarioDTO{
	{
		ID:          "flagship-week",
		Name:        "Flagship Week",
		Description: "Three hourly staff covering a six-day week with lunch splits",
	},
	{
		ID:          "salaried-crew",
		Name:        "Salaried Crew",
		Description: "Mixed pay types with store-wide bonus tiers",
	},
	{
		ID:          "lean-roster",
		Name:        "Lean Roster",
		Description: "Understaffed week producing insufficient-hours conflicts",
	},
}

func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"scenarios": scenarios,
		"current":   h.currentScenario,
	})
}

func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req LoadScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	resetter, ok := h.Store.(Resetter)
	if !ok {
		writeError(w, http.StatusInternalServerError, "store does not support scenario loading", nil)
		return
	}
	if err := resetter.Reset(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to reset store", err)
		return
	}

	ctx := r.Context()
	var err error
	switch req.ScenarioID {
	case "flagship-week":
		err = loadFlagshipWeek(ctx, h.Store)
	case "salaried-crew":
		err = loadSalariedCrew(ctx, h.Store)
	case "lean-roster":
		err = loadLeanRoster(ctx, h.Store)
	default:
		writeError(w, http.StatusNotFound, "unknown scenario", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load scenario", err)
		return
	}

	h.currentScenario = req.ScenarioID
	writeJSON(w, http.StatusOK, map[string]string{"status": "loaded", "scenario": req.ScenarioID})
}

// =============================================================================
// SCENARIO DATA
// =============================================================================

const demoStore = engine.StoreID("store-1")

func sixDayHours(satClose engine.TimeOfDay) []engine.DayHours {
	weekdays := []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}
	hours := make([]engine.DayHours, 0, 6)
	for _, wd := range weekdays {
		day := engine.DayHours{
			Weekday: wd,
			IsOpen:  true,
			Open:    engine.NewTimeOfDay(10, 0),
			Close:   engine.NewTimeOfDay(19, 0),
		}
		if wd == "saturday" {
			day.Close = satClose
		}
		hours = append(hours, day)
	}
	return hours
}

func loadFlagshipWeek(ctx context.Context, st Store) error {
	if err := st.SaveStoreHours(ctx, demoStore, sixDayHours(engine.NewTimeOfDay(18, 0))); err != nil {
		return err
	}
	roster := []engine.StaffMember{
		{ID: "staff-ava", Name: "Ava Brooks", Role: "keyholder", PayType: engine.PayHourly,
			HourlyRate: engine.NewMoneyFromFloat(19.50), MaxHoursPerWeek: engine.NewHoursFromInt(40)},
		{ID: "staff-ben", Name: "Ben Ortiz", Role: "associate", PayType: engine.PayHourly,
			HourlyRate: engine.NewMoneyFromFloat(16.25), MaxHoursPerWeek: engine.NewHoursFromInt(40)},
		{ID: "staff-cleo", Name: "Cleo Nassar", Role: "associate", PayType: engine.PayHourly,
			HourlyRate: engine.NewMoneyFromFloat(16.25), MaxHoursPerWeek: engine.NewHoursFromInt(40)},
	}
	for _, m := range roster {
		if err := st.SaveStaff(ctx, demoStore, m); err != nil {
			return err
		}
	}
	return st.SaveSettings(ctx, demoStore,
		`{"min_staffing":2,"lunch_break_required":true,"lunch_break_duration":30,"min_shift_duration":3,"max_hours_per_week":40}`)
}

func loadSalariedCrew(ctx context.Context, st Store) error {
	if err := st.SaveStoreHours(ctx, demoStore, sixDayHours(engine.NewTimeOfDay(17, 0))); err != nil {
		return err
	}
	roster := []engine.StaffMember{
		{ID: "staff-dana", Name: "Dana Whitfield", Role: "manager", PayType: engine.PaySalaryBonus,
			SalaryAmount: engine.NewMoneyFromInt(52000), CommissionRate: engine.NewMoneyFromInt(2),
			MaxHoursPerWeek: engine.NewHoursFromInt(45)},
		{ID: "staff-eli", Name: "Eli Tran", Role: "assistant manager", PayType: engine.PaySalary,
			SalaryAmount: engine.NewMoneyFromInt(41000), MaxHoursPerWeek: engine.NewHoursFromInt(40)},
		{ID: "staff-fern", Name: "Fern Okafor", Role: "associate", PayType: engine.PayHourly,
			HourlyRate: engine.NewMoneyFromFloat(17.00), MaxHoursPerWeek: engine.NewHoursFromInt(32)},
	}
	for _, m := range roster {
		if err := st.SaveStaff(ctx, demoStore, m); err != nil {
			return err
		}
	}
	tiers := []engine.BonusTier{
		{TargetSalesAmount: engine.NewMoneyFromInt(5000), BonusAmount: engine.NewMoneyFromInt(100),
			Description: "Bronze week", IsActive: true, Scope: engine.ScopeStore, ScopeID: string(demoStore)},
		{TargetSalesAmount: engine.NewMoneyFromInt(10000), BonusAmount: engine.NewMoneyFromInt(250),
			Description: "Silver week", IsActive: true, Scope: engine.ScopeStore, ScopeID: string(demoStore)},
		{TargetSalesAmount: engine.NewMoneyFromInt(20000), BonusAmount: engine.NewMoneyFromInt(600),
			Description: "Gold week", IsActive: true, Scope: engine.ScopeStore, ScopeID: string(demoStore)},
	}
	if err := st.SaveBonusTiers(ctx, string(demoStore), tiers); err != nil {
		return err
	}
	return st.SaveSettings(ctx, demoStore,
		`{"min_staffing":2,"lunch_break_required":true,"min_shift_duration":4}`)
}

func loadLeanRoster(ctx context.Context, st Store) error {
	if err := st.SaveStoreHours(ctx, demoStore, sixDayHours(engine.NewTimeOfDay(18, 0))); err != nil {
		return err
	}
	// Two-hour caps fall below the three-hour minimum shift: every
	// generation day records an insufficient_hours conflict per member.
	roster := []engine.StaffMember{
		{ID: "staff-gus", Name: "Gus Marino", Role: "associate", PayType: engine.PayHourly,
			HourlyRate: engine.NewMoneyFromFloat(15.50), MaxHoursPerWeek: engine.NewHoursFromInt(2)},
		{ID: "staff-hale", Name: "Hale Iverson", Role: "associate", PayType: engine.PayHourly,
			HourlyRate: engine.NewMoneyFromFloat(15.50), MaxHoursPerWeek: engine.NewHoursFromInt(40)},
	}
	for _, m := range roster {
		if err := st.SaveStaff(ctx, demoStore, m); err != nil {
			return err
		}
	}
	return st.SaveSettings(ctx, demoStore,
		`{"min_staffing":2,"min_shift_duration":3}`)
}
